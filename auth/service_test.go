package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/store/memory"
)

// mockUserStore is a testify mock of store.UserStore.
type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]store.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]store.User)
	return users, args.Error(1)
}

func (m *mockUserStore) GetUser(ctx context.Context, id int64) (*store.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*store.User)
	return user, args.Error(1)
}

func (m *mockUserStore) FindUserByUsername(ctx context.Context, username string) (*store.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*store.User)
	return user, args.Error(1)
}

func (m *mockUserStore) CreateUser(ctx context.Context, user *store.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserStore) UpdateUser(ctx context.Context, id int64, update store.UserUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *mockUserStore) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newTestService(users store.UserStore) *AuthService {
	return NewAuthService(users, newTestTokenService())
}

func TestRegisterThenLogin(t *testing.T) {
	// Arrange
	users := memory.New()
	svc := newTestService(users)
	ctx := context.Background()

	// Act
	id, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw123"})
	require.NoError(t, err)
	resp, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	// Assert
	claims, err := svc.tokens.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: id, Username: "alice"}, claims.Identity())
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	users := memory.New()
	svc := newTestService(users)
	ctx := context.Background()

	id, err := svc.Register(ctx, RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "hunter2"})
	require.NoError(t, err)

	stored, err := users.GetUser(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("hunter2")))
}

func TestRegister_MissingFieldsPersistNothing(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
		want string
	}{
		{"no username", RegisterRequest{Email: "a@example.com", Password: "pw"}, "missing required fields: username"},
		{"no email", RegisterRequest{Username: "a", Password: "pw"}, "missing required fields: email"},
		{"no password", RegisterRequest{Username: "a", Email: "a@example.com"}, "missing required fields: password"},
		{"nothing", RegisterRequest{}, "missing required fields: username, email, password"},
		{"bad email", RegisterRequest{Username: "a", Email: "not-an-email", Password: "pw"}, "invalid fields: email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := memory.New()
			svc := newTestService(users)

			_, err := svc.Register(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperror.IsValidationError(err))
			assert.Equal(t, tt.want, apperror.FromError(err).Message)

			all, err := users.ListUsers(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestRegister_DuplicateUsernameAllowed(t *testing.T) {
	svc := newTestService(memory.New())
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterRequest{Username: "sam", Email: "s1@example.com", Password: "one"})
	require.NoError(t, err)
	second, err := svc.Register(ctx, RegisterRequest{Username: "sam", Email: "s2@example.com", Password: "two"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// The oldest account is the one that can log in.
	_, err = svc.Login(ctx, LoginRequest{Username: "sam", Password: "one"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, LoginRequest{Username: "sam", Password: "two"})
	assert.True(t, apperror.IsAuthError(err))
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(memory.New())
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "right"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, LoginRequest{Username: "alice", Password: "wrong"})
	_, unknownUser := svc.Login(ctx, LoginRequest{Username: "mallory", Password: "right"})
	_, emptyFields := svc.Login(ctx, LoginRequest{})

	for _, err := range []error{wrongPassword, unknownUser, emptyFields} {
		require.Error(t, err)
		assert.True(t, apperror.IsAuthError(err))
	}
	assert.Equal(t, apperror.FromError(wrongPassword).ToResponse(), apperror.FromError(unknownUser).ToResponse())
	assert.Equal(t, apperror.FromError(wrongPassword).ToResponse(), apperror.FromError(emptyFields).ToResponse())
}

func TestLogin_StorageFailureIsNotAnAuthError(t *testing.T) {
	// Arrange
	users := new(mockUserStore)
	users.On("FindUserByUsername", mock.Anything, "alice").
		Return(nil, errors.New("connection reset")).
		Once()
	svc := newTestService(users)

	// Act
	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "pw"})

	// Assert
	require.Error(t, err)
	assert.Equal(t, apperror.DatabaseError, apperror.FromError(err).Type)
	users.AssertExpectations(t)
}

func TestRegister_StorageFailure(t *testing.T) {
	users := new(mockUserStore)
	users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *store.User) bool {
		return u.Username == "alice" && CheckPassword(u.HashedPassword, "pw")
	})).Return(int64(0), errors.New("disk full")).Once()
	svc := newTestService(users)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"})

	require.Error(t, err)
	assert.Equal(t, apperror.DatabaseError, apperror.FromError(err).Type)
	users.AssertExpectations(t)
}

func TestRegister_InvalidInputNeverReachesStore(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestService(users)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice"})

	require.Error(t, err)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}
