package auth

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/validation"
)

// errInvalidCredentials is shared by every login failure so the response
// never reveals whether the username exists.
const errInvalidCredentials = "invalid username or password"

// AuthService registers users and exchanges credentials for tokens.
type AuthService struct {
	users  store.UserStore
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users store.UserStore, tokens *TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register validates req, hashes the password and stores a new user. No
// uniqueness check is made on the username.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	if err := validation.Struct(req); err != nil {
		return 0, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.CreateUser(ctx, &store.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
	})
	if err != nil {
		return 0, apperror.NewDatabaseError("failed to create user", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  id,
		"username": req.Username,
	}).Info("user registered")
	return id, nil
}

// Login verifies the credentials and issues an access token. A missing
// user, an empty field and a wrong password all yield the same AuthError.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	logCtx := logrus.WithField("username", req.Username)

	if req.Username == "" || req.Password == "" {
		return nil, apperror.NewAuthError(errInvalidCredentials, nil)
	}

	user, err := s.users.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logCtx.Debug("login for unknown username")
			return nil, apperror.NewAuthError(errInvalidCredentials, nil)
		}
		return nil, apperror.NewDatabaseError("failed to look up user", err)
	}

	if !CheckPassword(user.HashedPassword, req.Password) {
		logCtx.WithField("user_id", user.ID).Debug("login with wrong password")
		return nil, apperror.NewAuthError(errInvalidCredentials, nil)
	}

	token, _, err := s.tokens.Issue(Identity{ID: user.ID, Username: user.Username})
	if err != nil {
		return nil, err
	}

	logCtx.WithField("user_id", user.ID).Info("user logged in")
	return &TokenResponse{AccessToken: token}, nil
}
