package users

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/auth"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/validation"
)

const notFoundMessage = "User not found"

// UserService provides methods for user management.
type UserService struct {
	store store.UserStore
}

// NewUserService creates a new UserService.
func NewUserService(s store.UserStore) *UserService {
	return &UserService{store: s}
}

func toResponse(u store.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

// translate maps storage errors onto the application taxonomy.
func translate(err error, action string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NewNotFoundError(notFoundMessage, err)
	}
	return apperror.NewDatabaseError("failed to "+action, err)
}

// ListUsers returns every user in id order.
func (s *UserService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, translate(err, "list users")
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toResponse(u))
	}
	return out, nil
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, translate(err, "get user")
	}
	resp := toResponse(*u)
	return &resp, nil
}

// UpdateUser applies the supplied fields only.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	update := store.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		update.HashedPassword = &hashed
	}

	if err := s.store.UpdateUser(ctx, id, update); err != nil {
		return translate(err, "update user")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":          id,
		"password_changed": req.Password != nil,
	}).Info("user updated")
	return nil
}

// DeleteUser removes a user. Their user-workout links are left in place.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return translate(err, "delete user")
	}
	logrus.WithField("user_id", id).Info("user deleted")
	return nil
}
