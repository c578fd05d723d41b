package userworkouts

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/validation"
)

// UserWorkoutService manages user-workout links.
type UserWorkoutService struct {
	store store.UserWorkoutStore
}

// NewUserWorkoutService creates a new UserWorkoutService.
func NewUserWorkoutService(s store.UserWorkoutStore) *UserWorkoutService {
	return &UserWorkoutService{store: s}
}

func translate(err error, action string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NewNotFoundError("UserWorkout not found", err)
	}
	return apperror.NewDatabaseError("failed to "+action, err)
}

// ListUserWorkouts returns all links in creation order.
func (s *UserWorkoutService) ListUserWorkouts(ctx context.Context) ([]store.UserWorkout, error) {
	links, err := s.store.ListUserWorkouts(ctx)
	if err != nil {
		return nil, translate(err, "list user workouts")
	}
	return links, nil
}

// GetUserWorkout retrieves a link by id.
func (s *UserWorkoutService) GetUserWorkout(ctx context.Context, id int64) (*store.UserWorkout, error) {
	link, err := s.store.GetUserWorkout(ctx, id)
	if err != nil {
		return nil, translate(err, "get user workout")
	}
	return link, nil
}

// CreateUserWorkout stores a link. Neither id has to name an existing row.
func (s *UserWorkoutService) CreateUserWorkout(ctx context.Context, req CreateUserWorkoutRequest) (int64, error) {
	if err := validation.Struct(req); err != nil {
		return 0, err
	}
	id, err := s.store.CreateUserWorkout(ctx, &store.UserWorkout{
		UserID:    req.UserID,
		WorkoutID: req.WorkoutID,
	})
	if err != nil {
		return 0, translate(err, "create user workout")
	}
	logrus.WithFields(logrus.Fields{
		"user_workout_id": id,
		"user_id":         req.UserID,
		"workout_id":      req.WorkoutID,
	}).Info("user workout created")
	return id, nil
}

// DeleteUserWorkout removes a link. The user and workout are untouched.
func (s *UserWorkoutService) DeleteUserWorkout(ctx context.Context, id int64) error {
	if err := s.store.DeleteUserWorkout(ctx, id); err != nil {
		return translate(err, "delete user workout")
	}
	return nil
}
