package workouts

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/validation"
)

// WorkoutService implements create, read and delete for workouts.
type WorkoutService struct {
	store store.WorkoutStore
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(s store.WorkoutStore) *WorkoutService {
	return &WorkoutService{store: s}
}

func translate(err error, action string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NewNotFoundError("Workout not found", err)
	}
	return apperror.NewDatabaseError("failed to "+action, err)
}

// ListWorkouts returns all workouts in creation order.
func (s *WorkoutService) ListWorkouts(ctx context.Context) ([]store.Workout, error) {
	workouts, err := s.store.ListWorkouts(ctx)
	if err != nil {
		return nil, translate(err, "list workouts")
	}
	return workouts, nil
}

// GetWorkout retrieves a workout by id.
func (s *WorkoutService) GetWorkout(ctx context.Context, id int64) (*store.Workout, error) {
	workout, err := s.store.GetWorkout(ctx, id)
	if err != nil {
		return nil, translate(err, "get workout")
	}
	return workout, nil
}

// CreateWorkout validates req, parses its date and stores the workout.
func (s *WorkoutService) CreateWorkout(ctx context.Context, req CreateWorkoutRequest) (int64, error) {
	if err := validation.Struct(req); err != nil {
		return 0, err
	}
	date, err := store.ParseDate(req.Date)
	if err != nil {
		// The datetime rule has already checked the layout.
		return 0, apperror.NewValidationError("invalid fields: date", err)
	}

	id, err := s.store.CreateWorkout(ctx, &store.Workout{
		Name:     req.Name,
		Date:     date,
		Duration: req.Duration,
		Type:     req.Type,
	})
	if err != nil {
		return 0, translate(err, "create workout")
	}

	logrus.WithFields(logrus.Fields{
		"workout_id": id,
		"date":       req.Date,
		"type":       req.Type,
	}).Info("workout created")
	return id, nil
}

// DeleteWorkout removes a workout. Links from users to it are kept.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, id int64) error {
	if err := s.store.DeleteWorkout(ctx, id); err != nil {
		return translate(err, "delete workout")
	}
	logrus.WithField("workout_id", id).Info("workout deleted")
	return nil
}
