package exercises

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/validation"
)

// ExerciseService implements exercise CRUD on top of a store.ExerciseStore.
type ExerciseService struct {
	store store.ExerciseStore
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(s store.ExerciseStore) *ExerciseService {
	return &ExerciseService{store: s}
}

func translate(err error, action string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NewNotFoundError("Exercise not found", err)
	}
	return apperror.NewDatabaseError("failed to "+action, err)
}

// ListExercises returns all exercises in creation order.
func (s *ExerciseService) ListExercises(ctx context.Context) ([]store.Exercise, error) {
	exercises, err := s.store.ListExercises(ctx)
	if err != nil {
		return nil, translate(err, "list exercises")
	}
	return exercises, nil
}

// GetExercise retrieves an exercise by id.
func (s *ExerciseService) GetExercise(ctx context.Context, id int64) (*store.Exercise, error) {
	exercise, err := s.store.GetExercise(ctx, id)
	if err != nil {
		return nil, translate(err, "get exercise")
	}
	return exercise, nil
}

// CreateExercise validates req and returns the new exercise's id.
func (s *ExerciseService) CreateExercise(ctx context.Context, req CreateExerciseRequest) (int64, error) {
	if err := validation.Struct(req); err != nil {
		return 0, err
	}
	id, err := s.store.CreateExercise(ctx, &store.Exercise{Name: req.Name, Description: req.Description})
	if err != nil {
		return 0, translate(err, "create exercise")
	}
	logrus.WithFields(logrus.Fields{"exercise_id": id, "name": req.Name}).Info("exercise created")
	return id, nil
}

// UpdateExercise changes only the supplied fields.
func (s *ExerciseService) UpdateExercise(ctx context.Context, id int64, req UpdateExerciseRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	update := store.ExerciseUpdate{Name: req.Name, Description: req.Description}
	if err := s.store.UpdateExercise(ctx, id, update); err != nil {
		return translate(err, "update exercise")
	}
	logrus.WithField("exercise_id", id).Info("exercise updated")
	return nil
}

// DeleteExercise removes an exercise.
func (s *ExerciseService) DeleteExercise(ctx context.Context, id int64) error {
	if err := s.store.DeleteExercise(ctx, id); err != nil {
		return translate(err, "delete exercise")
	}
	logrus.WithField("exercise_id", id).Info("exercise deleted")
	return nil
}
