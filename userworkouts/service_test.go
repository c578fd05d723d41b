package userworkouts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/store/memory"
)

func TestCreateUserWorkout_DanglingReferencesAccepted(t *testing.T) {
	svc := NewUserWorkoutService(memory.New())
	ctx := context.Background()

	id, err := svc.CreateUserWorkout(ctx, CreateUserWorkoutRequest{UserID: 42, WorkoutID: 99})
	require.NoError(t, err)

	got, err := svc.GetUserWorkout(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.UserWorkout{ID: id, UserID: 42, WorkoutID: 99}, *got)
}

func TestCreateUserWorkout_Missing(t *testing.T) {
	st := memory.New()
	svc := NewUserWorkoutService(st)
	ctx := context.Background()

	_, err := svc.CreateUserWorkout(ctx, CreateUserWorkoutRequest{UserID: 1})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	assert.Equal(t, "missing required fields: workout_id", apperror.FromError(err).Message)

	_, err = svc.CreateUserWorkout(ctx, CreateUserWorkoutRequest{})
	assert.Equal(t, "missing required fields: user_id, workout_id", apperror.FromError(err).Message)

	list, err := svc.ListUserWorkouts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestDeleteUserWorkout(t *testing.T) {
	svc := NewUserWorkoutService(memory.New())
	ctx := context.Background()
	id, err := svc.CreateUserWorkout(ctx, CreateUserWorkoutRequest{UserID: 1, WorkoutID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUserWorkout(ctx, id))
	_, err = svc.GetUserWorkout(ctx, id)
	assert.Equal(t, "UserWorkout not found", apperror.FromError(err).Message)
	assert.True(t, apperror.IsNotFound(svc.DeleteUserWorkout(ctx, id)))
}
