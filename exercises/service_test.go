package exercises

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/store/memory"
)

func strPtr(s string) *string { return &s }

func TestCreateGetRoundTrip(t *testing.T) {
	svc := NewExerciseService(memory.New())
	ctx := context.Background()

	id, err := svc.CreateExercise(ctx, CreateExerciseRequest{Name: "Deadlift", Description: "Conventional"})
	require.NoError(t, err)

	got, err := svc.GetExercise(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.Exercise{ID: id, Name: "Deadlift", Description: "Conventional"}, *got)

	list, err := svc.ListExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.Exercise{*got}, list)
}

func TestCreateExercise_Missing(t *testing.T) {
	st := memory.New()
	svc := NewExerciseService(st)

	_, err := svc.CreateExercise(context.Background(), CreateExerciseRequest{Name: "Plank"})
	require.Error(t, err)
	assert.Equal(t, "missing required fields: description", apperror.FromError(err).Message)

	_, err = svc.CreateExercise(context.Background(), CreateExerciseRequest{})
	assert.Equal(t, "missing required fields: name, description", apperror.FromError(err).Message)

	list, err := st.ListExercises(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateExercise(t *testing.T) {
	svc := NewExerciseService(memory.New())
	ctx := context.Background()
	id, err := svc.CreateExercise(ctx, CreateExerciseRequest{Name: "Row", Description: "Bent over"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateExercise(ctx, id, UpdateExerciseRequest{Description: strPtr("Pendlay")}))
	got, err := svc.GetExercise(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Row", got.Name)
	assert.Equal(t, "Pendlay", got.Description)

	require.NoError(t, svc.UpdateExercise(ctx, id, UpdateExerciseRequest{}))
	again, err := svc.GetExercise(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, got, again, "an empty update changes nothing")

	assert.True(t, apperror.IsNotFound(svc.UpdateExercise(ctx, 77, UpdateExerciseRequest{Name: strPtr("x")})))
	assert.True(t, apperror.IsValidationError(svc.UpdateExercise(ctx, id, UpdateExerciseRequest{Name: strPtr("")})))
}

func TestDeleteExercise(t *testing.T) {
	svc := NewExerciseService(memory.New())
	ctx := context.Background()
	id, err := svc.CreateExercise(ctx, CreateExerciseRequest{Name: "Lunge", Description: "Walking"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExercise(ctx, id))
	_, err = svc.GetExercise(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Exercise not found", apperror.FromError(err).Message)
	assert.True(t, apperror.IsNotFound(svc.DeleteExercise(ctx, id)))
}
