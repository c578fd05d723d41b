// Package storetest is a contract suite every store.Store implementation
// must pass. Implementation packages call Run from their own tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/fitfusion-go/store"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) store.Store

// Run executes the full contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("find user by username", func(t *testing.T) { testFindUserByUsername(t, newStore(t)) })
	t.Run("exercises", func(t *testing.T) { testExercises(t, newStore(t)) })
	t.Run("workouts", func(t *testing.T) { testWorkouts(t, newStore(t)) })
	t.Run("user workouts", func(t *testing.T) { testUserWorkouts(t, newStore(t)) })
	t.Run("empty lists", func(t *testing.T) { testEmptyLists(t, newStore(t)) })
	t.Run("ids are not reused", func(t *testing.T) { testIDsNotReused(t, newStore(t)) })
}

func strPtr(s string) *string { return &s }

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	id, err := s.CreateUser(ctx, &store.User{Username: "alice", Email: "alice@example.com", HashedPassword: "hash-1"})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := s.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.User{ID: id, Username: "alice", Email: "alice@example.com", HashedPassword: "hash-1"}, *got)

	require.NoError(t, s.UpdateUser(ctx, id, store.UserUpdate{Email: strPtr("alice@new.example")}))
	got, err = s.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username, "username must survive a partial update")
	assert.Equal(t, "alice@new.example", got.Email)
	assert.Equal(t, "hash-1", got.HashedPassword)

	require.NoError(t, s.UpdateUser(ctx, id, store.UserUpdate{}), "empty update of an existing row succeeds")

	bobID, err := s.CreateUser(ctx, &store.User{Username: "bob", Email: "bob@example.com", HashedPassword: "hash-2"})
	require.NoError(t, err)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, id, users[0].ID)
	assert.Equal(t, bobID, users[1].ID)

	require.NoError(t, s.DeleteUser(ctx, id))
	_, err = s.GetUser(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteUser(ctx, id), store.ErrNotFound)
	assert.ErrorIs(t, s.UpdateUser(ctx, id, store.UserUpdate{Username: strPtr("ghost")}), store.ErrNotFound)
	assert.ErrorIs(t, s.UpdateUser(ctx, id, store.UserUpdate{}), store.ErrNotFound)
}

func testFindUserByUsername(t *testing.T, s store.Store) {
	ctx := context.Background()

	first, err := s.CreateUser(ctx, &store.User{Username: "sam", Email: "sam1@example.com", HashedPassword: "h1"})
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, &store.User{Username: "sam", Email: "sam2@example.com", HashedPassword: "h2"})
	require.NoError(t, err, "duplicate usernames are accepted")

	got, err := s.FindUserByUsername(ctx, "sam")
	require.NoError(t, err)
	assert.Equal(t, first, got.ID, "the oldest matching user wins")

	_, err = s.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testExercises(t *testing.T, s store.Store) {
	ctx := context.Background()

	id, err := s.CreateExercise(ctx, &store.Exercise{Name: "Squat", Description: "Barbell back squat"})
	require.NoError(t, err)

	got, err := s.GetExercise(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.Exercise{ID: id, Name: "Squat", Description: "Barbell back squat"}, *got)

	require.NoError(t, s.UpdateExercise(ctx, id, store.ExerciseUpdate{Name: strPtr("Front Squat")}))
	got, err = s.GetExercise(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Front Squat", got.Name)
	assert.Equal(t, "Barbell back squat", got.Description)

	list, err := s.ListExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteExercise(ctx, id))
	_, err = s.GetExercise(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.UpdateExercise(ctx, id, store.ExerciseUpdate{Name: strPtr("x")}), store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteExercise(ctx, id), store.ErrNotFound)
}

func testWorkouts(t *testing.T, s store.Store) {
	ctx := context.Background()
	date := store.NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	id, err := s.CreateWorkout(ctx, &store.Workout{Name: "Leg Day", Date: date, Duration: 45, Type: "strength"})
	require.NoError(t, err)

	got, err := s.GetWorkout(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Leg Day", got.Name)
	assert.Equal(t, "2024-01-15", got.Date.String())
	assert.Equal(t, 45, got.Duration)
	assert.Equal(t, "strength", got.Type)

	list, err := s.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-01-15", list[0].Date.String())

	require.NoError(t, s.DeleteWorkout(ctx, id))
	_, err = s.GetWorkout(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteWorkout(ctx, id), store.ErrNotFound)
}

func testUserWorkouts(t *testing.T, s store.Store) {
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, &store.User{Username: "kim", Email: "kim@example.com", HashedPassword: "h"})
	require.NoError(t, err)
	workoutID, err := s.CreateWorkout(ctx, &store.Workout{Name: "Run", Date: store.NewDate(time.Now()), Duration: 30, Type: "cardio"})
	require.NoError(t, err)

	id, err := s.CreateUserWorkout(ctx, &store.UserWorkout{UserID: userID, WorkoutID: workoutID})
	require.NoError(t, err)

	got, err := s.GetUserWorkout(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.UserWorkout{ID: id, UserID: userID, WorkoutID: workoutID}, *got)

	// References are not checked, and deleting the parents leaves the link.
	danglingID, err := s.CreateUserWorkout(ctx, &store.UserWorkout{UserID: 9999, WorkoutID: 8888})
	require.NoError(t, err)
	require.NoError(t, s.DeleteUser(ctx, userID))
	require.NoError(t, s.DeleteWorkout(ctx, workoutID))

	list, err := s.ListUserWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, danglingID, list[1].ID)

	require.NoError(t, s.DeleteUserWorkout(ctx, id))
	_, err = s.GetUserWorkout(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteUserWorkout(ctx, id), store.ErrNotFound)
}

func testEmptyLists(t *testing.T, s store.Store) {
	ctx := context.Background()

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	exercises, err := s.ListExercises(ctx)
	require.NoError(t, err)
	assert.NotNil(t, exercises)

	workouts, err := s.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, workouts)

	uws, err := s.ListUserWorkouts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, uws)
}

func testIDsNotReused(t *testing.T, s store.Store) {
	ctx := context.Background()

	first, err := s.CreateExercise(ctx, &store.Exercise{Name: "a", Description: "a"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteExercise(ctx, first))

	second, err := s.CreateExercise(ctx, &store.Exercise{Name: "b", Description: "b"})
	require.NoError(t, err)
	assert.Greater(t, second, first)
}
