// Package store defines FitFusion's persisted entities and the repository
// interfaces the services depend on. Implementations live in the postgres,
// sqlite and memory subpackages; all of them return ErrNotFound for a
// missing row and leave every other failure wrapped for the caller.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// UserStore persists User rows.
type UserStore interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	// FindUserByUsername returns the oldest user with that username.
	FindUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, user *User) (int64, error)
	UpdateUser(ctx context.Context, id int64, update UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
}

// ExerciseStore persists Exercise rows.
type ExerciseStore interface {
	ListExercises(ctx context.Context) ([]Exercise, error)
	GetExercise(ctx context.Context, id int64) (*Exercise, error)
	CreateExercise(ctx context.Context, exercise *Exercise) (int64, error)
	UpdateExercise(ctx context.Context, id int64, update ExerciseUpdate) error
	DeleteExercise(ctx context.Context, id int64) error
}

// WorkoutStore persists Workout rows. Workouts are never updated in place.
type WorkoutStore interface {
	ListWorkouts(ctx context.Context) ([]Workout, error)
	GetWorkout(ctx context.Context, id int64) (*Workout, error)
	CreateWorkout(ctx context.Context, workout *Workout) (int64, error)
	DeleteWorkout(ctx context.Context, id int64) error
}

// UserWorkoutStore persists the user/workout association rows.
type UserWorkoutStore interface {
	ListUserWorkouts(ctx context.Context) ([]UserWorkout, error)
	GetUserWorkout(ctx context.Context, id int64) (*UserWorkout, error)
	CreateUserWorkout(ctx context.Context, uw *UserWorkout) (int64, error)
	DeleteUserWorkout(ctx context.Context, id int64) error
}

// Store bundles every repository behind one storage engine.
type Store interface {
	UserStore
	ExerciseStore
	WorkoutStore
	UserWorkoutStore
	Close() error
}
