// Package sqlite implements store.Store on a SQLite database through sqlx.
// It expects the schema from db/migrations/sqlite to be applied.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/user/fitfusion-go/store"
)

// Store is a store.Store backed by sqlx.
type Store struct {
	db *sqlx.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an open database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// setClause accumulates "column = ?" pairs for a partial UPDATE.
type setClause struct {
	columns []string
	args    []any
}

func (c *setClause) add(column string, value *string) {
	if value == nil {
		return
	}
	c.columns = append(c.columns, column+" = ?")
	c.args = append(c.args, *value)
}

func (s *Store) get(ctx context.Context, dest any, query string, id int64) error {
	err := s.db.GetContext(ctx, dest, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// update runs a partial UPDATE on table. With nothing to set it still
// reports ErrNotFound for a missing row.
func (s *Store) update(ctx context.Context, table string, id int64, set setClause) error {
	if len(set.columns) == 0 {
		var exists int
		return s.get(ctx, &exists, "SELECT 1 FROM "+table+" WHERE id = ?", id)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(set.columns, ", "))
	return s.execAffecting(ctx, query, append(set.args, id)...)
}

func (s *Store) delete(ctx context.Context, table string, id int64) error {
	return s.execAffecting(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
}

func (s *Store) execAffecting(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --- users ---

func (s *Store) ListUsers(ctx context.Context) ([]store.User, error) {
	users := []store.User{}
	if err := s.db.SelectContext(ctx, &users, `SELECT id, username, email, password FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*store.User, error) {
	var u store.User
	if err := s.get(ctx, &u, `SELECT id, username, email, password FROM users WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*store.User, error) {
	var u store.User
	err := s.db.GetContext(ctx, &u,
		`SELECT id, username, email, password FROM users WHERE username = ? ORDER BY id LIMIT 1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, user *store.User) (int64, error) {
	id, err := s.insert(ctx, `INSERT INTO users (username, email, password) VALUES (?, ?, ?)`,
		user.Username, user.Email, user.HashedPassword)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, update store.UserUpdate) error {
	var set setClause
	set.add("username", update.Username)
	set.add("email", update.Email)
	set.add("password", update.HashedPassword)
	return s.update(ctx, "users", id, set)
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.delete(ctx, "users", id)
}

// --- exercises ---

func (s *Store) ListExercises(ctx context.Context) ([]store.Exercise, error) {
	exercises := []store.Exercise{}
	if err := s.db.SelectContext(ctx, &exercises, `SELECT id, name, description FROM exercises ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (s *Store) GetExercise(ctx context.Context, id int64) (*store.Exercise, error) {
	var e store.Exercise
	if err := s.get(ctx, &e, `SELECT id, name, description FROM exercises WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateExercise(ctx context.Context, exercise *store.Exercise) (int64, error) {
	id, err := s.insert(ctx, `INSERT INTO exercises (name, description) VALUES (?, ?)`,
		exercise.Name, exercise.Description)
	if err != nil {
		return 0, fmt.Errorf("create exercise: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateExercise(ctx context.Context, id int64, update store.ExerciseUpdate) error {
	var set setClause
	set.add("name", update.Name)
	set.add("description", update.Description)
	return s.update(ctx, "exercises", id, set)
}

func (s *Store) DeleteExercise(ctx context.Context, id int64) error {
	return s.delete(ctx, "exercises", id)
}

// --- workouts ---

func (s *Store) ListWorkouts(ctx context.Context) ([]store.Workout, error) {
	workouts := []store.Workout{}
	if err := s.db.SelectContext(ctx, &workouts, `SELECT id, name, date, duration, type FROM workouts ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *Store) GetWorkout(ctx context.Context, id int64) (*store.Workout, error) {
	var w store.Workout
	if err := s.get(ctx, &w, `SELECT id, name, date, duration, type FROM workouts WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) CreateWorkout(ctx context.Context, workout *store.Workout) (int64, error) {
	id, err := s.insert(ctx, `INSERT INTO workouts (name, date, duration, type) VALUES (?, ?, ?, ?)`,
		workout.Name, workout.Date, workout.Duration, workout.Type)
	if err != nil {
		return 0, fmt.Errorf("create workout: %w", err)
	}
	return id, nil
}

func (s *Store) DeleteWorkout(ctx context.Context, id int64) error {
	return s.delete(ctx, "workouts", id)
}

// --- user workouts ---

func (s *Store) ListUserWorkouts(ctx context.Context) ([]store.UserWorkout, error) {
	rows := []store.UserWorkout{}
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, user_id, workout_id FROM user_workouts ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list user workouts: %w", err)
	}
	return rows, nil
}

func (s *Store) GetUserWorkout(ctx context.Context, id int64) (*store.UserWorkout, error) {
	var uw store.UserWorkout
	if err := s.get(ctx, &uw, `SELECT id, user_id, workout_id FROM user_workouts WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &uw, nil
}

func (s *Store) CreateUserWorkout(ctx context.Context, uw *store.UserWorkout) (int64, error) {
	id, err := s.insert(ctx, `INSERT INTO user_workouts (user_id, workout_id) VALUES (?, ?)`,
		uw.UserID, uw.WorkoutID)
	if err != nil {
		return 0, fmt.Errorf("create user workout: %w", err)
	}
	return id, nil
}

func (s *Store) DeleteUserWorkout(ctx context.Context, id int64) error {
	return s.delete(ctx, "user_workouts", id)
}
