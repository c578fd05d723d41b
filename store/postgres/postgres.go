// Package postgres implements store.Store on PostgreSQL through a pgx pool.
// It expects the schema from db/migrations/postgres to be applied.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/fitfusion-go/store"
)

// Store is a store.Store backed by pgxpool.
type Store struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*Store)(nil)

// New wraps an open pool. Close releases it.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close closes the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// update builds "SET a = $1, b = $2 ... WHERE id = $n" from the supplied
// columns. An update with nothing to set only checks that the row exists.
func (s *Store) update(ctx context.Context, table string, id int64, columns []string, values []*string) error {
	var setClauses []string
	var args []any
	argID := 1
	for i, value := range values {
		if value == nil {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", columns[i], argID))
		args = append(args, *value)
		argID++
	}

	if len(setClauses) == 0 {
		var one int
		err := s.pool.QueryRow(ctx, "SELECT 1 FROM "+table+" WHERE id = $1", id).Scan(&one)
		return notFound(err)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(setClauses, ", "), argID)
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) delete(ctx context.Context, table string, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --- users ---

func scanUser(row pgx.Row) (store.User, error) {
	var u store.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword)
	return u, err
}

func (s *Store) ListUsers(ctx context.Context) ([]store.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, username, email, password FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*store.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT id, username, email, password FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*store.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx,
		`SELECT id, username, email, password FROM users WHERE username = $1 ORDER BY id LIMIT 1`, username))
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, user *store.User) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id`,
		user.Username, user.Email, user.HashedPassword).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, update store.UserUpdate) error {
	return s.update(ctx, "users", id,
		[]string{"username", "email", "password"},
		[]*string{update.Username, update.Email, update.HashedPassword})
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.delete(ctx, "users", id)
}

// --- exercises ---

func scanExercise(row pgx.Row) (store.Exercise, error) {
	var e store.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.Description)
	return e, err
}

func (s *Store) ListExercises(ctx context.Context) ([]store.Exercise, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, description FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	exercises, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.Exercise, error) {
		return scanExercise(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (s *Store) GetExercise(ctx context.Context, id int64) (*store.Exercise, error) {
	e, err := scanExercise(s.pool.QueryRow(ctx, `SELECT id, name, description FROM exercises WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (s *Store) CreateExercise(ctx context.Context, exercise *store.Exercise) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO exercises (name, description) VALUES ($1, $2) RETURNING id`,
		exercise.Name, exercise.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create exercise: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateExercise(ctx context.Context, id int64, update store.ExerciseUpdate) error {
	return s.update(ctx, "exercises", id,
		[]string{"name", "description"},
		[]*string{update.Name, update.Description})
}

func (s *Store) DeleteExercise(ctx context.Context, id int64) error {
	return s.delete(ctx, "exercises", id)
}

// --- workouts ---

// scanWorkout reads the DATE column straight into the embedded time.Time.
func scanWorkout(row pgx.Row) (store.Workout, error) {
	var w store.Workout
	err := row.Scan(&w.ID, &w.Name, &w.Date.Time, &w.Duration, &w.Type)
	return w, err
}

func (s *Store) ListWorkouts(ctx context.Context) ([]store.Workout, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, date, duration, type FROM workouts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	workouts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.Workout, error) {
		return scanWorkout(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *Store) GetWorkout(ctx context.Context, id int64) (*store.Workout, error) {
	w, err := scanWorkout(s.pool.QueryRow(ctx, `SELECT id, name, date, duration, type FROM workouts WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &w, nil
}

func (s *Store) CreateWorkout(ctx context.Context, workout *store.Workout) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO workouts (name, date, duration, type) VALUES ($1, $2, $3, $4) RETURNING id`,
		workout.Name, workout.Date.Time, workout.Duration, workout.Type).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create workout: %w", err)
	}
	return id, nil
}

func (s *Store) DeleteWorkout(ctx context.Context, id int64) error {
	return s.delete(ctx, "workouts", id)
}

// --- user workouts ---

func scanUserWorkout(row pgx.Row) (store.UserWorkout, error) {
	var uw store.UserWorkout
	err := row.Scan(&uw.ID, &uw.UserID, &uw.WorkoutID)
	return uw, err
}

func (s *Store) ListUserWorkouts(ctx context.Context) ([]store.UserWorkout, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, user_id, workout_id FROM user_workouts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list user workouts: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.UserWorkout, error) {
		return scanUserWorkout(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list user workouts: %w", err)
	}
	return out, nil
}

func (s *Store) GetUserWorkout(ctx context.Context, id int64) (*store.UserWorkout, error) {
	uw, err := scanUserWorkout(s.pool.QueryRow(ctx, `SELECT id, user_id, workout_id FROM user_workouts WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &uw, nil
}

func (s *Store) CreateUserWorkout(ctx context.Context, uw *store.UserWorkout) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO user_workouts (user_id, workout_id) VALUES ($1, $2) RETURNING id`,
		uw.UserID, uw.WorkoutID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create user workout: %w", err)
	}
	return id, nil
}

func (s *Store) DeleteUserWorkout(ctx context.Context, id int64) error {
	return s.delete(ctx, "user_workouts", id)
}
