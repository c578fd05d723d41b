// Package memory is an in-process store.Store. It backs DB_DRIVER=memory and
// serves as the test double for the service packages.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/user/fitfusion-go/store"
)

// table keeps rows keyed by id and hands out ids the way an autoincrement
// column would: strictly increasing, never reused.
type table[T any] struct {
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1}
}

func (t *table[T]) insert(row T, setID func(*T, int64)) int64 {
	id := t.nextID
	t.nextID++
	setID(&row, id)
	t.rows[id] = row
	return id
}

// list returns rows in id order, which is insertion order.
func (t *table[T]) list() []T {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id int64) (T, error) {
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return row, nil
}

func (t *table[T]) delete(id int64) error {
	if _, ok := t.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// Store is a mutex-guarded set of tables. The zero value is not usable; call New.
type Store struct {
	mu           sync.RWMutex
	users        *table[store.User]
	exercises    *table[store.Exercise]
	workouts     *table[store.Workout]
	userWorkouts *table[store.UserWorkout]
}

var _ store.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		users:        newTable[store.User](),
		exercises:    newTable[store.Exercise](),
		workouts:     newTable[store.Workout](),
		userWorkouts: newTable[store.UserWorkout](),
	}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// --- users ---

func (s *Store) ListUsers(_ context.Context) ([]store.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.list(), nil
}

func (s *Store) GetUser(_ context.Context, id int64) (*store.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, err := s.users.get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*store.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users.list() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateUser(_ context.Context, user *store.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.insert(*user, func(u *store.User, id int64) { u.ID = id }), nil
}

func (s *Store) UpdateUser(_ context.Context, id int64, update store.UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.users.get(id)
	if err != nil {
		return err
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.HashedPassword != nil {
		u.HashedPassword = *update.HashedPassword
	}
	s.users.rows[id] = u
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.delete(id)
}

// --- exercises ---

func (s *Store) ListExercises(_ context.Context) ([]store.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exercises.list(), nil
}

func (s *Store) GetExercise(_ context.Context, id int64) (*store.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.exercises.get(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateExercise(_ context.Context, exercise *store.Exercise) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exercises.insert(*exercise, func(e *store.Exercise, id int64) { e.ID = id }), nil
}

func (s *Store) UpdateExercise(_ context.Context, id int64, update store.ExerciseUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.exercises.get(id)
	if err != nil {
		return err
	}
	if update.Name != nil {
		e.Name = *update.Name
	}
	if update.Description != nil {
		e.Description = *update.Description
	}
	s.exercises.rows[id] = e
	return nil
}

func (s *Store) DeleteExercise(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exercises.delete(id)
}

// --- workouts ---

func (s *Store) ListWorkouts(_ context.Context) ([]store.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workouts.list(), nil
}

func (s *Store) GetWorkout(_ context.Context, id int64) (*store.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, err := s.workouts.get(id)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) CreateWorkout(_ context.Context, workout *store.Workout) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workouts.insert(*workout, func(w *store.Workout, id int64) { w.ID = id }), nil
}

func (s *Store) DeleteWorkout(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workouts.delete(id)
}

// --- user workouts ---

func (s *Store) ListUserWorkouts(_ context.Context) ([]store.UserWorkout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userWorkouts.list(), nil
}

func (s *Store) GetUserWorkout(_ context.Context, id int64) (*store.UserWorkout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uw, err := s.userWorkouts.get(id)
	if err != nil {
		return nil, err
	}
	return &uw, nil
}

func (s *Store) CreateUserWorkout(_ context.Context, uw *store.UserWorkout) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userWorkouts.insert(*uw, func(row *store.UserWorkout, id int64) { row.ID = id }), nil
}

func (s *Store) DeleteUserWorkout(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userWorkouts.delete(id)
}
