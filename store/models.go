package store

// User is a registered account. HashedPassword holds the bcrypt hash and is
// never serialized.
type User struct {
	ID             int64  `json:"id" db:"id"`
	Username       string `json:"username" db:"username"`
	Email          string `json:"email" db:"email"`
	HashedPassword string `json:"-" db:"password"`
}

// UserUpdate carries the fields of a partial user update. Nil fields are left
// untouched. HashedPassword must already be hashed.
type UserUpdate struct {
	Username       *string
	Email          *string
	HashedPassword *string
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.HashedPassword == nil
}

// Exercise is a named movement with a free-text description.
type Exercise struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// ExerciseUpdate carries the fields of a partial exercise update.
type ExerciseUpdate struct {
	Name        *string
	Description *string
}

// Empty reports whether the update changes nothing.
func (u ExerciseUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil
}

// Workout is a dated training session. Duration is in minutes.
type Workout struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Date     Date   `json:"date" db:"date"`
	Duration int    `json:"duration" db:"duration"`
	Type     string `json:"type" db:"type"`
}

// UserWorkout links a user to a workout they took part in. Neither id is
// checked for existence.
type UserWorkout struct {
	ID        int64 `json:"id" db:"id"`
	UserID    int64 `json:"user_id" db:"user_id"`
	WorkoutID int64 `json:"workout_id" db:"workout_id"`
}
