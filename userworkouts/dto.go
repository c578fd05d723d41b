// Package userworkouts links users to workouts. Links are created, read and
// deleted; their references are not checked against existing rows.
package userworkouts

// CreateUserWorkoutRequest links a user to a workout.
type CreateUserWorkoutRequest struct {
	UserID    int64 `json:"user_id" validate:"required" example:"1"`
	WorkoutID int64 `json:"workout_id" validate:"required" example:"1"`
}
