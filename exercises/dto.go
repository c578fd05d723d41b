// Package exercises is the exercise catalogue: full CRUD over named
// movements and their descriptions.
package exercises

// CreateExerciseRequest represents a new exercise.
type CreateExerciseRequest struct {
	Name        string `json:"name" validate:"required" example:"Squat"`
	Description string `json:"description" validate:"required" example:"Barbell back squat"`
}

// UpdateExerciseRequest represents a partial update; nil fields are kept.
type UpdateExerciseRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=1" example:"Front Squat"`
	Description *string `json:"description,omitempty" validate:"omitnil,min=1" example:"Barbell front squat"`
}
