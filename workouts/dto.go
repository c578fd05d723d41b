// Package workouts records dated training sessions. Workouts can be
// created, read and deleted but never edited.
package workouts

// CreateWorkoutRequest represents a new workout. Date is a calendar day in
// YYYY-MM-DD form and Duration is a whole number of minutes.
type CreateWorkoutRequest struct {
	Name     string `json:"name" validate:"required" example:"Leg Day"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-01-15"`
	Duration int    `json:"duration" validate:"required,min=1" example:"45"`
	Type     string `json:"type" validate:"required" example:"strength"`
}
