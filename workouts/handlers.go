package workouts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/fitfusion-go/respond"
)

// WorkoutHandlers provides HTTP handlers for workouts.
type WorkoutHandlers struct {
	service *WorkoutService
}

// NewWorkoutHandlers creates new WorkoutHandlers.
func NewWorkoutHandlers(service *WorkoutService) *WorkoutHandlers {
	return &WorkoutHandlers{service: service}
}

// RegisterRoutes mounts the workout routes. PUT is not routed, so
// chi answers it with 405.
func (h *WorkoutHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/", h.HandleListWorkouts())
	router.Post("/", h.HandleCreateWorkout())
	router.Get("/{id}", h.HandleGetWorkout())
	router.Delete("/{id}", h.HandleDeleteWorkout())
}

// HandleListWorkouts godoc
// @Summary List workouts
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} store.Workout
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Router /workouts [get]
func (h *WorkoutHandlers) HandleListWorkouts() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		workouts, err := h.service.ListWorkouts(r.Context())
		if err != nil {
			return nil, err
		}
		return respond.OK(workouts), nil
	})
}

// HandleGetWorkout godoc
// @Summary Get a workout
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} store.Workout
// @Failure 404 {object} apperror.ErrorResponse "Workout not found"
// @Router /workouts/{id} [get]
func (h *WorkoutHandlers) HandleGetWorkout() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "Workout")
		if err != nil {
			return nil, err
		}
		workout, err := h.service.GetWorkout(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return respond.OK(workout), nil
	})
}

// HandleCreateWorkout godoc
// @Summary Create a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body CreateWorkoutRequest true "New workout"
// @Success 201 {object} respond.CreatedResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing or invalid fields"
// @Router /workouts [post]
func (h *WorkoutHandlers) HandleCreateWorkout() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		var req CreateWorkoutRequest
		if err := respond.Decode(r, &req); err != nil {
			return nil, err
		}
		id, err := h.service.CreateWorkout(r.Context(), req)
		if err != nil {
			return nil, err
		}
		return respond.Created("Workout created successfully", id), nil
	})
}

// HandleDeleteWorkout godoc
// @Summary Delete a workout
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} respond.MessageResponse
// @Failure 404 {object} apperror.ErrorResponse "Workout not found"
// @Router /workouts/{id} [delete]
func (h *WorkoutHandlers) HandleDeleteWorkout() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "Workout")
		if err != nil {
			return nil, err
		}
		if err := h.service.DeleteWorkout(r.Context(), id); err != nil {
			return nil, err
		}
		return respond.Message(http.StatusOK, "Workout deleted successfully"), nil
	})
}
