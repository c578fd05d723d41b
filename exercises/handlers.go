package exercises

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/fitfusion-go/respond"
)

// ExerciseHandlers provides HTTP handlers for exercises.
type ExerciseHandlers struct {
	service *ExerciseService
}

// NewExerciseHandlers creates new ExerciseHandlers.
func NewExerciseHandlers(service *ExerciseService) *ExerciseHandlers {
	return &ExerciseHandlers{service: service}
}

// RegisterRoutes mounts full CRUD for exercises.
func (h *ExerciseHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/", h.HandleListExercises())
	router.Post("/", h.HandleCreateExercise())
	router.Get("/{id}", h.HandleGetExercise())
	router.Put("/{id}", h.HandleUpdateExercise())
	router.Delete("/{id}", h.HandleDeleteExercise())
}

// HandleListExercises godoc
// @Summary List exercises
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} store.Exercise
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Router /exercises [get]
func (h *ExerciseHandlers) HandleListExercises() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		exercises, err := h.service.ListExercises(r.Context())
		if err != nil {
			return nil, err
		}
		return respond.OK(exercises), nil
	})
}

// HandleGetExercise godoc
// @Summary Get an exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} store.Exercise
// @Failure 404 {object} apperror.ErrorResponse "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandlers) HandleGetExercise() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "Exercise")
		if err != nil {
			return nil, err
		}
		exercise, err := h.service.GetExercise(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return respond.OK(exercise), nil
	})
}

// HandleCreateExercise godoc
// @Summary Create an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body CreateExerciseRequest true "New exercise"
// @Success 201 {object} respond.CreatedResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing required fields"
// @Router /exercises [post]
func (h *ExerciseHandlers) HandleCreateExercise() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		var req CreateExerciseRequest
		if err := respond.Decode(r, &req); err != nil {
			return nil, err
		}
		id, err := h.service.CreateExercise(r.Context(), req)
		if err != nil {
			return nil, err
		}
		return respond.Created("Exercise created successfully", id), nil
	})
}

// HandleUpdateExercise godoc
// @Summary Update an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Param exercise body UpdateExerciseRequest true "Fields to change"
// @Success 200 {object} respond.MessageResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid fields"
// @Failure 404 {object} apperror.ErrorResponse "Exercise not found"
// @Router /exercises/{id} [put]
func (h *ExerciseHandlers) HandleUpdateExercise() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "Exercise")
		if err != nil {
			return nil, err
		}
		var req UpdateExerciseRequest
		if err := respond.Decode(r, &req); err != nil {
			return nil, err
		}
		if err := h.service.UpdateExercise(r.Context(), id, req); err != nil {
			return nil, err
		}
		return respond.Message(http.StatusOK, "Exercise updated successfully"), nil
	})
}

// HandleDeleteExercise godoc
// @Summary Delete an exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} respond.MessageResponse
// @Failure 404 {object} apperror.ErrorResponse "Exercise not found"
// @Router /exercises/{id} [delete]
func (h *ExerciseHandlers) HandleDeleteExercise() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "Exercise")
		if err != nil {
			return nil, err
		}
		if err := h.service.DeleteExercise(r.Context(), id); err != nil {
			return nil, err
		}
		return respond.Message(http.StatusOK, "Exercise deleted successfully"), nil
	})
}
