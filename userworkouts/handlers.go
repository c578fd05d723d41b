package userworkouts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/fitfusion-go/respond"
)

// UserWorkoutHandlers provides HTTP handlers for user-workout links.
type UserWorkoutHandlers struct {
	service *UserWorkoutService
}

// NewUserWorkoutHandlers creates new UserWorkoutHandlers.
func NewUserWorkoutHandlers(service *UserWorkoutService) *UserWorkoutHandlers {
	return &UserWorkoutHandlers{service: service}
}

// RegisterRoutes mounts the link routes. Links cannot be updated.
func (h *UserWorkoutHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/", h.HandleListUserWorkouts())
	router.Post("/", h.HandleCreateUserWorkout())
	router.Get("/{id}", h.HandleGetUserWorkout())
	router.Delete("/{id}", h.HandleDeleteUserWorkout())
}

// HandleListUserWorkouts godoc
// @Summary List user-workout links
// @Tags userworkouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} store.UserWorkout
// @Router /userworkouts [get]
func (h *UserWorkoutHandlers) HandleListUserWorkouts() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		links, err := h.service.ListUserWorkouts(r.Context())
		if err != nil {
			return nil, err
		}
		return respond.OK(links), nil
	})
}

// HandleGetUserWorkout godoc
// @Summary Get a user-workout link
// @Tags userworkouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "UserWorkout ID"
// @Success 200 {object} store.UserWorkout
// @Failure 404 {object} apperror.ErrorResponse "UserWorkout not found"
// @Router /userworkouts/{id} [get]
func (h *UserWorkoutHandlers) HandleGetUserWorkout() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "UserWorkout")
		if err != nil {
			return nil, err
		}
		link, err := h.service.GetUserWorkout(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return respond.OK(link), nil
	})
}

// HandleCreateUserWorkout godoc
// @Summary Link a user to a workout
// @Tags userworkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param link body CreateUserWorkoutRequest true "New link"
// @Success 201 {object} respond.CreatedResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing required fields"
// @Router /userworkouts [post]
func (h *UserWorkoutHandlers) HandleCreateUserWorkout() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		var req CreateUserWorkoutRequest
		if err := respond.Decode(r, &req); err != nil {
			return nil, err
		}
		id, err := h.service.CreateUserWorkout(r.Context(), req)
		if err != nil {
			return nil, err
		}
		return respond.Created("UserWorkout created successfully", id), nil
	})
}

// HandleDeleteUserWorkout godoc
// @Summary Delete a user-workout link
// @Tags userworkouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "UserWorkout ID"
// @Success 200 {object} respond.MessageResponse
// @Failure 404 {object} apperror.ErrorResponse "UserWorkout not found"
// @Router /userworkouts/{id} [delete]
func (h *UserWorkoutHandlers) HandleDeleteUserWorkout() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "UserWorkout")
		if err != nil {
			return nil, err
		}
		if err := h.service.DeleteUserWorkout(r.Context(), id); err != nil {
			return nil, err
		}
		return respond.Message(http.StatusOK, "UserWorkout deleted successfully"), nil
	})
}
