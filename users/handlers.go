package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/fitfusion-go/respond"
)

// UserHandlers provides HTTP handlers for user management.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// RegisterRoutes mounts the user routes. Authentication is applied by the
// caller.
func (h *UserHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/", h.HandleListUsers())
	router.Get("/{id}", h.HandleGetUser())
	router.Put("/{id}", h.HandleUpdateUser())
	router.Delete("/{id}", h.HandleDeleteUser())
}

// HandleListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /users [get]
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		users, err := h.service.ListUsers(r.Context())
		if err != nil {
			return nil, err
		}
		return respond.OK(users), nil
	})
}

// HandleGetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandlers) HandleGetUser() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "User")
		if err != nil {
			return nil, err
		}
		user, err := h.service.GetUser(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return respond.OK(user), nil
	})
}

// HandleUpdateUser godoc
// @Summary Update a user
// @Description Updates only the supplied fields. A new password is hashed before storage.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} respond.MessageResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid fields"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Router /users/{id} [put]
func (h *UserHandlers) HandleUpdateUser() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "User")
		if err != nil {
			return nil, err
		}
		var req UpdateUserRequest
		if err := respond.Decode(r, &req); err != nil {
			return nil, err
		}
		if err := h.service.UpdateUser(r.Context(), id, req); err != nil {
			return nil, err
		}
		return respond.Message(http.StatusOK, "User updated successfully"), nil
	})
}

// HandleDeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} respond.MessageResponse
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandlers) HandleDeleteUser() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		id, err := respond.IDParam(r, "User")
		if err != nil {
			return nil, err
		}
		if err := h.service.DeleteUser(r.Context(), id); err != nil {
			return nil, err
		}
		return respond.Message(http.StatusOK, "User deleted successfully"), nil
	})
}
