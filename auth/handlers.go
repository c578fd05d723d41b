package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/fitfusion-go/respond"
)

// Handlers exposes AuthService over HTTP.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the public auth endpoints on router.
func (h *Handlers) RegisterRoutes(router chi.Router) {
	router.Post("/register", h.HandleRegister())
	router.Post("/login", h.HandleLogin())
}

// HandleRegister godoc
// @Summary Register a user
// @Description Creates a user with a bcrypt-hashed password. Usernames are not checked for uniqueness.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} respond.MessageResponse "User registered successfully"
// @Failure 400 {object} apperror.ErrorResponse "Missing or invalid fields"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		var req RegisterRequest
		if err := respond.Decode(r, &req); err != nil {
			return nil, err
		}
		if _, err := h.service.Register(r.Context(), req); err != nil {
			return nil, err
		}
		return respond.Message(http.StatusCreated, "User registered successfully"), nil
	})
}

// HandleLogin godoc
// @Summary Log in
// @Description Exchanges a username and password for a 30-day access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.TokenResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Malformed request body"
// @Failure 401 {object} apperror.ErrorResponse "Invalid username or password"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return respond.Handle(func(r *http.Request) (*respond.Result, error) {
		var req LoginRequest
		if err := respond.Decode(r, &req); err != nil {
			return nil, err
		}
		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			return nil, err
		}
		return respond.OK(resp), nil
	})
}
