// Package router assembles the FitFusion HTTP API: global middleware, the
// public auth and docs endpoints, and the JWT-protected resource groups.
package router

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/auth"
	"github.com/user/fitfusion-go/config"
	"github.com/user/fitfusion-go/exercises"
	"github.com/user/fitfusion-go/logging"
	"github.com/user/fitfusion-go/respond"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/userworkouts"
	"github.com/user/fitfusion-go/users"
	"github.com/user/fitfusion-go/workouts"
)

const welcomeText = "Hello, FitFusion!"

// resource is a protected route group.
type resource interface {
	RegisterRoutes(chi.Router)
}

// New wires every service to st and returns the complete handler.
func New(cfg *config.AppConfig, st store.Store) http.Handler {
	tokens := auth.NewTokenService(*cfg.Auth)
	authHandlers := auth.NewHandlers(auth.NewAuthService(st, tokens))

	protected := map[string]resource{
		"/users":        users.NewUserHandlers(users.NewUserService(st)),
		"/exercises":    exercises.NewExerciseHandlers(exercises.NewExerciseService(st)),
		"/workouts":     workouts.NewWorkoutHandlers(workouts.NewWorkoutService(st)),
		"/userworkouts": userworkouts.NewUserWorkoutHandlers(userworkouts.NewUserWorkoutService(st)),
	}

	r := chi.NewRouter()

	// chi requires middleware before any route.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logrus.StandardLogger()))
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Subrouters copy these on creation, so they are set before Route.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, req, apperror.NewNotFoundError("resource not found", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respond.JSON(w, http.StatusMethodNotAllowed, apperror.ErrorResponse{Error: "method not allowed"})
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(welcomeText))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	authHandlers.RegisterRoutes(r)

	for prefix, handlers := range protected {
		r.Route(prefix, func(r chi.Router) {
			r.Use(auth.JWTMiddleware(tokens))
			handlers.RegisterRoutes(r)
		})
	}

	return r
}

// recoverer turns a panic into a 500 with the usual JSON error body.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				logrus.WithFields(logrus.Fields{
					"request_id": middleware.GetReqID(r.Context()),
					"panic":      rvr,
					"stack":      string(debug.Stack()),
				}).Error("recovered from panic")
				respond.Error(w, r, apperror.NewInternalError("internal server error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
