// Package apperror defines the error taxonomy shared by every FitFusion layer.
// Services return *AppError values; the HTTP layer turns them into a status
// code and a `{"error": "..."}` body without ever exposing the wrapped cause.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an AppError. The zero value is UnknownError.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// DatabaseError represents a failure reported by the storage engine
	DatabaseError
	// ConfigError represents an error related to application configuration
	ConfigError
	// AuthError covers bad credentials and missing, garbled or expired tokens
	AuthError
	// NotFoundError represents a resource not found error
	NotFoundError
	// ValidationError represents missing or malformed required fields
	ValidationError
	// BadRequestError represents a request body that could not be decoded
	BadRequestError
	// InternalError represents a generic internal server error
	InternalError
	// MigrationError represents an error while applying schema migrations
	MigrationError
)

var typeNames = map[ErrorType]string{
	UnknownError:    "unknown",
	DatabaseError:   "database",
	ConfigError:     "config",
	AuthError:       "auth",
	NotFoundError:   "not_found",
	ValidationError: "validation",
	BadRequestError: "bad_request",
	InternalError:   "internal",
	MigrationError:  "migration",
}

// String returns a short, log-friendly name for the type.
func (t ErrorType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ErrorType(%d)", int(t))
}

// AppError is the application error value. Message is what clients see; Err
// is kept for logs and for errors.Is / errors.As.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error returns the message, followed by the underlying error when present.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
// Anything that is not a client mistake falls back to 500.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError of the given type.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// NewDatabaseError creates a new DatabaseError
func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

// NewConfigError creates a new ConfigError
func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewAuthError creates a new AuthError
func NewAuthError(message string, underlyingError error) *AppError {
	return NewAppError(AuthError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

// NewBadRequestError creates a new BadRequestError
func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

// NewInternalError creates a new InternalError
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// NewMigrationError creates a new MigrationError
func NewMigrationError(message string, underlyingError error) *AppError {
	return NewAppError(MigrationError, message, underlyingError)
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Workout not found"`
}

// ToResponse converts an AppError to its client-facing body.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError finds an *AppError anywhere in err's chain. Errors that are not
// application errors are wrapped as InternalError so callers always get a
// usable value back.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("an unexpected error occurred", err)
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool { return isType(err, NotFoundError) }

// IsAuthError checks if an error is an AuthError
func IsAuthError(err error) bool { return isType(err, AuthError) }

// IsValidationError checks if an error is a Validation error
func IsValidationError(err error) bool { return isType(err, ValidationError) }
