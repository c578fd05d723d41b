// Package respond adapts FitFusion handlers to net/http. A handler takes the
// request and returns either a Result or an error; Handle writes whichever it
// got, so individual handlers never touch the ResponseWriter.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/apperror"
)

// Result is a successful response: a status code and a JSON body.
type Result struct {
	Status int
	Body   any
}

// HandlerFunc is the shape of every FitFusion endpoint.
type HandlerFunc func(r *http.Request) (*Result, error)

// MessageResponse is the body of update, delete and register responses.
type MessageResponse struct {
	Message string `json:"message" example:"Exercise updated successfully"`
}

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	Message string `json:"message" example:"Workout created successfully"`
	ID      int64  `json:"id" example:"1"`
}

// OK wraps body in a 200 result.
func OK(body any) *Result {
	return &Result{Status: http.StatusOK, Body: body}
}

// Message returns a {"message": msg} result with the given status.
func Message(status int, msg string) *Result {
	return &Result{Status: status, Body: MessageResponse{Message: msg}}
}

// Created returns a 201 result carrying the new row's id.
func Created(msg string, id int64) *Result {
	return &Result{Status: http.StatusCreated, Body: CreatedResponse{Message: msg, ID: id}}
}

// Handle converts fn into an http.HandlerFunc.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := fn(r)
		if err != nil {
			Error(w, r, err)
			return
		}
		if result == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		JSON(w, result.Status, result.Body)
	}
}

// JSON writes data with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("failed to encode response body")
	}
}

// Error writes err as {"error": message}. Server-side failures are logged
// with their cause; the cause itself never reaches the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.FromError(err)
	status := appErr.StatusCode()

	entry := logrus.WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"error_type": appErr.Type.String(),
	})
	if status >= http.StatusInternalServerError {
		entry.WithError(appErr.Err).Error(appErr.Message)
	} else {
		entry.Debug(appErr.Message)
	}

	JSON(w, status, appErr.ToResponse())
}

// Decode reads a JSON request body into dst. An empty or malformed body is a
// BadRequestError; a value of the wrong JSON type names its field.
func Decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.NewBadRequestError("request body is required", err)
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperror.NewValidationError("invalid fields: "+typeErr.Field, err)
		}
		return apperror.NewBadRequestError("invalid request body", err)
	}
	return nil
}

// IDParam reads the {id} URL parameter. An id that is not a positive integer
// cannot name a row, so it is reported as "<entity> not found".
func IDParam(r *http.Request, entity string) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFoundError(entity+" not found", err)
	}
	return id, nil
}
