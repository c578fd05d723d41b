// Package validation checks request DTOs with go-playground/validator and
// reports failures as apperror ValidationErrors named after the JSON fields.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/user/fitfusion-go/apperror"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON name so messages match the request body.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct validates s. Missing required fields are listed together, in
// declaration order, ahead of any other rule failures:
//
//	missing required fields: name, date
//	invalid fields: email
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("failed to validate request", err)
	}

	var missing, invalid []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	if len(missing) > 0 {
		return apperror.NewValidationError("missing required fields: "+strings.Join(missing, ", "), err)
	}
	return apperror.NewValidationError("invalid fields: "+strings.Join(invalid, ", "), err)
}
