// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterFieldNames makes validation errors report json and query names instead of Go field names.
func RegisterFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
}

// NewBindingErrorResponse converts a binding error to a 400 body with field level details.
func NewBindingErrorResponse(err error, code string) ErrorResponse {
	response := ErrorResponse{
		Error: "Invalid request body",
		Code:  code,
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return response
	}

	response.Error = "Validation failed"
	response.Details = make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		response.Details = append(response.Details, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return response
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "dive":
		return "contains an invalid item"
	default:
		return "is invalid"
	}
}
