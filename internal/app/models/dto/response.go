package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MessageResponse is the success envelope for operations with no payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewMessageResponse creates a success envelope with a message.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// NewErrorResponse creates an error envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// FormatBindingError turns a request binding failure into a readable message.
func FormatBindingError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		parts := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			parts = append(parts, formatFieldError(fe))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "datetime":
		return e.Field() + " must be a date in " + e.Param() + " format"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
