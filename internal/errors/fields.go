package errors

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected form field.
type FieldError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", fe.Field, fe.Message)
}

// FieldErrors collects field errors for a single form submission.
type FieldErrors struct {
	Errors []*FieldError
}

// Error implements the error interface.
func (fe *FieldErrors) Error() string {
	if len(fe.Errors) == 0 {
		return "no validation errors"
	}
	if len(fe.Errors) == 1 {
		return fe.Errors[0].Error()
	}

	return fmt.Sprintf("validation failed with %d errors", len(fe.Errors))
}

// Add records a field error.
func (fe *FieldErrors) Add(field string, value interface{}, message string) {
	fe.Errors = append(fe.Errors, &FieldError{Field: field, Value: value, Message: message})
}

// HasErrors returns true if there are any field errors.
func (fe *FieldErrors) HasErrors() bool {
	return len(fe.Errors) > 0
}

// ToDiaryError converts the collection to a validation DiaryError, or nil when empty.
func (fe *FieldErrors) ToDiaryError(message string) *DiaryError {
	if !fe.HasErrors() {
		return nil
	}

	fields := make([]string, 0, len(fe.Errors))
	context := make(map[string]interface{}, len(fe.Errors))
	for _, e := range fe.Errors {
		fields = append(fields, e.Field)
		context[e.Field] = e.Message
	}

	return &DiaryError{
		Type:        ErrorTypeValidation,
		Code:        ErrCodeValidationFailed,
		Message:     message,
		Cause:       fe,
		Context:     context,
		Field:       strings.Join(fields, ","),
		Recoverable: true,
	}
}
