package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// DiaryError is a structured error type with context.
type DiaryError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Component   string
	Field       string
	Recoverable bool
}

// Error implements the error interface.
func (e *DiaryError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Component != "" {
		parts = append(parts, "component:"+e.Component)
	}

	if e.Field != "" {
		parts = append(parts, "field:"+e.Field)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *DiaryError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *DiaryError) Is(target error) bool {
	var t *DiaryError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *DiaryError) WithContext(key string, value interface{}) *DiaryError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithField records the input field that failed.
func (e *DiaryError) WithField(field string) *DiaryError {
	e.Field = field

	return e
}

// WithComponent adds component context.
func (e *DiaryError) WithComponent(component string) *DiaryError {
	e.Component = component

	return e
}

// HTTPStatus maps the error type onto a response status code.
func (e *DiaryError) HTTPStatus() int {
	switch e.Type {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *DiaryError {
	return &DiaryError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(code, message string) *DiaryError {
	return &DiaryError{
		Type:        ErrorTypeNotFound,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *DiaryError {
	return &DiaryError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *DiaryError {
	return &DiaryError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *DiaryError {
	return &DiaryError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var de *DiaryError
	if errors.As(err, &de) {
		return de.Recoverable
	}

	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

func hasType(err error, t ErrorType) bool {
	var de *DiaryError
	if errors.As(err, &de) {
		return de.Type == t
	}

	return false
}

// StatusCode returns the HTTP status for any error, defaulting to 500.
func StatusCode(err error) int {
	var de *DiaryError
	if errors.As(err, &de) {
		return de.HTTPStatus()
	}

	return http.StatusInternalServerError
}

// Message returns the DiaryError message of err, or fallback for other errors.
func Message(err error, fallback string) string {
	var de *DiaryError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}

	return fallback
}

// ErrorHandler provides centralized error handling.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs recoverable errors at warn level and everything else at error.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var de *DiaryError
	if !errors.As(err, &de) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	if IsRecoverable(de) {
		h.logger.Warn(ctx, de, "Request rejected",
			"type", de.Type,
			"code", de.Code,
			"field", de.Field)
		return
	}

	h.logger.Error(ctx, de, "Error occurred",
		"type", de.Type,
		"code", de.Code,
		"component", de.Component)
}

// Common error codes.
const (
	ErrCodeInvalidArgument  = "ERR_INVALID_ARGUMENT"
	ErrCodeDiaryNotFound    = "ERR_DIARY_NOT_FOUND"
	ErrCodeRouteNotFound    = "ERR_ROUTE_NOT_FOUND"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeFixtureInvalid   = "ERR_FIXTURE_INVALID"
	ErrCodeFileNotFound     = "ERR_FILE_NOT_FOUND"
	ErrCodeRenderFailed     = "ERR_RENDER_FAILED"
	ErrCodeInternalError    = "ERR_INTERNAL"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
)

// ErrInvalidArgument creates an invalid-argument validation error for a named input.
func ErrInvalidArgument(field string, value interface{}, message string) *DiaryError {
	return NewValidationError(ErrCodeInvalidArgument, message).
		WithField(field).
		WithContext("value", value)
}

// ErrDiaryNotFound creates a diary not found error.
func ErrDiaryNotFound(id int) *DiaryError {
	return NewNotFoundError(
		ErrCodeDiaryNotFound,
		fmt.Sprintf("diary not found: %d", id),
	).WithContext("id", id)
}
