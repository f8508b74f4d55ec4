package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a DiaryError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *DiaryError {
	if err == nil {
		return nil
	}

	// If it's already a DiaryError, preserve its properties but update the message
	var de *DiaryError
	if errors.As(err, &de) {
		return &DiaryError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       de,
			Context:     de.Context,
			Component:   de.Component,
			Field:       de.Field,
			Recoverable: de.Recoverable,
		}
	}

	return &DiaryError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation || errType == ErrorTypeNotFound,
	}
}

// WrapValidation wraps an error as a validation error
func WrapValidation(err error, code, message string) *DiaryError {
	return Wrap(err, ErrorTypeValidation, code, message)
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *DiaryError {
	de := Wrap(err, ErrorTypeIO, code, message)
	if de != nil {
		de.Recoverable = false
	}
	return de
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *DiaryError {
	de := Wrap(err, ErrorTypeConfig, code, message)
	if de != nil {
		de.Recoverable = false
	}
	return de
}

// WrapInternal wraps an error as an internal error
func WrapInternal(err error, code, message string) *DiaryError {
	de := Wrap(err, ErrorTypeInternal, code, message)
	if de != nil {
		de.Recoverable = false
	}
	return de
}

// FormatError formats an error for user display
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var de *DiaryError
	if errors.As(err, &de) {
		return de.Error()
	}

	return err.Error()
}

// GetErrorContext extracts context information from a DiaryError
func GetErrorContext(err error) map[string]interface{} {
	var de *DiaryError
	if errors.As(err, &de) {
		context := make(map[string]interface{})
		for k, v := range de.Context {
			context[k] = v
		}
		if de.Component != "" {
			context["component"] = de.Component
		}
		if de.Field != "" {
			context["field"] = de.Field
		}
		context["type"] = string(de.Type)
		context["code"] = de.Code
		context["recoverable"] = de.Recoverable
		return context
	}

	return map[string]interface{}{
		"message": err.Error(),
		"type":    "unknown",
	}
}
