// Package apperror defines the error kinds the services return and the
// HTTP layer maps to response statuses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

// AppError carries a caller-safe message alongside the error kind and the
// underlying cause. The cause is for logs only and is never written to the
// HTTP response.
type AppError struct {
	Kind    error  // one of the sentinel kinds above
	Message string // safe to return to the caller
	Cause   error  // upstream error, logged but not leaked
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

func Validation(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: ErrUnauthorized, Message: message}
}

func Internal(message string, cause error) *AppError {
	return &AppError{Kind: ErrInternal, Message: message, Cause: cause}
}

// Status maps an error to the HTTP status code the handler should write.
// Anything that is not one of our kinds is treated as a server fault.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-safe message for an error. Server faults get a
// generic body so upstream error text never reaches the client.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && !errors.Is(err, ErrInternal) {
		return appErr.Message
	}
	return "Internal server error"
}
