// Package apperror holds the error kind handlers return for expected,
// client-facing failures. Anything that is not an *AppError is treated as an
// internal failure by the error responder.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a failure with a message that is safe to show to clients and
// the HTTP status it maps to.
type AppError struct {
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func New(status int, format string, args ...any) *AppError {
	return &AppError{Message: fmt.Sprintf(format, args...), Status: status}
}

func NotFound(format string, args ...any) *AppError {
	return New(http.StatusNotFound, format, args...)
}

func BadRequest(format string, args ...any) *AppError {
	return New(http.StatusBadRequest, format, args...)
}

func Conflict(format string, args ...any) *AppError {
	return New(http.StatusConflict, format, args...)
}

// Internal wraps cause behind a fixed client message. The cause is kept for
// logging and never rendered.
func Internal(cause error, message string) *AppError {
	return &AppError{Message: message, Status: http.StatusInternalServerError, Err: cause}
}

// As reports whether err is or wraps an *AppError.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	if ae, ok := As(err); ok && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}
