package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// GatewayErrorMessage describes payment gateway failures with no better message.
	GatewayErrorMessage = "unknown error initiating payment"
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Validation marks missing or invalid caller input. Recoverable: the
// caller corrects and resubmits.
func Validation(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NotFound marks a record that does not exist for the calling owner.
func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// Gateway marks a payment gateway failure, surfaced to the shopper with a
// retry path and never silently swallowed.
func Gateway(err error, message string) *AppError {
	if message == "" {
		message = GatewayErrorMessage
	}
	return &AppError{Err: err, Status: http.StatusBadGateway, Message: message}
}

// Configuration marks a state that the guaranteed-initialization rules
// make unreachable. Hitting one is a programming defect.
func Configuration(message string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message}
}

// Persistence wraps a storage failure. The caller's in-memory state must
// be preserved so no edits are lost.
func Persistence(err error) *AppError {
	return &AppError{Err: err, Status: http.StatusInternalServerError, Message: SystemErrorMessage}
}

// Conflict marks an operation rejected by the current state, e.g. a second
// submit while a gateway call is outstanding.
func Conflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// StatusOf extracts the HTTP status from an error chain, defaulting to 500.
func StatusOf(err error) int {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the safe user-facing message from an error chain.
func MessageOf(err error) string {
	var app *AppError
	if errors.As(err, &app) {
		return app.Message
	}
	return SystemErrorMessage
}
