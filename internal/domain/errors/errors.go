// Package errors defines the application failure taxonomy. Every failure that
// can reach the HTTP boundary is one of the types in this package; the error
// middleware dispatches on them structurally and never parses message text.
package errors

import (
	"net/http"
	"strings"

	"storefront/internal/errors"
)

// AppError is the contract between domain failures and the HTTP boundary.
type AppError interface {
	error
	StatusCode() int // HTTP status code
	Label() string   // Envelope "error" field, e.g. "Conflict"
	Message() string // Client-safe message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	statusCode int
	label      string
	message    string
}

// NewBaseError creates a new base error.
func NewBaseError(statusCode int, label, message string) *BaseError {
	return &BaseError{
		statusCode: statusCode,
		label:      label,
		message:    message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// StatusCode returns the HTTP status code.
func (e *BaseError) StatusCode() int {
	return e.statusCode
}

// Label returns the envelope error label.
func (e *BaseError) Label() string {
	return e.label
}

// Message returns the client-safe error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error values. ErrInvalidCredentials is deliberately the same for
// an unknown email and a wrong password; the login flow equalizes the timing
// of the two paths as well.
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"Unauthorized",
		"Invalid email or password",
	)

	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"Unauthorized",
		"Invalid or missing token",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"Not Found",
		"Resource not found",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"Internal Server Error",
		"An unexpected error occurred",
	)
)

// ConflictError reports a unique-constraint violation from the persistence
// layer. It names the offending field(s) so the client can correct the input.
type ConflictError struct {
	Fields []string
}

// NewConflictError creates a conflict error for the given fields.
func NewConflictError(fields ...string) *ConflictError {
	return &ConflictError{Fields: fields}
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return e.Message()
}

// StatusCode returns the HTTP status code.
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Label returns the envelope error label.
func (e *ConflictError) Label() string {
	return "Conflict"
}

// Message names the conflicting field(s).
func (e *ConflictError) Message() string {
	return "Unique constraint violation on field: " + strings.Join(e.Fields, ", ")
}
