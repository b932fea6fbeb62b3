package errors

import (
	"net/http"
	"strconv"
)

// Issue is a single field-level validation failure. Field is the dotted path
// of the offending field as the client sent it.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a rejected payload, in the
// declaration order of the request shape. It is the tagged variant the error
// middleware dispatches on instead of matching message strings.
type ValidationError struct {
	issues []Issue
}

// NewValidationError creates a validation error from the collected issues.
func NewValidationError(issues ...Issue) *ValidationError {
	return &ValidationError{issues: issues}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed with " + strconv.Itoa(len(e.issues)) + " issue(s)"
}

// StatusCode returns the HTTP status code.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// Label returns the envelope error label.
func (e *ValidationError) Label() string {
	return "Bad Request"
}

// Message returns the client-safe error message.
func (e *ValidationError) Message() string {
	return "Request validation failed"
}

// Issues returns the ordered field-level failures.
func (e *ValidationError) Issues() []Issue {
	return e.issues
}
