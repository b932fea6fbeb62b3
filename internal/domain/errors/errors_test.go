package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapMessage_PreservesIdentity(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("login failed")

	assert.ErrorIs(t, err, ErrInvalidCredentials)

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode())
	assert.Equal(t, "Unauthorized", appErr.Label())
	assert.Equal(t, "Invalid email or password", appErr.Message())
}

func TestWrapMessage_InternalContextStaysOutOfClientMessage(t *testing.T) {
	err := ErrNotFound.WrapMessage("user 42 missing from table users")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Resource not found", appErr.Message())
	assert.NotContains(t, appErr.Message(), "table")
}

func TestConflictError_NamesFields(t *testing.T) {
	err := NewConflictError("email")

	assert.Equal(t, http.StatusConflict, err.StatusCode())
	assert.Equal(t, "Conflict", err.Label())
	assert.Equal(t, "Unique constraint violation on field: email", err.Message())

	multi := NewConflictError("email", "name")
	assert.Equal(t, "Unique constraint violation on field: email, name", multi.Message())
}

func TestValidationError_CollectsAllIssues(t *testing.T) {
	err := NewValidationError(
		Issue{Field: "email", Message: "Required"},
		Issue{Field: "password", Message: "Required"},
	)

	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
	assert.Equal(t, "Bad Request", err.Label())
	assert.Equal(t, "Request validation failed", err.Message())
	require.Len(t, err.Issues(), 2)
	assert.Equal(t, "email", err.Issues()[0].Field)
}
