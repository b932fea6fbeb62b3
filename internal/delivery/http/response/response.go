// Package response defines the uniform error envelope returned to clients.
package response

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

// Envelope is the wire shape every failed request terminates in:
//
//	{"statusCode":400,"error":"Bad Request","message":"...","issues":[...]}
//
// Success responses are plain typed DTOs and never use this wrapper.
type Envelope struct {
	StatusCode int                  `json:"statusCode"`
	Error      string               `json:"error"`
	Message    string               `json:"message"`
	Issues     []domainerrors.Issue `json:"issues,omitempty"`
}

// FromAppError builds the envelope for a classified application failure.
func FromAppError(appErr domainerrors.AppError) Envelope {
	env := Envelope{
		StatusCode: appErr.StatusCode(),
		Error:      appErr.Label(),
		Message:    appErr.Message(),
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(appErr, &validationErr) {
		env.Issues = validationErr.Issues()
	}

	return env
}
