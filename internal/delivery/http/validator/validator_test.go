package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Name     string   `json:"name" validate:"required"`
	Password string   `json:"password" validate:"required,min=6"`
	Price    *float64 `json:"price" validate:"required"`
}

func TestValidate_AcceptsValidPayload(t *testing.T) {
	v := New()

	price := 9.99
	req := sampleRequest{
		Email:    "a@b.com",
		Name:     "A",
		Password: "Password123!",
		Price:    &price,
	}

	require.NoError(t, v.Validate(&req))
}

func TestValidate_IsIdempotent(t *testing.T) {
	v := New()

	price := 9.99
	req := sampleRequest{
		Email:    "a@b.com",
		Name:     "A",
		Password: "Password123!",
		Price:    &price,
	}
	before := req

	require.NoError(t, v.Validate(&req))
	require.NoError(t, v.Validate(&req))

	// Validation must not mutate the accepted value.
	assert.Equal(t, before, req)
}

func TestValidate_ReportsEveryViolatedField(t *testing.T) {
	v := New()

	// All four fields violated at once: all four must be reported, in the
	// declaration order of the request shape.
	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	issues := validationErr.Issues()
	require.Len(t, issues, 4)
	assert.Equal(t, "email", issues[0].Field)
	assert.Equal(t, "name", issues[1].Field)
	assert.Equal(t, "password", issues[2].Field)
	assert.Equal(t, "price", issues[3].Field)

	for _, issue := range issues {
		assert.Equal(t, "Required", issue.Message)
	}
}

func TestValidate_ReportsExactlyTheMissingFields(t *testing.T) {
	v := New()

	price := 1.0
	err := v.Validate(&sampleRequest{
		Email: "a@b.com",
		Price: &price,
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	issues := validationErr.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, "name", issues[0].Field)
	assert.Equal(t, "password", issues[1].Field)
}

func TestValidate_RefinementMessages(t *testing.T) {
	v := New()

	price := 1.0
	err := v.Validate(&sampleRequest{
		Email:    "not-an-email",
		Name:     "A",
		Password: "short",
		Price:    &price,
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	issues := validationErr.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, "email", issues[0].Field)
	assert.Equal(t, "Invalid email address", issues[0].Message)
	assert.Equal(t, "password", issues[1].Field)
	assert.Equal(t, "String must contain at least 6 character(s)", issues[1].Message)
}
