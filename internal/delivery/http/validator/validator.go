// Package validator plugs go-playground/validator into Echo as the request
// schema engine. A rejected payload yields a domain ValidationError carrying
// every violated field, not just the first.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	engine *playground.Validate
}

// New builds the validator. Field names reported in issues are the JSON tag
// names, and the engine walks struct fields in declaration order, so issue
// order matches the declared request shape.
func New() *EchoValidator {
	engine := playground.New(playground.WithRequiredStructEnabled())

	engine.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	return &EchoValidator{engine: engine}
}

// Validate checks i against its declared tags. It has no side effects: a
// valid value passes through untouched, so validating twice yields the same
// accepted value. On failure it returns a ValidationError with one issue per
// violated field.
func (v *EchoValidator) Validate(i any) error {
	err := v.engine.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Not a field-level failure (e.g. a non-struct value); this is a
		// programming error in the handler, surfaced as such.
		return errors.Wrap(err, "request shape is not validatable")
	}

	issues := make([]domainerrors.Issue, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		issues = append(issues, domainerrors.Issue{
			Field:   fieldErr.Field(),
			Message: issueMessage(fieldErr),
		})
	}

	return domainerrors.NewValidationError(issues...)
}

// issueMessage renders a human-readable message per violated constraint.
func issueMessage(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email address"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("String must contain at least %s character(s)", fieldErr.Param())
		}

		return fmt.Sprintf("Must be at least %s", fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("String must contain at most %s character(s)", fieldErr.Param())
		}

		return fmt.Sprintf("Must be at most %s", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fieldErr.Param())
	default:
		return fmt.Sprintf("Failed constraint %q", fieldErr.Tag())
	}
}
