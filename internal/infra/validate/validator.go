// Package validate implements the schema validator on top of
// go-playground/validator. Schemas are declared as struct tags on the input
// DTOs; violations are collected exhaustively and rendered as human-readable
// messages keyed by the JSON field name.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"keygate/internal/domain/service"
	"keygate/internal/errors"
)

// schemaValidator wraps a shared validator instance. The instance caches
// struct metadata and is safe for concurrent use.
type schemaValidator struct {
	validate *validator.Validate
}

// New is the constructor for the schema validator.
func New() service.SchemaValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &schemaValidator{validate: v}
}

// Validate checks the payload against its struct tags and returns every
// violation found, or nil when the payload is valid.
func (sv *schemaValidator) Validate(payload any) []string {
	err := sv.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// Non-struct payloads and other misuse; nothing field-level to report.
		return []string{"invalid payload"}
	}

	violations := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		violations = append(violations, describe(fieldError))
	}

	return violations
}

// describe renders one field error as a caller-facing message.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is a required field"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "datetime":
		return fe.Field() + " must be a valid date in format " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
