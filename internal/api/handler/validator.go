package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to Echo's Validator interface
// so handlers can call c.Validate on bound request structs.
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate runs struct validation and flattens the failures into one
// client-facing message.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var fails validator.ValidationErrors
	if !errors.As(err, &fails) {
		return err
	}

	msgs := make([]string, 0, len(fails))
	for _, f := range fails {
		msgs = append(msgs, describe(f))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// describe renders one validation failure without echoing the submitted
// value back, which keeps credentials out of error responses.
func describe(f validator.FieldError) string {
	field := strings.ToLower(f.Field())
	switch f.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, f.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, f.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, f.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, f.Tag())
	}
}
