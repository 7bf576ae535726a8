// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "ngopi/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request DTOs against their struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator installed on the echo server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
