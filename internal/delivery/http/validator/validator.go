// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the Echo request validator.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validation tags.
// Handlers turn the returned error into a BadRequest response.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
