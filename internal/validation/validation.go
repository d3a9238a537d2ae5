// Package validation wires go-playground/validator into Echo so
// request DTOs are checked structurally (shape, formats, enum
// membership) before any handler logic runs.  Business-rule checks
// stay in the service layer; this layer only rejects malformed input.
package validation

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts validator.Validate to Echo's Validator interface.
type Validator struct {
	v *validator.Validate
}

// New constructs the shared validator instance.
func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags and translates a violation into a 400
// response.  Handlers call this via echo.Context.Validate.
func (val *Validator) Validate(i interface{}) error {
	if err := val.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
