package handler

import (
	"mandoob/internal/delivery/api/response"
	"mandoob/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request into req and runs struct validation.
// On failure it writes the 400 response and returns ok=false.
func bindAndValidate(c echo.Context, req any, invalidInputMsg string) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", invalidInputMsg)
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Request validation failed", validator.FieldErrors(err))
	}

	return true, nil
}
