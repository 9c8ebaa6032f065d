package handler

import (
	"conecta/internal/delivery/api/response"
	"conecta/internal/delivery/api/validator"
	"conecta/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// validationFailed renders request validation problems keyed by JSON field name
func validationFailed(c echo.Context, err error) error {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Los datos enviados no son válidos", validationErr.Fields())
	}

	var fieldErrs entity.FieldErrors
	if errors.As(err, &fieldErrs) {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Los datos enviados no son válidos", map[string]string(fieldErrs))
	}

	return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
}
