package common

import (
	"errors"
	"net/http"

	"stockflow/internal/repositories"
	"stockflow/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// RespondError translates service-layer errors into the wire error shapes:
// field-level validation maps under "errors", conflict and not-found as a
// single "error" code, everything else as a 500.
func RespondError(c echo.Context, err error) error {
	if verrs, ok := services.AsValidationErrors(err); ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": verrs,
		})
	}
	if errors.Is(err, repositories.ErrDuplicateSKU) {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "sku_already_exists",
		})
	}
	if errors.Is(err, services.ErrWarehouseNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "warehouse_not_found",
		})
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "not_found",
		})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "internal_error",
	})
}

// BadRequest is the shape for malformed request bodies that never reach
// field-level validation.
func BadRequest(c echo.Context, reason string) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"errors": map[string]string{"body": reason},
	})
}
