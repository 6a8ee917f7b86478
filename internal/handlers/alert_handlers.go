package handlers

import (
	"net/http"
	"strconv"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// AlertHandlers handles low-stock alert requests
type AlertHandlers struct {
	alertService    services.AlertService
	defaultLookback int
}

func NewAlertHandlers(alertService services.AlertService, defaultLookback int) *AlertHandlers {
	return &AlertHandlers{
		alertService:    alertService,
		defaultLookback: defaultLookback,
	}
}

// ListLowStockAlerts handles GET /api/companies/:company_id/alerts/low-stock
func (h *AlertHandlers) ListLowStockAlerts(c echo.Context) error {
	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"company_id": "must be an integer"},
		})
	}

	lookbackDays := h.defaultLookback
	if raw := c.QueryParam("lookback_days"); raw != "" {
		lookbackDays, err = strconv.Atoi(raw)
		if err != nil || lookbackDays < 1 {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"errors": map[string]string{"lookback_days": "must be a positive integer"},
			})
		}
	}

	var warehouseID *int64
	if raw := c.QueryParam("warehouse_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"errors": map[string]string{"warehouse_id": "must be an integer"},
			})
		}
		warehouseID = &id
	}

	alerts, err := h.alertService.ListLowStock(c.Request().Context(), companyID, warehouseID, lookbackDays)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, alerts)
}
