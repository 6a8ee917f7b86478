package handlers

import (
	"net/http"
	"strconv"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// WarehouseHandlers handles HTTP requests for warehouses
type WarehouseHandlers struct {
	warehouseService services.WarehouseService
}

func NewWarehouseHandlers(warehouseService services.WarehouseService) *WarehouseHandlers {
	return &WarehouseHandlers{warehouseService: warehouseService}
}

// GetWarehouse handles GET /api/warehouses/:id
func (h *WarehouseHandlers) GetWarehouse(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"id": "must be an integer"},
		})
	}

	warehouse, err := h.warehouseService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, warehouse)
}

// ListCompanyWarehouses handles GET /api/companies/:company_id/warehouses
func (h *WarehouseHandlers) ListCompanyWarehouses(c echo.Context) error {
	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"company_id": "must be an integer"},
		})
	}

	warehouses, err := h.warehouseService.ListByCompany(c.Request().Context(), companyID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"warehouses": warehouses,
		"count":      len(warehouses),
	})
}
