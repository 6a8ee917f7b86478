package handlers

import (
	"net/http"
	"strconv"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// InventoryHandlers handles HTTP requests for inventory
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

type adjustStockRequest struct {
	ProductID   int64            `json:"product_id"`
	WarehouseID int64            `json:"warehouse_id"`
	QtyDelta    *decimal.Decimal `json:"qty_delta"`
	Reason      string           `json:"reason"`
	RefType     *string          `json:"ref_type"`
	RefID       *string          `json:"ref_id"`
}

// AdjustStock handles POST /api/inventory/adjust
func (h *InventoryHandlers) AdjustStock(c echo.Context) error {
	req := new(adjustStockRequest)
	if err := c.Bind(req); err != nil {
		return common.BadRequest(c, "malformed request body")
	}
	if req.QtyDelta == nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"qty_delta": "must be a decimal"},
		})
	}

	inventory, err := h.inventoryService.AdjustStock(c.Request().Context(), req.ProductID, req.WarehouseID, *req.QtyDelta, req.Reason, req.RefType, req.RefID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, inventory)
}

// GetInventory handles GET /api/inventory?product_id=&warehouse_id=
func (h *InventoryHandlers) GetInventory(c echo.Context) error {
	productID, err := strconv.ParseInt(c.QueryParam("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"product_id": "must be an integer"},
		})
	}
	warehouseID, err := strconv.ParseInt(c.QueryParam("warehouse_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"warehouse_id": "must be an integer"},
		})
	}

	inventory, err := h.inventoryService.GetByProductAndWarehouse(c.Request().Context(), productID, warehouseID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, inventory)
}

// ListCompanyInventory handles GET /api/companies/:company_id/inventory
func (h *InventoryHandlers) ListCompanyInventory(c echo.Context) error {
	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"company_id": "must be an integer"},
		})
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

	rows, err := h.inventoryService.ListByCompany(c.Request().Context(), companyID, warehouseID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"inventory": rows,
		"count":     len(rows),
	})
}
