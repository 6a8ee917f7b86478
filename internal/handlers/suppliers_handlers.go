package handlers

import (
	"net/http"
	"strconv"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// SupplierHandlers handles HTTP requests for suppliers and
// replenishment recommendations
type SupplierHandlers struct {
	supplierService services.SupplierService
	recommender     services.SupplierRecommender
}

func NewSupplierHandlers(supplierService services.SupplierService, recommender services.SupplierRecommender) *SupplierHandlers {
	return &SupplierHandlers{
		supplierService: supplierService,
		recommender:     recommender,
	}
}

// ListCompanySuppliers handles GET /api/companies/:company_id/suppliers
func (h *SupplierHandlers) ListCompanySuppliers(c echo.Context) error {
	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"company_id": "must be an integer"},
		})
	}

	suppliers, err := h.supplierService.ListByCompany(c.Request().Context(), companyID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"suppliers": suppliers,
		"count":     len(suppliers),
	})
}

// RecommendSupplier handles
// GET /api/companies/:company_id/products/:product_id/recommended-supplier
func (h *SupplierHandlers) RecommendSupplier(c echo.Context) error {
	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"company_id": "must be an integer"},
		})
	}
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"product_id": "must be an integer"},
		})
	}

	supplier, err := h.recommender.Recommend(c.Request().Context(), companyID, productID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommended_supplier": supplier,
	})
}
