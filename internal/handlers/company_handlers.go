package handlers

import (
	"net/http"
	"strconv"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// CompanyHandlers handles HTTP requests for companies
type CompanyHandlers struct {
	companyService services.CompanyService
}

func NewCompanyHandlers(companyService services.CompanyService) *CompanyHandlers {
	return &CompanyHandlers{companyService: companyService}
}

// ListCompanies handles GET /api/companies
func (h *CompanyHandlers) ListCompanies(c echo.Context) error {
	companies, err := h.companyService.List(c.Request().Context())
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"companies": companies,
		"count":     len(companies),
	})
}

// GetCompany handles GET /api/companies/:company_id
func (h *CompanyHandlers) GetCompany(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"company_id": "must be an integer"},
		})
	}

	company, err := h.companyService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, company)
}
