package handlers

import (
	"net/http"
	"strconv"

	"stockflow/internal/common"
	"stockflow/internal/models"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProductHandlers handles HTTP requests for products
type ProductHandlers struct {
	productService services.ProductService
}

func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

type createProductRequest struct {
	Name            string           `json:"name"`
	SKU             string           `json:"sku"`
	Price           *decimal.Decimal `json:"price"`
	ProductTypeID   *int64           `json:"product_type_id"`
	WarehouseID     *int64           `json:"warehouse_id"`
	InitialQuantity *int64           `json:"initial_quantity"`
}

// CreateProduct handles POST /api/products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	req := new(createProductRequest)
	if err := c.Bind(req); err != nil {
		return common.BadRequest(c, "malformed request body")
	}

	product, err := h.productService.Create(c.Request().Context(), &models.ProductCreate{
		Name:            req.Name,
		SKU:             req.SKU,
		Price:           req.Price,
		ProductTypeID:   req.ProductTypeID,
		WarehouseID:     req.WarehouseID,
		InitialQuantity: req.InitialQuantity,
	})
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"product_id": product.ID,
	})
}

// GetProductByID handles GET /api/products/:id
func (h *ProductHandlers) GetProductByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"id": "must be an integer"},
		})
	}

	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// GetProductComponents handles GET /api/products/:id/components
func (h *ProductHandlers) GetProductComponents(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"id": "must be an integer"},
		})
	}

	components, err := h.productService.Components(c.Request().Context(), id)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"components": components,
		"count":      len(components),
	})
}

// ListProducts handles GET /api/products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	products, err := h.productService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}
