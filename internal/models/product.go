package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int64           `json:"id" db:"id"`
	SKU           string          `json:"sku" db:"sku"`
	Name          string          `json:"name" db:"name"`
	ProductTypeID *int64          `json:"product_type_id" db:"product_type_id"`
	Price         decimal.Decimal `json:"price" db:"price"`
	IsBundle      bool            `json:"is_bundle" db:"is_bundle"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// ProductBundle links a bundle product to one of its components.
type ProductBundle struct {
	BundleProductID    int64           `json:"bundle_product_id" db:"bundle_product_id"`
	ComponentProductID int64           `json:"component_product_id" db:"component_product_id"`
	ComponentQty       decimal.Decimal `json:"component_qty" db:"component_qty"`
}

// ProductCreate is the validated input for creating a product, optionally
// with an initial inventory row in one warehouse.
type ProductCreate struct {
	Name            string
	SKU             string
	Price           *decimal.Decimal
	ProductTypeID   *int64
	WarehouseID     *int64
	InitialQuantity *int64
}
