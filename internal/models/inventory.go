package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory is the on-hand quantity of a product in a warehouse. A
// (product, warehouse) pair appears at most once and quantity never goes
// negative.
type Inventory struct {
	ProductID   int64           `json:"product_id" db:"product_id"`
	WarehouseID int64           `json:"warehouse_id" db:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity" db:"quantity"`
}

// InventoryRow is an inventory record joined with product and warehouse
// identity, as enumerated for alert evaluation.
type InventoryRow struct {
	ProductID     int64           `json:"product_id" db:"product_id"`
	SKU           string          `json:"sku" db:"sku"`
	ProductName   string          `json:"product_name" db:"product_name"`
	WarehouseID   int64           `json:"warehouse_id" db:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name" db:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity" db:"quantity"`
}

// Inventory transaction reasons.
const (
	ReasonSale        = "SALE"
	ReasonPurchase    = "PURCHASE"
	ReasonAdjustment  = "ADJUSTMENT"
	ReasonTransferOut = "TRANSFER_OUT"
	ReasonTransferIn  = "TRANSFER_IN"
	ReasonReturn      = "RETURN"
)

// InventoryTransaction is an append-only record of a quantity change.
type InventoryTransaction struct {
	ID          int64           `json:"id" db:"id"`
	ProductID   int64           `json:"product_id" db:"product_id"`
	WarehouseID int64           `json:"warehouse_id" db:"warehouse_id"`
	QtyDelta    decimal.Decimal `json:"qty_delta" db:"qty_delta"`
	Reason      string          `json:"reason" db:"reason"`
	RefType     *string         `json:"ref_type" db:"ref_type"`
	RefID       *string         `json:"ref_id" db:"ref_id"`
	OccurredAt  time.Time       `json:"occurred_at" db:"occurred_at"`
}
