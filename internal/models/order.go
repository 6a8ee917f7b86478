package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Only shipped and completed orders count toward sales
// velocity.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
)

// Order is immutable sales history; the alert engine only reads it.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type OrderLine struct {
	ID          int64           `json:"id" db:"id"`
	OrderID     int64           `json:"order_id" db:"order_id"`
	ProductID   int64           `json:"product_id" db:"product_id"`
	WarehouseID int64           `json:"warehouse_id" db:"warehouse_id"`
	Qty         decimal.Decimal `json:"qty" db:"qty"`
}
