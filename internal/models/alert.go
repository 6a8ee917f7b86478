package models

import "github.com/shopspring/decimal"

// SupplierRef identifies the recommended replenishment supplier on an alert.
type SupplierRef struct {
	SupplierID   int64  `json:"supplier_id"`
	Name         string `json:"name"`
	LeadTimeDays int    `json:"lead_time_days"`
	Preferred    bool   `json:"preferred"`
}

// LowStockAlert is one (product, warehouse) pair whose on-hand quantity is
// strictly below its resolved threshold. DaysUntilStockout is nil when the
// product has no recent sales velocity and will never run out at the
// current rate; RecommendedSupplier is nil when no supplier mapping exists.
type LowStockAlert struct {
	ProductID           int64            `json:"product_id"`
	ProductName         string           `json:"product_name"`
	SKU                 string           `json:"sku"`
	WarehouseID         int64            `json:"warehouse_id"`
	WarehouseName       string           `json:"warehouse_name"`
	CurrentStock        decimal.Decimal  `json:"current_stock"`
	Threshold           int              `json:"threshold"`
	AvgDailySales       decimal.Decimal  `json:"avg_daily_sales"`
	DaysUntilStockout   *decimal.Decimal `json:"days_until_stockout"`
	RecommendedSupplier *SupplierRef     `json:"recommended_supplier"`
}

// AlertList is the ordered result of a low-stock evaluation.
type AlertList struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
