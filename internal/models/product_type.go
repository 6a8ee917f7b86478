package models

// ProductType carries the lowest-precedence low-stock threshold. A product
// without a type has an effective default threshold of zero.
type ProductType struct {
	ID                       int64  `json:"id" db:"id"`
	Name                     string `json:"name" db:"name"`
	DefaultLowStockThreshold int    `json:"default_low_stock_threshold" db:"default_low_stock_threshold"`
}
