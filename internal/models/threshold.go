package models

// ProductThreshold is a company-defined low-stock override. A nil
// WarehouseID means the override applies to every warehouse of the company;
// a concrete WarehouseID takes precedence over the company-wide row.
type ProductThreshold struct {
	CompanyID   int64  `json:"company_id" db:"company_id"`
	ProductID   int64  `json:"product_id" db:"product_id"`
	WarehouseID *int64 `json:"warehouse_id" db:"warehouse_id"`
	Threshold   int    `json:"threshold" db:"threshold"`
}
