package models

import "time"

type Supplier struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	ContactEmail *string   `json:"contact_email" db:"contact_email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ProductSupplier links a supplier to a (company, product) pair with the
// replenishment terms used by the recommender.
type ProductSupplier struct {
	SupplierID   int64   `json:"supplier_id" db:"supplier_id"`
	CompanyID    int64   `json:"company_id" db:"company_id"`
	ProductID    int64   `json:"product_id" db:"product_id"`
	SupplierSKU  *string `json:"supplier_sku" db:"supplier_sku"`
	LeadTimeDays int     `json:"lead_time_days" db:"lead_time_days"`
	Preferred    bool    `json:"preferred" db:"preferred"`
}

// SupplierOption is a product_suppliers row joined with the supplier name,
// as considered by the recommender.
type SupplierOption struct {
	SupplierID   int64  `json:"supplier_id" db:"supplier_id"`
	Name         string `json:"name" db:"name"`
	LeadTimeDays int    `json:"lead_time_days" db:"lead_time_days"`
	Preferred    bool   `json:"preferred" db:"preferred"`
}
