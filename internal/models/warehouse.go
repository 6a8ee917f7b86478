package models

import "time"

type Warehouse struct {
	ID        int64     `json:"id" db:"id"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	Name      string    `json:"name" db:"name"`
	Location  *string   `json:"location" db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
