package repositories

import (
	"context"

	"stockflow/internal/models"
)

type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Warehouse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Warehouse, error)
}

type warehouseRepo struct {
	db DB
}

func NewWarehouseRepository(db DB) WarehouseRepository {
	return &warehouseRepo{db: db}
}

func (r *warehouseRepo) GetByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	query := `
		SELECT id, company_id, name, location, created_at
		FROM warehouses
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&warehouse.ID, &warehouse.CompanyID, &warehouse.Name, &warehouse.Location, &warehouse.CreatedAt)
	if err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (r *warehouseRepo) ListByCompany(ctx context.Context, companyID int64) ([]*models.Warehouse, error) {
	query := `
		SELECT id, company_id, name, location, created_at
		FROM warehouses
		WHERE company_id = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse := &models.Warehouse{}
		if err := rows.Scan(&warehouse.ID, &warehouse.CompanyID, &warehouse.Name, &warehouse.Location, &warehouse.CreatedAt); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, rows.Err()
}
