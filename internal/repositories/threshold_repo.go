package repositories

import (
	"context"

	"stockflow/internal/models"
)

type ThresholdRepository interface {
	// GetForWarehouse looks up the per-warehouse override. Returns
	// pgx.ErrNoRows when absent.
	GetForWarehouse(ctx context.Context, companyID, productID, warehouseID int64) (*models.ProductThreshold, error)
	// GetCompanyWide looks up the warehouse-agnostic override
	// (warehouse_id IS NULL). Returns pgx.ErrNoRows when absent.
	GetCompanyWide(ctx context.Context, companyID, productID int64) (*models.ProductThreshold, error)
}

type thresholdRepo struct {
	db DB
}

func NewThresholdRepository(db DB) ThresholdRepository {
	return &thresholdRepo{db: db}
}

func (r *thresholdRepo) GetForWarehouse(ctx context.Context, companyID, productID, warehouseID int64) (*models.ProductThreshold, error) {
	t := &models.ProductThreshold{}
	query := `
		SELECT company_id, product_id, warehouse_id, threshold
		FROM product_thresholds
		WHERE company_id = $1 AND product_id = $2 AND warehouse_id = $3
	`
	err := r.db.QueryRow(ctx, query, companyID, productID, warehouseID).Scan(&t.CompanyID, &t.ProductID, &t.WarehouseID, &t.Threshold)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *thresholdRepo) GetCompanyWide(ctx context.Context, companyID, productID int64) (*models.ProductThreshold, error) {
	t := &models.ProductThreshold{}
	query := `
		SELECT company_id, product_id, warehouse_id, threshold
		FROM product_thresholds
		WHERE company_id = $1 AND product_id = $2 AND warehouse_id IS NULL
	`
	err := r.db.QueryRow(ctx, query, companyID, productID).Scan(&t.CompanyID, &t.ProductID, &t.WarehouseID, &t.Threshold)
	if err != nil {
		return nil, err
	}
	return t, nil
}
