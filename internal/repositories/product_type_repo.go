package repositories

import (
	"context"

	"stockflow/internal/models"
)

type ProductTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*models.ProductType, error)
}

type productTypeRepo struct {
	db DB
}

func NewProductTypeRepository(db DB) ProductTypeRepository {
	return &productTypeRepo{db: db}
}

func (r *productTypeRepo) GetByID(ctx context.Context, id int64) (*models.ProductType, error) {
	pt := &models.ProductType{}
	query := `
		SELECT id, name, default_low_stock_threshold
		FROM product_types
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&pt.ID, &pt.Name, &pt.DefaultLowStockThreshold)
	if err != nil {
		return nil, err
	}
	return pt, nil
}
