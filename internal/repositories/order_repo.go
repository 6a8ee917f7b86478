package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	// TotalSold sums order-line quantities for a (product, warehouse) pair
	// across shipped and completed orders created at or after since.
	// Placed orders never count. Zero matching lines yields zero, not an
	// error.
	TotalSold(ctx context.Context, productID, warehouseID int64, since time.Time) (decimal.Decimal, error)
}

type orderRepo struct {
	db DB
}

func NewOrderRepository(db DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) TotalSold(ctx context.Context, productID, warehouseID int64, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(ol.qty), 0)
		FROM order_lines ol
		JOIN orders o ON o.id = ol.order_id
		WHERE ol.product_id = $1
		  AND ol.warehouse_id = $2
		  AND o.status IN ('shipped', 'completed')
		  AND o.created_at >= $3
	`
	err := r.db.QueryRow(ctx, query, productID, warehouseID, since).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
