package repositories

import (
	"context"

	"stockflow/internal/models"

	"github.com/shopspring/decimal"
)

type InventoryRepository interface {
	GetByProductAndWarehouse(ctx context.Context, productID, warehouseID int64) (*models.Inventory, error)
	// ListByCompany enumerates inventory rows for a company joined with
	// product and warehouse identity, optionally restricted to one
	// warehouse. Rows come back ordered by SKU then warehouse name.
	ListByCompany(ctx context.Context, companyID int64, warehouseID *int64) ([]*models.InventoryRow, error)
	UpdateQuantity(ctx context.Context, productID, warehouseID int64, quantity decimal.Decimal) error
}

type inventoryRepo struct {
	db DB
}

func NewInventoryRepository(db DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) GetByProductAndWarehouse(ctx context.Context, productID, warehouseID int64) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	query := `
		SELECT product_id, warehouse_id, quantity
		FROM inventory
		WHERE product_id = $1 AND warehouse_id = $2
	`
	err := r.db.QueryRow(ctx, query, productID, warehouseID).Scan(&inventory.ProductID, &inventory.WarehouseID, &inventory.Quantity)
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

func (r *inventoryRepo) ListByCompany(ctx context.Context, companyID int64, warehouseID *int64) ([]*models.InventoryRow, error) {
	query := `
		SELECT i.product_id, p.sku, p.name AS product_name, i.warehouse_id, w.name AS warehouse_name, i.quantity
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		JOIN products p ON p.id = i.product_id
		WHERE w.company_id = $1
	`
	args := []any{companyID}
	if warehouseID != nil {
		query += ` AND i.warehouse_id = $2`
		args = append(args, *warehouseID)
	}
	query += ` ORDER BY p.sku, w.name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.InventoryRow
	for rows.Next() {
		row := &models.InventoryRow{}
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.WarehouseID, &row.WarehouseName, &row.Quantity); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *inventoryRepo) UpdateQuantity(ctx context.Context, productID, warehouseID int64, quantity decimal.Decimal) error {
	query := `
		UPDATE inventory
		SET quantity = $3
		WHERE product_id = $1 AND warehouse_id = $2
	`
	_, err := r.db.Exec(ctx, query, productID, warehouseID, quantity)
	return err
}
