package repositories

import (
	"context"

	"stockflow/internal/models"
)

type InventoryTxnRepository interface {
	Record(ctx context.Context, txn *models.InventoryTransaction) error
}

type inventoryTxnRepo struct {
	db DB
}

func NewInventoryTxnRepository(db DB) InventoryTxnRepository {
	return &inventoryTxnRepo{db: db}
}

func (r *inventoryTxnRepo) Record(ctx context.Context, txn *models.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (product_id, warehouse_id, qty_delta, reason, ref_type, ref_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, txn.ProductID, txn.WarehouseID, txn.QtyDelta, txn.Reason, txn.RefType, txn.RefID)
	return err
}
