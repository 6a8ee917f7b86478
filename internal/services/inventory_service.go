package services

import (
	"context"
	"errors"
	"log"

	"stockflow/internal/caching"
	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type InventoryService interface {
	// AdjustStock applies a signed quantity delta to a (product,
	// warehouse) pair and records an inventory transaction. A delta that
	// would take the quantity negative is rejected with ValidationErrors.
	AdjustStock(ctx context.Context, productID, warehouseID int64, delta decimal.Decimal, reason string, refType, refID *string) (*models.Inventory, error)
	GetByProductAndWarehouse(ctx context.Context, productID, warehouseID int64) (*models.Inventory, error)
	ListByCompany(ctx context.Context, companyID int64, warehouseID *int64) ([]*models.InventoryRow, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	txnRepo       repositories.InventoryTxnRepository
	warehouseRepo repositories.WarehouseRepository
	cacheService  caching.CacheService
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository, txnRepo repositories.InventoryTxnRepository,
	warehouseRepo repositories.WarehouseRepository, cacheService caching.CacheService) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		txnRepo:       txnRepo,
		warehouseRepo: warehouseRepo,
		cacheService:  cacheService,
	}
}

var validReasons = map[string]bool{
	models.ReasonSale:        true,
	models.ReasonPurchase:    true,
	models.ReasonAdjustment:  true,
	models.ReasonTransferOut: true,
	models.ReasonTransferIn:  true,
	models.ReasonReturn:      true,
}

func (s *inventoryService) AdjustStock(ctx context.Context, productID, warehouseID int64, delta decimal.Decimal, reason string, refType, refID *string) (*models.Inventory, error) {
	if !validReasons[reason] {
		return nil, ValidationErrors{"reason": "unknown adjustment reason"}
	}

	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}

	inventory, err := s.inventoryRepo.GetByProductAndWarehouse(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}

	newQty := inventory.Quantity.Add(delta)
	if newQty.IsNegative() {
		return nil, ValidationErrors{"qty_delta": "would make stock negative"}
	}

	if err := s.inventoryRepo.UpdateQuantity(ctx, productID, warehouseID, newQty); err != nil {
		return nil, err
	}

	txn := &models.InventoryTransaction{
		ProductID:   productID,
		WarehouseID: warehouseID,
		QtyDelta:    delta,
		Reason:      reason,
		RefType:     refType,
		RefID:       refID,
	}
	if err := s.txnRepo.Record(ctx, txn); err != nil {
		return nil, err
	}

	inventory.Quantity = newQty
	if s.cacheService != nil {
		if err := s.cacheService.DeleteInventory(ctx, productID, warehouseID); err != nil {
			log.Printf("inventory cache invalidation failed for %d/%d: %v", productID, warehouseID, err)
		}
		if err := s.cacheService.DeleteAlertList(ctx, warehouse.CompanyID); err != nil {
			log.Printf("alert cache invalidation failed for company %d: %v", warehouse.CompanyID, err)
		}
	}
	return inventory, nil
}

func (s *inventoryService) GetByProductAndWarehouse(ctx context.Context, productID, warehouseID int64) (*models.Inventory, error) {
	if s.cacheService != nil {
		if cached, err := s.cacheService.GetInventory(ctx, productID, warehouseID); cached != nil {
			return cached, nil
		} else if err != nil {
			log.Printf("inventory cache read failed for %d/%d: %v", productID, warehouseID, err)
		}
	}

	inventory, err := s.inventoryRepo.GetByProductAndWarehouse(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.SetInventory(ctx, inventory, productCacheTTL); err != nil {
			log.Printf("inventory cache write failed for %d/%d: %v", productID, warehouseID, err)
		}
	}
	return inventory, nil
}

func (s *inventoryService) ListByCompany(ctx context.Context, companyID int64, warehouseID *int64) ([]*models.InventoryRow, error) {
	return s.inventoryRepo.ListByCompany(ctx, companyID, warehouseID)
}
