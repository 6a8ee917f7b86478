package services

import (
	"context"
	"testing"

	"stockflow/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	inventoryRepo *MockInventoryRepository
	txnRepo       *MockInventoryTxnRepository
	warehouseRepo *MockWarehouseRepository
	svc           InventoryService
	ctx           context.Context
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.inventoryRepo = new(MockInventoryRepository)
	suite.txnRepo = new(MockInventoryTxnRepository)
	suite.warehouseRepo = new(MockWarehouseRepository)
	suite.svc = NewInventoryService(suite.inventoryRepo, suite.txnRepo, suite.warehouseRepo, nil)
	suite.ctx = context.Background()
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}

func (suite *InventoryServiceTestSuite) TestAdjustStockAppliesDelta() {
	suite.warehouseRepo.On("GetByID", suite.ctx, int64(7)).
		Return(&models.Warehouse{ID: 7, CompanyID: 1, Name: "Main"}, nil)
	suite.inventoryRepo.On("GetByProductAndWarehouse", suite.ctx, int64(10), int64(7)).
		Return(&models.Inventory{ProductID: 10, WarehouseID: 7, Quantity: decimal.NewFromInt(5)}, nil)
	suite.inventoryRepo.On("UpdateQuantity", suite.ctx, int64(10), int64(7), decimal.NewFromInt(8)).
		Return(nil)
	suite.txnRepo.On("Record", suite.ctx, mock.MatchedBy(func(txn *models.InventoryTransaction) bool {
		return txn.ProductID == 10 && txn.WarehouseID == 7 &&
			txn.QtyDelta.Equal(decimal.NewFromInt(3)) && txn.Reason == models.ReasonPurchase
	})).Return(nil)

	inventory, err := suite.svc.AdjustStock(suite.ctx, 10, 7, decimal.NewFromInt(3), models.ReasonPurchase, nil, nil)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), inventory.Quantity.Equal(decimal.NewFromInt(8)))
}

func (suite *InventoryServiceTestSuite) TestAdjustStockRejectsNegativeResult() {
	suite.warehouseRepo.On("GetByID", suite.ctx, int64(7)).
		Return(&models.Warehouse{ID: 7, CompanyID: 1, Name: "Main"}, nil)
	suite.inventoryRepo.On("GetByProductAndWarehouse", suite.ctx, int64(10), int64(7)).
		Return(&models.Inventory{ProductID: 10, WarehouseID: 7, Quantity: decimal.NewFromInt(2)}, nil)

	_, err := suite.svc.AdjustStock(suite.ctx, 10, 7, decimal.NewFromInt(-5), models.ReasonSale, nil, nil)
	verrs, ok := AsValidationErrors(err)
	assert.True(suite.T(), ok)
	assert.Contains(suite.T(), verrs, "qty_delta")
	suite.inventoryRepo.AssertNotCalled(suite.T(), "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.txnRepo.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestAdjustStockToExactlyZero() {
	suite.warehouseRepo.On("GetByID", suite.ctx, int64(7)).
		Return(&models.Warehouse{ID: 7, CompanyID: 1, Name: "Main"}, nil)
	suite.inventoryRepo.On("GetByProductAndWarehouse", suite.ctx, int64(10), int64(7)).
		Return(&models.Inventory{ProductID: 10, WarehouseID: 7, Quantity: decimal.NewFromInt(5)}, nil)
	suite.inventoryRepo.On("UpdateQuantity", suite.ctx, int64(10), int64(7), mock.MatchedBy(func(q decimal.Decimal) bool {
		return q.IsZero()
	})).Return(nil)
	suite.txnRepo.On("Record", suite.ctx, mock.Anything).Return(nil)

	inventory, err := suite.svc.AdjustStock(suite.ctx, 10, 7, decimal.NewFromInt(-5), models.ReasonSale, nil, nil)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), inventory.Quantity.IsZero())
}

func (suite *InventoryServiceTestSuite) TestAdjustStockUnknownReason() {
	_, err := suite.svc.AdjustStock(suite.ctx, 10, 7, decimal.NewFromInt(1), "GIFTED", nil, nil)
	verrs, ok := AsValidationErrors(err)
	assert.True(suite.T(), ok)
	assert.Contains(suite.T(), verrs, "reason")
	suite.warehouseRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestAdjustStockUnknownWarehouse() {
	suite.warehouseRepo.On("GetByID", suite.ctx, int64(404)).Return(nil, pgx.ErrNoRows)

	_, err := suite.svc.AdjustStock(suite.ctx, 10, 404, decimal.NewFromInt(1), models.ReasonPurchase, nil, nil)
	assert.ErrorIs(suite.T(), err, ErrWarehouseNotFound)
}
