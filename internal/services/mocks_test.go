package services

import (
	"context"
	"time"

	"stockflow/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockThresholdRepository struct {
	mock.Mock
}

func (m *MockThresholdRepository) GetForWarehouse(ctx context.Context, companyID, productID, warehouseID int64) (*models.ProductThreshold, error) {
	args := m.Called(ctx, companyID, productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductThreshold), args.Error(1)
}

func (m *MockThresholdRepository) GetCompanyWide(ctx context.Context, companyID, productID int64) (*models.ProductThreshold, error) {
	args := m.Called(ctx, companyID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductThreshold), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) Components(ctx context.Context, bundleProductID int64) ([]*models.ProductBundle, error) {
	args := m.Called(ctx, bundleProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProductBundle), args.Error(1)
}

func (m *MockProductRepository) CreateWithInitialStock(ctx context.Context, product *models.Product, warehouseID *int64, initialQty decimal.Decimal) (int64, error) {
	args := m.Called(ctx, product, warehouseID, initialQty)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductTypeRepository struct {
	mock.Mock
}

func (m *MockProductTypeRepository) GetByID(ctx context.Context, id int64) (*models.ProductType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductType), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) TotalSold(ctx context.Context, productID, warehouseID int64, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, productID, warehouseID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) OptionsForProduct(ctx context.Context, companyID, productID int64) ([]*models.SupplierOption, error) {
	args := m.Called(ctx, companyID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SupplierOption), args.Error(1)
}

func (m *MockSupplierRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.Supplier, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Supplier), args.Error(1)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetByProductAndWarehouse(ctx context.Context, productID, warehouseID int64) (*models.Inventory, error) {
	args := m.Called(ctx, productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) ListByCompany(ctx context.Context, companyID int64, warehouseID *int64) ([]*models.InventoryRow, error) {
	args := m.Called(ctx, companyID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryRow), args.Error(1)
}

func (m *MockInventoryRepository) UpdateQuantity(ctx context.Context, productID, warehouseID int64, quantity decimal.Decimal) error {
	args := m.Called(ctx, productID, warehouseID, quantity)
	return args.Error(0)
}

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) GetByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.Warehouse, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

type MockInventoryTxnRepository struct {
	mock.Mock
}

func (m *MockInventoryTxnRepository) Record(ctx context.Context, txn *models.InventoryTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// Mock services for the aggregator tests

type MockThresholdResolver struct {
	mock.Mock
}

func (m *MockThresholdResolver) Resolve(ctx context.Context, companyID, productID, warehouseID int64) (int, error) {
	args := m.Called(ctx, companyID, productID, warehouseID)
	return args.Int(0), args.Error(1)
}

type MockVelocityService struct {
	mock.Mock
}

func (m *MockVelocityService) AverageDailySales(ctx context.Context, productID, warehouseID int64, lookbackDays int) (decimal.Decimal, error) {
	args := m.Called(ctx, productID, warehouseID, lookbackDays)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockSupplierRecommender struct {
	mock.Mock
}

func (m *MockSupplierRecommender) Recommend(ctx context.Context, companyID, productID int64) (*models.SupplierRef, error) {
	args := m.Called(ctx, companyID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplierRef), args.Error(1)
}
