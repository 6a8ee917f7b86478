package handlers

import (
	"context"

	"stockflow/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) ListLowStock(ctx context.Context, companyID int64, warehouseID *int64, lookbackDays int) (*models.AlertList, error) {
	args := m.Called(ctx, companyID, warehouseID, lookbackDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AlertList), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, in *models.ProductCreate) (*models.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductService) Components(ctx context.Context, bundleProductID int64) ([]*models.ProductBundle, error) {
	args := m.Called(ctx, bundleProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProductBundle), args.Error(1)
}

type MockSupplierService struct {
	mock.Mock
}

func (m *MockSupplierService) ListByCompany(ctx context.Context, companyID int64) ([]*models.Supplier, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Supplier), args.Error(1)
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

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyService) List(ctx context.Context) ([]*models.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}
