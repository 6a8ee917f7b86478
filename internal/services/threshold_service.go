package services

import (
	"context"
	"errors"

	"stockflow/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// ThresholdResolver computes the effective low-stock threshold for a
// (company, product, warehouse) triple.
//
// Precedence, highest first:
//  1. per-warehouse override in product_thresholds
//  2. company-wide override (warehouse_id IS NULL)
//  3. the product type's default_low_stock_threshold
//
// A product with no overrides and no type resolves to 0. Absence at every
// tier is a valid path to 0, never an error.
type ThresholdResolver interface {
	Resolve(ctx context.Context, companyID, productID, warehouseID int64) (int, error)
}

type thresholdResolver struct {
	thresholdRepo   repositories.ThresholdRepository
	productRepo     repositories.ProductRepository
	productTypeRepo repositories.ProductTypeRepository
}

func NewThresholdResolver(thresholdRepo repositories.ThresholdRepository, productRepo repositories.ProductRepository, productTypeRepo repositories.ProductTypeRepository) ThresholdResolver {
	return &thresholdResolver{
		thresholdRepo:   thresholdRepo,
		productRepo:     productRepo,
		productTypeRepo: productTypeRepo,
	}
}

func (s *thresholdResolver) Resolve(ctx context.Context, companyID, productID, warehouseID int64) (int, error) {
	if t, err := s.thresholdRepo.GetForWarehouse(ctx, companyID, productID, warehouseID); err == nil {
		return t.Threshold, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	if t, err := s.thresholdRepo.GetCompanyWide(ctx, companyID, productID); err == nil {
		return t.Threshold, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	if product.ProductTypeID == nil {
		return 0, nil
	}

	pt, err := s.productTypeRepo.GetByID(ctx, *product.ProductTypeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return pt.DefaultLowStockThreshold, nil
}
