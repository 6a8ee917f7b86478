package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"stockflow/internal/caching"
	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const productCacheTTL = 15 * time.Minute

type ProductService interface {
	// Create validates the input and inserts the product, plus its
	// initial inventory row when a warehouse is given, atomically.
	// Returns ValidationErrors for bad input, ErrWarehouseNotFound for an
	// unknown warehouse, and repositories.ErrDuplicateSKU for a sku
	// conflict.
	Create(ctx context.Context, in *models.ProductCreate) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	// Components lists the component lines of a bundle product. A
	// non-bundle product yields an empty list.
	Components(ctx context.Context, bundleProductID int64) ([]*models.ProductBundle, error)
}

type productService struct {
	productRepo   repositories.ProductRepository
	warehouseRepo repositories.WarehouseRepository
	cacheService  caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, warehouseRepo repositories.WarehouseRepository, cacheService caching.CacheService) ProductService {
	return &productService{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		cacheService:  cacheService,
	}
}

func (s *productService) Create(ctx context.Context, in *models.ProductCreate) (*models.Product, error) {
	verrs := ValidationErrors{}
	if strings.TrimSpace(in.Name) == "" {
		verrs["name"] = "must not be empty"
	}
	if strings.TrimSpace(in.SKU) == "" {
		verrs["sku"] = "must not be empty"
	}
	if in.Price == nil {
		verrs["price"] = "must be a non-negative decimal"
	} else if in.Price.IsNegative() {
		verrs["price"] = "must not be negative"
	}
	if in.InitialQuantity != nil && *in.InitialQuantity < 0 {
		verrs["initial_quantity"] = "must not be negative"
	}
	if in.InitialQuantity != nil && in.WarehouseID == nil {
		verrs["warehouse_id"] = "required when initial_quantity is provided"
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	// Fast duplicate check before the insert; the unique constraint on
	// products.sku remains the source of truth under races.
	sku := strings.TrimSpace(in.SKU)
	if _, err := s.productRepo.GetBySKU(ctx, sku); err == nil {
		return nil, repositories.ErrDuplicateSKU
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	var companyID *int64
	if in.WarehouseID != nil {
		warehouse, err := s.warehouseRepo.GetByID(ctx, *in.WarehouseID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrWarehouseNotFound
			}
			return nil, err
		}
		companyID = &warehouse.CompanyID
	}

	product := &models.Product{
		SKU:           sku,
		Name:          strings.TrimSpace(in.Name),
		ProductTypeID: in.ProductTypeID,
		Price:         *in.Price,
	}

	initialQty := decimal.Zero
	if in.InitialQuantity != nil {
		initialQty = decimal.NewFromInt(*in.InitialQuantity)
	}

	if _, err := s.productRepo.CreateWithInitialStock(ctx, product, in.WarehouseID, initialQty); err != nil {
		return nil, err
	}

	if s.cacheService != nil && companyID != nil {
		if err := s.cacheService.DeleteAlertList(ctx, *companyID); err != nil {
			log.Printf("alert cache invalidation failed for company %d: %v", *companyID, err)
		}
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if s.cacheService != nil {
		if cached, err := s.cacheService.GetProduct(ctx, id); cached != nil {
			return cached, nil
		} else if err != nil {
			log.Printf("product cache read failed for %d: %v", id, err)
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.SetProduct(ctx, product, productCacheTTL); err != nil {
			log.Printf("product cache write failed for %d: %v", id, err)
		}
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.productRepo.List(ctx, limit, offset)
}

func (s *productService) Components(ctx context.Context, bundleProductID int64) ([]*models.ProductBundle, error) {
	product, err := s.GetByID(ctx, bundleProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsBundle {
		return []*models.ProductBundle{}, nil
	}
	return s.productRepo.Components(ctx, bundleProductID)
}
