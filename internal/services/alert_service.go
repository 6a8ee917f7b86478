package services

import (
	"context"
	"log"
	"sort"
	"time"

	"stockflow/internal/caching"
	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/shopspring/decimal"
)

const alertCacheTTL = 60 * time.Second

// AlertService evaluates low-stock alerts for a company.
type AlertService interface {
	// ListLowStock enumerates the company's inventory, optionally
	// restricted to one warehouse, and returns every (product, warehouse)
	// pair whose quantity is strictly below its resolved threshold.
	// Results are ordered by SKU then warehouse name. An unknown company
	// yields an empty list.
	ListLowStock(ctx context.Context, companyID int64, warehouseID *int64, lookbackDays int) (*models.AlertList, error)
}

type alertService struct {
	inventoryRepo   repositories.InventoryRepository
	thresholds      ThresholdResolver
	velocity        VelocityService
	recommender     SupplierRecommender
	cacheService    caching.CacheService
	defaultLookback int
}

func NewAlertService(inventoryRepo repositories.InventoryRepository, thresholds ThresholdResolver,
	velocity VelocityService, recommender SupplierRecommender, cacheService caching.CacheService,
	defaultLookback int) AlertService {
	return &alertService{
		inventoryRepo:   inventoryRepo,
		thresholds:      thresholds,
		velocity:        velocity,
		recommender:     recommender,
		cacheService:    cacheService,
		defaultLookback: defaultLookback,
	}
}

func (s *alertService) ListLowStock(ctx context.Context, companyID int64, warehouseID *int64, lookbackDays int) (*models.AlertList, error) {
	if lookbackDays < 1 {
		lookbackDays = s.defaultLookback
	}

	// Only the unfiltered default query is cached; filtered or custom
	// lookback queries go straight to the database.
	cacheable := warehouseID == nil && lookbackDays == s.defaultLookback && s.cacheService != nil
	if cacheable {
		if cached, err := s.cacheService.GetAlertList(ctx, companyID); cached != nil {
			return cached, nil
		} else if err != nil {
			log.Printf("alert cache read failed for company %d: %v", companyID, err)
		}
	}

	rows, err := s.inventoryRepo.ListByCompany(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}

	alerts := make([]models.LowStockAlert, 0)
	for _, row := range rows {
		threshold, err := s.thresholds.Resolve(ctx, companyID, row.ProductID, row.WarehouseID)
		if err != nil {
			return nil, err
		}
		if row.Quantity.GreaterThanOrEqual(decimal.NewFromInt(int64(threshold))) {
			continue
		}

		ads, err := s.velocity.AverageDailySales(ctx, row.ProductID, row.WarehouseID, lookbackDays)
		if err != nil {
			return nil, err
		}

		supplier, err := s.recommender.Recommend(ctx, companyID, row.ProductID)
		if err != nil {
			return nil, err
		}

		alerts = append(alerts, models.LowStockAlert{
			ProductID:           row.ProductID,
			ProductName:         row.ProductName,
			SKU:                 row.SKU,
			WarehouseID:         row.WarehouseID,
			WarehouseName:       row.WarehouseName,
			CurrentStock:        row.Quantity,
			Threshold:           threshold,
			AvgDailySales:       ads,
			DaysUntilStockout:   DaysUntilStockout(row.Quantity, ads),
			RecommendedSupplier: supplier,
		})
	}

	// Rows arrive ordered from the repository already; re-sorting keeps
	// the contract independent of the storage layer.
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].SKU != alerts[j].SKU {
			return alerts[i].SKU < alerts[j].SKU
		}
		return alerts[i].WarehouseName < alerts[j].WarehouseName
	})

	result := &models.AlertList{Alerts: alerts, TotalAlerts: len(alerts)}

	if cacheable {
		if err := s.cacheService.SetAlertList(ctx, companyID, result, alertCacheTTL); err != nil {
			log.Printf("alert cache write failed for company %d: %v", companyID, err)
		}
	}
	return result, nil
}
