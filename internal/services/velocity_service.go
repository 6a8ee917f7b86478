package services

import (
	"context"
	"time"

	"stockflow/internal/repositories"

	"github.com/shopspring/decimal"
)

// VelocityService computes average daily sales over a trailing window.
type VelocityService interface {
	// AverageDailySales sums shipped/completed order-line quantities for
	// the (product, warehouse) pair over the trailing lookbackDays and
	// divides by the window length. Values below 1 are clamped to 1.
	// No sales in the window yields zero, not an error.
	AverageDailySales(ctx context.Context, productID, warehouseID int64, lookbackDays int) (decimal.Decimal, error)
}

type velocityService struct {
	orderRepo repositories.OrderRepository
	now       func() time.Time
}

func NewVelocityService(orderRepo repositories.OrderRepository) VelocityService {
	return &velocityService{orderRepo: orderRepo, now: time.Now}
}

func (s *velocityService) AverageDailySales(ctx context.Context, productID, warehouseID int64, lookbackDays int) (decimal.Decimal, error) {
	if lookbackDays < 1 {
		lookbackDays = 1
	}
	since := s.now().AddDate(0, 0, -lookbackDays)

	total, err := s.orderRepo.TotalSold(ctx, productID, warehouseID, since)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Div(decimal.NewFromInt(int64(lookbackDays))), nil
}
