package jobs

import (
	"context"
	"log"
	"time"

	"stockflow/internal/repositories"
	"stockflow/internal/services"
)

// LowStockSweep walks every company and evaluates its low-stock alerts.
// Running it periodically keeps the per-company alert cache warm and gives
// operators a log trail of companies drifting below threshold.
type LowStockSweep struct {
	companyRepo  repositories.CompanyRepository
	alertService services.AlertService
	lookbackDays int
}

func NewLowStockSweep(companyRepo repositories.CompanyRepository, alertService services.AlertService, lookbackDays int) *LowStockSweep {
	return &LowStockSweep{
		companyRepo:  companyRepo,
		alertService: alertService,
		lookbackDays: lookbackDays,
	}
}

// Run evaluates alerts for every company. A failure on one company is
// logged and does not stop the sweep.
func (s *LowStockSweep) Run(ctx context.Context, runID string) error {
	started := time.Now()
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return err
	}

	total := 0
	for _, company := range companies {
		alerts, err := s.alertService.ListLowStock(ctx, company.ID, nil, s.lookbackDays)
		if err != nil {
			log.Printf("low-stock sweep %s: company %d failed: %v", runID, company.ID, err)
			continue
		}
		if alerts.TotalAlerts > 0 {
			log.Printf("low-stock sweep %s: company %d (%s) has %d alerts", runID, company.ID, company.Name, alerts.TotalAlerts)
		}
		total += alerts.TotalAlerts
	}

	log.Printf("low-stock sweep %s: %d companies, %d alerts, took %s", runID, len(companies), total, time.Since(started))
	return nil
}
