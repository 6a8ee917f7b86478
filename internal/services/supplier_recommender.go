package services

import (
	"context"
	"sort"

	"stockflow/internal/models"
	"stockflow/internal/repositories"
)

// SupplierRecommender picks the replenishment supplier for a product.
type SupplierRecommender interface {
	// Recommend returns the best supplier for the (company, product)
	// pair, or nil when no mapping exists. Selection order: preferred
	// suppliers first, then shortest lead time, then lowest supplier id.
	Recommend(ctx context.Context, companyID, productID int64) (*models.SupplierRef, error)
}

type supplierRecommender struct {
	supplierRepo repositories.SupplierRepository
}

func NewSupplierRecommender(supplierRepo repositories.SupplierRepository) SupplierRecommender {
	return &supplierRecommender{supplierRepo: supplierRepo}
}

func (s *supplierRecommender) Recommend(ctx context.Context, companyID, productID int64) (*models.SupplierRef, error) {
	options, err := s.supplierRepo.OptionsForProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	best := PickSupplier(options)
	return best, nil
}

// PickSupplier applies the selection rule to an option set: preferred
// beats non-preferred, shorter lead time beats longer, lower supplier id
// breaks remaining ties. Returns nil for an empty set.
func PickSupplier(options []*models.SupplierOption) *models.SupplierRef {
	if len(options) == 0 {
		return nil
	}

	sorted := make([]*models.SupplierOption, len(options))
	copy(sorted, options)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Preferred != sorted[j].Preferred {
			return sorted[i].Preferred
		}
		if sorted[i].LeadTimeDays != sorted[j].LeadTimeDays {
			return sorted[i].LeadTimeDays < sorted[j].LeadTimeDays
		}
		return sorted[i].SupplierID < sorted[j].SupplierID
	})

	best := sorted[0]
	return &models.SupplierRef{
		SupplierID:   best.SupplierID,
		Name:         best.Name,
		LeadTimeDays: best.LeadTimeDays,
		Preferred:    best.Preferred,
	}
}
