package services

import (
	"context"

	"stockflow/internal/models"
	"stockflow/internal/repositories"
)

type SupplierService interface {
	// ListByCompany returns every supplier with at least one product
	// mapping for the company.
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Supplier, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
}

func NewSupplierService(supplierRepo repositories.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) ListByCompany(ctx context.Context, companyID int64) ([]*models.Supplier, error) {
	return s.supplierRepo.ListByCompany(ctx, companyID)
}
