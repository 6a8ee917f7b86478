package services

import (
	"context"

	"stockflow/internal/models"
	"stockflow/internal/repositories"
)

type CompanyService interface {
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *companyService) List(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.List(ctx)
}
