package services

import (
	"context"
	"errors"

	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/jackc/pgx/v5"
)

type WarehouseService interface {
	GetByID(ctx context.Context, id int64) (*models.Warehouse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Warehouse, error)
}

type warehouseService struct {
	warehouseRepo repositories.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repositories.WarehouseRepository) WarehouseService {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

func (s *warehouseService) GetByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}
	return warehouse, nil
}

func (s *warehouseService) ListByCompany(ctx context.Context, companyID int64) ([]*models.Warehouse, error) {
	return s.warehouseRepo.ListByCompany(ctx, companyID)
}
