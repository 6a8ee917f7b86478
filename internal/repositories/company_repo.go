package repositories

import (
	"context"

	"stockflow/internal/models"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
}

type companyRepo struct {
	db DB
}

func NewCompanyRepository(db DB) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, name, created_at
		FROM companies
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name, &company.CreatedAt)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (r *companyRepo) List(ctx context.Context) ([]*models.Company, error) {
	query := `
		SELECT id, name, created_at
		FROM companies
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(&company.ID, &company.Name, &company.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}
