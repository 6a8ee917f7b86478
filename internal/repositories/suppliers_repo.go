package repositories

import (
	"context"

	"stockflow/internal/models"
)

type SupplierRepository interface {
	// OptionsForProduct returns every supplier mapped to the
	// (company, product) pair, joined with supplier identity. Ordered by
	// supplier id so downstream tie-breaking is deterministic.
	OptionsForProduct(ctx context.Context, companyID, productID int64) ([]*models.SupplierOption, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Supplier, error)
}

type supplierRepo struct {
	db DB
}

func NewSupplierRepository(db DB) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) OptionsForProduct(ctx context.Context, companyID, productID int64) ([]*models.SupplierOption, error) {
	query := `
		SELECT ps.supplier_id, s.name, ps.lead_time_days, ps.preferred
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.company_id = $1 AND ps.product_id = $2
		ORDER BY ps.supplier_id
	`
	rows, err := r.db.Query(ctx, query, companyID, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []*models.SupplierOption
	for rows.Next() {
		opt := &models.SupplierOption{}
		if err := rows.Scan(&opt.SupplierID, &opt.Name, &opt.LeadTimeDays, &opt.Preferred); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func (r *supplierRepo) ListByCompany(ctx context.Context, companyID int64) ([]*models.Supplier, error) {
	query := `
		SELECT DISTINCT s.id, s.name, s.contact_email, s.created_at
		FROM suppliers s
		JOIN product_suppliers ps ON ps.supplier_id = s.id
		WHERE ps.company_id = $1
		ORDER BY s.id
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		s := &models.Supplier{}
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}
