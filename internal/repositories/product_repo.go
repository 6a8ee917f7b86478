package repositories

import (
	"context"

	"stockflow/internal/models"

	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	Components(ctx context.Context, bundleProductID int64) ([]*models.ProductBundle, error)
	// CreateWithInitialStock inserts the product and, when warehouseID is
	// set, its initial inventory row in one transaction. Returns the new
	// product id, or ErrDuplicateSKU on a sku conflict.
	CreateWithInitialStock(ctx context.Context, product *models.Product, warehouseID *int64, initialQty decimal.Decimal) (int64, error)
}

type productRepo struct {
	db DB
}

func NewProductRepository(db DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, sku, name, product_type_id, price, is_bundle, created_at
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.SKU, &product.Name, &product.ProductTypeID, &product.Price, &product.IsBundle, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, sku, name, product_type_id, price, is_bundle, created_at
		FROM products
		WHERE sku = $1
	`
	err := r.db.QueryRow(ctx, query, sku).Scan(&product.ID, &product.SKU, &product.Name, &product.ProductTypeID, &product.Price, &product.IsBundle, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := `
		SELECT id, sku, name, product_type_id, price, is_bundle, created_at
		FROM products
		ORDER BY sku
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.SKU, &product.Name, &product.ProductTypeID, &product.Price, &product.IsBundle, &product.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) Components(ctx context.Context, bundleProductID int64) ([]*models.ProductBundle, error) {
	query := `
		SELECT bundle_product_id, component_product_id, component_qty
		FROM product_bundles
		WHERE bundle_product_id = $1
		ORDER BY component_product_id
	`
	rows, err := r.db.Query(ctx, query, bundleProductID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []*models.ProductBundle
	for rows.Next() {
		pb := &models.ProductBundle{}
		if err := rows.Scan(&pb.BundleProductID, &pb.ComponentProductID, &pb.ComponentQty); err != nil {
			return nil, err
		}
		components = append(components, pb)
	}
	return components, rows.Err()
}

func (r *productRepo) CreateWithInitialStock(ctx context.Context, product *models.Product, warehouseID *int64, initialQty decimal.Decimal) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var productID int64
	insertProduct := `
		INSERT INTO products (sku, name, product_type_id, price, is_bundle, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	err = tx.QueryRow(ctx, insertProduct, product.SKU, product.Name, product.ProductTypeID, product.Price, product.IsBundle).Scan(&productID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateSKU
		}
		return 0, err
	}

	if warehouseID != nil {
		insertInventory := `
			INSERT INTO inventory (product_id, warehouse_id, quantity)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.Exec(ctx, insertInventory, productID, *warehouseID, initialQty); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	product.ID = productID
	return productID, nil
}
