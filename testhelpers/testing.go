package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"stockflow/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Schema for integration tests. Kept in sync with the queries in
// internal/repositories.
const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS warehouses (
	id BIGSERIAL PRIMARY KEY,
	company_id BIGINT NOT NULL REFERENCES companies(id),
	name TEXT NOT NULL,
	location TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS product_types (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	default_low_stock_threshold INT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS products (
	id BIGSERIAL PRIMARY KEY,
	sku TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	product_type_id BIGINT REFERENCES product_types(id),
	price NUMERIC(12,2) NOT NULL DEFAULT 0,
	is_bundle BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS product_bundles (
	bundle_product_id BIGINT NOT NULL REFERENCES products(id),
	component_product_id BIGINT NOT NULL REFERENCES products(id),
	component_qty NUMERIC(12,2) NOT NULL,
	PRIMARY KEY (bundle_product_id, component_product_id)
);
CREATE TABLE IF NOT EXISTS inventory (
	product_id BIGINT NOT NULL REFERENCES products(id),
	warehouse_id BIGINT NOT NULL REFERENCES warehouses(id),
	quantity NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	PRIMARY KEY (product_id, warehouse_id)
);
CREATE TABLE IF NOT EXISTS inventory_transactions (
	id BIGSERIAL PRIMARY KEY,
	product_id BIGINT NOT NULL,
	warehouse_id BIGINT NOT NULL,
	qty_delta NUMERIC(12,2) NOT NULL,
	reason TEXT NOT NULL,
	ref_type TEXT,
	ref_id TEXT,
	occurred_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS product_thresholds (
	company_id BIGINT NOT NULL REFERENCES companies(id),
	product_id BIGINT NOT NULL REFERENCES products(id),
	warehouse_id BIGINT REFERENCES warehouses(id),
	threshold INT NOT NULL CHECK (threshold >= 0),
	UNIQUE (company_id, product_id, warehouse_id)
);
CREATE TABLE IF NOT EXISTS suppliers (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	contact_email TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS product_suppliers (
	supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
	company_id BIGINT NOT NULL REFERENCES companies(id),
	product_id BIGINT NOT NULL REFERENCES products(id),
	supplier_sku TEXT,
	lead_time_days INT NOT NULL DEFAULT 0,
	preferred BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (supplier_id, company_id, product_id)
);
CREATE TABLE IF NOT EXISTS orders (
	id BIGSERIAL PRIMARY KEY,
	company_id BIGINT NOT NULL REFERENCES companies(id),
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS order_lines (
	id BIGSERIAL PRIMARY KEY,
	order_id BIGINT NOT NULL REFERENCES orders(id),
	product_id BIGINT NOT NULL REFERENCES products(id),
	warehouse_id BIGINT NOT NULL REFERENCES warehouses(id),
	qty NUMERIC(12,2) NOT NULL
);
`

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func()
}

// SetupTestDB connects to TEST_DATABASE_URL and applies the schema. Tests
// that need a real database are skipped when the variable is unset.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	pool, err := database.NewPool(connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if _, err := pool.Exec(context.Background(), schema); err != nil {
		pool.Close()
		t.Fatalf("Failed to apply test schema: %v", err)
	}

	return &TestDB{
		Pool:    pool,
		Cleanup: pool.Close,
	}
}

// TruncateAll resets every table between tests.
func (db *TestDB) TruncateAll(t *testing.T) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(), `
		TRUNCATE order_lines, orders, product_suppliers, suppliers,
			product_thresholds, inventory_transactions, inventory,
			product_bundles, products, product_types, warehouses, companies
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func (db *TestDB) CreateCompany(t *testing.T, name string) int64 {
	t.Helper()
	var id int64
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO companies (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create company: %v", err)
	}
	return id
}

func (db *TestDB) CreateWarehouse(t *testing.T, companyID int64, name string) int64 {
	t.Helper()
	var id int64
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO warehouses (company_id, name) VALUES ($1, $2) RETURNING id`, companyID, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create warehouse: %v", err)
	}
	return id
}

func (db *TestDB) CreateProductType(t *testing.T, name string, defaultThreshold int) int64 {
	t.Helper()
	var id int64
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO product_types (name, default_low_stock_threshold) VALUES ($1, $2) RETURNING id`,
		name, defaultThreshold).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create product type: %v", err)
	}
	return id
}

func (db *TestDB) CreateProduct(t *testing.T, sku, name string, productTypeID *int64, price decimal.Decimal) int64 {
	t.Helper()
	var id int64
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO products (sku, name, product_type_id, price) VALUES ($1, $2, $3, $4) RETURNING id`,
		sku, name, productTypeID, price).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	return id
}

func (db *TestDB) SetInventory(t *testing.T, productID, warehouseID int64, quantity decimal.Decimal) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(), `
		INSERT INTO inventory (product_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, warehouse_id) DO UPDATE SET quantity = $3
	`, productID, warehouseID, quantity)
	if err != nil {
		t.Fatalf("Failed to set inventory: %v", err)
	}
}

// SetThreshold installs an override; warehouseID nil means company-wide.
func (db *TestDB) SetThreshold(t *testing.T, companyID, productID int64, warehouseID *int64, threshold int) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(), `
		INSERT INTO product_thresholds (company_id, product_id, warehouse_id, threshold)
		VALUES ($1, $2, $3, $4)
	`, companyID, productID, warehouseID, threshold)
	if err != nil {
		t.Fatalf("Failed to set threshold: %v", err)
	}
}

func (db *TestDB) CreateSupplier(t *testing.T, name string) int64 {
	t.Helper()
	var id int64
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO suppliers (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create supplier: %v", err)
	}
	return id
}

func (db *TestDB) LinkSupplier(t *testing.T, supplierID, companyID, productID int64, leadTimeDays int, preferred bool) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(), `
		INSERT INTO product_suppliers (supplier_id, company_id, product_id, lead_time_days, preferred)
		VALUES ($1, $2, $3, $4, $5)
	`, supplierID, companyID, productID, leadTimeDays, preferred)
	if err != nil {
		t.Fatalf("Failed to link supplier: %v", err)
	}
}

// CreateOrderWithLine records a one-line order with the given status and
// age.
func (db *TestDB) CreateOrderWithLine(t *testing.T, companyID int64, status string, age time.Duration, productID, warehouseID int64, qty decimal.Decimal) {
	t.Helper()
	var orderID int64
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO orders (company_id, status, created_at) VALUES ($1, $2, $3) RETURNING id`,
		companyID, status, time.Now().Add(-age)).Scan(&orderID)
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}
	_, err = db.Pool.Exec(context.Background(),
		`INSERT INTO order_lines (order_id, product_id, warehouse_id, qty) VALUES ($1, $2, $3, $4)`,
		orderID, productID, warehouseID, qty)
	if err != nil {
		t.Fatalf("Failed to create order line: %v", err)
	}
}
