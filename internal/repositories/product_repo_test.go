package repositories

import (
	"context"
	"testing"
	"time"

	"stockflow/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ProductRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo ProductRepository
	ctx  context.Context
}

func (suite *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewProductRepository(mock)
	suite.ctx = context.Background()
}

func (suite *ProductRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

func (suite *ProductRepoTestSuite) TestGetBySKU() {
	typeID := int64(3)
	created := time.Now()
	suite.mock.ExpectQuery(`SELECT id, sku, name, product_type_id, price, is_bundle, created_at`).
		WithArgs("WID-001").
		WillReturnRows(pgxmock.NewRows([]string{"id", "sku", "name", "product_type_id", "price", "is_bundle", "created_at"}).
			AddRow(int64(10), "WID-001", "Widget A", &typeID, decimal.NewFromFloat(9.99), false, created))

	product, err := suite.repo.GetBySKU(suite.ctx, "WID-001")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(10), product.ID)
	assert.Equal(suite.T(), "Widget A", product.Name)
	assert.Equal(suite.T(), int64(3), *product.ProductTypeID)
}

func (suite *ProductRepoTestSuite) TestCreateWithInitialStock() {
	warehouseID := int64(7)
	product := &models.Product{
		SKU:   "WID-001",
		Name:  "Widget A",
		Price: decimal.NewFromFloat(9.99),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO products \(sku, name, product_type_id, price, is_bundle, created_at\)`).
		WithArgs("WID-001", "Widget A", (*int64)(nil), product.Price, false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
	suite.mock.ExpectExec(`INSERT INTO inventory \(product_id, warehouse_id, quantity\)`).
		WithArgs(int64(42), int64(7), decimal.NewFromInt(12)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()

	id, err := suite.repo.CreateWithInitialStock(suite.ctx, product, &warehouseID, decimal.NewFromInt(12))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(42), id)
	assert.Equal(suite.T(), int64(42), product.ID)
}

func (suite *ProductRepoTestSuite) TestCreateWithoutWarehouseSkipsInventory() {
	product := &models.Product{
		SKU:   "WID-002",
		Name:  "Widget B",
		Price: decimal.NewFromInt(5),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO products`).
		WithArgs("WID-002", "Widget B", (*int64)(nil), product.Price, false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(43)))
	suite.mock.ExpectCommit()

	id, err := suite.repo.CreateWithInitialStock(suite.ctx, product, nil, decimal.Zero)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(43), id)
}

func (suite *ProductRepoTestSuite) TestCreateDuplicateSKU() {
	product := &models.Product{
		SKU:   "WID-001",
		Name:  "Widget A",
		Price: decimal.NewFromFloat(9.99),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO products`).
		WithArgs("WID-001", "Widget A", (*int64)(nil), product.Price, false).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"})
	suite.mock.ExpectRollback()

	_, err := suite.repo.CreateWithInitialStock(suite.ctx, product, nil, decimal.Zero)
	assert.ErrorIs(suite.T(), err, ErrDuplicateSKU)
}

func (suite *ProductRepoTestSuite) TestCreateInventoryFailureRollsBack() {
	warehouseID := int64(7)
	product := &models.Product{
		SKU:   "WID-001",
		Name:  "Widget A",
		Price: decimal.NewFromFloat(9.99),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO products`).
		WithArgs("WID-001", "Widget A", (*int64)(nil), product.Price, false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
	suite.mock.ExpectExec(`INSERT INTO inventory`).
		WithArgs(int64(42), int64(7), decimal.NewFromInt(12)).
		WillReturnError(assert.AnError)
	suite.mock.ExpectRollback()

	_, err := suite.repo.CreateWithInitialStock(suite.ctx, product, &warehouseID, decimal.NewFromInt(12))
	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrDuplicateSKU)
}
