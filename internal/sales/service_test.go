package sales

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toriyu-water/toriyu-pos/internal/catalog"
)

type mockRepository struct {
	inserted []Transaction
	listed   []TransactionView
}

func (m *mockRepository) Insert(ctx context.Context, tx pgx.Tx, t Transaction) (Transaction, error) {
	t.ID = "sale-1"
	m.inserted = append(m.inserted, t)
	return t, nil
}

func (m *mockRepository) List(ctx context.Context, req ListSalesRequest) ([]TransactionView, int, error) {
	return m.listed, len(m.listed), nil
}

type mockProductStore struct {
	product catalog.Product
	getErr  error
	deltas  []int64
}

func (m *mockProductStore) Get(ctx context.Context, id string) (catalog.Product, error) {
	if m.getErr != nil {
		return catalog.Product{}, m.getErr
	}
	return m.product, nil
}

func (m *mockProductStore) AdjustStock(ctx context.Context, tx pgx.Tx, id string, delta int64) error {
	m.deltas = append(m.deltas, delta)
	return nil
}

func noopTxRunner(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

func testProduct() catalog.Product {
	return catalog.Product{
		ID:                   "11111111-1111-1111-1111-111111111111",
		Name:                 "Air Mineral",
		Size:                 "600ml",
		UnitsPerBox:          12,
		PurchasePricePerUnit: 3000,
		SellingPricePerUnit:  5000,
		SellingPricePerBox:   55000,
		CurrentStockUnits:    30,
		MinimumStockUnits:    10,
		IsActive:             true,
	}
}

func newTestService(repo *mockRepository, products *mockProductStore) *Service {
	return NewService(slog.Default(), repo, products, noopTxRunner, nil)
}

func TestCreateSaleByBoxUsesBoxPrice(t *testing.T) {
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := newTestService(repo, products)

	sale, err := svc.CreateSale(context.Background(), "user-1", CreateSaleRequest{
		ProductID: products.product.ID,
		Quantity:  2,
		UnitType:  "dus",
	})
	require.NoError(t, err)

	assert.Equal(t, 55000.0, sale.PricePerUnit)
	assert.Equal(t, 110000.0, sale.TotalAmount)
	assert.Equal(t, "Air Mineral", sale.ProductName)
	require.Len(t, products.deltas, 1)
	assert.Equal(t, int64(-24), products.deltas[0])
}

func TestCreateSaleByBottle(t *testing.T) {
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := newTestService(repo, products)

	sale, err := svc.CreateSale(context.Background(), "user-1", CreateSaleRequest{
		ProductID: products.product.ID,
		Quantity:  3,
		UnitType:  "botol",
	})
	require.NoError(t, err)

	assert.Equal(t, 5000.0, sale.PricePerUnit)
	assert.Equal(t, 15000.0, sale.TotalAmount)
	require.Len(t, products.deltas, 1)
	assert.Equal(t, int64(-3), products.deltas[0])
	assert.Equal(t, "user-1", sale.CreatedBy)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := newTestService(repo, products)

	_, err := svc.CreateSale(context.Background(), "user-1", CreateSaleRequest{
		ProductID: products.product.ID,
		Quantity:  31,
		UnitType:  "botol",
	})
	require.ErrorIs(t, err, catalog.ErrInsufficientStock)
	assert.Empty(t, repo.inserted)
	assert.Empty(t, products.deltas)
}

func TestCreateSaleInsufficientBoxes(t *testing.T) {
	// 30 bottles at 12 per box is only 2 whole boxes.
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := newTestService(repo, products)

	_, err := svc.CreateSale(context.Background(), "user-1", CreateSaleRequest{
		ProductID: products.product.ID,
		Quantity:  3,
		UnitType:  "dus",
	})
	require.ErrorIs(t, err, catalog.ErrInsufficientStock)
}

func TestCreateSaleRejectsUnknownUnit(t *testing.T) {
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := newTestService(repo, products)

	_, err := svc.CreateSale(context.Background(), "user-1", CreateSaleRequest{
		ProductID: products.product.ID,
		Quantity:  1,
		UnitType:  "karton",
	})
	require.ErrorIs(t, err, catalog.ErrInvalidQuantity)
}

func TestCreateSaleRejectsInactiveProduct(t *testing.T) {
	product := testProduct()
	product.IsActive = false

	repo := &mockRepository{}
	products := &mockProductStore{product: product}
	svc := newTestService(repo, products)

	_, err := svc.CreateSale(context.Background(), "user-1", CreateSaleRequest{
		ProductID: product.ID,
		Quantity:  1,
		UnitType:  "botol",
	})
	require.ErrorIs(t, err, catalog.ErrInvalidProduct)
	assert.Empty(t, repo.inserted)
}

func TestListSalesDefaultsPagination(t *testing.T) {
	repo := &mockRepository{listed: []TransactionView{{ProductName: "Air Mineral"}}}
	products := &mockProductStore{product: testProduct()}
	svc := newTestService(repo, products)

	sales, total, err := svc.ListSales(context.Background(), ListSalesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, sales, 1)
}
