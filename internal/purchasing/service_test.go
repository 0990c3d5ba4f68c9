package purchasing

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toriyu-water/toriyu-pos/internal/catalog"
	"github.com/toriyu-water/toriyu-pos/internal/shared"
)

type mockRepository struct {
	inserted []Order
}

func (m *mockRepository) Insert(ctx context.Context, tx pgx.Tx, o Order) (Order, error) {
	o.ID = "order-1"
	m.inserted = append(m.inserted, o)
	return o, nil
}

func (m *mockRepository) List(ctx context.Context, req ListOrdersRequest) ([]OrderView, int, error) {
	return nil, 0, nil
}

type mockProductStore struct {
	product catalog.Product
	deltas  []int64
}

func (m *mockProductStore) Get(ctx context.Context, id string) (catalog.Product, error) {
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

func TestCreateOrderByBoxDerivesPrice(t *testing.T) {
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := NewService(slog.Default(), repo, products, noopTxRunner, nil)

	order, err := svc.CreateOrder(context.Background(), "admin-1", CreateOrderRequest{
		ProductID:    products.product.ID,
		SupplierName: "CV Tirta Jaya",
		Quantity:     5,
		UnitType:     "dus",
	})
	require.NoError(t, err)

	// 12 bottles per box at 3000 per bottle is 36000 per box.
	assert.Equal(t, 36000.0, order.PricePerUnit)
	assert.Equal(t, 180000.0, order.TotalAmount)
	require.Len(t, products.deltas, 1)
	assert.Equal(t, int64(60), products.deltas[0])
}

func TestCreateOrderByBottle(t *testing.T) {
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := NewService(slog.Default(), repo, products, noopTxRunner, nil)

	order, err := svc.CreateOrder(context.Background(), "admin-1", CreateOrderRequest{
		ProductID:    products.product.ID,
		SupplierName: "CV Tirta Jaya",
		Quantity:     10,
		UnitType:     "botol",
	})
	require.NoError(t, err)

	assert.Equal(t, 3000.0, order.PricePerUnit)
	assert.Equal(t, 30000.0, order.TotalAmount)
	require.Len(t, products.deltas, 1)
	assert.Equal(t, int64(10), products.deltas[0])
}

func TestCreateOrderRequiresSupplier(t *testing.T) {
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := NewService(slog.Default(), repo, products, noopTxRunner, nil)

	_, err := svc.CreateOrder(context.Background(), "admin-1", CreateOrderRequest{
		ProductID:    products.product.ID,
		SupplierName: "   ",
		Quantity:     1,
		UnitType:     "botol",
	})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Empty(t, repo.inserted)
	assert.Empty(t, products.deltas)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	repo := &mockRepository{}
	products := &mockProductStore{product: testProduct()}
	svc := NewService(slog.Default(), repo, products, noopTxRunner, nil)

	_, err := svc.CreateOrder(context.Background(), "admin-1", CreateOrderRequest{
		ProductID:    products.product.ID,
		SupplierName: "CV Tirta Jaya",
		Quantity:     0,
		UnitType:     "botol",
	})
	require.ErrorIs(t, err, catalog.ErrInvalidQuantity)
}

func TestCreateOrderBoxNeedsValidUnitsPerBox(t *testing.T) {
	product := testProduct()
	product.UnitsPerBox = 0

	repo := &mockRepository{}
	products := &mockProductStore{product: product}
	svc := NewService(slog.Default(), repo, products, noopTxRunner, nil)

	_, err := svc.CreateOrder(context.Background(), "admin-1", CreateOrderRequest{
		ProductID:    product.ID,
		SupplierName: "CV Tirta Jaya",
		Quantity:     1,
		UnitType:     "dus",
	})
	require.ErrorIs(t, err, catalog.ErrInvalidProduct)
}
