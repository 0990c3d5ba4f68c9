package purchasing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/toriyu-water/toriyu-pos/internal/catalog"
	"github.com/toriyu-water/toriyu-pos/internal/platform/db"
	"github.com/toriyu-water/toriyu-pos/internal/shared"
)

// productStore is the slice of the catalog repository the purchasing flow needs.
type productStore interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
	AdjustStock(ctx context.Context, tx pgx.Tx, id string, delta int64) error
}

// reportInvalidator drops cached report aggregates after a write.
type reportInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TxRunner executes fn inside a database transaction.
type TxRunner func(ctx context.Context, fn func(pgx.Tx) error) error

// PoolTxRunner adapts a pgx pool into a TxRunner.
func PoolTxRunner(pool *pgxpool.Pool) TxRunner {
	return func(ctx context.Context, fn func(pgx.Tx) error) error {
		return db.WithTx(ctx, pool, fn)
	}
}

// Service records and lists purchase orders.
type Service struct {
	logger   *slog.Logger
	repo     Repository
	products productStore
	runTx    TxRunner
	reports  reportInvalidator
}

// NewService constructs a purchasing Service. reports may be nil when report
// caching is disabled.
func NewService(logger *slog.Logger, repo Repository, products productStore, runTx TxRunner, reports reportInvalidator) *Service {
	return &Service{
		logger:   logger,
		repo:     repo,
		products: products,
		runTx:    runTx,
		reports:  reports,
	}
}

// CreateOrder prices and records a purchase, incrementing stock in the same
// transaction. Purchases never fail on stock levels.
func (s *Service) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (OrderView, error) {
	unit := catalog.UnitType(req.UnitType)
	if !unit.Valid() {
		return OrderView{}, fmt.Errorf("%w: unknown unit %q", catalog.ErrInvalidQuantity, req.UnitType)
	}

	supplier := strings.TrimSpace(req.SupplierName)
	if supplier == "" {
		return OrderView{}, fmt.Errorf("%w: supplier name required", shared.ErrValidation)
	}

	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return OrderView{}, err
	}

	quote, err := catalog.PricePurchase(product, req.Quantity, unit)
	if err != nil {
		return OrderView{}, err
	}
	bottles, err := catalog.ToBottles(product, req.Quantity, unit)
	if err != nil {
		return OrderView{}, err
	}

	order := Order{
		ProductID:    product.ID,
		SupplierName: supplier,
		Quantity:     req.Quantity,
		UnitType:     unit,
		PricePerUnit: quote.UnitPrice,
		TotalAmount:  quote.Total,
		Notes:        req.Notes,
		CreatedBy:    userID,
		PurchaseDate: time.Now().UTC(),
	}

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		inserted, err := s.repo.Insert(ctx, tx, order)
		if err != nil {
			return err
		}
		order = inserted
		return s.products.AdjustStock(ctx, tx, product.ID, bottles)
	})
	if err != nil {
		return OrderView{}, err
	}

	if s.reports != nil {
		if err := s.reports.Invalidate(ctx); err != nil {
			s.logger.Warn("invalidate report cache", slog.Any("error", err))
		}
	}

	s.logger.Info("purchase recorded",
		slog.String("order_id", order.ID),
		slog.String("product_id", product.ID),
		slog.String("supplier", supplier),
		slog.Int64("quantity", order.Quantity),
		slog.String("unit", string(unit)),
		slog.Float64("total", order.TotalAmount),
	)

	return OrderView{
		Order:       order,
		ProductName: product.Name,
		ProductSize: product.Size,
	}, nil
}

// ListOrders returns purchase orders newest first.
func (s *Service) ListOrders(ctx context.Context, req ListOrdersRequest) ([]OrderView, int, error) {
	if req.PerPage <= 0 {
		req.PerPage = 20
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	return s.repo.List(ctx, req)
}
