package sales

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/toriyu-water/toriyu-pos/internal/catalog"
	"github.com/toriyu-water/toriyu-pos/internal/platform/db"
)

// productStore is the slice of the catalog repository the sales flow needs.
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

// Service records and lists sales.
type Service struct {
	logger   *slog.Logger
	repo     Repository
	products productStore
	runTx    TxRunner
	reports  reportInvalidator
}

// NewService constructs a sales Service. reports may be nil when report
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

// CreateSale prices and records a sale, decrementing stock in the same
// transaction. The advisory availability check gives callers a precise
// error message; the conditional decrement inside the transaction is the
// authoritative guard against overselling.
func (s *Service) CreateSale(ctx context.Context, userID string, req CreateSaleRequest) (TransactionView, error) {
	unit := catalog.UnitType(req.UnitType)
	if !unit.Valid() {
		return TransactionView{}, fmt.Errorf("%w: unknown unit %q", catalog.ErrInvalidQuantity, req.UnitType)
	}

	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return TransactionView{}, err
	}
	if !product.IsActive {
		return TransactionView{}, fmt.Errorf("%w: product is inactive", catalog.ErrInvalidProduct)
	}

	if err := catalog.CheckSufficient(product, req.Quantity, unit); err != nil {
		return TransactionView{}, err
	}

	quote, err := catalog.PriceSale(product, req.Quantity, unit)
	if err != nil {
		return TransactionView{}, err
	}
	bottles, err := catalog.ToBottles(product, req.Quantity, unit)
	if err != nil {
		return TransactionView{}, err
	}

	sale := Transaction{
		ProductID:       product.ID,
		Quantity:        req.Quantity,
		UnitType:        unit,
		PricePerUnit:    quote.UnitPrice,
		TotalAmount:     quote.Total,
		Notes:           req.Notes,
		CreatedBy:       userID,
		TransactionDate: time.Now().UTC(),
	}

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		inserted, err := s.repo.Insert(ctx, tx, sale)
		if err != nil {
			return err
		}
		sale = inserted
		return s.products.AdjustStock(ctx, tx, product.ID, -bottles)
	})
	if err != nil {
		return TransactionView{}, err
	}

	if s.reports != nil {
		if err := s.reports.Invalidate(ctx); err != nil {
			s.logger.Warn("invalidate report cache", slog.Any("error", err))
		}
	}

	s.logger.Info("sale recorded",
		slog.String("sale_id", sale.ID),
		slog.String("product_id", product.ID),
		slog.Int64("quantity", sale.Quantity),
		slog.String("unit", string(unit)),
		slog.Float64("total", sale.TotalAmount),
	)

	return TransactionView{
		Transaction: sale,
		ProductName: product.Name,
		ProductSize: product.Size,
	}, nil
}

// ListSales returns sales newest first.
func (s *Service) ListSales(ctx context.Context, req ListSalesRequest) ([]TransactionView, int, error) {
	if req.PerPage <= 0 {
		req.PerPage = 20
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	return s.repo.List(ctx, req)
}
