package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines the read queries backing reports.
type Repository interface {
	SaleRecords(ctx context.Context, p Period) ([]SaleRecord, error)
	PurchaseRecords(ctx context.Context, p Period) ([]PurchaseRecord, error)
	Dashboard(ctx context.Context) (DashboardStats, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// SaleRecords returns sale rows in insertion order so the aggregator's
// encounter-order grouping is deterministic.
func (r *PGRepository) SaleRecords(ctx context.Context, p Period) ([]SaleRecord, error) {
	query := `
		SELECT s.product_id, COALESCE(p.name, ''), COALESCE(p.size, ''),
			s.quantity, s.total_amount
		FROM sales_transactions s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE ($1::timestamptz IS NULL OR s.transaction_date >= $1)
		  AND ($2::timestamptz IS NULL OR s.transaction_date < $2)
		ORDER BY s.created_at, s.id`

	rows, err := r.pool.Query(ctx, query, nullableTime(p.From), nullableTime(p.To))
	if err != nil {
		return nil, fmt.Errorf("reports: sale records: %w", err)
	}
	defer rows.Close()

	var records []SaleRecord
	for rows.Next() {
		var rec SaleRecord
		if err := rows.Scan(&rec.ProductID, &rec.ProductName, &rec.ProductSize, &rec.Quantity, &rec.TotalAmount); err != nil {
			return nil, fmt.Errorf("reports: scan sale record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// PurchaseRecords returns purchase rows for the period.
func (r *PGRepository) PurchaseRecords(ctx context.Context, p Period) ([]PurchaseRecord, error) {
	query := `
		SELECT product_id, total_amount
		FROM purchase_orders
		WHERE ($1::timestamptz IS NULL OR purchase_date >= $1)
		  AND ($2::timestamptz IS NULL OR purchase_date < $2)
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, nullableTime(p.From), nullableTime(p.To))
	if err != nil {
		return nil, fmt.Errorf("reports: purchase records: %w", err)
	}
	defer rows.Close()

	var records []PurchaseRecord
	for rows.Next() {
		var rec PurchaseRecord
		if err := rows.Scan(&rec.ProductID, &rec.TotalAmount); err != nil {
			return nil, fmt.Errorf("reports: scan purchase record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Dashboard collects the landing page counters in one round trip.
func (r *PGRepository) Dashboard(ctx context.Context) (DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE is_active),
			(SELECT COUNT(*) FROM products WHERE is_active AND current_stock_units <= minimum_stock_units),
			(SELECT COUNT(*) FROM sales_transactions WHERE transaction_date >= date_trunc('day', NOW())),
			(SELECT COALESCE(SUM(total_amount), 0) FROM sales_transactions WHERE transaction_date >= date_trunc('day', NOW()))`

	var stats DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.ActiveProducts, &stats.LowStockProducts,
		&stats.TodayTransactions, &stats.TodayRevenue,
	)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("reports: dashboard stats: %w", err)
	}
	return stats, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

var _ Repository = (*PGRepository)(nil)
