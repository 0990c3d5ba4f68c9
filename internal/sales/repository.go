package sales

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for sales transactions.
type Repository interface {
	Insert(ctx context.Context, tx pgx.Tx, t Transaction) (Transaction, error)
	List(ctx context.Context, req ListSalesRequest) ([]TransactionView, int, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert records a sale inside the caller's transaction so it commits together
// with the stock decrement.
func (r *PGRepository) Insert(ctx context.Context, tx pgx.Tx, t Transaction) (Transaction, error) {
	query := `
		INSERT INTO sales_transactions (
			product_id, quantity, unit_type, price_per_unit, total_amount,
			notes, created_by, transaction_date, created_at
		) VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, NOW())
		RETURNING id, created_at`

	row := tx.QueryRow(ctx, query,
		t.ProductID, t.Quantity, t.UnitType, t.PricePerUnit, t.TotalAmount,
		t.Notes, t.CreatedBy, t.TransactionDate,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return Transaction{}, fmt.Errorf("sales: insert transaction: %w", err)
	}
	return t, nil
}

// List returns sales newest first with the product name and size joined in.
func (r *PGRepository) List(ctx context.Context, req ListSalesRequest) ([]TransactionView, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if req.ProductID != "" {
		args = append(args, req.ProductID)
		where += fmt.Sprintf(" AND s.product_id = $%d", len(args))
	}
	if req.From != nil {
		args = append(args, *req.From)
		where += fmt.Sprintf(" AND s.transaction_date >= $%d", len(args))
	}
	if req.To != nil {
		args = append(args, *req.To)
		where += fmt.Sprintf(" AND s.transaction_date < $%d", len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM sales_transactions s" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("sales: count transactions: %w", err)
	}

	query := `
		SELECT s.id, s.product_id, s.quantity, s.unit_type, s.price_per_unit,
			s.total_amount, COALESCE(s.notes, ''), s.created_by,
			s.transaction_date, s.created_at,
			COALESCE(p.name, 'Unknown'), COALESCE(p.size, '')
		FROM sales_transactions s
		LEFT JOIN products p ON p.id = s.product_id` +
		where + " ORDER BY s.transaction_date DESC, s.created_at DESC"

	if req.PerPage > 0 {
		offset := (req.Page - 1) * req.PerPage
		if offset < 0 {
			offset = 0
		}
		args = append(args, req.PerPage, offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("sales: list transactions: %w", err)
	}
	defer rows.Close()

	var views []TransactionView
	for rows.Next() {
		var v TransactionView
		err := rows.Scan(
			&v.ID, &v.ProductID, &v.Quantity, &v.UnitType, &v.PricePerUnit,
			&v.TotalAmount, &v.Notes, &v.CreatedBy,
			&v.TransactionDate, &v.CreatedAt,
			&v.ProductName, &v.ProductSize,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("sales: scan transaction: %w", err)
		}
		views = append(views, v)
	}
	return views, total, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
