package purchasing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for purchase orders.
type Repository interface {
	Insert(ctx context.Context, tx pgx.Tx, o Order) (Order, error)
	List(ctx context.Context, req ListOrdersRequest) ([]OrderView, int, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert records a purchase inside the caller's transaction so it commits
// together with the stock increment.
func (r *PGRepository) Insert(ctx context.Context, tx pgx.Tx, o Order) (Order, error) {
	query := `
		INSERT INTO purchase_orders (
			product_id, supplier_name, quantity, unit_type, price_per_unit,
			total_amount, notes, created_by, purchase_date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, NOW())
		RETURNING id, created_at`

	row := tx.QueryRow(ctx, query,
		o.ProductID, o.SupplierName, o.Quantity, o.UnitType, o.PricePerUnit,
		o.TotalAmount, o.Notes, o.CreatedBy, o.PurchaseDate,
	)
	if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
		return Order{}, fmt.Errorf("purchasing: insert order: %w", err)
	}
	return o, nil
}

// List returns purchase orders newest first with product details joined in.
func (r *PGRepository) List(ctx context.Context, req ListOrdersRequest) ([]OrderView, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if req.ProductID != "" {
		args = append(args, req.ProductID)
		where += fmt.Sprintf(" AND o.product_id = $%d", len(args))
	}
	if req.From != nil {
		args = append(args, *req.From)
		where += fmt.Sprintf(" AND o.purchase_date >= $%d", len(args))
	}
	if req.To != nil {
		args = append(args, *req.To)
		where += fmt.Sprintf(" AND o.purchase_date < $%d", len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM purchase_orders o" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("purchasing: count orders: %w", err)
	}

	query := `
		SELECT o.id, o.product_id, o.supplier_name, o.quantity, o.unit_type,
			o.price_per_unit, o.total_amount, COALESCE(o.notes, ''),
			o.created_by, o.purchase_date, o.created_at,
			COALESCE(p.name, 'Unknown'), COALESCE(p.size, '')
		FROM purchase_orders o
		LEFT JOIN products p ON p.id = o.product_id` +
		where + " ORDER BY o.purchase_date DESC, o.created_at DESC"

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
		return nil, 0, fmt.Errorf("purchasing: list orders: %w", err)
	}
	defer rows.Close()

	var views []OrderView
	for rows.Next() {
		var v OrderView
		err := rows.Scan(
			&v.ID, &v.ProductID, &v.SupplierName, &v.Quantity, &v.UnitType,
			&v.PricePerUnit, &v.TotalAmount, &v.Notes,
			&v.CreatedBy, &v.PurchaseDate, &v.CreatedAt,
			&v.ProductName, &v.ProductSize,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("purchasing: scan order: %w", err)
		}
		views = append(views, v)
	}
	return views, total, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
