package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/toriyu-water/toriyu-pos/internal/shared"
)

// Repository defines persistence operations for products.
type Repository interface {
	List(ctx context.Context, req ListProductsRequest) ([]Product, int, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	LowStock(ctx context.Context) ([]Product, error)
	AdjustStock(ctx context.Context, tx pgx.Tx, id string, delta int64) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const productColumns = `id, name, size, units_per_box, purchase_price_per_unit,
	selling_price_per_unit, selling_price_per_box, current_stock_units,
	minimum_stock_units, is_active, created_at, updated_at`

// List returns products ordered by name, optionally restricted to active or
// low-stock rows.
func (r *PGRepository) List(ctx context.Context, req ListProductsRequest) ([]Product, int, error) {
	where := " WHERE 1=1"
	if req.ActiveOnly {
		where += " AND is_active"
	}
	if req.LowOnly {
		where += " AND current_stock_units <= minimum_stock_units"
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("catalog: count products: %w", err)
	}

	query := "SELECT " + productColumns + " FROM products" + where + " ORDER BY name, size"
	args := []any{}
	if req.PerPage > 0 {
		offset := (req.Page - 1) * req.PerPage
		if offset < 0 {
			offset = 0
		}
		query += " LIMIT $1 OFFSET $2"
		args = append(args, req.PerPage, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog: list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

// Get fetches a product by id.
func (r *PGRepository) Get(ctx context.Context, id string) (Product, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, shared.ErrNotFound
		}
		return Product{}, fmt.Errorf("catalog: get product: %w", err)
	}
	return p, nil
}

// Create inserts a new product.
func (r *PGRepository) Create(ctx context.Context, p Product) (Product, error) {
	query := `
		INSERT INTO products (
			name, size, units_per_box, purchase_price_per_unit,
			selling_price_per_unit, selling_price_per_box,
			current_stock_units, minimum_stock_units, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		p.Name, p.Size, p.UnitsPerBox, p.PurchasePricePerUnit,
		p.SellingPricePerUnit, p.SellingPricePerBox,
		p.CurrentStockUnits, p.MinimumStockUnits, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Product{}, fmt.Errorf("%w: product %s %s", shared.ErrDuplicate, p.Name, p.Size)
		}
		return Product{}, fmt.Errorf("catalog: create product: %w", err)
	}
	return p, nil
}

// Update rewrites all mutable columns of a product. Stock is adjusted only
// through AdjustStock, never here.
func (r *PGRepository) Update(ctx context.Context, p Product) (Product, error) {
	query := `
		UPDATE products SET
			name = $1, size = $2, units_per_box = $3,
			purchase_price_per_unit = $4, selling_price_per_unit = $5,
			selling_price_per_box = $6, minimum_stock_units = $7,
			is_active = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		p.Name, p.Size, p.UnitsPerBox,
		p.PurchasePricePerUnit, p.SellingPricePerUnit,
		p.SellingPricePerBox, p.MinimumStockUnits,
		p.IsActive, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, shared.ErrNotFound
		}
		if isUniqueViolation(err) {
			return Product{}, fmt.Errorf("%w: product %s %s", shared.ErrDuplicate, p.Name, p.Size)
		}
		return Product{}, fmt.Errorf("catalog: update product: %w", err)
	}
	return p, nil
}

// LowStock returns active products at or below their restock threshold.
func (r *PGRepository) LowStock(ctx context.Context) ([]Product, error) {
	query := "SELECT " + productColumns + ` FROM products
		WHERE is_active AND current_stock_units <= minimum_stock_units
		ORDER BY name, size`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog: low stock: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// AdjustStock applies a stock delta in bottle units. Negative deltas carry a
// guard predicate so stock can never be driven below zero: when a concurrent
// sale already consumed the stock, no row matches and the caller gets
// ErrInsufficientStock instead of a negative balance.
func (r *PGRepository) AdjustStock(ctx context.Context, tx pgx.Tx, id string, delta int64) error {
	query := `
		UPDATE products
		SET current_stock_units = current_stock_units + $1, updated_at = NOW()
		WHERE id = $2 AND current_stock_units + $1 >= 0`

	var tag pgconn.CommandTag
	var err error
	if tx != nil {
		tag, err = tx.Exec(ctx, query, delta, id)
	} else {
		tag, err = r.pool.Exec(ctx, query, delta, id)
	}
	if err != nil {
		return fmt.Errorf("catalog: adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: stock changed concurrently", ErrInsufficientStock)
	}
	return nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Size, &p.UnitsPerBox, &p.PurchasePricePerUnit,
		&p.SellingPricePerUnit, &p.SellingPricePerBox, &p.CurrentStockUnits,
		&p.MinimumStockUnits, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ Repository = (*PGRepository)(nil)
