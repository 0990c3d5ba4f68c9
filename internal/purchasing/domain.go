package purchasing

import (
	"time"

	"github.com/toriyu-water/toriyu-pos/internal/catalog"
)

// Order is a recorded stock purchase from a supplier. The box purchase
// price is always derived from the per-bottle price, there is no separately
// configured per-box cost.
type Order struct {
	ID           string           `json:"id" db:"id"`
	ProductID    string           `json:"product_id" db:"product_id"`
	SupplierName string           `json:"supplier_name" db:"supplier_name"`
	Quantity     int64            `json:"quantity" db:"quantity"`
	UnitType     catalog.UnitType `json:"unit_type" db:"unit_type"`
	PricePerUnit float64          `json:"price_per_unit" db:"price_per_unit"`
	TotalAmount  float64          `json:"total_amount" db:"total_amount"`
	Notes        string           `json:"notes,omitempty" db:"notes"`
	CreatedBy    string           `json:"created_by" db:"created_by"`
	PurchaseDate time.Time        `json:"purchase_date" db:"purchase_date"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}

// OrderView is an Order joined with its product for listings.
type OrderView struct {
	Order
	ProductName string `json:"product_name"`
	ProductSize string `json:"product_size"`
}

type CreateOrderRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	SupplierName string `json:"supplier_name" validate:"required,max=200"`
	Quantity     int64  `json:"quantity" validate:"required,gte=1"`
	UnitType     string `json:"unit_type" validate:"required,oneof=botol dus"`
	Notes        string `json:"notes" validate:"max=500"`
}

type ListOrdersRequest struct {
	ProductID string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}
