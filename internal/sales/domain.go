package sales

import (
	"time"

	"github.com/toriyu-water/toriyu-pos/internal/catalog"
)

// Transaction is a recorded sale. Quantity is expressed in UnitType units,
// TotalAmount is the quantity times the applied unit price at sale time.
type Transaction struct {
	ID              string           `json:"id" db:"id"`
	ProductID       string           `json:"product_id" db:"product_id"`
	Quantity        int64            `json:"quantity" db:"quantity"`
	UnitType        catalog.UnitType `json:"unit_type" db:"unit_type"`
	PricePerUnit    float64          `json:"price_per_unit" db:"price_per_unit"`
	TotalAmount     float64          `json:"total_amount" db:"total_amount"`
	Notes           string           `json:"notes,omitempty" db:"notes"`
	CreatedBy       string           `json:"created_by" db:"created_by"`
	TransactionDate time.Time        `json:"transaction_date" db:"transaction_date"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
}

// TransactionView is a Transaction joined with its product for listings.
type TransactionView struct {
	Transaction
	ProductName string `json:"product_name"`
	ProductSize string `json:"product_size"`
}

type CreateSaleRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,gte=1"`
	UnitType  string `json:"unit_type" validate:"required,oneof=botol dus"`
	Notes     string `json:"notes" validate:"max=500"`
}

type ListSalesRequest struct {
	ProductID string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}
