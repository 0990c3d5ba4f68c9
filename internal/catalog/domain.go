package catalog

import (
	"errors"
	"time"
)

// UnitType identifies the unit a quantity is expressed in. Wire values match
// the persisted enum: "botol" is a single bottle, "dus" is a box of bottles.
type UnitType string

const (
	UnitBottle UnitType = "botol"
	UnitBox    UnitType = "dus"
)

// Valid reports whether u is a recognized unit.
func (u UnitType) Valid() bool {
	return u == UnitBottle || u == UnitBox
}

// Sentinel errors for the arithmetic core.
var (
	// ErrInvalidProduct indicates a malformed units-per-box configuration.
	ErrInvalidProduct = errors.New("catalog: invalid product configuration")
	// ErrInvalidQuantity indicates a non-positive requested quantity.
	ErrInvalidQuantity = errors.New("catalog: quantity must be positive")
	// ErrInsufficientStock indicates the requested quantity exceeds available stock.
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
)

// Product is a bottled-water product. Stock is always stored in bottle units;
// box quantities are derived. Selling price per box is configured
// independently of the per-bottle price, purchase price is per bottle only.
type Product struct {
	ID                   string    `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	Size                 string    `json:"size" db:"size"`
	UnitsPerBox          int64     `json:"units_per_box" db:"units_per_box"`
	PurchasePricePerUnit float64   `json:"purchase_price_per_unit" db:"purchase_price_per_unit"`
	SellingPricePerUnit  float64   `json:"selling_price_per_unit" db:"selling_price_per_unit"`
	SellingPricePerBox   float64   `json:"selling_price_per_box" db:"selling_price_per_box"`
	CurrentStockUnits    int64     `json:"current_stock_units" db:"current_stock_units"`
	MinimumStockUnits    int64     `json:"minimum_stock_units" db:"minimum_stock_units"`
	IsActive             bool      `json:"is_active" db:"is_active"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// ProductView is a Product decorated with derived stock figures for listings.
type ProductView struct {
	Product
	StockBoxes int64 `json:"stock_boxes"`
	LowStock   bool  `json:"low_stock"`
}

type CreateProductRequest struct {
	Name                 string  `json:"name" validate:"required,max=200"`
	Size                 string  `json:"size" validate:"required,max=50"`
	UnitsPerBox          int64   `json:"units_per_box" validate:"required,gte=1"`
	PurchasePricePerUnit float64 `json:"purchase_price_per_unit" validate:"gte=0"`
	SellingPricePerUnit  float64 `json:"selling_price_per_unit" validate:"gte=0"`
	SellingPricePerBox   float64 `json:"selling_price_per_box" validate:"gte=0"`
	CurrentStockUnits    int64   `json:"current_stock_units" validate:"gte=0"`
	MinimumStockUnits    int64   `json:"minimum_stock_units" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name                 *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Size                 *string  `json:"size,omitempty" validate:"omitempty,max=50"`
	UnitsPerBox          *int64   `json:"units_per_box,omitempty" validate:"omitempty,gte=1"`
	PurchasePricePerUnit *float64 `json:"purchase_price_per_unit,omitempty" validate:"omitempty,gte=0"`
	SellingPricePerUnit  *float64 `json:"selling_price_per_unit,omitempty" validate:"omitempty,gte=0"`
	SellingPricePerBox   *float64 `json:"selling_price_per_box,omitempty" validate:"omitempty,gte=0"`
	MinimumStockUnits    *int64   `json:"minimum_stock_units,omitempty" validate:"omitempty,gte=0"`
	IsActive             *bool    `json:"is_active,omitempty"`
}

type ListProductsRequest struct {
	ActiveOnly bool
	LowOnly    bool
	Page       int
	PerPage    int
}
