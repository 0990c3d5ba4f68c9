package catalog

import "fmt"

// AvailableQuantity returns how much of p can be sold in the requested unit.
// Bottle availability is the raw stock count, box availability is whole boxes.
func AvailableQuantity(p Product, unit UnitType) (int64, error) {
	if unit != UnitBox {
		return p.CurrentStockUnits, nil
	}
	return ToBoxes(p, p.CurrentStockUnits)
}

// IsLowStock reports whether p is at or below its restock threshold. Stock
// exactly at the minimum counts as low.
func IsLowStock(p Product) bool {
	return p.CurrentStockUnits <= p.MinimumStockUnits
}

// CheckSufficient fails with ErrInsufficientStock when qty exceeds the
// available quantity in the requested unit. The check runs against an
// in-memory snapshot, so a concurrent sale can still win the race; the
// repository's conditional decrement is what actually guards the stock row.
func CheckSufficient(p Product, qty int64, unit UnitType) error {
	available, err := AvailableQuantity(p, unit)
	if err != nil {
		return err
	}
	if qty > available {
		return fmt.Errorf("%w: requested %d %s, available %d", ErrInsufficientStock, qty, unit, available)
	}
	return nil
}
