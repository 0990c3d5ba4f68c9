package catalog

// BottlesPerBox returns how many bottles make up one box of p.
func BottlesPerBox(p Product) (int64, error) {
	if p.UnitsPerBox <= 0 {
		return 0, ErrInvalidProduct
	}
	return p.UnitsPerBox, nil
}

// ToBottles converts a quantity expressed in unit into bottle units.
// Bottle quantities pass through unchanged.
func ToBottles(p Product, qty int64, unit UnitType) (int64, error) {
	if unit != UnitBox {
		return qty, nil
	}
	perBox, err := BottlesPerBox(p)
	if err != nil {
		return 0, err
	}
	return qty * perBox, nil
}

// ToBoxes converts a bottle count into whole boxes. A partial box is
// truncated, never reported as a fractional box.
func ToBoxes(p Product, bottles int64) (int64, error) {
	perBox, err := BottlesPerBox(p)
	if err != nil {
		return 0, err
	}
	return bottles / perBox, nil
}
