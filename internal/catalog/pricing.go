package catalog

// Quote is the priced result of a sale or purchase line.
type Quote struct {
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// PriceSale prices a sale of qty units of p. Box sales use the independently
// configured per-box selling price, which may carry a bulk discount or
// premium relative to the per-bottle price.
func PriceSale(p Product, qty int64, unit UnitType) (Quote, error) {
	if qty <= 0 {
		return Quote{}, ErrInvalidQuantity
	}
	unitPrice := p.SellingPricePerUnit
	if unit == UnitBox {
		unitPrice = p.SellingPricePerBox
	}
	return Quote{UnitPrice: unitPrice, Total: unitPrice * float64(qty)}, nil
}

// PricePurchase prices a stock purchase of qty units of p. There is no
// separate per-box purchase price: a box always costs units-per-box times the
// per-bottle purchase price. This asymmetry with PriceSale is intentional.
func PricePurchase(p Product, qty int64, unit UnitType) (Quote, error) {
	if qty <= 0 {
		return Quote{}, ErrInvalidQuantity
	}
	unitPrice := p.PurchasePricePerUnit
	if unit == UnitBox {
		perBox, err := BottlesPerBox(p)
		if err != nil {
			return Quote{}, err
		}
		unitPrice = p.PurchasePricePerUnit * float64(perBox)
	}
	return Quote{UnitPrice: unitPrice, Total: unitPrice * float64(qty)}, nil
}
