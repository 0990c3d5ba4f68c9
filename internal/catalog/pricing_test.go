package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceSaleByBottle(t *testing.T) {
	p := unitProduct(12, 30, 10)

	quote, err := PriceSale(p, 4, UnitBottle)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, quote.UnitPrice)
	assert.Equal(t, 20000.0, quote.Total)
}

func TestPriceSaleByBoxUsesConfiguredBoxPrice(t *testing.T) {
	// 55000 per box, not 12 x 5000 = 60000. The box price is independent.
	p := unitProduct(12, 30, 10)

	quote, err := PriceSale(p, 2, UnitBox)
	require.NoError(t, err)
	assert.Equal(t, 55000.0, quote.UnitPrice)
	assert.Equal(t, 110000.0, quote.Total)
}

func TestPriceSaleRejectsNonPositiveQuantity(t *testing.T) {
	p := unitProduct(12, 30, 10)

	_, err := PriceSale(p, 0, UnitBottle)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = PriceSale(p, -1, UnitBox)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPricePurchaseByBottle(t *testing.T) {
	p := unitProduct(12, 30, 10)

	quote, err := PricePurchase(p, 10, UnitBottle)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, quote.UnitPrice)
	assert.Equal(t, 30000.0, quote.Total)
}

func TestPricePurchaseByBoxIsAlwaysDerived(t *testing.T) {
	p := unitProduct(12, 30, 10)

	quote, err := PricePurchase(p, 5, UnitBox)
	require.NoError(t, err)
	assert.Equal(t, 36000.0, quote.UnitPrice)
	assert.Equal(t, 180000.0, quote.Total)
}

func TestPricePurchaseByBoxInvalidUnitsPerBox(t *testing.T) {
	p := unitProduct(0, 30, 10)

	_, err := PricePurchase(p, 1, UnitBox)
	require.ErrorIs(t, err, ErrInvalidProduct)

	// Bottle purchases never touch the box conversion.
	quote, err := PricePurchase(p, 1, UnitBottle)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, quote.UnitPrice)
}

func TestPricePurchaseRejectsNonPositiveQuantity(t *testing.T) {
	p := unitProduct(12, 30, 10)

	_, err := PricePurchase(p, 0, UnitBottle)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}
