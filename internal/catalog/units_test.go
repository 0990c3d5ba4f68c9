package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitProduct(unitsPerBox, stock, minimum int64) Product {
	return Product{
		ID:                   "p-1",
		Name:                 "Air Mineral",
		Size:                 "600ml",
		UnitsPerBox:          unitsPerBox,
		PurchasePricePerUnit: 3000,
		SellingPricePerUnit:  5000,
		SellingPricePerBox:   55000,
		CurrentStockUnits:    stock,
		MinimumStockUnits:    minimum,
		IsActive:             true,
	}
}

func TestBottlesPerBox(t *testing.T) {
	perBox, err := BottlesPerBox(unitProduct(12, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(12), perBox)

	_, err = BottlesPerBox(unitProduct(0, 0, 0))
	require.ErrorIs(t, err, ErrInvalidProduct)

	_, err = BottlesPerBox(unitProduct(-3, 0, 0))
	require.ErrorIs(t, err, ErrInvalidProduct)
}

func TestToBottles(t *testing.T) {
	p := unitProduct(12, 0, 0)

	bottles, err := ToBottles(p, 7, UnitBottle)
	require.NoError(t, err)
	assert.Equal(t, int64(7), bottles)

	bottles, err = ToBottles(p, 3, UnitBox)
	require.NoError(t, err)
	assert.Equal(t, int64(36), bottles)

	_, err = ToBottles(unitProduct(0, 0, 0), 3, UnitBox)
	require.ErrorIs(t, err, ErrInvalidProduct)
}

func TestToBoxesTruncatesPartialBox(t *testing.T) {
	p := unitProduct(12, 0, 0)

	boxes, err := ToBoxes(p, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(2), boxes)

	boxes, err = ToBoxes(p, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(0), boxes)

	boxes, err = ToBoxes(p, 24)
	require.NoError(t, err)
	assert.Equal(t, int64(2), boxes)
}

func TestBoxRoundTripNeverGains(t *testing.T) {
	p := unitProduct(12, 0, 0)

	for _, bottles := range []int64{0, 1, 11, 12, 13, 24, 30, 100} {
		boxes, err := ToBoxes(p, bottles)
		require.NoError(t, err)
		back, err := ToBottles(p, boxes, UnitBox)
		require.NoError(t, err)
		assert.LessOrEqual(t, back, bottles)
	}
}

func TestUnitTypeValid(t *testing.T) {
	assert.True(t, UnitBottle.Valid())
	assert.True(t, UnitBox.Valid())
	assert.False(t, UnitType("karton").Valid())
	assert.False(t, UnitType("").Valid())
}
