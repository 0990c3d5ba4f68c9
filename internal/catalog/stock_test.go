package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableQuantity(t *testing.T) {
	p := unitProduct(12, 30, 10)

	bottles, err := AvailableQuantity(p, UnitBottle)
	require.NoError(t, err)
	assert.Equal(t, int64(30), bottles)

	boxes, err := AvailableQuantity(p, UnitBox)
	require.NoError(t, err)
	assert.Equal(t, int64(2), boxes)
}

func TestIsLowStockBoundary(t *testing.T) {
	assert.True(t, IsLowStock(unitProduct(12, 9, 10)))
	// Stock exactly at the minimum is low.
	assert.True(t, IsLowStock(unitProduct(12, 10, 10)))
	assert.False(t, IsLowStock(unitProduct(12, 11, 10)))
	assert.True(t, IsLowStock(unitProduct(12, 0, 0)))
}

func TestCheckSufficient(t *testing.T) {
	p := unitProduct(12, 30, 10)

	require.NoError(t, CheckSufficient(p, 30, UnitBottle))
	require.ErrorIs(t, CheckSufficient(p, 31, UnitBottle), ErrInsufficientStock)

	require.NoError(t, CheckSufficient(p, 2, UnitBox))
	// 30 bottles is only 2 whole boxes.
	require.ErrorIs(t, CheckSufficient(p, 3, UnitBox), ErrInsufficientStock)
}

func TestCheckSufficientInvalidProduct(t *testing.T) {
	p := unitProduct(0, 30, 10)
	require.ErrorIs(t, CheckSufficient(p, 1, UnitBox), ErrInvalidProduct)
}
