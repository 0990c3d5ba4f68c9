package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil, nil, 0)

	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.TotalPurchases)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalCost)
	assert.Zero(t, summary.Profit)
	assert.Empty(t, summary.TopProducts)
}

func TestAggregateTotalsAndProfit(t *testing.T) {
	sales := []SaleRecord{
		{ProductID: "a", ProductName: "Air Mineral", Quantity: 10, TotalAmount: 100000},
		{ProductID: "b", ProductName: "Air Galon", Quantity: 2, TotalAmount: 50000},
	}
	purchases := []PurchaseRecord{
		{ProductID: "a", TotalAmount: 60000},
		{ProductID: "b", TotalAmount: 20000},
	}

	summary := Aggregate(sales, purchases, 0)

	assert.Equal(t, 2, summary.TotalSales)
	assert.Equal(t, 2, summary.TotalPurchases)
	assert.Equal(t, 150000.0, summary.TotalRevenue)
	assert.Equal(t, 80000.0, summary.TotalCost)
	assert.Equal(t, 70000.0, summary.Profit)
}

func TestAggregateGroupsByProduct(t *testing.T) {
	sales := []SaleRecord{
		{ProductID: "a", ProductName: "Air Mineral", Quantity: 2, TotalAmount: 10000},
		{ProductID: "b", ProductName: "Air Galon", Quantity: 1, TotalAmount: 20000},
		{ProductID: "a", ProductName: "Air Mineral", Quantity: 3, TotalAmount: 15000},
	}

	summary := Aggregate(sales, nil, 0)

	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "a", summary.TopProducts[0].ProductID)
	assert.Equal(t, int64(5), summary.TopProducts[0].QuantitySold)
	assert.Equal(t, 25000.0, summary.TopProducts[0].Revenue)
	assert.Equal(t, "b", summary.TopProducts[1].ProductID)
}

func TestAggregateRanksByRevenueDescending(t *testing.T) {
	sales := []SaleRecord{
		{ProductID: "small", ProductName: "Gelas", TotalAmount: 1000},
		{ProductID: "big", ProductName: "Galon", TotalAmount: 90000},
		{ProductID: "mid", ProductName: "Botol", TotalAmount: 40000},
	}

	summary := Aggregate(sales, nil, 0)

	require.Len(t, summary.TopProducts, 3)
	assert.Equal(t, "big", summary.TopProducts[0].ProductID)
	assert.Equal(t, "mid", summary.TopProducts[1].ProductID)
	assert.Equal(t, "small", summary.TopProducts[2].ProductID)
}

func TestAggregateTiesKeepEncounterOrder(t *testing.T) {
	sales := []SaleRecord{
		{ProductID: "first", ProductName: "A", TotalAmount: 5000},
		{ProductID: "second", ProductName: "B", TotalAmount: 5000},
		{ProductID: "third", ProductName: "C", TotalAmount: 5000},
	}

	summary := Aggregate(sales, nil, 0)

	require.Len(t, summary.TopProducts, 3)
	assert.Equal(t, "first", summary.TopProducts[0].ProductID)
	assert.Equal(t, "second", summary.TopProducts[1].ProductID)
	assert.Equal(t, "third", summary.TopProducts[2].ProductID)
}

func TestAggregateTruncatesToTopN(t *testing.T) {
	sales := []SaleRecord{
		{ProductID: "a", ProductName: "A", TotalAmount: 60000},
		{ProductID: "b", ProductName: "B", TotalAmount: 50000},
		{ProductID: "c", ProductName: "C", TotalAmount: 40000},
		{ProductID: "d", ProductName: "D", TotalAmount: 30000},
		{ProductID: "e", ProductName: "E", TotalAmount: 20000},
		{ProductID: "f", ProductName: "F", TotalAmount: 10000},
	}

	summary := Aggregate(sales, nil, 0)
	require.Len(t, summary.TopProducts, DefaultTopN)
	assert.Equal(t, "e", summary.TopProducts[4].ProductID)

	summary = Aggregate(sales, nil, 2)
	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "b", summary.TopProducts[1].ProductID)
}

func TestAggregateUnknownProductName(t *testing.T) {
	sales := []SaleRecord{
		{ProductID: "ghost", ProductName: "", TotalAmount: 5000},
	}

	summary := Aggregate(sales, nil, 0)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, UnknownProduct, summary.TopProducts[0].ProductName)
}

func TestAggregateFirstNameWinsForGroup(t *testing.T) {
	sales := []SaleRecord{
		{ProductID: "a", ProductName: "Air Mineral", TotalAmount: 1000},
		{ProductID: "a", ProductName: "Renamed", TotalAmount: 1000},
	}

	summary := Aggregate(sales, nil, 0)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "Air Mineral", summary.TopProducts[0].ProductName)
	assert.Equal(t, 2000.0, summary.TopProducts[0].Revenue)
}
