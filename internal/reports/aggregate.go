package reports

import "sort"

// DefaultTopN is how many top products a summary carries unless the caller
// asks for a different count.
const DefaultTopN = 5

// UnknownProduct labels sales whose product row no longer resolves.
const UnknownProduct = "Unknown"

// Aggregate folds sale and purchase records into a Summary. Products are
// grouped in the order they are first encountered; the name and size of the
// first record win for the whole group. Ranking is by revenue descending and
// stable, so equal-revenue products keep their encounter order. A topN of
// zero or less falls back to DefaultTopN.
func Aggregate(sales []SaleRecord, purchases []PurchaseRecord, topN int) Summary {
	if topN <= 0 {
		topN = DefaultTopN
	}

	summary := Summary{
		TotalSales:     len(sales),
		TotalPurchases: len(purchases),
	}

	index := make(map[string]int)
	var ranked []ProductPerformance

	for _, s := range sales {
		summary.TotalRevenue += s.TotalAmount

		i, ok := index[s.ProductID]
		if !ok {
			name := s.ProductName
			if name == "" {
				name = UnknownProduct
			}
			index[s.ProductID] = len(ranked)
			ranked = append(ranked, ProductPerformance{
				ProductID:   s.ProductID,
				ProductName: name,
				ProductSize: s.ProductSize,
			})
			i = len(ranked) - 1
		}
		ranked[i].QuantitySold += s.Quantity
		ranked[i].Revenue += s.TotalAmount
	}

	for _, p := range purchases {
		summary.TotalCost += p.TotalAmount
	}
	summary.Profit = summary.TotalRevenue - summary.TotalCost

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Revenue > ranked[b].Revenue
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	summary.TopProducts = ranked

	return summary
}
