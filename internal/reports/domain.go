package reports

import "time"

// SaleRecord is one sale row as the aggregator consumes it.
type SaleRecord struct {
	ProductID   string
	ProductName string
	ProductSize string
	Quantity    int64
	TotalAmount float64
}

// PurchaseRecord is one purchase row as the aggregator consumes it.
type PurchaseRecord struct {
	ProductID   string
	TotalAmount float64
}

// ProductPerformance ranks one product by the revenue it generated.
type ProductPerformance struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductSize  string  `json:"product_size"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// Summary is the aggregated sales and purchasing report.
type Summary struct {
	TotalSales     int                  `json:"total_sales"`
	TotalPurchases int                  `json:"total_purchases"`
	TotalRevenue   float64              `json:"total_revenue"`
	TotalCost      float64              `json:"total_cost"`
	Profit         float64              `json:"profit"`
	TopProducts    []ProductPerformance `json:"top_products"`
}

// DashboardStats backs the landing page counters.
type DashboardStats struct {
	ActiveProducts    int     `json:"active_products"`
	LowStockProducts  int     `json:"low_stock_products"`
	TodayTransactions int     `json:"today_transactions"`
	TodayRevenue      float64 `json:"today_revenue"`
}

// Period bounds a report query. Zero values mean unbounded.
type Period struct {
	From time.Time
	To   time.Time
}
