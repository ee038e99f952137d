package models

// TopProduct is one row of the daily bestseller statistic.
type TopProduct struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	QuantitySold int     `json:"quantity_sold"`
}

// DashboardSummary bundles the statistics shown on the overview screen.
type DashboardSummary struct {
	Revenue     float64      `json:"revenue"`
	SaleCount   int          `json:"sale_count"`
	TopProducts []TopProduct `json:"top_products"`
	LowStock    []Product    `json:"low_stock"`
}
