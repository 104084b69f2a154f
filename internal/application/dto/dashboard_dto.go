package dto

import "github.com/shopspring/decimal"

// StockSummaryResponse counters for the stock dashboard. TotalValue is the
// inventory valuation over tracked products (currentStock x price).
type StockSummaryResponse struct {
	TotalItems int             `json:"total_items"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
}
