package dto

import "time"

// StockAdjustmentRequest body for PUT /api/products/:id/stock.
// The server resolves the absolute target from mode and quantity; a target
// below zero is rejected on this path.
type StockAdjustmentRequest struct {
	Mode     string `json:"mode" validate:"required,oneof=set add subtract"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Notes    string `json:"notes,omitempty"`
}

// BulkStockUpdateRequest body for PUT /api/products/bulk-stock-update.
type BulkStockUpdateRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1,dive,required"`
	Mode       string   `json:"mode" validate:"required,oneof=set-all add-all restock-all"`
	Quantity   int      `json:"quantity" validate:"min=0"`
	Notes      string   `json:"notes,omitempty"`
}

// MovementResponse one ledger entry.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Reference     string    `json:"reference,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	AdjustedBy    string    `json:"adjusted_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovementProductRef product fields shown next to a movement in history views.
type MovementProductRef struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
	Unit string `json:"unit"`
}

// MovementWithProductResponse a movement plus its product reference.
type MovementWithProductResponse struct {
	MovementResponse
	Product MovementProductRef `json:"product"`
}

// StockAdjustmentResponse result of a single adjustment.
type StockAdjustmentResponse struct {
	Message  string           `json:"message"`
	Product  AdjustedProduct  `json:"product"`
	Movement MovementResponse `json:"movement"`
}

// AdjustedProduct before/after view for caller display.
type AdjustedProduct struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	OldStock      int    `json:"old_stock"`
	NewStock      int    `json:"new_stock"`
	Difference    int    `json:"difference"`
	LowStockAlert bool   `json:"low_stock_alert"`
}

// BulkItemResponse per-product outcome of a bulk update. Error is empty on
// success.
type BulkItemResponse struct {
	ProductID string `json:"product_id"`
	NewStock  int    `json:"new_stock,omitempty"`
	Delta     int    `json:"delta,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BulkStockUpdateResponse aggregate result of a bulk update.
type BulkStockUpdateResponse struct {
	Message      string             `json:"message"`
	UpdatedCount int                `json:"updated_count"`
	TotalCount   int                `json:"total_count"`
	Items        []BulkItemResponse `json:"items"`
}
