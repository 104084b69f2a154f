package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products. InitialStock, when
// positive on a tracked product, is written through the stock ledger as an
// "initial" movement.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Category     string          `json:"category" validate:"required,oneof=makanan minuman"`
	Description  string          `json:"description,omitempty"`
	IsAvailable  *bool           `json:"is_available,omitempty"`
	Image        string          `json:"image,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	Unit         string          `json:"unit,omitempty" validate:"omitempty,oneof=pcs pack box kg gram ml botol sachet"`
	InitialStock int             `json:"initial_stock,omitempty" validate:"min=0"`
	MinimumStock *int            `json:"minimum_stock,omitempty" validate:"omitempty,min=0"`
	IsTrackStock *bool           `json:"is_track_stock,omitempty"`
}

// UpdateProductRequest body for PUT /api/products/:id. Stock counters are not
// updatable here; they go through the stock endpoints.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Category     *string          `json:"category,omitempty" validate:"omitempty,oneof=makanan minuman"`
	Description  *string          `json:"description,omitempty"`
	IsAvailable  *bool            `json:"is_available,omitempty"`
	Image        *string          `json:"image,omitempty"`
	Unit         *string          `json:"unit,omitempty" validate:"omitempty,oneof=pcs pack box kg gram ml botol sachet"`
	MinimumStock *int             `json:"minimum_stock,omitempty" validate:"omitempty,min=0"`
	IsTrackStock *bool            `json:"is_track_stock,omitempty"`
}

// ProductResponse product representation in API responses.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	IsAvailable     bool            `json:"is_available"`
	Image           string          `json:"image,omitempty"`
	SKU             string          `json:"sku"`
	Unit            string          `json:"unit"`
	CurrentStock    int             `json:"current_stock"`
	MinimumStock    int             `json:"minimum_stock"`
	IsTrackStock    bool            `json:"is_track_stock"`
	LowStockAlert   bool            `json:"low_stock_alert"`
	LastStockUpdate *time.Time      `json:"last_stock_update,omitempty"`
	LastUpdatedBy   string          `json:"last_updated_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
