package repository

import (
	"context"

	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
)

// MovementWithProduct is a movement joined with the product fields the
// history views display.
type MovementWithProduct struct {
	entity.StockMovement
	ProductName string
	ProductSKU  string
	ProductUnit string
}

// StockMovementRepository is the persistence port for the append-only stock
// ledger. There is deliberately no update or delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct returns movements for one product, newest first.
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error)
	// ListRecent returns the latest movements across all products, newest
	// first, with product name/sku/unit joined in.
	ListRecent(ctx context.Context, limit int) ([]*MovementWithProduct, error)
}
