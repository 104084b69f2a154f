package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
)

// StockStats aggregates the stock dashboard counters. TotalValue is the
// inventory valuation (currentStock x price) over tracked products.
type StockStats struct {
	TotalItems int
	LowStock   int
	OutOfStock int
	TotalValue decimal.Decimal
}

// ProductRepository is the persistence port for products (DIP).
// Lookups return (nil, nil) when the row does not exist.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate locks the product row until the surrounding transaction
	// ends. Only meaningful on a repository bound to a transaction.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock writes the running counter and its derived flag. Callers
	// must go through the stock ledger; direct use bypasses the audit trail.
	UpdateStock(ctx context.Context, productID string, newStock int, lowStockAlert bool, updatedBy string, at time.Time) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
	StockStats(ctx context.Context) (*StockStats, error)
}
