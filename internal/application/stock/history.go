package stock

import (
	"context"

	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

// Default page sizes for the history views.
const (
	DefaultHistoryLimit = 50
	DefaultRecentLimit  = 20
)

// HistoryUseCase read side of the ledger: per-product history and the recent
// movements feed.
type HistoryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewHistoryUseCase builds the use case.
func NewHistoryUseCase(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *HistoryUseCase {
	return &HistoryUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetStockHistory returns a product's movements, newest first.
func (uc *HistoryUseCase) GetStockHistory(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movementRepo.ListByProduct(ctx, productID, limit)
}

// GetRecentMovements returns the latest movements across all products.
func (uc *HistoryUseCase) GetRecentMovements(ctx context.Context, limit int) ([]*repository.MovementWithProduct, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return uc.movementRepo.ListRecent(ctx, limit)
}
