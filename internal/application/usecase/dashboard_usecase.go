package usecase

import (
	"context"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

// DashboardUseCase aggregates the stock dashboard counters.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo}
}

// StockSummary returns item counts, alert counts and the inventory valuation
// (currentStock x price over tracked products).
func (uc *DashboardUseCase) StockSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	stats, err := uc.productRepo.StockStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryResponse{
		TotalItems: stats.TotalItems,
		LowStock:   stats.LowStock,
		OutOfStock: stats.OutOfStock,
		TotalValue: stats.TotalValue,
	}, nil
}
