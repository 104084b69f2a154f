package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/stock"
)

// AdjustStockUseCase is the stock ledger writer: it moves a product's running
// counter and appends the matching movement row in one transaction, with the
// product row locked for the duration (SELECT FOR UPDATE).
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase builds the use case.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustInput absolute-target adjustment. Type is optional; when empty the
// movement type is derived from the sign of the delta. Reference defaults to
// an ADJ-<millis> tag.
type AdjustInput struct {
	ProductID string
	Target    int
	Actor     string
	Type      string
	Reference string
	Notes     string
}

// AdjustResult the updated product, the created movement and the signed
// delta (target - previous) for caller display.
type AdjustResult struct {
	Product  *entity.Product
	Movement *entity.StockMovement
	Delta    int
}

// Adjust sets the product's stock to an absolute target. Fails with
// ErrNotFound, ErrTrackingDisabled or ErrInvalidInput (negative target)
// before any write.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in AdjustInput) (*AdjustResult, error) {
	if in.Target < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.run(ctx, in.ProductID, in.Actor, in.Type, in.Reference, in.Notes,
		func(p *entity.Product) (int, error) { return in.Target, nil })
}

// AdjustByMode resolves the target from a set/add/subtract request against
// the locked product state, so concurrent adjustments to the same product
// cannot interleave between read and write. A computed target below zero is
// rejected, not clamped.
func (uc *AdjustStockUseCase) AdjustByMode(ctx context.Context, productID, mode string, quantity int, actor, notes string) (*AdjustResult, error) {
	if !stock.ValidMode(mode) || quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.run(ctx, productID, actor, "", "", notes,
		func(p *entity.Product) (int, error) { return stock.Target(mode, p.CurrentStock, quantity) })
}

// run locks the product row, resolves the target against the locked state,
// recomputes the low-stock flag and persists counter plus movement
// atomically.
func (uc *AdjustStockUseCase) run(
	ctx context.Context,
	productID, actor, movementType, reference, notes string,
	resolve func(*entity.Product) (int, error),
) (*AdjustResult, error) {
	var res *AdjustResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.IsTrackStock {
			return domain.ErrTrackingDisabled
		}

		target, err := resolve(product)
		if err != nil {
			return err
		}
		if target < 0 {
			return domain.ErrInvalidInput
		}

		previous := product.CurrentStock
		delta := target - previous
		now := time.Now()

		movType := movementType
		if movType == "" {
			movType = stock.ResolveType(delta)
		}
		ref := reference
		if ref == "" {
			ref = fmt.Sprintf("ADJ-%d", now.UnixMilli())
		}

		product.CurrentStock = target
		product.LowStockAlert = stock.LowStockAlert(product.IsTrackStock, target, product.MinimumStock)
		product.LastStockUpdate = &now
		product.LastUpdatedBy = actor
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(ctx, product.ID, target, product.LowStockAlert, actor, now); err != nil {
			return err
		}

		movement := &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Type:          movType,
			Quantity:      abs(delta),
			PreviousStock: previous,
			NewStock:      target,
			Reference:     ref,
			Notes:         notes,
			AdjustedBy:    actor,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}

		res = &AdjustResult{Product: product, Movement: movement, Delta: delta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
