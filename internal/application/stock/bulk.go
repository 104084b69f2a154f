package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/stock"
)

// BulkAdjustUseCase applies one adjustment formula across many products,
// one ledger write per product, collecting per-item outcomes without
// aborting the batch.
type BulkAdjustUseCase struct {
	adjuster *AdjustStockUseCase
}

// NewBulkAdjustUseCase builds the use case.
func NewBulkAdjustUseCase(adjuster *AdjustStockUseCase) *BulkAdjustUseCase {
	return &BulkAdjustUseCase{adjuster: adjuster}
}

// BulkInput one bulk request. ProductIDs keep caller order; duplicates are
// processed once per occurrence.
type BulkInput struct {
	ProductIDs []string
	Mode       string // set-all, add-all, restock-all
	Quantity   int
	Actor      string
	Notes      string
}

// BulkItemResult outcome for one product. Err is nil on success.
type BulkItemResult struct {
	ProductID string
	NewStock  int
	Delta     int
	Err       error
}

// BulkResult aggregate outcome of a bulk call.
type BulkResult struct {
	UpdatedCount int
	TotalCount   int
	Items        []BulkItemResult
}

// BulkAdjust runs the ledger writer once per product id, sequentially and in
// the supplied order, so duplicate ids for the same product cannot
// interleave. All movements from one call share a BULK-<MODE>-<millis>
// reference. One item's failure is recorded and the rest of the batch
// continues; there is no cross-item rollback.
func (uc *BulkAdjustUseCase) BulkAdjust(ctx context.Context, in BulkInput) (*BulkResult, error) {
	if len(in.ProductIDs) == 0 || in.Quantity < 0 || !stock.ValidBulkMode(in.Mode) {
		return nil, domain.ErrInvalidInput
	}

	reference := fmt.Sprintf("BULK-%s-%d", strings.ToUpper(in.Mode), time.Now().UnixMilli())
	notes := in.Notes
	if notes == "" {
		notes = fmt.Sprintf("Bulk %s to %d", in.Mode, in.Quantity)
	}

	result := &BulkResult{TotalCount: len(in.ProductIDs)}
	for _, productID := range in.ProductIDs {
		item := BulkItemResult{ProductID: productID}
		res, err := uc.adjuster.run(ctx, productID, in.Actor, "", reference, notes,
			func(p *entity.Product) (int, error) {
				// Bulk targets clamp at zero instead of rejecting.
				return stock.BulkTarget(in.Mode, p.CurrentStock, p.MinimumStock, in.Quantity)
			})
		if err != nil {
			item.Err = err
		} else {
			item.NewStock = res.Product.CurrentStock
			item.Delta = res.Delta
			result.UpdatedCount++
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}
