package stock

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
)

func newBulk(products ...*entity.Product) (*BulkAdjustUseCase, *fakeProductRepo, *fakeMovementRepo) {
	adjuster, productRepo, movementRepo := newLedger(products...)
	return NewBulkAdjustUseCase(adjuster), productRepo, movementRepo
}

func TestBulkAdjust_RestockAll(t *testing.T) {
	uc, _, movementRepo := newBulk(trackedProduct("p1", 2, 15))

	res, err := uc.BulkAdjust(context.Background(), BulkInput{
		ProductIDs: []string{"p1"}, Mode: "restock-all", Quantity: 10, Actor: "admin@fng.id",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.UpdatedCount)
	assert.Equal(t, 1, res.TotalCount)

	// restock-all: target = minimum(15) + quantity(10) = 25.
	require.Len(t, movementRepo.movements, 1)
	mov := movementRepo.movements[0]
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Equal(t, 23, mov.Quantity)
	assert.Equal(t, 25, mov.NewStock)
}

func TestBulkAdjust_BatchIsolation(t *testing.T) {
	uc, productRepo, _ := newBulk(trackedProduct("a", 5, 2), trackedProduct("c", 8, 2))

	res, err := uc.BulkAdjust(context.Background(), BulkInput{
		ProductIDs: []string{"a", "b", "c"}, Mode: "set-all", Quantity: 10, Actor: "admin@fng.id",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.UpdatedCount)
	assert.Equal(t, 3, res.TotalCount)
	require.Len(t, res.Items, 3)

	assert.NoError(t, res.Items[0].Err)
	assert.Equal(t, 10, res.Items[0].NewStock)
	assert.ErrorIs(t, res.Items[1].Err, domain.ErrNotFound)
	assert.NoError(t, res.Items[2].Err)

	// The failing item must not block the one after it.
	stored, _ := productRepo.GetByID(context.Background(), "c")
	assert.Equal(t, 10, stored.CurrentStock)
}

func TestBulkAdjust_UntrackedProductRecordedAsFailure(t *testing.T) {
	untracked := trackedProduct("p2", 3, 1)
	untracked.IsTrackStock = false
	uc, _, _ := newBulk(trackedProduct("p1", 3, 1), untracked)

	res, err := uc.BulkAdjust(context.Background(), BulkInput{
		ProductIDs: []string{"p1", "p2"}, Mode: "add-all", Quantity: 5, Actor: "admin@fng.id",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.UpdatedCount)
	assert.ErrorIs(t, res.Items[1].Err, domain.ErrTrackingDisabled)
}

func TestBulkAdjust_SharedReference(t *testing.T) {
	uc, _, movementRepo := newBulk(trackedProduct("p1", 1, 2), trackedProduct("p2", 4, 2))

	_, err := uc.BulkAdjust(context.Background(), BulkInput{
		ProductIDs: []string{"p1", "p2"}, Mode: "set-all", Quantity: 7, Actor: "admin@fng.id",
	})
	require.NoError(t, err)

	require.Len(t, movementRepo.movements, 2)
	ref := movementRepo.movements[0].Reference
	assert.True(t, strings.HasPrefix(ref, "BULK-SET-ALL-"), "got reference %q", ref)
	assert.Equal(t, ref, movementRepo.movements[1].Reference, "one batch, one correlation tag")
}

func TestBulkAdjust_DuplicateIDsProcessedPerOccurrence(t *testing.T) {
	uc, productRepo, movementRepo := newBulk(trackedProduct("p1", 0, 2))

	res, err := uc.BulkAdjust(context.Background(), BulkInput{
		ProductIDs: []string{"p1", "p1"}, Mode: "add-all", Quantity: 3, Actor: "admin@fng.id",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.UpdatedCount)

	// Sequential processing: the second occurrence sees the first one's write.
	stored, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, 6, stored.CurrentStock)
	require.Len(t, movementRepo.movements, 2)
	assert.Equal(t, 3, movementRepo.movements[1].PreviousStock)
}

func TestBulkAdjust_InvalidInput(t *testing.T) {
	uc, _, _ := newBulk()

	_, err := uc.BulkAdjust(context.Background(), BulkInput{ProductIDs: nil, Mode: "set-all", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.BulkAdjust(context.Background(), BulkInput{ProductIDs: []string{"p1"}, Mode: "drain-all", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.BulkAdjust(context.Background(), BulkInput{ProductIDs: []string{"p1"}, Mode: "set-all", Quantity: -4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
