package stock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ─────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products  map[string]*entity.Product
	updateErr error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		cp := *p
		m[p.ID] = &cp
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, newStock int, lowStockAlert bool, updatedBy string, at time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	p.LowStockAlert = lowStockAlert
	p.LastUpdatedBy = updatedBy
	p.LastStockUpdate = &at
	p.UpdatedAt = at
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) StockStats(_ context.Context) (*repository.StockStats, error) {
	return &repository.StockStats{TotalValue: decimal.Zero}, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
	createErr error
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListRecent(_ context.Context, limit int) ([]*repository.MovementWithProduct, error) {
	var out []*repository.MovementWithProduct
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, &repository.MovementWithProduct{StockMovement: *r.movements[i]})
	}
	return out, nil
}

type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.StockMovementRepository) error) error {
	return fn(t.products, t.movements)
}

func newLedger(products ...*entity.Product) (*AdjustStockUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movementRepo := &fakeMovementRepo{}
	return NewAdjustStockUseCase(&fakeTxRunner{products: productRepo, movements: movementRepo}), productRepo, movementRepo
}

func trackedProduct(id string, current, minimum int) *entity.Product {
	return &entity.Product{
		ID:           id,
		Name:         "Es Teh Manis",
		Category:     entity.CategoryDrink,
		Price:        decimal.NewFromInt(5000),
		Unit:         entity.UnitPcs,
		CurrentStock: current,
		MinimumStock: minimum,
		IsTrackStock: true,
		IsAvailable:  true,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ledger writer
// ─────────────────────────────────────────────────────────────────────────────

func TestAdjust_SetBelowMinimum(t *testing.T) {
	uc, productRepo, movementRepo := newLedger(trackedProduct("p1", 20, 10))

	res, err := uc.Adjust(context.Background(), AdjustInput{ProductID: "p1", Target: 5, Actor: "admin@fng.id"})
	require.NoError(t, err)

	// Conservation: newStock - previousStock == delta, quantity == |delta|.
	assert.Equal(t, -15, res.Delta)
	assert.Equal(t, 5, res.Product.CurrentStock)
	assert.True(t, res.Product.LowStockAlert, "5 <= minimum 10 must raise the alert")
	assert.Equal(t, entity.MovementTypeOut, res.Movement.Type)
	assert.Equal(t, 15, res.Movement.Quantity)
	assert.Equal(t, 20, res.Movement.PreviousStock)
	assert.Equal(t, 5, res.Movement.NewStock)
	assert.Equal(t, "admin@fng.id", res.Movement.AdjustedBy)
	assert.NotEmpty(t, res.Movement.Reference)

	// The write is visible through the repository, one ledger row appended.
	stored, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, 5, stored.CurrentStock)
	assert.True(t, stored.LowStockAlert)
	assert.Len(t, movementRepo.movements, 1)
}

func TestAdjust_IncreaseClearsAlert(t *testing.T) {
	p := trackedProduct("p1", 2, 10)
	p.LowStockAlert = true
	uc, _, _ := newLedger(p)

	res, err := uc.Adjust(context.Background(), AdjustInput{ProductID: "p1", Target: 30, Actor: "admin@fng.id"})
	require.NoError(t, err)
	assert.Equal(t, 28, res.Delta)
	assert.Equal(t, entity.MovementTypeIn, res.Movement.Type)
	assert.False(t, res.Product.LowStockAlert)
}

func TestAdjust_ZeroDeltaIsAdjustment(t *testing.T) {
	uc, _, movementRepo := newLedger(trackedProduct("p1", 7, 5))

	res, err := uc.Adjust(context.Background(), AdjustInput{ProductID: "p1", Target: 7, Actor: "admin@fng.id"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Delta)
	assert.Equal(t, entity.MovementTypeAdjustment, res.Movement.Type)
	assert.Equal(t, 0, res.Movement.Quantity)
	// Even a no-op change appends its ledger row.
	assert.Len(t, movementRepo.movements, 1)
}

func TestAdjust_PinnedTypeIsKept(t *testing.T) {
	uc, _, _ := newLedger(trackedProduct("p1", 0, 5))

	res, err := uc.Adjust(context.Background(), AdjustInput{
		ProductID: "p1", Target: 40, Actor: "system", Type: entity.MovementTypeInitial, Reference: "SEED",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeInitial, res.Movement.Type)
	assert.Equal(t, "SEED", res.Movement.Reference)
}

func TestAdjust_Preconditions(t *testing.T) {
	untracked := trackedProduct("p2", 10, 5)
	untracked.IsTrackStock = false
	uc, _, movementRepo := newLedger(trackedProduct("p1", 10, 5), untracked)

	_, err := uc.Adjust(context.Background(), AdjustInput{ProductID: "missing", Target: 1, Actor: "a"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Adjust(context.Background(), AdjustInput{ProductID: "p2", Target: 1, Actor: "a"})
	assert.ErrorIs(t, err, domain.ErrTrackingDisabled)

	_, err = uc.Adjust(context.Background(), AdjustInput{ProductID: "p1", Target: -1, Actor: "a"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// No ledger rows for rejected operations.
	assert.Empty(t, movementRepo.movements)
}

func TestAdjustByMode_SubtractBelowZeroRejected(t *testing.T) {
	uc, productRepo, movementRepo := newLedger(trackedProduct("p1", 0, 5))

	_, err := uc.AdjustByMode(context.Background(), "p1", "subtract", 5, "admin@fng.id", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, 0, stored.CurrentStock, "rejected request must not change stock")
	assert.Empty(t, movementRepo.movements)
}

func TestAdjustByMode_AddAndSubtract(t *testing.T) {
	uc, _, movementRepo := newLedger(trackedProduct("p1", 10, 5))

	res, err := uc.AdjustByMode(context.Background(), "p1", "add", 15, "admin@fng.id", "restock delivery")
	require.NoError(t, err)
	assert.Equal(t, 25, res.Product.CurrentStock)
	assert.Equal(t, entity.MovementTypeIn, res.Movement.Type)
	assert.Equal(t, "restock delivery", res.Movement.Notes)

	res, err = uc.AdjustByMode(context.Background(), "p1", "subtract", 25, "admin@fng.id", "")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Product.CurrentStock)
	assert.Equal(t, entity.MovementTypeOut, res.Movement.Type)

	// Append-only: one row per successful call, earlier rows untouched.
	require.Len(t, movementRepo.movements, 2)
	assert.Equal(t, 10, movementRepo.movements[0].PreviousStock)
	assert.Equal(t, 25, movementRepo.movements[0].NewStock)
}

func TestAdjust_MovementInsertFailurePropagates(t *testing.T) {
	uc, _, movementRepo := newLedger(trackedProduct("p1", 10, 5))
	movementRepo.createErr = errors.New("insert movement: connection reset")

	_, err := uc.Adjust(context.Background(), AdjustInput{ProductID: "p1", Target: 3, Actor: "a"})
	assert.ErrorContains(t, err, "connection reset")
}
