package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	appstock "github.com/osvaldosurbakti/fng-admin/internal/application/stock"
	"github.com/osvaldosurbakti/fng-admin/internal/application/usecase"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
	apphttp "github.com/osvaldosurbakti/fng-admin/internal/interfaces/http"
)

// In-memory fakes backing the handler tests. memStore implements the product
// port itself; the movement and log ports are adapters over the same store,
// so the ledger writer runs against it unchanged.
type memStore struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
	logs      []*entity.AuditLog
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]*entity.Product)}
}

func (s *memStore) Create(ctx context.Context, p *entity.Product) error {
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return s.GetByID(ctx, id)
}

func (s *memStore) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) Update(ctx context.Context, p *entity.Product) error {
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *memStore) UpdateStock(ctx context.Context, productID string, newStock int, lowStockAlert bool, updatedBy string, at time.Time) error {
	p := s.products[productID]
	p.CurrentStock = newStock
	p.LowStockAlert = lowStockAlert
	p.LastUpdatedBy = updatedBy
	p.LastStockUpdate = &at
	p.UpdatedAt = at
	return nil
}

func (s *memStore) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range s.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	delete(s.products, id)
	return nil
}

func (s *memStore) StockStats(ctx context.Context) (*repository.StockStats, error) {
	return &repository.StockStats{}, nil
}

func (s *memStore) CreateMovement(ctx context.Context, m *entity.StockMovement) error {
	cp := *m
	s.movements = append(s.movements, &cp)
	return nil
}

func (s *memStore) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for i := len(s.movements) - 1; i >= 0 && len(list) < limit; i-- {
		if s.movements[i].ProductID == productID {
			cp := *s.movements[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (s *memStore) ListRecent(ctx context.Context, limit int) ([]*repository.MovementWithProduct, error) {
	var list []*repository.MovementWithProduct
	for i := len(s.movements) - 1; i >= 0 && len(list) < limit; i-- {
		m := *s.movements[i]
		item := &repository.MovementWithProduct{StockMovement: m}
		if p, ok := s.products[m.ProductID]; ok {
			item.ProductName = p.Name
			item.ProductSKU = p.SKU
			item.ProductUnit = p.Unit
		}
		list = append(list, item)
	}
	return list, nil
}

// movementRepoAdapter renames CreateMovement to the port's Create; memStore
// cannot carry both Create methods itself.
type movementRepoAdapter struct{ s *memStore }

func (a movementRepoAdapter) Create(ctx context.Context, m *entity.StockMovement) error {
	return a.s.CreateMovement(ctx, m)
}

func (a movementRepoAdapter) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	return a.s.ListByProduct(ctx, productID, limit)
}

func (a movementRepoAdapter) ListRecent(ctx context.Context, limit int) ([]*repository.MovementWithProduct, error) {
	return a.s.ListRecent(ctx, limit)
}

type memLogRepo struct{ s *memStore }

func (r memLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	r.s.logs = append(r.s.logs, l)
	return nil
}

func (r memLogRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	return r.s.logs, nil
}

// memTxRunner hands the ledger writer repositories bound to the store.
type memTxRunner struct{ s *memStore }

func (r memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(r.s, movementRepoAdapter{r.s})
}

func buildStockApp(t *testing.T, store *memStore) *fiber.App {
	t.Helper()
	adjuster := appstock.NewAdjustStockUseCase(memTxRunner{store})
	bulk := appstock.NewBulkAdjustUseCase(adjuster)
	history := appstock.NewHistoryUseCase(store, movementRepoAdapter{store})
	logUC := usecase.NewLogUseCase(memLogRepo{store})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LogUC:     logUC,
		Adjuster:  adjuster,
		Bulk:      bulk,
		History:   history,
		JWTSecret: testJWTSecret,
	})
	return app
}

func seedProduct(store *memStore, id string, current, minimum int, tracked bool) {
	now := time.Now()
	store.products[id] = &entity.Product{
		ID:           id,
		Name:         "Nasi Goreng",
		Price:        decimal.NewFromInt(25000),
		Category:     entity.CategoryFood,
		IsAvailable:  true,
		SKU:          "FNG-F-NASGOR",
		Unit:         entity.UnitPcs,
		CurrentStock: current,
		MinimumStock: minimum,
		IsTrackStock: tracked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdjustStockEndpoint_SubtractBelowMinimumSetsAlert(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 20, 10, true)
	app := buildStockApp(t, store)

	resp := doJSON(t, app, http.MethodPut, "/api/products/p1/stock", dto.StockAdjustmentRequest{
		Mode: "subtract", Quantity: 15,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.StockAdjustmentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 20, body.Product.OldStock)
	assert.Equal(t, 5, body.Product.NewStock)
	assert.Equal(t, -15, body.Product.Difference)
	assert.True(t, body.Product.LowStockAlert)
	assert.Equal(t, "out", body.Movement.Type)
	assert.Equal(t, 15, body.Movement.Quantity)

	require.Len(t, store.movements, 1)
	assert.Equal(t, testUserID, store.movements[0].AdjustedBy)
}

func TestAdjustStockEndpoint_NegativeResultRejected(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 5, 10, true)
	app := buildStockApp(t, store)

	resp := doJSON(t, app, http.MethodPut, "/api/products/p1/stock", dto.StockAdjustmentRequest{
		Mode: "subtract", Quantity: 8,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.movements)
	assert.Equal(t, 5, store.products["p1"].CurrentStock)
}

func TestAdjustStockEndpoint_UntrackedGets400(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 5, 10, false)
	app := buildStockApp(t, store)

	resp := doJSON(t, app, http.MethodPut, "/api/products/p1/stock", dto.StockAdjustmentRequest{
		Mode: "set", Quantity: 10,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "TRACKING_DISABLED", body.Code)
}

func TestAdjustStockEndpoint_MissingProductGets404(t *testing.T) {
	store := newMemStore()
	app := buildStockApp(t, store)

	resp := doJSON(t, app, http.MethodPut, "/api/products/nope/stock", dto.StockAdjustmentRequest{
		Mode: "set", Quantity: 10,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBulkStockUpdateEndpoint_PartialFailure(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 3, 5, true)
	seedProduct(store, "p2", 7, 5, false) // untracked, must fail
	app := buildStockApp(t, store)

	resp := doJSON(t, app, http.MethodPut, "/api/products/bulk-stock-update", dto.BulkStockUpdateRequest{
		ProductIDs: []string{"p1", "p2"},
		Mode:       "restock-all",
		Quantity:   10,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.BulkStockUpdateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.UpdatedCount)
	assert.Equal(t, 2, body.TotalCount)
	require.Len(t, body.Items, 2)
	assert.Equal(t, 15, body.Items[0].NewStock) // minimum 5 + quantity 10
	assert.Empty(t, body.Items[0].Error)
	assert.NotEmpty(t, body.Items[1].Error)

	// p2 untouched, one ledger row for p1.
	assert.Equal(t, 7, store.products["p2"].CurrentStock)
	require.Len(t, store.movements, 1)
	assert.Contains(t, store.movements[0].Reference, "BULK-RESTOCK-ALL-")
}

func TestStockHistoryEndpoint_NewestFirst(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 0, 5, true)
	app := buildStockApp(t, store)

	for _, q := range []int{10, 4, 12} {
		resp := doJSON(t, app, http.MethodPut, "/api/products/p1/stock", dto.StockAdjustmentRequest{
			Mode: "set", Quantity: q,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/products/p1/stock-history", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 3)
	assert.Equal(t, 12, items[0].NewStock)
	assert.Equal(t, 4, items[1].NewStock)
	assert.Equal(t, 10, items[2].NewStock)
}

func TestRecentMovementsEndpoint_JoinsProduct(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 0, 5, true)
	app := buildStockApp(t, store)

	resp := doJSON(t, app, http.MethodPut, "/api/products/p1/stock", dto.StockAdjustmentRequest{
		Mode: "add", Quantity: 6,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/stock/movements", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []dto.MovementWithProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "in", items[0].Type)
	assert.Equal(t, "Nasi Goreng", items[0].Product.Name)
	assert.Equal(t, "FNG-F-NASGOR", items[0].Product.SKU)
}

func TestStockRoutes_UserRoleForbidden(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10, 5, true)
	app := buildStockApp(t, store)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(dto.StockAdjustmentRequest{Mode: "set", Quantity: 1}))
	req := httptest.NewRequest(http.MethodPut, "/api/products/p1/stock", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "user"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 10, store.products["p1"].CurrentStock)
}
