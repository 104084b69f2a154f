package postgres

import (
	"context"
	"fmt"

	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implements the StockMovementRepository port over
// PostgreSQL (usable with pool or tx). Insert-only: the ledger has no update
// or delete path.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the persistence adapter for the ledger.
// Pass pool or tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create appends one ledger row.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, previous_stock, new_stock, reference, notes, adjusted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.PreviousStock, m.NewStock,
		m.Reference, m.Notes, m.AdjustedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct returns movements for one product, newest first.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, previous_stock, new_stock, reference, notes, adjusted_by, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.PreviousStock,
			&m.NewStock, &m.Reference, &m.Notes, &m.AdjustedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListRecent returns the latest movements across all products with the
// product fields the history views display. Movements of deleted products
// are kept, with empty product fields.
func (r *StockMovementRepo) ListRecent(ctx context.Context, limit int) ([]*repository.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.previous_stock, m.new_stock,
			m.reference, m.notes, m.adjusted_by, m.created_at,
			coalesce(p.name, ''), coalesce(p.sku, ''), coalesce(p.unit, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementWithProduct
	for rows.Next() {
		var m repository.MovementWithProduct
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.PreviousStock,
			&m.NewStock, &m.Reference, &m.Notes, &m.AdjustedBy, &m.CreatedAt,
			&m.ProductName, &m.ProductSKU, &m.ProductUnit); err != nil {
			return nil, fmt.Errorf("scan recent movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
