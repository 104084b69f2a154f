package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, category, description, is_available, image,
	sku, unit, current_stock, minimum_stock, is_track_stock, low_stock_alert,
	last_stock_update, last_updated_by, created_at, updated_at`

// ProductRepo implements the ProductRepository port over PostgreSQL (usable
// with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products. Pass pool
// or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.IsAvailable, &p.Image,
		&p.SKU, &p.Unit, &p.CurrentStock, &p.MinimumStock, &p.IsTrackStock, &p.LowStockAlert,
		&p.LastStockUpdate, &p.LastUpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a new product.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Category, product.Description,
		product.IsAvailable, product.Image, product.SKU, product.Unit,
		product.CurrentStock, product.MinimumStock, product.IsTrackStock, product.LowStockAlert,
		product.LastStockUpdate, product.LastUpdatedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate fetches a product and locks its row until the surrounding
// transaction ends. Serializes concurrent stock adjustments per product.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// GetByName fetches a product by exact name, case-insensitive.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE lower(name) = lower($1)`
	p, err := scanProduct(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return p, nil
}

// Update saves catalog fields. Stock counters are not touched here; they are
// written by UpdateStock through the ledger.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, category = $4, description = $5,
			is_available = $6, image = $7, unit = $8, minimum_stock = $9,
			is_track_stock = $10, low_stock_alert = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Category, product.Description,
		product.IsAvailable, product.Image, product.Unit, product.MinimumStock,
		product.IsTrackStock, product.LowStockAlert, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock writes the running counter and its derived alert flag.
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, newStock int, lowStockAlert bool, updatedBy string, at time.Time) error {
	query := `
		UPDATE products SET current_stock = $2, low_stock_alert = $3,
			last_updated_by = $4, last_stock_update = $5, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, productID, newStock, lowStockAlert, updatedBy, at)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List returns products ordered for the stock dashboard: alerting products
// first, then by remaining quantity, then category and name.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		ORDER BY low_stock_alert DESC, current_stock ASC, category, name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete removes a product by ID. Its ledger rows remain.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// StockStats aggregates the dashboard counters over tracked products.
func (r *ProductRepo) StockStats(ctx context.Context) (*repository.StockStats, error) {
	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE low_stock_alert),
			count(*) FILTER (WHERE current_stock = 0),
			coalesce(sum(current_stock * price), 0)
		FROM products WHERE is_track_stock`
	var s repository.StockStats
	err := r.q.QueryRow(ctx, query).Scan(&s.TotalItems, &s.LowStock, &s.OutOfStock, &s.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("stock stats: %w", err)
	}
	return &s, nil
}
