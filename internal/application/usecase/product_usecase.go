package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	appstock "github.com/osvaldosurbakti/fng-admin/internal/application/stock"
	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/stock"
)

// Default alert threshold for new products.
const defaultMinimumStock = 5

// ProductUseCase CRUD for menu items. Stock counters are never written here
// directly: initial stock goes through the ledger writer and later changes
// through the stock endpoints.
type ProductUseCase struct {
	repo     repository.ProductRepository
	adjuster *appstock.AdjustStockUseCase
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository, adjuster *appstock.AdjustStockUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, adjuster: adjuster}
}

// Create creates a menu item. A missing SKU is auto-generated from the
// category; a positive InitialStock on a tracked product is recorded as an
// "initial" ledger movement.
func (uc *ProductUseCase) Create(ctx context.Context, actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	unit := in.Unit
	if unit == "" {
		unit = entity.UnitPcs
	}
	if !entity.ValidUnit(unit) {
		return nil, domain.ErrInvalidInput
	}
	minimum := defaultMinimumStock
	if in.MinimumStock != nil {
		minimum = *in.MinimumStock
	}
	isTrack := true
	if in.IsTrackStock != nil {
		isTrack = *in.IsTrackStock
	}
	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = generateSKU(in.Category)
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Price:         in.Price,
		Category:      in.Category,
		Description:   strings.TrimSpace(in.Description),
		IsAvailable:   isAvailable,
		Image:         strings.TrimSpace(in.Image),
		SKU:           sku,
		Unit:          unit,
		CurrentStock:  0,
		MinimumStock:  minimum,
		IsTrackStock:  isTrack,
		LowStockAlert: stock.LowStockAlert(isTrack, 0, minimum),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	if isTrack && in.InitialStock > 0 {
		res, err := uc.adjuster.Adjust(ctx, appstock.AdjustInput{
			ProductID: product.ID,
			Target:    in.InitialStock,
			Actor:     actor,
			Type:      entity.MovementTypeInitial,
			Reference: "INITIAL",
			Notes:     "Initial stock at product creation",
		})
		if err != nil {
			return nil, err
		}
		product = res.Product
	}
	return toProductResponse(product), nil
}

// GetByID returns a product or ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update edits menu fields. CurrentStock is not touched; the low-stock flag
// is recomputed because MinimumStock or IsTrackStock may have changed.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if !strings.EqualFold(name, product.Name) {
			dup, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if dup != nil && dup.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		product.Name = name
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	if in.Image != nil {
		product.Image = strings.TrimSpace(*in.Image)
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = *in.Unit
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumStock = *in.MinimumStock
	}
	if in.IsTrackStock != nil {
		product.IsTrackStock = *in.IsTrackStock
	}

	product.LowStockAlert = stock.LowStockAlert(product.IsTrackStock, product.CurrentStock, product.MinimumStock)
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns products ordered for the stock view (alerts first).
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes a product. Its movements remain as historical audit rows.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// generateSKU builds FNG-F-XXXXXX / FNG-D-XXXXXX codes the way the POS
// labels food and drink items.
func generateSKU(category string) string {
	prefix := "FNG-F"
	if category == entity.CategoryDrink {
		prefix = "FNG-D"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return prefix + "-" + suffix
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		Category:        p.Category,
		Description:     p.Description,
		IsAvailable:     p.IsAvailable,
		Image:           p.Image,
		SKU:             p.SKU,
		Unit:            p.Unit,
		CurrentStock:    p.CurrentStock,
		MinimumStock:    p.MinimumStock,
		IsTrackStock:    p.IsTrackStock,
		LowStockAlert:   p.LowStockAlert,
		LastStockUpdate: p.LastStockUpdate,
		LastUpdatedBy:   p.LastUpdatedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
