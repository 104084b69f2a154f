// Package stock holds the pure stock calculus: target resolution for single
// and bulk adjustments, movement type resolution and the low-stock flag.
// Everything here is side-effect free; persistence belongs to the
// application layer.
package stock

import (
	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
)

// Single-product adjustment modes.
const (
	ModeSet      = "set"
	ModeAdd      = "add"
	ModeSubtract = "subtract"
)

// Bulk adjustment modes, applied per selected product.
const (
	ModeSetAll     = "set-all"
	ModeAddAll     = "add-all"
	ModeRestockAll = "restock-all"
)

// ValidMode reports whether m is a known single-adjustment mode.
func ValidMode(m string) bool {
	return m == ModeSet || m == ModeAdd || m == ModeSubtract
}

// ValidBulkMode reports whether m is a known bulk mode.
func ValidBulkMode(m string) bool {
	return m == ModeSetAll || m == ModeAddAll || m == ModeRestockAll
}

// Target resolves the absolute target stock for a single adjustment.
// quantity must be >= 0 (validated at the boundary). A target below zero is
// rejected here, never clamped: the single path surfaces the error while the
// bulk path clamps (BulkTarget).
func Target(mode string, currentStock, quantity int) (int, error) {
	if quantity < 0 {
		return 0, domain.ErrInvalidInput
	}
	var target int
	switch mode {
	case ModeSet:
		target = quantity
	case ModeAdd:
		target = currentStock + quantity
	case ModeSubtract:
		target = currentStock - quantity
	default:
		return 0, domain.ErrInvalidInput
	}
	if target < 0 {
		return 0, domain.ErrInvalidInput
	}
	return target, nil
}

// BulkTarget resolves the absolute target stock for one product in a bulk
// operation. Negative results clamp to zero silently.
func BulkTarget(mode string, currentStock, minimumStock, quantity int) (int, error) {
	if quantity < 0 {
		return 0, domain.ErrInvalidInput
	}
	var target int
	switch mode {
	case ModeSetAll:
		target = quantity
	case ModeAddAll:
		target = currentStock + quantity
	case ModeRestockAll:
		target = minimumStock + quantity
	default:
		return 0, domain.ErrInvalidInput
	}
	if target < 0 {
		target = 0
	}
	return target, nil
}

// ResolveType maps the signed delta of an adjustment to a movement type when
// the caller does not pin one explicitly.
func ResolveType(delta int) string {
	switch {
	case delta > 0:
		return entity.MovementTypeIn
	case delta < 0:
		return entity.MovementTypeOut
	default:
		return entity.MovementTypeAdjustment
	}
}

// LowStockAlert derives the alert flag. Products without stock tracking never
// alert.
func LowStockAlert(isTrackStock bool, currentStock, minimumStock int) bool {
	return isTrackStock && currentStock <= minimumStock
}
