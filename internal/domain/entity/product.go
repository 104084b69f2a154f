package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product categories for the FNG menu.
const (
	CategoryFood  = "makanan"
	CategoryDrink = "minuman"
)

// Valid sale units.
const (
	UnitPcs    = "pcs"
	UnitPack   = "pack"
	UnitBox    = "box"
	UnitKg     = "kg"
	UnitGram   = "gram"
	UnitMl     = "ml"
	UnitBottle = "botol"
	UnitSachet = "sachet"
)

// ValidCategory reports whether c is a known menu category.
func ValidCategory(c string) bool {
	return c == CategoryFood || c == CategoryDrink
}

// ValidUnit reports whether u is a known sale unit.
func ValidUnit(u string) bool {
	switch u {
	case UnitPcs, UnitPack, UnitBox, UnitKg, UnitGram, UnitMl, UnitBottle, UnitSachet:
		return true
	}
	return false
}

// Product represents a sellable menu item with its stock counters.
// CurrentStock is only ever written through the stock ledger; LowStockAlert
// is derived and recomputed on every stock-affecting save, never set by callers.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal // sale price, used for inventory valuation
	Category    string          // makanan, minuman
	Description string
	IsAvailable bool
	Image       string // plain URL, upload handling lives outside this service

	SKU           string // unique, auto-generated when empty
	Unit          string
	CurrentStock  int  // authoritative running quantity, >= 0
	MinimumStock  int  // alert threshold, >= 0
	IsTrackStock  bool // when false, stock operations are rejected
	LowStockAlert bool // derived, see stock.LowStockAlert

	LastStockUpdate *time.Time
	LastUpdatedBy   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
