package entity

import "time"

// Stock movement types.
const (
	MovementTypeIn         = "in"
	MovementTypeOut        = "out"
	MovementTypeAdjustment = "adjustment"
	MovementTypeInitial    = "initial" // stock set at product creation or seeding
)

// StockMovement is one immutable ledger entry recording a stock change.
// The ledger is append-only: rows are never edited or deleted and every
// change to a tracked product's CurrentStock produces exactly one row.
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string // in, out, adjustment, initial
	Quantity      int    // magnitude of the change, |NewStock - PreviousStock|
	PreviousStock int
	NewStock      int
	Reference     string // correlation tag, e.g. a bulk batch id
	Notes         string
	AdjustedBy    string // user id or "system"
	CreatedAt     time.Time
}
