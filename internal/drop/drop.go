// Package drop records mid-session movements of cash out of a drawer, to a
// safe or a bank bag. Drop rows are immutable ledger entries.
package drop

import (
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/money"
)

// Type is the closed set of drop destinations.
type Type string

const (
	TypeSafeDrop Type = "safe_drop"
	TypeBankBag  Type = "bank_bag"
	TypeOther    Type = "other"
)

// Valid reports whether t is a known drop type.
func (t Type) Valid() bool {
	switch t {
	case TypeSafeDrop, TypeBankBag, TypeOther:
		return true
	default:
		return false
	}
}

// Drop is a single transfer of cash out of an open drawer.
type Drop struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	LocationID uuid.UUID
	Type       Type
	Amount     money.Money
	DroppedAt  time.Time
	DroppedBy  string
	Breakdown  money.Breakdown
	Notes      string
}
