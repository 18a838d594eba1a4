// Package deposit tracks the bank-deposit custody chain for a week of
// accumulated safe cash: prepared, picked up, deposited, bank verified.
package deposit

import (
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/money"
)

// Status is the deposit custody step. Transitions are strictly linear and
// one-directional; there is no cancel or reject.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPrepared  Status = "prepared"
	StatusPickedUp  Status = "picked_up"
	StatusDeposited Status = "deposited"
	StatusVerified  Status = "verified"
)

// Deposit is the bank-deposit lifecycle for one location's week of cash.
// DepositAmount is a snapshot fixed at creation; later edits to constituent
// reconciliations never change it retroactively.
type Deposit struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	WeekStart  time.Time
	WeekEnd    time.Time
	Status     Status

	DepositAmount     money.Money
	ReconciliationIDs []uuid.UUID

	CreatedAt  time.Time
	PreparedBy string
	PreparedAt *time.Time
	PickedUpBy string
	PickedUpAt *time.Time

	DepositedAt     *time.Time
	BankDepositSlip string

	BankVerifiedAmount *money.Money
	BankVerifiedAt     *time.Time

	Breakdown money.Breakdown
	Notes     string
}

// Variance is the bank-verified amount minus the deposited snapshot. It is
// only defined once the bank has verified.
func (d *Deposit) Variance() (money.Money, bool) {
	if d.BankVerifiedAmount == nil {
		return 0, false
	}
	return *d.BankVerifiedAmount - d.DepositAmount, true
}

// WeekStartOf returns the Monday 00:00 UTC opening the week containing t.
func WeekStartOf(t time.Time) time.Time {
	t = t.UTC().Truncate(24 * time.Hour)

	// time.Weekday counts Sunday as 0.
	offset := (int(t.Weekday()) + 6) % 7

	return t.AddDate(0, 0, -offset)
}
