// Package reconciliation rolls all of a location's drawer sessions for one
// business date into a single day-level cash summary.
package reconciliation

import (
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/money"
)

// Status is the day-summary lifecycle. Approved is terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusApproved   Status = "approved"
)

// Reconciliation is one location's cash picture for one business date.
// At most one exists per (location, date).
type Reconciliation struct {
	ID           uuid.UUID
	LocationID   uuid.UUID
	BusinessDate time.Time
	Status       Status

	TotalSales money.Money
	CashSales  money.Money
	CardSales  money.Money
	OtherSales money.Money

	TotalCashDrops money.Money
	CashInSafe     money.Money
	CashInDrawers  money.Money
	TotalVariance  money.Money

	// SessionIDs are the closed sessions this summary folds in.
	SessionIDs []uuid.UUID
	// EstimatedSessionIDs flag sessions that were missing an actual count and
	// had their expected total substituted. The fallback is visible, never
	// silent.
	EstimatedSessionIDs []uuid.UUID

	CreatedAt  time.Time
	ApprovedBy string
	ApprovedAt *time.Time
	Notes      string
}
