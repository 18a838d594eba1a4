// Package session owns the open/close lifecycle of one register's cash
// drawer: the custody period from opening float to closing count.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/money"
)

// Status is the lifecycle state of a drawer session. A session is never
// reopened; a closed drawer needs a fresh session.
type Status string

const (
	StatusOpen       Status = "open"
	StatusClosed     Status = "closed"
	StatusReconciled Status = "reconciled"
)

// Session is one register's custody period. Expected and variance figures are
// derived on read, never stored stale.
type Session struct {
	ID           uuid.UUID
	LocationID   uuid.UUID
	RegisterName string
	Status       Status
	BusinessDate time.Time

	OpenedAt     time.Time
	OpenedBy     string
	ClosedAt     *time.Time
	ClosedBy     string
	ReconciledAt *time.Time

	OpeningFloat        money.Money
	ExpectedCashSales   money.Money
	ExpectedCashReturns money.Money
	CashDropsTotal      money.Money
	CashAdditionsTotal  money.Money
	CardSales           money.Money
	OtherSales          money.Money

	ActualCashCounted *money.Money
	Breakdown         money.Breakdown
	VarianceReason    string
	Notes             string
}

// ExpectedTotal is the cash the drawer should hold right now:
// opening float + cash sales - returns + additions - drops.
func (s *Session) ExpectedTotal() money.Money {
	return s.OpeningFloat + s.ExpectedCashSales - s.ExpectedCashReturns +
		s.CashAdditionsTotal - s.CashDropsTotal
}

// Variance is actual counted cash minus expected total. It is only defined
// once the session has been closed with an actual count.
func (s *Session) Variance() (money.Money, bool) {
	if s.Status == StatusOpen || s.ActualCashCounted == nil {
		return 0, false
	}
	return *s.ActualCashCounted - s.ExpectedTotal(), true
}

// VarianceClass buckets a variance for alerting. Thresholds are policy
// configuration, not behavior: the engine stores raw variances only.
type VarianceClass string

const (
	VarianceBalanced VarianceClass = "balanced"
	VarianceMinor    VarianceClass = "minor"
	VarianceMajor    VarianceClass = "major"
)

// Thresholds hold the classification cut-offs in minor units.
type Thresholds struct {
	Balanced money.Money
	Minor    money.Money
}

// DefaultThresholds: |v| <= 5.00 balanced, <= 10.00 minor, else major.
func DefaultThresholds() Thresholds {
	return Thresholds{Balanced: 500, Minor: 1000}
}

// Classify buckets v against the configured thresholds.
func (t Thresholds) Classify(v money.Money) VarianceClass {
	switch abs := v.Abs(); {
	case abs <= t.Balanced:
		return VarianceBalanced
	case abs <= t.Minor:
		return VarianceMinor
	default:
		return VarianceMajor
	}
}

// AccrueKind names the session counters the POS collaborator can increment
// while a drawer is open.
type AccrueKind string

const (
	AccrueCashSale     AccrueKind = "cash_sale"
	AccrueCashReturn   AccrueKind = "cash_return"
	AccrueCashAddition AccrueKind = "cash_addition"
	AccrueCardSale     AccrueKind = "card_sale"
	AccrueOtherSale    AccrueKind = "other_sale"
)

// Valid reports whether k is a known accrual kind.
func (k AccrueKind) Valid() bool {
	switch k {
	case AccrueCashSale, AccrueCashReturn, AccrueCashAddition, AccrueCardSale, AccrueOtherSale:
		return true
	default:
		return false
	}
}
