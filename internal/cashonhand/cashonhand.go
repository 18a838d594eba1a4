// Package cashonhand computes a location's current cash position on demand:
// open drawers, safe holdings, and deposits still in flight. The projection
// is read-only and never persisted as a source of truth.
package cashonhand

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/deposit"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
	"github.com/tillworks/tillkeeper/internal/session"
)

// Snapshot is one location's cash picture at ComputedAt.
type Snapshot struct {
	LocationID                 uuid.UUID
	CashInDrawers              money.Money
	CashInSafe                 money.Money
	TotalCashOnHand            money.Money
	PendingDepositAmount       money.Money
	CurrentWeekCashAccumulated money.Money
	Currency                   string
	ComputedAt                 time.Time
}

//go:generate mockgen -source=cashonhand.go -destination=repository_mock.go -package=cashonhand
type Repository interface {
	OpenSessions(ctx context.Context, locationID uuid.UUID) ([]*session.Session, error)
	// UndepositedReconciliations returns completed or approved day summaries
	// not yet claimed by a deposit.
	UndepositedReconciliations(ctx context.Context, locationID uuid.UUID) ([]*reconciliation.Reconciliation, error)
	// PendingDepositTotal sums deposit_amount across deposits not yet verified.
	PendingDepositTotal(ctx context.Context, locationID uuid.UUID) (money.Money, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Project recomputes the snapshot from the store on every call. Staleness is
// the caller's concern; nothing is cached here.
func (s *Service) Project(ctx context.Context, locationID uuid.UUID) (*Snapshot, error) {
	now := s.now().UTC()

	snap := &Snapshot{
		LocationID: locationID,
		Currency:   money.Currency,
		ComputedAt: now,
	}

	sessions, err := s.repo.OpenSessions(ctx, locationID)
	if err != nil {
		return nil, err
	}

	for _, sess := range sessions {
		snap.CashInDrawers += sess.ExpectedTotal()
	}

	recs, err := s.repo.UndepositedReconciliations(ctx, locationID)
	if err != nil {
		return nil, err
	}

	weekStart := deposit.WeekStartOf(now)

	for _, rec := range recs {
		snap.CashInSafe += rec.CashInSafe

		if !rec.BusinessDate.Before(weekStart) {
			snap.CurrentWeekCashAccumulated += rec.CashInSafe
		}
	}

	snap.TotalCashOnHand = snap.CashInDrawers + snap.CashInSafe

	pending, err := s.repo.PendingDepositTotal(ctx, locationID)
	if err != nil {
		return nil, err
	}

	snap.PendingDepositAmount = pending

	return snap, nil
}
