package reconciliation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/session"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reconciliation
type Repository interface {
	SessionsForDate(ctx context.Context, locationID uuid.UUID, businessDate time.Time) ([]*session.Session, error)
	// CreateWithSessions persists the aggregate and flips its constituent
	// sessions to reconciled in one database transaction: either both happen
	// or neither. A duplicate (location, date) surfaces as a conflict fault.
	CreateWithSessions(ctx context.Context, rec *Reconciliation) error
	GetReconciliation(ctx context.Context, id uuid.UUID) (*Reconciliation, error)
	// Approve writes the sign-off guarded by status = completed.
	Approve(ctx context.Context, rec *Reconciliation) error
	// ListUndeposited returns completed or approved reconciliations not yet
	// claimed by a weekly deposit, oldest business date first.
	ListUndeposited(ctx context.Context, locationID uuid.UUID) ([]*Reconciliation, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create rolls every closed session for (location, date) into a day summary.
// It refuses while any session is still open, and refuses a second summary
// for the same day with a conflict, so a retried call never double-creates.
func (s *Service) Create(ctx context.Context, locationID uuid.UUID, businessDate time.Time) (*Reconciliation, error) {
	sessions, err := s.repo.SessionsForDate(ctx, locationID, businessDate)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fault.PreconditionFailed("no drawer sessions exist for %s on %s",
			locationID, businessDate.Format(time.DateOnly))
	}

	rec := &Reconciliation{
		LocationID:   locationID,
		BusinessDate: businessDate,
		Status:       StatusPending,
		CreatedAt:    s.now().UTC(),
	}

	var openingFloats int64

	for _, sess := range sessions {
		if sess.Status == session.StatusOpen {
			return nil, fault.PreconditionFailed(
				"open drawer sessions exist: session %s on register %q must be closed first",
				sess.ID, sess.RegisterName)
		}

		rec.SessionIDs = append(rec.SessionIDs, sess.ID)
		rec.CashSales += sess.ExpectedCashSales - sess.ExpectedCashReturns
		rec.CardSales += sess.CardSales
		rec.OtherSales += sess.OtherSales
		rec.TotalCashDrops += sess.CashDropsTotal
		openingFloats += int64(sess.OpeningFloat)

		if sess.ActualCashCounted != nil {
			rec.CashInDrawers += *sess.ActualCashCounted
		} else {
			// Degraded-data path: no physical count survived the close. The
			// expected total substitutes, and the session is flagged.
			rec.CashInDrawers += sess.ExpectedTotal()
			rec.EstimatedSessionIDs = append(rec.EstimatedSessionIDs, sess.ID)
		}

		if v, ok := sess.Variance(); ok {
			rec.TotalVariance += v
		}
	}

	rec.TotalSales = rec.CashSales + rec.CardSales + rec.OtherSales
	// Cash that physically lands in the safe for the day: everything dropped
	// during trade plus the counted drawer cash, minus floats that go back
	// into tomorrow's drawers.
	rec.CashInSafe = rec.TotalCashDrops + rec.CashInDrawers - money.Money(openingFloats)
	rec.Status = StatusCompleted

	if err := s.repo.CreateWithSessions(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// Approve is the terminal manual sign-off on a completed day summary.
func (s *Service) Approve(ctx context.Context, actor string, id uuid.UUID, notes string) (*Reconciliation, error) {
	rec, err := s.repo.GetReconciliation(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != StatusCompleted {
		return nil, fault.InvalidState("daily_reconciliation", rec.ID.String(),
			string(rec.Status), string(StatusCompleted))
	}

	approvedAt := s.now().UTC()
	rec.Status = StatusApproved
	rec.ApprovedBy = actor
	rec.ApprovedAt = &approvedAt
	if notes != "" {
		rec.Notes = notes
	}

	if err := s.repo.Approve(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Reconciliation, error) {
	return s.repo.GetReconciliation(ctx, id)
}

func (s *Service) ListUndeposited(ctx context.Context, locationID uuid.UUID) ([]*Reconciliation, error) {
	return s.repo.ListUndeposited(ctx, locationID)
}
