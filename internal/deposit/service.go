package deposit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=deposit
type Repository interface {
	// UndepositedInWindow returns completed or approved reconciliations in
	// [weekStart, weekEnd] not yet attached to any deposit.
	UndepositedInWindow(ctx context.Context, locationID uuid.UUID, weekStart, weekEnd time.Time) ([]*reconciliation.Reconciliation, error)
	// CreateClaiming inserts the deposit and claims its reconciliations in one
	// transaction, guarded so a reconciliation can belong to at most one
	// deposit. A racing claim surfaces as a conflict fault.
	CreateClaiming(ctx context.Context, dep *Deposit) error
	GetDeposit(ctx context.Context, id uuid.UUID) (*Deposit, error)
	// Transition writes dep's current field values guarded by the required
	// prior status, so out-of-order or repeated transitions lose at the store.
	Transition(ctx context.Context, dep *Deposit, required Status) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create opens the deposit lifecycle for a week, snapshotting the sum of the
// window's undeposited safe cash as the amount to bank. The constituent
// reconciliations are claimed exclusively: two overlapping create calls can
// never share one.
func (s *Service) Create(ctx context.Context, locationID uuid.UUID, weekStart *time.Time) (*Deposit, error) {
	start := WeekStartOf(s.now())
	if weekStart != nil {
		start = weekStart.UTC().Truncate(24 * time.Hour)
	}
	end := start.AddDate(0, 0, 6)

	recs, err := s.repo.UndepositedInWindow(ctx, locationID, start, end)
	if err != nil {
		return nil, err
	}

	var amount money.Money

	var recIDs []uuid.UUID

	for _, rec := range recs {
		amount += rec.CashInSafe
		recIDs = append(recIDs, rec.ID)
	}

	if len(recIDs) == 0 || amount <= 0 {
		return nil, fault.PreconditionFailed(
			"nothing to deposit for %s in week starting %s",
			locationID, start.Format(time.DateOnly))
	}

	dep := &Deposit{
		LocationID:        locationID,
		WeekStart:         start,
		WeekEnd:           end,
		Status:            StatusPending,
		DepositAmount:     amount,
		ReconciliationIDs: recIDs,
		CreatedAt:         s.now().UTC(),
	}

	if err := s.repo.CreateClaiming(ctx, dep); err != nil {
		return nil, err
	}

	return dep, nil
}

// MarkPrepared records the counted bag: pending -> prepared.
func (s *Service) MarkPrepared(ctx context.Context, actor string, id uuid.UUID, breakdown money.Breakdown, notes string) (*Deposit, error) {
	if err := breakdown.Validate(); err != nil {
		return nil, fault.Validation("denomination breakdown: %v", err)
	}

	dep, err := s.requireStatus(ctx, id, StatusPending)
	if err != nil {
		return nil, err
	}

	preparedAt := s.now().UTC()
	dep.Status = StatusPrepared
	dep.PreparedBy = actor
	dep.PreparedAt = &preparedAt
	dep.Breakdown = breakdown
	appendNotes(dep, notes)

	if err := s.repo.Transition(ctx, dep, StatusPending); err != nil {
		return nil, err
	}

	return dep, nil
}

// MarkPickedUp records the courier handoff: prepared -> picked_up. The pickup
// person is part of the custody chain and is required.
func (s *Service) MarkPickedUp(ctx context.Context, id uuid.UUID, pickedUpBy, notes string) (*Deposit, error) {
	if pickedUpBy == "" {
		return nil, fault.Validation("picked_up_by is required")
	}

	dep, err := s.requireStatus(ctx, id, StatusPrepared)
	if err != nil {
		return nil, err
	}

	pickedUpAt := s.now().UTC()
	dep.Status = StatusPickedUp
	dep.PickedUpBy = pickedUpBy
	dep.PickedUpAt = &pickedUpAt
	appendNotes(dep, notes)

	if err := s.repo.Transition(ctx, dep, StatusPrepared); err != nil {
		return nil, err
	}

	return dep, nil
}

// MarkDeposited records the bank drop: picked_up -> deposited.
func (s *Service) MarkDeposited(ctx context.Context, id uuid.UUID, bankDepositSlip, notes string) (*Deposit, error) {
	dep, err := s.requireStatus(ctx, id, StatusPickedUp)
	if err != nil {
		return nil, err
	}

	depositedAt := s.now().UTC()
	dep.Status = StatusDeposited
	dep.DepositedAt = &depositedAt
	dep.BankDepositSlip = bankDepositSlip
	appendNotes(dep, notes)

	if err := s.repo.Transition(ctx, dep, StatusPickedUp); err != nil {
		return nil, err
	}

	return dep, nil
}

// Verify records the bank-confirmed amount and the final variance:
// deposited -> verified. Terminal.
func (s *Service) Verify(ctx context.Context, id uuid.UUID, bankVerifiedAmount money.Money, notes string) (*Deposit, error) {
	if bankVerifiedAmount < 0 {
		return nil, fault.Validation("bank verified amount must not be negative, got %s", bankVerifiedAmount)
	}

	dep, err := s.requireStatus(ctx, id, StatusDeposited)
	if err != nil {
		return nil, err
	}

	verifiedAt := s.now().UTC()
	amount := bankVerifiedAmount
	dep.Status = StatusVerified
	dep.BankVerifiedAmount = &amount
	dep.BankVerifiedAt = &verifiedAt
	appendNotes(dep, notes)

	if err := s.repo.Transition(ctx, dep, StatusDeposited); err != nil {
		return nil, err
	}

	return dep, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Deposit, error) {
	return s.repo.GetDeposit(ctx, id)
}

func (s *Service) requireStatus(ctx context.Context, id uuid.UUID, required Status) (*Deposit, error) {
	dep, err := s.repo.GetDeposit(ctx, id)
	if err != nil {
		return nil, err
	}
	if dep.Status != required {
		return nil, fault.InvalidState("weekly_deposit", dep.ID.String(),
			string(dep.Status), string(required))
	}
	return dep, nil
}

func appendNotes(dep *Deposit, notes string) {
	if notes == "" {
		return
	}
	if dep.Notes != "" {
		dep.Notes += "\n"
	}
	dep.Notes += notes
}
