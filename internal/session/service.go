package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=session
type Repository interface {
	// CreateSession persists a new open session. The store enforces the
	// one-open-session-per-register rule with a unique constraint and
	// returns a conflict fault when it trips; callers never check-then-insert.
	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	// FindOpen returns the open session for (location, register), or the most
	// recently opened one for the location when register is empty. A nil
	// session with nil error means no drawer is open.
	FindOpen(ctx context.Context, locationID uuid.UUID, register string) (*Session, error)
	// CloseSession writes the closing fields guarded by status = open, so a
	// racing close loses cleanly at the store.
	CloseSession(ctx context.Context, s *Session) error
	// Accrue atomically increments the counter for kind on an open session.
	Accrue(ctx context.Context, id uuid.UUID, kind AccrueKind, amount money.Money) error
	ListForDate(ctx context.Context, locationID uuid.UUID, businessDate time.Time) ([]*Session, error)
}

type Service struct {
	repo       Repository
	thresholds Thresholds
	now        func() time.Time
}

func NewService(repo Repository, thresholds Thresholds) *Service {
	return &Service{repo: repo, thresholds: thresholds, now: time.Now}
}

type OpenParams struct {
	LocationID   uuid.UUID
	RegisterName string
	OpeningFloat money.Money
	Notes        string
}

// Open starts a new custody period for a register. Exactly one session per
// (location, register) may be open; a concurrent second open fails with a
// conflict from the store's unique constraint.
func (s *Service) Open(ctx context.Context, actor string, params OpenParams) (*Session, error) {
	if params.RegisterName == "" {
		return nil, fault.Validation("register name is required")
	}
	if params.OpeningFloat < 0 {
		return nil, fault.Validation("opening float must not be negative, got %s", params.OpeningFloat)
	}

	now := s.now().UTC()
	sess := &Session{
		LocationID:   params.LocationID,
		RegisterName: params.RegisterName,
		Status:       StatusOpen,
		BusinessDate: now.Truncate(24 * time.Hour),
		OpenedAt:     now,
		OpenedBy:     actor,
		OpeningFloat: params.OpeningFloat,
		Notes:        params.Notes,
	}

	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

type CloseParams struct {
	SessionID         uuid.UUID
	ActualCashCounted money.Money
	Breakdown         money.Breakdown
	VarianceReason    string
	Notes             string
}

// Close supplies the physical count and ends the session. The declared count
// is authoritative; a denomination breakdown whose total disagrees is kept as
// descriptive data, never substituted.
func (s *Service) Close(ctx context.Context, actor string, params CloseParams) (*Session, error) {
	if params.ActualCashCounted < 0 {
		return nil, fault.Validation("actual cash counted must not be negative, got %s", params.ActualCashCounted)
	}
	if err := params.Breakdown.Validate(); err != nil {
		return nil, fault.Validation("denomination breakdown: %v", err)
	}

	sess, err := s.repo.GetSession(ctx, params.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != StatusOpen {
		return nil, fault.InvalidState("drawer_session", sess.ID.String(), string(sess.Status), string(StatusOpen))
	}

	closedAt := s.now().UTC()
	actual := params.ActualCashCounted
	sess.Status = StatusClosed
	sess.ClosedAt = &closedAt
	sess.ClosedBy = actor
	sess.ActualCashCounted = &actual
	sess.Breakdown = params.Breakdown
	sess.VarianceReason = params.VarianceReason
	if params.Notes != "" {
		sess.Notes = params.Notes
	}

	if err := s.repo.CloseSession(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// GetCurrent returns the open session for the register, or the most recently
// opened session still open for the location when register is empty. Returns
// (nil, nil) when no drawer is open.
func (s *Service) GetCurrent(ctx context.Context, locationID uuid.UUID, register string) (*Session, error) {
	return s.repo.FindOpen(ctx, locationID, register)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.repo.GetSession(ctx, id)
}

// ListForDate returns every session for (location, business date), any status.
func (s *Service) ListForDate(ctx context.Context, locationID uuid.UUID, businessDate time.Time) ([]*Session, error) {
	return s.repo.ListForDate(ctx, locationID, businessDate)
}

// AccrueSale is the POS collaborator entry point: it increments one of the
// session's expected counters with a store-side atomic update.
func (s *Service) AccrueSale(ctx context.Context, id uuid.UUID, kind AccrueKind, amount money.Money) error {
	if !kind.Valid() {
		return fault.Validation("unknown accrual kind %q", kind)
	}
	if amount <= 0 {
		return fault.Validation("accrual amount must be positive, got %s", amount)
	}
	return s.repo.Accrue(ctx, id, kind, amount)
}

// Classify buckets a variance using the service's configured thresholds.
func (s *Service) Classify(v money.Money) VarianceClass {
	return s.thresholds.Classify(v)
}
