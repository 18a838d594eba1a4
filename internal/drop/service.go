package drop

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=drop
type Repository interface {
	// CreateDrop appends the ledger row and increments the owning session's
	// cash_drops_total in one store transaction. The increment is guarded by
	// session status = open, so drops against a closed drawer fail there.
	CreateDrop(ctx context.Context, d *Drop) error
	// ListDrops returns a session's drops in chronological order.
	ListDrops(ctx context.Context, sessionID uuid.UUID) ([]*Drop, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type RecordParams struct {
	SessionID  uuid.UUID
	LocationID uuid.UUID
	Type       Type
	Amount     money.Money
	Breakdown  money.Breakdown
	Notes      string
}

// Record moves cash out of an open drawer. The session's running drop total
// and the ledger row are written atomically by the store.
func (s *Service) Record(ctx context.Context, actor string, params RecordParams) (*Drop, error) {
	if params.Amount <= 0 {
		return nil, fault.Validation("drop amount must be positive, got %s", params.Amount)
	}
	if !params.Type.Valid() {
		return nil, fault.Validation("unknown drop type %q", params.Type)
	}
	if err := params.Breakdown.Validate(); err != nil {
		return nil, fault.Validation("denomination breakdown: %v", err)
	}

	d := &Drop{
		SessionID:  params.SessionID,
		LocationID: params.LocationID,
		Type:       params.Type,
		Amount:     params.Amount,
		DroppedAt:  s.now().UTC(),
		DroppedBy:  actor,
		Breakdown:  params.Breakdown,
		Notes:      params.Notes,
	}

	if err := s.repo.CreateDrop(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// List returns the drops recorded against a session, oldest first.
func (s *Service) List(ctx context.Context, sessionID uuid.UUID) ([]*Drop, error) {
	return s.repo.ListDrops(ctx, sessionID)
}
