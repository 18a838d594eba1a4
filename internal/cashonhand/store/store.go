// Package store implements the cash-on-hand read model on Postgres.
package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
	reconciliationstore "github.com/tillworks/tillkeeper/internal/reconciliation/store"
	"github.com/tillworks/tillkeeper/internal/session"
	sessionstore "github.com/tillworks/tillkeeper/internal/session/store"
)

type Store struct {
	db              *sql.DB
	sessions        *sessionstore.Store
	reconciliations *reconciliationstore.Store
}

func New(db *sql.DB) *Store {
	return &Store{
		db:              db,
		sessions:        sessionstore.New(db),
		reconciliations: reconciliationstore.New(db),
	}
}

func (s *Store) OpenSessions(ctx context.Context, locationID uuid.UUID) ([]*session.Session, error) {
	return s.sessions.ListOpen(ctx, locationID)
}

func (s *Store) UndepositedReconciliations(ctx context.Context, locationID uuid.UUID) ([]*reconciliation.Reconciliation, error) {
	return s.reconciliations.ListUndeposited(ctx, locationID)
}

func (s *Store) PendingDepositTotal(ctx context.Context, locationID uuid.UUID) (money.Money, error) {
	var total int64

	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(deposit_amount), 0)
		FROM weekly_deposits
		WHERE location_id = $1 AND status <> 'verified'
	`, locationID).Scan(&total)
	if err != nil {
		return 0, fault.TransientStore("summing pending deposits", err)
	}

	return money.Money(total), nil
}
