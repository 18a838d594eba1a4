// Package store implements the daily reconciliation repository on Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
	"github.com/tillworks/tillkeeper/internal/session"
	sessionstore "github.com/tillworks/tillkeeper/internal/session/store"
)

type Store struct {
	db       *sql.DB
	sessions *sessionstore.Store
}

func New(db *sql.DB) *Store {
	return &Store{db: db, sessions: sessionstore.New(db)}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) SessionsForDate(ctx context.Context, locationID uuid.UUID, businessDate time.Time) ([]*session.Session, error) {
	return s.sessions.ListForDate(ctx, locationID, businessDate)
}

// CreateWithSessions inserts the day summary and flips its closed sessions to
// reconciled inside one transaction. A crash can never leave sessions closed
// while a summary already references them.
func (s *Store) CreateWithSessions(ctx context.Context, rec *reconciliation.Reconciliation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fault.TransientStore("beginning reconciliation transaction", err)
	}
	defer tx.Rollback()

	sessionIDs, err := json.Marshal(rec.SessionIDs)
	if err != nil {
		return fmt.Errorf("encoding session ids: %w", err)
	}

	estimatedIDs, err := json.Marshal(rec.EstimatedSessionIDs)
	if err != nil {
		return fmt.Errorf("encoding estimated session ids: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO daily_reconciliations (
			location_id, business_date, status,
			total_sales, cash_sales, card_sales, other_sales,
			total_cash_drops, cash_in_safe, cash_in_drawers, total_variance,
			drawer_session_ids, estimated_session_ids, created_at, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`,
		rec.LocationID,
		rec.BusinessDate,
		rec.Status,
		rec.TotalSales,
		rec.CashSales,
		rec.CardSales,
		rec.OtherSales,
		rec.TotalCashDrops,
		rec.CashInSafe,
		rec.CashInDrawers,
		rec.TotalVariance,
		sessionIDs,
		estimatedIDs,
		rec.CreatedAt,
		rec.Notes,
	).Scan(&rec.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fault.Conflict("daily_reconciliation",
				fmt.Sprintf("reconciliation already exists for %s on %s",
					rec.LocationID, rec.BusinessDate.Format(time.DateOnly)))
		}

		return fault.TransientStore("creating daily reconciliation", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE drawer_sessions
		SET status = 'reconciled', reconciled_at = $1
		WHERE location_id = $2 AND business_date = $3 AND status = 'closed'
	`, rec.CreatedAt, rec.LocationID, rec.BusinessDate)
	if err != nil {
		return fault.TransientStore("reconciling drawer sessions", err)
	}

	// A session that opened or closed between the service's read and this
	// write would desync the summary; abort rather than fold stale data.
	if flipped, err := res.RowsAffected(); err == nil && int(flipped) != len(rec.SessionIDs) {
		return fault.PreconditionFailed(
			"drawer sessions changed while reconciling %s on %s, retry",
			rec.LocationID, rec.BusinessDate.Format(time.DateOnly))
	}

	if err := tx.Commit(); err != nil {
		return fault.TransientStore("committing daily reconciliation", err)
	}

	return nil
}

const selectReconciliationColumns = `
	id, location_id, business_date, status,
	total_sales, cash_sales, card_sales, other_sales,
	total_cash_drops, cash_in_safe, cash_in_drawers, total_variance,
	drawer_session_ids, estimated_session_ids,
	created_at, approved_by, approved_at, notes
`

type scanner interface {
	Scan(dest ...any) error
}

func scanReconciliation(s scanner) (*reconciliation.Reconciliation, error) {
	var rec reconciliation.Reconciliation

	var statusStr string

	var approvedBy, notes sql.NullString

	var sessionIDs, estimatedIDs []byte

	if err := s.Scan(
		&rec.ID, &rec.LocationID, &rec.BusinessDate, &statusStr,
		&rec.TotalSales, &rec.CashSales, &rec.CardSales, &rec.OtherSales,
		&rec.TotalCashDrops, &rec.CashInSafe, &rec.CashInDrawers, &rec.TotalVariance,
		&sessionIDs, &estimatedIDs,
		&rec.CreatedAt, &approvedBy, &rec.ApprovedAt, &notes,
	); err != nil {
		return nil, err
	}

	rec.Status = reconciliation.Status(statusStr)
	rec.ApprovedBy = approvedBy.String
	rec.Notes = notes.String

	if len(sessionIDs) > 0 {
		if err := json.Unmarshal(sessionIDs, &rec.SessionIDs); err != nil {
			return nil, fmt.Errorf("decoding session ids: %w", err)
		}
	}

	if len(estimatedIDs) > 0 {
		if err := json.Unmarshal(estimatedIDs, &rec.EstimatedSessionIDs); err != nil {
			return nil, fmt.Errorf("decoding estimated session ids: %w", err)
		}
	}

	return &rec, nil
}

func (s *Store) GetReconciliation(ctx context.Context, id uuid.UUID) (*reconciliation.Reconciliation, error) {
	query := `SELECT ` + selectReconciliationColumns + ` FROM daily_reconciliations WHERE id = $1`

	rec, err := scanReconciliation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fault.NotFound("daily_reconciliation", id.String())
		}

		return nil, fault.TransientStore("getting daily reconciliation", err)
	}

	return rec, nil
}

func (s *Store) Approve(ctx context.Context, rec *reconciliation.Reconciliation) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE daily_reconciliations
		SET status = 'approved', approved_by = $1, approved_at = $2, notes = $3
		WHERE id = $4 AND status = 'completed'
	`, rec.ApprovedBy, rec.ApprovedAt, rec.Notes, rec.ID)
	if err != nil {
		return fault.TransientStore("approving daily reconciliation", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		current, getErr := s.GetReconciliation(ctx, rec.ID)
		if getErr != nil {
			return getErr
		}

		return fault.InvalidState("daily_reconciliation", rec.ID.String(),
			string(current.Status), string(reconciliation.StatusCompleted))
	}

	return nil
}

func (s *Store) ListUndeposited(ctx context.Context, locationID uuid.UUID) ([]*reconciliation.Reconciliation, error) {
	query := `SELECT ` + selectReconciliationColumns + `
		FROM daily_reconciliations
		WHERE location_id = $1
		  AND status IN ('completed', 'approved')
		  AND weekly_deposit_id IS NULL
		ORDER BY business_date ASC`

	rows, err := s.db.QueryContext(ctx, query, locationID)
	if err != nil {
		return nil, fault.TransientStore("listing undeposited reconciliations", err)
	}
	defer rows.Close()

	var recs []*reconciliation.Reconciliation

	for rows.Next() {
		rec, err := scanReconciliation(rows)
		if err != nil {
			return nil, fault.TransientStore("scanning daily reconciliation", err)
		}

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fault.TransientStore("iterating daily reconciliations", err)
	}

	return recs, nil
}
