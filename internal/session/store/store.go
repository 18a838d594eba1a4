// Package store implements the session repository on Postgres.
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
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/session"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectSessionColumns = `
	id, location_id, register_name, status, business_date,
	opened_at, opened_by, closed_at, closed_by, reconciled_at,
	opening_float, expected_cash_sales, expected_cash_returns,
	cash_drops_total, cash_additions_total, card_sales, other_sales,
	actual_cash_counted, denomination_breakdown, variance_reason, notes
`

// scanSession reads one session row in selectSessionColumns order.
func scanSession(s scanner) (*session.Session, error) {
	var sess session.Session

	var statusStr string

	var closedBy, varianceReason, notes sql.NullString

	var actual sql.NullInt64

	var breakdown []byte

	if err := s.Scan(
		&sess.ID, &sess.LocationID, &sess.RegisterName, &statusStr, &sess.BusinessDate,
		&sess.OpenedAt, &sess.OpenedBy, &sess.ClosedAt, &closedBy, &sess.ReconciledAt,
		&sess.OpeningFloat, &sess.ExpectedCashSales, &sess.ExpectedCashReturns,
		&sess.CashDropsTotal, &sess.CashAdditionsTotal, &sess.CardSales, &sess.OtherSales,
		&actual, &breakdown, &varianceReason, &notes,
	); err != nil {
		return nil, err
	}

	sess.Status = session.Status(statusStr)
	sess.ClosedBy = closedBy.String
	sess.VarianceReason = varianceReason.String
	sess.Notes = notes.String

	if actual.Valid {
		m := money.Money(actual.Int64)
		sess.ActualCashCounted = &m
	}

	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &sess.Breakdown); err != nil {
			return nil, fmt.Errorf("decoding breakdown: %w", err)
		}
	}

	return &sess, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) CreateSession(ctx context.Context, sess *session.Session) error {
	query := `
		INSERT INTO drawer_sessions (
			location_id, register_name, status, business_date,
			opened_at, opened_by, opening_float, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		sess.LocationID,
		sess.RegisterName,
		sess.Status,
		sess.BusinessDate,
		sess.OpenedAt,
		sess.OpenedBy,
		sess.OpeningFloat,
		sess.Notes,
	).Scan(&sess.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fault.Conflict("drawer_session",
				fmt.Sprintf("register %q already has an open session at this location", sess.RegisterName))
		}

		return fault.TransientStore("creating drawer session", err)
	}

	return nil
}

func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	query := `SELECT ` + selectSessionColumns + ` FROM drawer_sessions WHERE id = $1`

	sess, err := scanSession(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fault.NotFound("drawer_session", id.String())
		}

		return nil, fault.TransientStore("getting drawer session", err)
	}

	return sess, nil
}

func (s *Store) FindOpen(ctx context.Context, locationID uuid.UUID, register string) (*session.Session, error) {
	query := `SELECT ` + selectSessionColumns + `
		FROM drawer_sessions
		WHERE location_id = $1 AND status = 'open'`

	args := []any{locationID}

	if register != "" {
		query += ` AND register_name = $2`

		args = append(args, register)
	}

	query += ` ORDER BY opened_at DESC LIMIT 1`

	sess, err := scanSession(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fault.TransientStore("finding open drawer session", err)
	}

	return sess, nil
}

func (s *Store) CloseSession(ctx context.Context, sess *session.Session) error {
	query := `
		UPDATE drawer_sessions
		SET status = 'closed', closed_at = $1, closed_by = $2,
		    actual_cash_counted = $3, denomination_breakdown = $4,
		    variance_reason = $5, notes = $6
		WHERE id = $7 AND status = 'open'
	`

	var breakdown []byte
	if len(sess.Breakdown) > 0 {
		var err error

		breakdown, err = json.Marshal(sess.Breakdown)
		if err != nil {
			return fmt.Errorf("encoding breakdown: %w", err)
		}
	}

	res, err := s.db.ExecContext(ctx, query,
		sess.ClosedAt,
		sess.ClosedBy,
		int64(*sess.ActualCashCounted),
		breakdown,
		sess.VarianceReason,
		sess.Notes,
		sess.ID,
	)
	if err != nil {
		return fault.TransientStore("closing drawer session", err)
	}

	// A racing close or reconciliation got there first.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		current, getErr := s.GetSession(ctx, sess.ID)
		if getErr != nil {
			return getErr
		}

		return fault.InvalidState("drawer_session", sess.ID.String(),
			string(current.Status), string(session.StatusOpen))
	}

	return nil
}

// accrueColumn maps an accrual kind to its counter column. The switch is
// exhaustive over session.AccrueKind.
func accrueColumn(kind session.AccrueKind) (string, error) {
	switch kind {
	case session.AccrueCashSale:
		return "expected_cash_sales", nil
	case session.AccrueCashReturn:
		return "expected_cash_returns", nil
	case session.AccrueCashAddition:
		return "cash_additions_total", nil
	case session.AccrueCardSale:
		return "card_sales", nil
	case session.AccrueOtherSale:
		return "other_sales", nil
	default:
		return "", fmt.Errorf("unknown accrual kind %q", kind)
	}
}

// Accrue is a single atomic read-modify-write at the store: concurrent
// accruals on the same session are both reflected, never lost.
func (s *Store) Accrue(ctx context.Context, id uuid.UUID, kind session.AccrueKind, amount money.Money) error {
	column, err := accrueColumn(kind)
	if err != nil {
		return fault.Validation("%v", err)
	}

	query := fmt.Sprintf(`
		UPDATE drawer_sessions
		SET %s = %s + $1
		WHERE id = $2 AND status = 'open'
	`, column, column)

	res, err := s.db.ExecContext(ctx, query, int64(amount), id)
	if err != nil {
		return fault.TransientStore("accruing on drawer session", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		current, getErr := s.GetSession(ctx, id)
		if getErr != nil {
			return getErr
		}

		return fault.InvalidState("drawer_session", id.String(),
			string(current.Status), string(session.StatusOpen))
	}

	return nil
}

func (s *Store) ListForDate(ctx context.Context, locationID uuid.UUID, businessDate time.Time) ([]*session.Session, error) {
	query := `SELECT ` + selectSessionColumns + `
		FROM drawer_sessions
		WHERE location_id = $1 AND business_date = $2
		ORDER BY opened_at ASC`

	return s.list(ctx, query, locationID, businessDate)
}

// ListOpen returns every open session for a location, oldest first.
func (s *Store) ListOpen(ctx context.Context, locationID uuid.UUID) ([]*session.Session, error) {
	query := `SELECT ` + selectSessionColumns + `
		FROM drawer_sessions
		WHERE location_id = $1 AND status = 'open'
		ORDER BY opened_at ASC`

	return s.list(ctx, query, locationID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*session.Session, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fault.TransientStore("listing drawer sessions", err)
	}
	defer rows.Close()

	var sessions []*session.Session

	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fault.TransientStore("scanning drawer session", err)
		}

		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fault.TransientStore("iterating drawer sessions", err)
	}

	return sessions, nil
}
