// Package store implements the cash drop repository on Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/drop"
	"github.com/tillworks/tillkeeper/internal/fault"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateDrop runs the ledger append and the session counter increment in one
// database transaction. The counter update is a single atomic statement
// guarded by status = 'open'; two racing drops both land, and a drop against
// a closed drawer touches nothing.
func (s *Store) CreateDrop(ctx context.Context, d *drop.Drop) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fault.TransientStore("beginning drop transaction", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE drawer_sessions
		SET cash_drops_total = cash_drops_total + $1
		WHERE id = $2 AND status = 'open'
	`, int64(d.Amount), d.SessionID)
	if err != nil {
		return fault.TransientStore("incrementing cash drops total", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return s.sessionGuardFailure(ctx, d.SessionID)
	}

	var breakdown []byte
	if len(d.Breakdown) > 0 {
		breakdown, err = json.Marshal(d.Breakdown)
		if err != nil {
			return fmt.Errorf("encoding breakdown: %w", err)
		}
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO cash_drops (
			drawer_session_id, location_id, drop_type, amount,
			dropped_at, dropped_by, denomination_breakdown, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		d.SessionID,
		d.LocationID,
		d.Type,
		int64(d.Amount),
		d.DroppedAt,
		d.DroppedBy,
		breakdown,
		d.Notes,
	).Scan(&d.ID)
	if err != nil {
		return fault.TransientStore("creating cash drop", err)
	}

	if err := tx.Commit(); err != nil {
		return fault.TransientStore("committing cash drop", err)
	}

	return nil
}

// sessionGuardFailure distinguishes a missing session from one that is no
// longer open, so the caller gets a precise failure.
func (s *Store) sessionGuardFailure(ctx context.Context, sessionID uuid.UUID) error {
	var status string

	err := s.db.QueryRowContext(ctx,
		`SELECT status FROM drawer_sessions WHERE id = $1`, sessionID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fault.NotFound("drawer_session", sessionID.String())
		}

		return fault.TransientStore("checking drawer session status", err)
	}

	return fault.InvalidState("drawer_session", sessionID.String(), status, "open")
}

func (s *Store) ListDrops(ctx context.Context, sessionID uuid.UUID) ([]*drop.Drop, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, drawer_session_id, location_id, drop_type, amount,
		       dropped_at, dropped_by, denomination_breakdown, notes
		FROM cash_drops
		WHERE drawer_session_id = $1
		ORDER BY dropped_at ASC, id ASC
	`, sessionID)
	if err != nil {
		return nil, fault.TransientStore("listing cash drops", err)
	}
	defer rows.Close()

	var drops []*drop.Drop

	for rows.Next() {
		var d drop.Drop

		var typeStr string

		var droppedBy, notes sql.NullString

		var breakdown []byte

		if err := rows.Scan(
			&d.ID, &d.SessionID, &d.LocationID, &typeStr, &d.Amount,
			&d.DroppedAt, &droppedBy, &breakdown, &notes,
		); err != nil {
			return nil, fault.TransientStore("scanning cash drop", err)
		}

		d.Type = drop.Type(typeStr)
		d.DroppedBy = droppedBy.String
		d.Notes = notes.String

		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &d.Breakdown); err != nil {
				return nil, fmt.Errorf("decoding breakdown: %w", err)
			}
		}

		drops = append(drops, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fault.TransientStore("iterating cash drops", err)
	}

	return drops, nil
}
