// Package store implements the weekly deposit repository on Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/deposit"
	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
	reconciliationstore "github.com/tillworks/tillkeeper/internal/reconciliation/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UndepositedInWindow(ctx context.Context, locationID uuid.UUID, weekStart, weekEnd time.Time) ([]*reconciliation.Reconciliation, error) {
	recs, err := reconciliationstore.New(s.db).ListUndeposited(ctx, locationID)
	if err != nil {
		return nil, err
	}

	var inWindow []*reconciliation.Reconciliation

	for _, rec := range recs {
		if rec.BusinessDate.Before(weekStart) || rec.BusinessDate.After(weekEnd) {
			continue
		}

		inWindow = append(inWindow, rec)
	}

	return inWindow, nil
}

// CreateClaiming inserts the deposit row and stamps weekly_deposit_id onto
// its reconciliations in one transaction. The claiming UPDATE is guarded by
// weekly_deposit_id IS NULL with the candidate rows locked, so two racing
// create calls for overlapping windows can never share a reconciliation.
func (s *Store) CreateClaiming(ctx context.Context, dep *deposit.Deposit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fault.TransientStore("beginning deposit transaction", err)
	}
	defer tx.Rollback()

	placeholders := make([]string, len(dep.ReconciliationIDs))
	args := make([]any, len(dep.ReconciliationIDs))

	for i, id := range dep.ReconciliationIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	lockQuery := fmt.Sprintf(`
		SELECT id FROM daily_reconciliations
		WHERE id IN (%s)
		FOR UPDATE
	`, strings.Join(placeholders, ", "))

	if _, err := tx.ExecContext(ctx, lockQuery, args...); err != nil {
		return fault.TransientStore("locking reconciliations", err)
	}

	recIDs, err := json.Marshal(dep.ReconciliationIDs)
	if err != nil {
		return fmt.Errorf("encoding reconciliation ids: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO weekly_deposits (
			location_id, week_start_date, week_end_date, status,
			deposit_amount, daily_reconciliation_ids, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		dep.LocationID,
		dep.WeekStart,
		dep.WeekEnd,
		dep.Status,
		dep.DepositAmount,
		recIDs,
		dep.CreatedAt,
	).Scan(&dep.ID)
	if err != nil {
		return fault.TransientStore("creating weekly deposit", err)
	}

	claimQuery := fmt.Sprintf(`
		UPDATE daily_reconciliations
		SET weekly_deposit_id = $%d
		WHERE id IN (%s) AND weekly_deposit_id IS NULL
	`, len(args)+1, strings.Join(placeholders, ", "))

	res, err := tx.ExecContext(ctx, claimQuery, append(args, dep.ID)...)
	if err != nil {
		return fault.TransientStore("claiming reconciliations", err)
	}

	if n, err := res.RowsAffected(); err == nil && int(n) != len(dep.ReconciliationIDs) {
		return fault.Conflict("weekly_deposit",
			"one or more daily reconciliations already belong to another deposit")
	}

	if err := tx.Commit(); err != nil {
		return fault.TransientStore("committing weekly deposit", err)
	}

	return nil
}

const selectDepositColumns = `
	id, location_id, week_start_date, week_end_date, status,
	deposit_amount, daily_reconciliation_ids, created_at,
	prepared_by, prepared_at, picked_up_by, picked_up_at,
	deposited_at, bank_deposit_slip, bank_verified_amount, bank_verified_at,
	denomination_breakdown, notes
`

type scanner interface {
	Scan(dest ...any) error
}

func scanDeposit(s scanner) (*deposit.Deposit, error) {
	var dep deposit.Deposit

	var statusStr string

	var preparedBy, pickedUpBy, slip, notes sql.NullString

	var verified sql.NullInt64

	var recIDs, breakdown []byte

	if err := s.Scan(
		&dep.ID, &dep.LocationID, &dep.WeekStart, &dep.WeekEnd, &statusStr,
		&dep.DepositAmount, &recIDs, &dep.CreatedAt,
		&preparedBy, &dep.PreparedAt, &pickedUpBy, &dep.PickedUpAt,
		&dep.DepositedAt, &slip, &verified, &dep.BankVerifiedAt,
		&breakdown, &notes,
	); err != nil {
		return nil, err
	}

	dep.Status = deposit.Status(statusStr)
	dep.PreparedBy = preparedBy.String
	dep.PickedUpBy = pickedUpBy.String
	dep.BankDepositSlip = slip.String
	dep.Notes = notes.String

	if verified.Valid {
		m := money.Money(verified.Int64)
		dep.BankVerifiedAmount = &m
	}

	if len(recIDs) > 0 {
		if err := json.Unmarshal(recIDs, &dep.ReconciliationIDs); err != nil {
			return nil, fmt.Errorf("decoding reconciliation ids: %w", err)
		}
	}

	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &dep.Breakdown); err != nil {
			return nil, fmt.Errorf("decoding breakdown: %w", err)
		}
	}

	return &dep, nil
}

func (s *Store) GetDeposit(ctx context.Context, id uuid.UUID) (*deposit.Deposit, error) {
	query := `SELECT ` + selectDepositColumns + ` FROM weekly_deposits WHERE id = $1`

	dep, err := scanDeposit(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fault.NotFound("weekly_deposit", id.String())
		}

		return nil, fault.TransientStore("getting weekly deposit", err)
	}

	return dep, nil
}

// Transition writes the deposit's step fields guarded by the required prior
// status. A racing or repeated transition affects zero rows and fails with
// the deposit's actual current status.
func (s *Store) Transition(ctx context.Context, dep *deposit.Deposit, required deposit.Status) error {
	var breakdown []byte
	if len(dep.Breakdown) > 0 {
		var err error

		breakdown, err = json.Marshal(dep.Breakdown)
		if err != nil {
			return fmt.Errorf("encoding breakdown: %w", err)
		}
	}

	var verified *int64
	if dep.BankVerifiedAmount != nil {
		v := int64(*dep.BankVerifiedAmount)
		verified = &v
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE weekly_deposits
		SET status = $1,
		    prepared_by = $2, prepared_at = $3,
		    picked_up_by = $4, picked_up_at = $5,
		    deposited_at = $6, bank_deposit_slip = $7,
		    bank_verified_amount = $8, bank_verified_at = $9,
		    denomination_breakdown = $10, notes = $11
		WHERE id = $12 AND status = $13
	`,
		dep.Status,
		dep.PreparedBy, dep.PreparedAt,
		dep.PickedUpBy, dep.PickedUpAt,
		dep.DepositedAt, dep.BankDepositSlip,
		verified, dep.BankVerifiedAt,
		breakdown, dep.Notes,
		dep.ID, required,
	)
	if err != nil {
		return fault.TransientStore("transitioning weekly deposit", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		current, getErr := s.GetDeposit(ctx, dep.ID)
		if getErr != nil {
			return getErr
		}

		return fault.InvalidState("weekly_deposit", dep.ID.String(),
			string(current.Status), string(required))
	}

	return nil
}
