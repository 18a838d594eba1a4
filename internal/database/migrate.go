package database

import (
	"database/sql"
	"fmt"
)

// Migrate ensures the engine's tables and constraints exist. The partial
// unique index on open sessions and the (location, date) uniqueness on
// reconciliations are load-bearing: the engine's mutual-exclusion and
// idempotency guarantees live here, not in application-level checks.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS drawer_sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			location_id UUID NOT NULL,
			register_name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'open',
			business_date DATE NOT NULL,
			opened_at TIMESTAMPTZ NOT NULL,
			opened_by TEXT NOT NULL DEFAULT '',
			closed_at TIMESTAMPTZ,
			closed_by TEXT,
			reconciled_at TIMESTAMPTZ,
			opening_float BIGINT NOT NULL,
			expected_cash_sales BIGINT NOT NULL DEFAULT 0,
			expected_cash_returns BIGINT NOT NULL DEFAULT 0,
			cash_drops_total BIGINT NOT NULL DEFAULT 0,
			cash_additions_total BIGINT NOT NULL DEFAULT 0,
			card_sales BIGINT NOT NULL DEFAULT 0,
			other_sales BIGINT NOT NULL DEFAULT 0,
			actual_cash_counted BIGINT,
			denomination_breakdown JSONB,
			variance_reason TEXT,
			notes TEXT
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_open_session_per_register
			ON drawer_sessions (location_id, register_name)
			WHERE status = 'open'`,
		`CREATE INDEX IF NOT EXISTS idx_drawer_sessions_location_date
			ON drawer_sessions (location_id, business_date)`,

		`CREATE TABLE IF NOT EXISTS cash_drops (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			drawer_session_id UUID NOT NULL REFERENCES drawer_sessions (id),
			location_id UUID NOT NULL,
			drop_type TEXT NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			dropped_at TIMESTAMPTZ NOT NULL,
			dropped_by TEXT,
			denomination_breakdown JSONB,
			notes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cash_drops_session
			ON cash_drops (drawer_session_id, dropped_at)`,

		`CREATE TABLE IF NOT EXISTS daily_reconciliations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			location_id UUID NOT NULL,
			business_date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			total_sales BIGINT NOT NULL DEFAULT 0,
			cash_sales BIGINT NOT NULL DEFAULT 0,
			card_sales BIGINT NOT NULL DEFAULT 0,
			other_sales BIGINT NOT NULL DEFAULT 0,
			total_cash_drops BIGINT NOT NULL DEFAULT 0,
			cash_in_safe BIGINT NOT NULL DEFAULT 0,
			cash_in_drawers BIGINT NOT NULL DEFAULT 0,
			total_variance BIGINT NOT NULL DEFAULT 0,
			drawer_session_ids JSONB NOT NULL DEFAULT '[]',
			estimated_session_ids JSONB,
			weekly_deposit_id UUID,
			created_at TIMESTAMPTZ NOT NULL,
			approved_by TEXT,
			approved_at TIMESTAMPTZ,
			notes TEXT,
			UNIQUE (location_id, business_date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_reconciliations_undeposited
			ON daily_reconciliations (location_id, business_date)
			WHERE weekly_deposit_id IS NULL`,

		`CREATE TABLE IF NOT EXISTS weekly_deposits (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			location_id UUID NOT NULL,
			week_start_date DATE NOT NULL,
			week_end_date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			deposit_amount BIGINT NOT NULL,
			daily_reconciliation_ids JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL,
			prepared_by TEXT,
			prepared_at TIMESTAMPTZ,
			picked_up_by TEXT,
			picked_up_at TIMESTAMPTZ,
			deposited_at TIMESTAMPTZ,
			bank_deposit_slip TEXT,
			bank_verified_amount BIGINT,
			bank_verified_at TIMESTAMPTZ,
			denomination_breakdown JSONB,
			notes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_weekly_deposits_location
			ON weekly_deposits (location_id, week_start_date)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}

	return nil
}
