package deposit

import (
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/deposit"
	"github.com/tillworks/tillkeeper/internal/money"
)

type depositResponse struct {
	ID         uuid.UUID      `json:"id"`
	LocationID uuid.UUID      `json:"location_id"`
	WeekStart  string         `json:"week_start_date"`
	WeekEnd    string         `json:"week_end_date"`
	Status     deposit.Status `json:"status"`
	Currency   string         `json:"currency"`

	DepositAmount     int64       `json:"deposit_amount"`
	ReconciliationIDs []uuid.UUID `json:"reconciliation_ids"`

	CreatedAt  time.Time  `json:"created_at"`
	PreparedBy string     `json:"prepared_by,omitempty"`
	PreparedAt *time.Time `json:"prepared_at,omitempty"`
	PickedUpBy string     `json:"picked_up_by,omitempty"`
	PickedUpAt *time.Time `json:"picked_up_at,omitempty"`

	DepositedAt     *time.Time `json:"deposited_at,omitempty"`
	BankDepositSlip string     `json:"bank_deposit_slip,omitempty"`

	BankVerifiedAmount *int64     `json:"bank_verified_amount,omitempty"`
	BankVerifiedAt     *time.Time `json:"bank_verified_at,omitempty"`
	Variance           *int64     `json:"variance,omitempty"`

	Breakdown money.Breakdown `json:"denomination_breakdown,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

func toResponse(dep *deposit.Deposit) depositResponse {
	resp := depositResponse{
		ID:                dep.ID,
		LocationID:        dep.LocationID,
		WeekStart:         dep.WeekStart.Format(time.DateOnly),
		WeekEnd:           dep.WeekEnd.Format(time.DateOnly),
		Status:            dep.Status,
		Currency:          money.Currency,
		DepositAmount:     int64(dep.DepositAmount),
		ReconciliationIDs: dep.ReconciliationIDs,
		CreatedAt:         dep.CreatedAt,
		PreparedBy:        dep.PreparedBy,
		PreparedAt:        dep.PreparedAt,
		PickedUpBy:        dep.PickedUpBy,
		PickedUpAt:        dep.PickedUpAt,
		DepositedAt:       dep.DepositedAt,
		BankDepositSlip:   dep.BankDepositSlip,
		BankVerifiedAt:    dep.BankVerifiedAt,
		Breakdown:         dep.Breakdown,
		Notes:             dep.Notes,
	}

	if dep.BankVerifiedAmount != nil {
		verified := int64(*dep.BankVerifiedAmount)
		resp.BankVerifiedAmount = &verified
	}

	if v, ok := dep.Variance(); ok {
		variance := int64(v)
		resp.Variance = &variance
	}

	return resp
}
