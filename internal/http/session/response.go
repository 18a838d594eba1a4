package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/session"
)

// sessionResponse carries raw minor-unit amounts plus an explicit currency
// code; formatting belongs to the presentation collaborator.
type sessionResponse struct {
	ID           uuid.UUID      `json:"id"`
	LocationID   uuid.UUID      `json:"location_id"`
	RegisterName string         `json:"register_name"`
	Status       session.Status `json:"status"`
	BusinessDate string         `json:"business_date"`
	Currency     string         `json:"currency"`

	OpenedAt     time.Time  `json:"opened_at"`
	OpenedBy     string     `json:"opened_by,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	ClosedBy     string     `json:"closed_by,omitempty"`
	ReconciledAt *time.Time `json:"reconciled_at,omitempty"`

	OpeningFloat        int64 `json:"opening_float"`
	ExpectedCashSales   int64 `json:"expected_cash_sales"`
	ExpectedCashReturns int64 `json:"expected_cash_returns"`
	CashDropsTotal      int64 `json:"cash_drops_total"`
	CashAdditionsTotal  int64 `json:"cash_additions_total"`
	CardSales           int64 `json:"card_sales"`
	OtherSales          int64 `json:"other_sales"`
	ExpectedTotal       int64 `json:"expected_total"`

	ActualCashCounted *int64                `json:"actual_cash_counted,omitempty"`
	Variance          *int64                `json:"variance,omitempty"`
	VarianceClass     session.VarianceClass `json:"variance_class,omitempty"`
	Breakdown         money.Breakdown       `json:"denomination_breakdown,omitempty"`
	VarianceReason    string                `json:"variance_reason,omitempty"`
	Notes             string                `json:"notes,omitempty"`
}

func toResponse(sess *session.Session, classify func(money.Money) session.VarianceClass) sessionResponse {
	resp := sessionResponse{
		ID:                  sess.ID,
		LocationID:          sess.LocationID,
		RegisterName:        sess.RegisterName,
		Status:              sess.Status,
		BusinessDate:        sess.BusinessDate.Format(time.DateOnly),
		Currency:            money.Currency,
		OpenedAt:            sess.OpenedAt,
		OpenedBy:            sess.OpenedBy,
		ClosedAt:            sess.ClosedAt,
		ClosedBy:            sess.ClosedBy,
		ReconciledAt:        sess.ReconciledAt,
		OpeningFloat:        int64(sess.OpeningFloat),
		ExpectedCashSales:   int64(sess.ExpectedCashSales),
		ExpectedCashReturns: int64(sess.ExpectedCashReturns),
		CashDropsTotal:      int64(sess.CashDropsTotal),
		CashAdditionsTotal:  int64(sess.CashAdditionsTotal),
		CardSales:           int64(sess.CardSales),
		OtherSales:          int64(sess.OtherSales),
		ExpectedTotal:       int64(sess.ExpectedTotal()),
		Breakdown:           sess.Breakdown,
		VarianceReason:      sess.VarianceReason,
		Notes:               sess.Notes,
	}

	if sess.ActualCashCounted != nil {
		actual := int64(*sess.ActualCashCounted)
		resp.ActualCashCounted = &actual
	}

	if v, ok := sess.Variance(); ok {
		variance := int64(v)
		resp.Variance = &variance
		resp.VarianceClass = classify(v)
	}

	return resp
}
