package reconciliation

import (
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
)

type reconciliationResponse struct {
	ID           uuid.UUID             `json:"id"`
	LocationID   uuid.UUID             `json:"location_id"`
	BusinessDate string                `json:"business_date"`
	Status       reconciliation.Status `json:"status"`
	Currency     string                `json:"currency"`

	TotalSales int64 `json:"total_sales"`
	CashSales  int64 `json:"cash_sales"`
	CardSales  int64 `json:"card_sales"`
	OtherSales int64 `json:"other_sales"`

	TotalCashDrops int64 `json:"total_cash_drops"`
	CashInSafe     int64 `json:"cash_in_safe"`
	CashInDrawers  int64 `json:"cash_in_drawers"`
	TotalVariance  int64 `json:"total_variance"`

	SessionIDs          []uuid.UUID `json:"session_ids"`
	EstimatedSessionIDs []uuid.UUID `json:"estimated_session_ids,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

func toResponse(rec *reconciliation.Reconciliation) reconciliationResponse {
	return reconciliationResponse{
		ID:                  rec.ID,
		LocationID:          rec.LocationID,
		BusinessDate:        rec.BusinessDate.Format(time.DateOnly),
		Status:              rec.Status,
		Currency:            money.Currency,
		TotalSales:          int64(rec.TotalSales),
		CashSales:           int64(rec.CashSales),
		CardSales:           int64(rec.CardSales),
		OtherSales:          int64(rec.OtherSales),
		TotalCashDrops:      int64(rec.TotalCashDrops),
		CashInSafe:          int64(rec.CashInSafe),
		CashInDrawers:       int64(rec.CashInDrawers),
		TotalVariance:       int64(rec.TotalVariance),
		SessionIDs:          rec.SessionIDs,
		EstimatedSessionIDs: rec.EstimatedSessionIDs,
		CreatedAt:           rec.CreatedAt,
		ApprovedBy:          rec.ApprovedBy,
		ApprovedAt:          rec.ApprovedAt,
		Notes:               rec.Notes,
	}
}
