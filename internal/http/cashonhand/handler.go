package cashonhand

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/cashonhand"
	"github.com/tillworks/tillkeeper/internal/http/respond"
)

type Handler struct {
	svc *cashonhand.Service
}

func NewHandler(svc *cashonhand.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type snapshotResponse struct {
	LocationID                 uuid.UUID `json:"location_id"`
	CashInDrawers              int64     `json:"cash_in_drawers"`
	CashInSafe                 int64     `json:"cash_in_safe"`
	TotalCashOnHand            int64     `json:"total_cash_on_hand"`
	PendingDepositAmount       int64     `json:"pending_deposit_amount"`
	CurrentWeekCashAccumulated int64     `json:"current_week_cash_accumulated"`
	Currency                   string    `json:"currency"`
	ComputedAt                 time.Time `json:"computed_at"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(r.URL.Query().Get("location_id"))
	if err != nil {
		respond.BadRequest(w, "invalid location_id")
		return
	}

	snap, err := h.svc.Project(r.Context(), locationID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, snapshotResponse{
		LocationID:                 snap.LocationID,
		CashInDrawers:              int64(snap.CashInDrawers),
		CashInSafe:                 int64(snap.CashInSafe),
		TotalCashOnHand:            int64(snap.TotalCashOnHand),
		PendingDepositAmount:       int64(snap.PendingDepositAmount),
		CurrentWeekCashAccumulated: int64(snap.CurrentWeekCashAccumulated),
		Currency:                   snap.Currency,
		ComputedAt:                 snap.ComputedAt,
	})
}
