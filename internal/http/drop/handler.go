package drop

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/drop"
	"github.com/tillworks/tillkeeper/internal/http/auth"
	"github.com/tillworks/tillkeeper/internal/http/respond"
	"github.com/tillworks/tillkeeper/internal/money"
)

type Handler struct {
	svc *drop.Service
}

func NewHandler(svc *drop.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes is mounted under /sessions/{sessionID}/drops.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
	r.Get("/", h.list)
}

type recordRequest struct {
	LocationID uuid.UUID       `json:"location_id"`
	Type       drop.Type       `json:"drop_type"`
	Amount     int64           `json:"amount"`
	Breakdown  money.Breakdown `json:"denomination_breakdown,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

type dropResponse struct {
	ID         uuid.UUID       `json:"id"`
	SessionID  uuid.UUID       `json:"drawer_session_id"`
	LocationID uuid.UUID       `json:"location_id"`
	Type       drop.Type       `json:"drop_type"`
	Amount     int64           `json:"amount"`
	Currency   string          `json:"currency"`
	DroppedAt  time.Time       `json:"dropped_at"`
	DroppedBy  string          `json:"dropped_by,omitempty"`
	Breakdown  money.Breakdown `json:"denomination_breakdown,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

func toResponse(d *drop.Drop) dropResponse {
	return dropResponse{
		ID:         d.ID,
		SessionID:  d.SessionID,
		LocationID: d.LocationID,
		Type:       d.Type,
		Amount:     int64(d.Amount),
		Currency:   money.Currency,
		DroppedAt:  d.DroppedAt,
		DroppedBy:  d.DroppedBy,
		Breakdown:  d.Breakdown,
		Notes:      d.Notes,
	}
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respond.BadRequest(w, "invalid session id")
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	d, err := h.svc.Record(r.Context(), auth.Actor(r.Context()), drop.RecordParams{
		SessionID:  sessionID,
		LocationID: req.LocationID,
		Type:       req.Type,
		Amount:     money.Money(req.Amount),
		Breakdown:  req.Breakdown,
		Notes:      req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(d))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respond.BadRequest(w, "invalid session id")
		return
	}

	drops, err := h.svc.List(r.Context(), sessionID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]dropResponse, len(drops))
	for i, d := range drops {
		resp[i] = toResponse(d)
	}

	respond.JSON(w, http.StatusOK, resp)
}
