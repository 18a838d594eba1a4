package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/http/auth"
	"github.com/tillworks/tillkeeper/internal/http/respond"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/session"
)

type Handler struct {
	svc *session.Service
}

func NewHandler(svc *session.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.open)
	r.Get("/", h.listForDate)
	r.Get("/current", h.getCurrent)
	r.Get("/{id}", h.get)
	r.Post("/{id}/close", h.close)
	r.Post("/{id}/accrue", h.accrue)
}

type openRequest struct {
	LocationID   uuid.UUID `json:"location_id"`
	RegisterName string    `json:"register_name"`
	OpeningFloat int64     `json:"opening_float"`
	Notes        string    `json:"notes,omitempty"`
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	sess, err := h.svc.Open(r.Context(), auth.Actor(r.Context()), session.OpenParams{
		LocationID:   req.LocationID,
		RegisterName: req.RegisterName,
		OpeningFloat: money.Money(req.OpeningFloat),
		Notes:        req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(sess, h.svc.Classify))
}

type closeRequest struct {
	ActualCashCounted int64           `json:"actual_cash_counted"`
	Breakdown         money.Breakdown `json:"denomination_breakdown,omitempty"`
	VarianceReason    string          `json:"variance_reason,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req closeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	sess, err := h.svc.Close(r.Context(), auth.Actor(r.Context()), session.CloseParams{
		SessionID:         id,
		ActualCashCounted: money.Money(req.ActualCashCounted),
		Breakdown:         req.Breakdown,
		VarianceReason:    req.VarianceReason,
		Notes:             req.Notes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(sess, h.svc.Classify))
}

type accrueRequest struct {
	Kind   session.AccrueKind `json:"kind"`
	Amount int64              `json:"amount"`
}

func (h *Handler) accrue(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req accrueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	if err := h.svc.AccrueSale(r.Context(), id, req.Kind, money.Money(req.Amount)); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCurrent(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(r.URL.Query().Get("location_id"))
	if err != nil {
		respond.BadRequest(w, "invalid location_id")
		return
	}

	register := r.URL.Query().Get("register")

	sess, err := h.svc.GetCurrent(r.Context(), locationID, register)
	if err != nil {
		respond.Error(w, err)
		return
	}

	// No open drawer is a normal answer, not an error.
	if sess == nil {
		respond.JSON(w, http.StatusOK, nil)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(sess, h.svc.Classify))
}

func (h *Handler) listForDate(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(r.URL.Query().Get("location_id"))
	if err != nil {
		respond.BadRequest(w, "invalid location_id")
		return
	}

	businessDate, err := time.Parse(time.DateOnly, r.URL.Query().Get("business_date"))
	if err != nil {
		respond.BadRequest(w, "business_date must be YYYY-MM-DD")
		return
	}

	sessions, err := h.svc.ListForDate(r.Context(), locationID, businessDate)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]sessionResponse, len(sessions))
	for i, sess := range sessions {
		resp[i] = toResponse(sess, h.svc.Classify)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	sess, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(sess, h.svc.Classify))
}
