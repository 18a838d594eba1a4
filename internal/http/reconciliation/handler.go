package reconciliation

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/http/auth"
	"github.com/tillworks/tillkeeper/internal/http/respond"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
)

type Handler struct {
	svc *reconciliation.Service
}

func NewHandler(svc *reconciliation.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/undeposited", h.listUndeposited)
	r.Get("/{id}", h.get)
	r.Post("/{id}/approve", h.approve)
}

type createRequest struct {
	LocationID   uuid.UUID `json:"location_id"`
	BusinessDate string    `json:"business_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	businessDate, err := time.Parse(time.DateOnly, req.BusinessDate)
	if err != nil {
		respond.BadRequest(w, "business_date must be YYYY-MM-DD")
		return
	}

	rec, err := h.svc.Create(r.Context(), req.LocationID, businessDate)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(rec))
}

type approveRequest struct {
	Notes string `json:"notes,omitempty"`
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	rec, err := h.svc.Approve(r.Context(), auth.Actor(r.Context()), id, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(rec))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(rec))
}

func (h *Handler) listUndeposited(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(r.URL.Query().Get("location_id"))
	if err != nil {
		respond.BadRequest(w, "invalid location_id")
		return
	}

	recs, err := h.svc.ListUndeposited(r.Context(), locationID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := make([]reconciliationResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	respond.JSON(w, http.StatusOK, resp)
}
