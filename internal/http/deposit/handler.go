package deposit

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tillworks/tillkeeper/internal/deposit"
	"github.com/tillworks/tillkeeper/internal/http/auth"
	"github.com/tillworks/tillkeeper/internal/http/respond"
	"github.com/tillworks/tillkeeper/internal/money"
)

type Handler struct {
	svc *deposit.Service
}

func NewHandler(svc *deposit.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Post("/{id}/prepare", h.prepare)
	r.Post("/{id}/pickup", h.pickup)
	r.Post("/{id}/deposit", h.markDeposited)
	r.Post("/{id}/verify", h.verify)
}

type createRequest struct {
	LocationID    uuid.UUID `json:"location_id"`
	WeekStartDate string    `json:"week_start_date,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	var weekStart *time.Time

	if req.WeekStartDate != "" {
		parsed, err := time.Parse(time.DateOnly, req.WeekStartDate)
		if err != nil {
			respond.BadRequest(w, "week_start_date must be YYYY-MM-DD")
			return
		}
		weekStart = &parsed
	}

	dep, err := h.svc.Create(r.Context(), req.LocationID, weekStart)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(dep))
}

type prepareRequest struct {
	Breakdown money.Breakdown `json:"denomination_breakdown,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

func (h *Handler) prepare(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req prepareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	dep, err := h.svc.MarkPrepared(r.Context(), auth.Actor(r.Context()), id, req.Breakdown, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(dep))
}

type pickupRequest struct {
	PickedUpBy string `json:"picked_up_by"`
	Notes      string `json:"notes,omitempty"`
}

func (h *Handler) pickup(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req pickupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	dep, err := h.svc.MarkPickedUp(r.Context(), id, req.PickedUpBy, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(dep))
}

type markDepositedRequest struct {
	BankDepositSlip string `json:"bank_deposit_slip,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func (h *Handler) markDeposited(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req markDepositedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	dep, err := h.svc.MarkDeposited(r.Context(), id, req.BankDepositSlip, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(dep))
}

type verifyRequest struct {
	BankVerifiedAmount int64  `json:"bank_verified_amount"`
	Notes              string `json:"notes,omitempty"`
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	dep, err := h.svc.Verify(r.Context(), id, money.Money(req.BankVerifiedAmount), req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(dep))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	dep, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(dep))
}
