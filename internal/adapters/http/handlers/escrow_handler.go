package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/middletrust/escrow-api/internal/adapters/http/dto"
	"github.com/middletrust/escrow-api/internal/ports"
)

// EscrowHandler handles HTTP requests for the escrow lifecycle:
// creation, invitation decisions, detail fetch, and listing.
type EscrowHandler struct {
	service ports.EscrowService
}

// NewEscrowHandler creates a new EscrowHandler with the given service port.
func NewEscrowHandler(service ports.EscrowService) *EscrowHandler {
	return &EscrowHandler{service: service}
}

// Create handles POST /api/v1/escrows.
func (h *EscrowHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var req dto.CreateEscrowRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), principal, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCreateEscrowResponse(created))
}

// Accept handles POST /api/v1/escrows/{id}/accept.
func (h *EscrowHandler) Accept(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	decision, err := h.service.AcceptInvitation(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDecisionResponse(decision))
}

// Decline handles POST /api/v1/escrows/{id}/decline.
func (h *EscrowHandler) Decline(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	decision, err := h.service.DeclineInvitation(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDecisionResponse(decision))
}

// Get handles GET /api/v1/escrows/{id}.
func (h *EscrowHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	view, err := h.service.GetByID(r.Context(), principal, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if view.Denied {
		writeJSON(w, http.StatusOK, dto.DeniedEscrowResponse{ID: id, Denied: true})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEscrowResponse(view.Escrow, view.DisplayRole))
}

// List handles GET /api/v1/escrows.
func (h *EscrowHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	req, err := parseListRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.service.ListMine(r.Context(), principal, req)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEscrowListResponse(page))
}
