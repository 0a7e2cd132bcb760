package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/construction-stages/internal/adapters/http/dto"
	"github.com/jsamuelsen11/construction-stages/internal/domain"
	"github.com/jsamuelsen11/construction-stages/internal/ports"
)

// StageHandler handles HTTP requests for construction stages.
type StageHandler struct {
	store ports.StageStore
}

// NewStageHandler creates a new StageHandler backed by the given store.
func NewStageHandler(store ports.StageStore) *StageHandler {
	return &StageHandler{store: store}
}

// ListStages handles GET /api/v1/construction-stages.
func (h *StageHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.store.ListAll(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageListResponse(stages))
}

// GetStage handles GET /api/v1/construction-stages/{id}. The body is a
// one-element list; an unknown id is a 404.
func (h *StageHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	stages, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if len(stages) == 0 {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageListResponse(stages))
}

// CreateStage handles POST /api/v1/construction-stages.
func (h *StageHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStageRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.store.Create(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToStageResponse(created))
}

// UpdateStage handles PATCH /api/v1/construction-stages/{id}.
func (h *StageHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateStageRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.store.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageResponse(updated))
}

// DeleteStage handles DELETE /api/v1/construction-stages/{id}. The stage is
// marked DELETED, not removed.
func (h *StageHandler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.store.SoftDelete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
