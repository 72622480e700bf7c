package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// StageHandler handles HTTP requests for stages, their status and messages.
type StageHandler struct {
	svc ports.StageService
}

func NewStageHandler(svc ports.StageService) *StageHandler {
	return &StageHandler{svc: svc}
}

// ListStages handles GET /api/v1/stages. The optional subproject_id query
// parameter narrows the list to one subproject.
func (h *StageHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	subprojectID, err := parseQueryID(r, "subproject_id")
	if fail(w, r, err) {
		return
	}
	page, err := parsePage(r)
	if fail(w, r, err) {
		return
	}

	result, err := h.svc.ListStages(r.Context(), ports.StageFilter{SubprojectID: subprojectID}, page)
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(result, page, dto.ToStageSummaryResponse))
}

// CreateStage handles POST /api/v1/stages.
func (h *StageHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateStage(r.Context(), req.ToCmd())
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToStageResponse(created))
}

// GetStage handles GET /api/v1/stages/{id}. Message authors carry their
// usernames.
func (h *StageHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	view, err := h.svc.GetStage(r.Context(), id)
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageViewResponse(view))
}

// UpdateStage handles PATCH /api/v1/stages/{id}.
func (h *StageHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	var req dto.UpdateEntityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateStage(r.Context(), ports.UpdateStageCmd{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageResponse(updated))
}

// DeleteStage handles DELETE /api/v1/stages/{id}.
func (h *StageHandler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	if fail(w, r, h.svc.DeleteStage(r.Context(), id)) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeStageStatus handles PATCH /api/v1/stages/{id}/status on behalf of
// the authenticated caller.
func (h *StageHandler) ChangeStageStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}
	p, err := principal(r)
	if fail(w, r, err) {
		return
	}

	var req dto.ChangeStageStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.svc.ChangeStageStatus(r.Context(), req.ToCmd(id, p))
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageResponse(st))
}

// AddMessage handles POST /api/v1/stages/{id}/message. The caller is the
// author.
func (h *StageHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}
	p, err := principal(r)
	if fail(w, r, err) {
		return
	}

	var req dto.AddMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	msg, err := h.svc.AddMessage(r.Context(), ports.AddMessageCmd{
		StageID:  id,
		AuthorID: p.UserID,
		Text:     req.Message,
	})
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMessageResponse(*msg, ""))
}

// ListStageHistory handles GET /api/v1/stages/{id}/status-history.
func (h *StageHandler) ListStageHistory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}
	page, err := parsePage(r)
	if fail(w, r, err) {
		return
	}

	history, err := h.svc.ListStageHistory(r.Context(), id, page)
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(history, page, dto.ToStatusHistoryResponse))
}
