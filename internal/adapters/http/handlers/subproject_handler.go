package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// SubprojectHandler serves subprojects, the middle level of a project tree.
type SubprojectHandler struct {
	svc ports.SubprojectService
}

func NewSubprojectHandler(svc ports.SubprojectService) *SubprojectHandler {
	return &SubprojectHandler{svc: svc}
}

// ListSubprojects handles GET /api/v1/subprojects. The optional project_id
// query parameter narrows the list to one project.
func (h *SubprojectHandler) ListSubprojects(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseQueryID(r, "project_id")
	if fail(w, r, err) {
		return
	}
	page, err := parsePage(r)
	if fail(w, r, err) {
		return
	}

	result, err := h.svc.ListSubprojects(r.Context(), ports.SubprojectFilter{ProjectID: projectID}, page)
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(result, page, dto.ToSubprojectSummaryResponse))
}

// CreateSubproject handles POST /api/v1/subprojects.
func (h *SubprojectHandler) CreateSubproject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSubprojectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateSubproject(r.Context(), req.ToCmd())
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSubprojectResponse(created))
}

// GetSubproject handles GET /api/v1/subprojects/{id}.
func (h *SubprojectHandler) GetSubproject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	sp, err := h.svc.GetSubproject(r.Context(), id)
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSubprojectResponse(sp))
}

// UpdateSubproject handles PATCH /api/v1/subprojects/{id}.
func (h *SubprojectHandler) UpdateSubproject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	var req dto.UpdateEntityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateSubproject(r.Context(), ports.UpdateSubprojectCmd{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSubprojectResponse(updated))
}

// DeleteSubproject handles DELETE /api/v1/subprojects/{id}.
func (h *SubprojectHandler) DeleteSubproject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	if fail(w, r, h.svc.DeleteSubproject(r.Context(), id)) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
