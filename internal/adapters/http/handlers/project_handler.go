// Package handlers turns HTTP requests into service port calls. Each handler
// parses its inputs, calls exactly one port method and renders the result
// through the dto package, so domain errors map to problem responses in one
// place.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// ProjectHandler serves the top level of the aggregate: projects and their
// stage templates.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler wires svc.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects answers GET /projects with one page of summaries.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if fail(w, r, err) {
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), page)
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(projects, page, dto.ToProjectSummaryResponse))
}

// CreateProject answers POST /projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.ToCmd())
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject answers GET /projects/{id} with the full tree.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

// UpdateProject applies a partial PATCH.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	var req dto.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateProject(r.Context(), req.ToCmd(id))
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(updated))
}

// DeleteProject removes the project and everything under it.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	if fail(w, r, h.svc.DeleteProject(r.Context(), id)) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MakeTemplate handles POST /api/v1/projects/{id}/template. The named
// subproject's stage list becomes the project template.
func (h *ProjectHandler) MakeTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	var req dto.MakeTemplateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tmpl, err := h.svc.MakeTemplate(r.Context(), id, req.ParsedSubprojectID())
	if fail(w, r, err) {
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTemplateResponse(tmpl))
}
