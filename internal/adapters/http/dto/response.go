// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// ProjectResponse represents a whole project aggregate in HTTP responses.
type ProjectResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Progress    float64              `json:"progress"`
	Subprojects []SubprojectResponse `json:"subprojects"`
	Files       []FileResponse       `json:"files"`
	Template    *TemplateResponse    `json:"template,omitempty"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// ToProjectResponse converts a project aggregate to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	subprojects := p.Subprojects()
	resp := ProjectResponse{
		ID:          p.ID(),
		Name:        p.Name().String(),
		Description: p.Description().String(),
		Status:      p.Status().String(),
		Progress:    p.Progress(),
		Subprojects: make([]SubprojectResponse, len(subprojects)),
		Files:       ToFileResponses(p.Files()),
		CreatedAt:   formatTime(p.CreatedAt()),
		UpdatedAt:   formatTime(p.UpdatedAt()),
	}
	for i, sp := range subprojects {
		resp.Subprojects[i] = ToSubprojectResponse(sp)
	}
	if t := p.Template(); t != nil {
		tr := ToTemplateResponse(t)
		resp.Template = &tr
	}
	return resp
}

// SubprojectResponse represents a subproject with its stages.
type SubprojectResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Progress    float64         `json:"progress"`
	Stages      []StageResponse `json:"stages"`
	Files       []FileResponse  `json:"files"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ToSubprojectResponse converts a subproject entity to an HTTP response DTO.
func ToSubprojectResponse(sp *project.Subproject) SubprojectResponse {
	stages := sp.Stages()
	resp := SubprojectResponse{
		ID:          sp.ID(),
		Name:        sp.Name().String(),
		Description: sp.Description().String(),
		Status:      sp.Status().String(),
		Progress:    sp.Progress(),
		Stages:      make([]StageResponse, len(stages)),
		Files:       ToFileResponses(sp.Files()),
		CreatedAt:   formatTime(sp.CreatedAt()),
		UpdatedAt:   formatTime(sp.UpdatedAt()),
	}
	for i, st := range stages {
		resp.Stages[i] = ToStageResponse(st)
	}
	return resp
}

// StageResponse represents a stage with its message thread and files.
type StageResponse struct {
	ID           uuid.UUID         `json:"id"`
	SubprojectID *uuid.UUID        `json:"subproject_id,omitempty"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Status       string            `json:"status"`
	Messages     []MessageResponse `json:"messages"`
	Files        []FileResponse    `json:"files"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

// ToStageResponse converts a stage entity to an HTTP response DTO. Message
// authors are left unresolved.
func ToStageResponse(st *project.Stage) StageResponse {
	messages := st.Messages()
	resp := StageResponse{
		ID:          st.ID(),
		Name:        st.Name().String(),
		Description: st.Description().String(),
		Status:      st.Status().String(),
		Messages:    make([]MessageResponse, len(messages)),
		Files:       ToFileResponses(st.Files()),
		CreatedAt:   formatTime(st.CreatedAt()),
		UpdatedAt:   formatTime(st.UpdatedAt()),
	}
	for i, m := range messages {
		resp.Messages[i] = ToMessageResponse(m, "")
	}
	return resp
}

// ToStageViewResponse converts the stage read model, with author usernames
// resolved, to an HTTP response DTO.
func ToStageViewResponse(v *ports.StageView) StageResponse {
	resp := ToStageResponse(v.Stage)
	subprojectID := v.SubprojectID
	resp.SubprojectID = &subprojectID
	resp.Messages = make([]MessageResponse, len(v.Messages))
	for i, m := range v.Messages {
		resp.Messages[i] = ToMessageResponse(m.Message, m.AuthorUsername)
	}
	return resp
}

// MessageResponse represents one note of a stage thread.
type MessageResponse struct {
	ID             uuid.UUID `json:"id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Text           string    `json:"text"`
	CreatedAt      string    `json:"created_at"`
}

// ToMessageResponse converts a message to an HTTP response DTO.
func ToMessageResponse(m project.Message, username string) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		AuthorID:       m.AuthorID,
		AuthorUsername: username,
		Text:           m.Text.String(),
		CreatedAt:      formatTime(m.CreatedAt),
	}
}

// FileResponse represents attachment metadata. The content is served by
// GET /api/v1/files/{id}.
type FileResponse struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Path        string    `json:"path"`
	UploadedAt  string    `json:"uploaded_at"`
}

// ToFileResponses converts attachments to HTTP response DTOs. The result is
// never nil so that empty lists encode as [].
func ToFileResponses(files []project.FileAttachment) []FileResponse {
	out := make([]FileResponse, len(files))
	for i, f := range files {
		out[i] = FileResponse{
			ID:          f.ID,
			Filename:    f.Filename.String(),
			ContentType: f.ContentType,
			Size:        f.Size,
			Path:        f.Path,
			UploadedAt:  formatTime(f.UploadedAt),
		}
	}
	return out
}

// TemplateResponse represents a project's stage template.
type TemplateResponse struct {
	ID     uuid.UUID               `json:"id"`
	Stages []TemplateStageResponse `json:"stages"`
}

// TemplateStageResponse is one entry of a TemplateResponse.
type TemplateStageResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// ToTemplateResponse converts a template to an HTTP response DTO.
func ToTemplateResponse(t *project.Template) TemplateResponse {
	stages := make([]TemplateStageResponse, len(t.Stages))
	for i, st := range t.Stages {
		stages[i] = TemplateStageResponse{
			ID:          st.ID,
			Name:        st.Name.String(),
			Description: st.Description.String(),
		}
	}
	return TemplateResponse{ID: t.ID, Stages: stages}
}

// ListResponse is an offset-paginated list.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ToListResponse converts a page of port values with convert.
func ToListResponse[S, T any](page ports.Page[S], req ports.PageRequest, convert func(S) T) ListResponse[T] {
	items := make([]T, len(page.Items))
	for i, item := range page.Items {
		items[i] = convert(item)
	}
	return ListResponse[T]{Items: items, Total: page.Total, Limit: req.Limit, Offset: req.Offset}
}

// ProjectSummaryResponse is a project list entry.
type ProjectSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Progress    float64   `json:"progress"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// ToProjectSummaryResponse converts a project summary.
func ToProjectSummaryResponse(s ports.ProjectSummary) ProjectSummaryResponse {
	return ProjectSummaryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Status:      s.Status.String(),
		Progress:    s.Progress,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

// SubprojectSummaryResponse is a subproject list entry.
type SubprojectSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Progress    float64   `json:"progress"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// ToSubprojectSummaryResponse converts a subproject summary.
func ToSubprojectSummaryResponse(s ports.SubprojectSummary) SubprojectSummaryResponse {
	return SubprojectSummaryResponse{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		Name:        s.Name,
		Description: s.Description,
		Status:      s.Status.String(),
		Progress:    s.Progress,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

// StageSummaryResponse is a stage list entry.
type StageSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	SubprojectID uuid.UUID `json:"subproject_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// ToStageSummaryResponse converts a stage summary.
func ToStageSummaryResponse(s ports.StageSummary) StageSummaryResponse {
	return StageSummaryResponse{
		ID:           s.ID,
		SubprojectID: s.SubprojectID,
		Name:         s.Name,
		Description:  s.Description,
		Status:       s.Status.String(),
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

// StatusHistoryResponse is one entry of a stage's status history.
type StatusHistoryResponse struct {
	ID        uuid.UUID `json:"id"`
	StageID   uuid.UUID `json:"stage_id"`
	ToStatus  string    `json:"to_status"`
	ChangedBy uuid.UUID `json:"changed_by"`
	ChangedAt string    `json:"changed_at"`
}

// ToStatusHistoryResponse converts a history record.
func ToStatusHistoryResponse(h project.StageStatusHistory) StatusHistoryResponse {
	return StatusHistoryResponse{
		ID:        h.ID,
		StageID:   h.StageID,
		ToStatus:  h.ToStatus.String(),
		ChangedBy: h.ChangedBy,
		ChangedAt: formatTime(h.ChangedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
