package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgInvalidUUID  = "must be a valid UUID"
)

// fieldErrors collects per-field validation messages.
type fieldErrors map[string]string

func (f fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = msgRequired
	}
}

func (f fieldErrors) optional(field string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		f[field] = msgMustNotEmpty
	}
}

func (f fieldErrors) uuid(field, value string) {
	if value == "" {
		f[field] = msgRequired
		return
	}
	if _, err := uuid.Parse(value); err != nil {
		f[field] = msgInvalidUUID
	}
}

func (f fieldErrors) err() error {
	if len(f) > 0 {
		return &domain.ValidationError{Fields: f}
	}
	return nil
}

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := fieldErrors{}
	fields.required("name", r.Name)
	fields.optional("description", r.Description)
	return fields.err()
}

// ToCmd converts the request to a service command.
func (r *CreateProjectRequest) ToCmd() ports.CreateProjectCmd {
	return ports.CreateProjectCmd{Name: r.Name, Description: r.Description}
}

// UpdateProjectRequest represents the JSON body for renaming a project.
// A missing description keeps the current one.
type UpdateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateProjectRequest) Validate() error {
	fields := fieldErrors{}
	fields.required("name", r.Name)
	fields.optional("description", r.Description)
	return fields.err()
}

// ToCmd converts the request to a service command for project id.
func (r *UpdateProjectRequest) ToCmd(id uuid.UUID) ports.UpdateProjectCmd {
	return ports.UpdateProjectCmd{ID: id, Name: r.Name, Description: r.Description}
}

// CreateSubprojectRequest represents the JSON body for adding a subproject.
// With FromTemplate set the subproject starts with the template's stages.
type CreateSubprojectRequest struct {
	ProjectID    string  `json:"project_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	FromTemplate bool    `json:"from_template,omitempty"`
}

// Validate checks that required fields are present and ids are UUIDs.
func (r *CreateSubprojectRequest) Validate() error {
	fields := fieldErrors{}
	fields.uuid("project_id", r.ProjectID)
	fields.required("name", r.Name)
	fields.optional("description", r.Description)
	return fields.err()
}

// ToCmd converts a validated request to a service command.
func (r *CreateSubprojectRequest) ToCmd() ports.CreateSubprojectCmd {
	projectID, _ := uuid.Parse(r.ProjectID)
	return ports.CreateSubprojectCmd{
		ProjectID:    projectID,
		Name:         r.Name,
		Description:  r.Description,
		FromTemplate: r.FromTemplate,
	}
}

// UpdateEntityRequest is the JSON body for renaming a subproject or a stage.
type UpdateEntityRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that required fields are present.
func (r *UpdateEntityRequest) Validate() error {
	fields := fieldErrors{}
	fields.required("name", r.Name)
	fields.optional("description", r.Description)
	return fields.err()
}

// CreateStageRequest represents the JSON body for adding a stage.
type CreateStageRequest struct {
	SubprojectID string  `json:"subproject_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
}

// Validate checks that required fields are present and ids are UUIDs.
func (r *CreateStageRequest) Validate() error {
	fields := fieldErrors{}
	fields.uuid("subproject_id", r.SubprojectID)
	fields.required("name", r.Name)
	fields.optional("description", r.Description)
	return fields.err()
}

// ToCmd converts a validated request to a service command.
func (r *CreateStageRequest) ToCmd() ports.CreateStageCmd {
	subprojectID, _ := uuid.Parse(r.SubprojectID)
	return ports.CreateStageCmd{SubprojectID: subprojectID, Name: r.Name, Description: r.Description}
}

// ChangeStageStatusRequest is the JSON body of PATCH /stages/{id}/status.
// Message is appended to the stage thread whatever the target status;
// moving to confirmed requires one.
type ChangeStageStatusRequest struct {
	Status  string  `json:"status"`
	Message *string `json:"message,omitempty"`
}

// Validate checks the status is a known stage status. Transition rules are
// enforced by the aggregate.
func (r *ChangeStageStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return &domain.ValidationError{Fields: map[string]string{"status": msgRequired}}
	}
	_, err := project.ParseStageStatus(r.Status)
	return err
}

// ToCmd converts a validated request to a service command on behalf of p.
func (r *ChangeStageStatusRequest) ToCmd(stageID uuid.UUID, p domain.Principal) ports.ChangeStageStatusCmd {
	status, _ := project.ParseStageStatus(r.Status)
	return ports.ChangeStageStatusCmd{
		StageID:   stageID,
		Status:    status,
		Principal: p,
		Message:   r.Message,
	}
}

// AddMessageRequest is the JSON body of POST /stages/{id}/message.
type AddMessageRequest struct {
	Message string `json:"message"`
}

// Validate checks that the message is present.
func (r *AddMessageRequest) Validate() error {
	fields := fieldErrors{}
	fields.required("message", r.Message)
	return fields.err()
}

// MakeTemplateRequest is the JSON body of POST /projects/{id}/template.
type MakeTemplateRequest struct {
	SubprojectID string `json:"subproject_id"`
}

// Validate checks that the subproject id is a UUID.
func (r *MakeTemplateRequest) Validate() error {
	fields := fieldErrors{}
	fields.uuid("subproject_id", r.SubprojectID)
	return fields.err()
}

// ParsedSubprojectID returns the validated subproject id.
func (r *MakeTemplateRequest) ParsedSubprojectID() uuid.UUID {
	id, _ := uuid.Parse(r.SubprojectID)
	return id
}
