package ports

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
)

// ProjectService defines the service port for project-level use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProjectService interface {
	// CreateProject stores a new empty project and publishes ProjectCreated.
	// Returns domain.ErrValidation if the name or description is invalid.
	CreateProject(ctx context.Context, cmd CreateProjectCmd) (*project.Project, error)

	// GetProject returns the whole aggregate.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error)

	// UpdateProject renames a project. A nil description keeps the current one.
	UpdateProject(ctx context.Context, cmd UpdateProjectCmd) (*project.Project, error)

	// DeleteProject removes a project with its subprojects, stages and files.
	// Returns domain.ErrNotFound if the project does not exist.
	DeleteProject(ctx context.Context, id uuid.UUID) error

	// ListProjects returns project summaries, most recently updated first.
	ListProjects(ctx context.Context, page PageRequest) (Page[ProjectSummary], error)

	// MakeTemplate captures a subproject's stage list as the project template.
	MakeTemplate(ctx context.Context, projectID, subprojectID uuid.UUID) (*project.Template, error)
}

// SubprojectService defines the service port for subproject use cases.
type SubprojectService interface {
	// CreateSubproject adds a subproject to a project. With FromTemplate set
	// the new subproject starts with fresh copies of the template stages.
	// Returns app.ErrTemplateMissing (a domain.ErrConflict) if the project
	// has no template.
	CreateSubproject(ctx context.Context, cmd CreateSubprojectCmd) (*project.Subproject, error)

	GetSubproject(ctx context.Context, id uuid.UUID) (*project.Subproject, error)
	UpdateSubproject(ctx context.Context, cmd UpdateSubprojectCmd) (*project.Subproject, error)
	DeleteSubproject(ctx context.Context, id uuid.UUID) error
	ListSubprojects(ctx context.Context, filter SubprojectFilter, page PageRequest) (Page[SubprojectSummary], error)
}

// StageService defines the service port for stage use cases.
type StageService interface {
	CreateStage(ctx context.Context, cmd CreateStageCmd) (*project.Stage, error)

	// GetStage returns the stage with message authors resolved to usernames.
	// Authors the identity service cannot resolve get an empty username.
	GetStage(ctx context.Context, id uuid.UUID) (*StageView, error)

	UpdateStage(ctx context.Context, cmd UpdateStageCmd) (*project.Stage, error)
	DeleteStage(ctx context.Context, id uuid.UUID) error
	ListStages(ctx context.Context, filter StageFilter, page PageRequest) (Page[StageSummary], error)

	// ChangeStageStatus moves a stage to a new status, records the change in
	// the stage history and publishes StageStatusChanged.
	// Returns domain.ErrForbidden if the principal lacks the permission the
	// target status requires.
	ChangeStageStatus(ctx context.Context, cmd ChangeStageStatusCmd) (*project.Stage, error)

	// AddMessage appends a note to a stage without changing its status.
	AddMessage(ctx context.Context, cmd AddMessageCmd) (*project.Message, error)

	// ListStageHistory returns status changes for a stage, newest first.
	ListStageHistory(ctx context.Context, stageID uuid.UUID, page PageRequest) (Page[project.StageStatusHistory], error)
}

// FileService defines the service port for file attachments.
type FileService interface {
	// Upload stores every file under a unique key and attaches their metadata
	// to owner in one transaction. Either all files are attached or none are.
	Upload(ctx context.Context, owner project.FileOwner, files []FileUpload) ([]project.FileAttachment, error)

	// Download opens a stored file. The caller closes Download.Body.
	// Returns domain.ErrNotFound if the file does not exist.
	Download(ctx context.Context, fileID uuid.UUID) (*Download, error)
}

// CreateProjectCmd carries the input of ProjectService.CreateProject.
type CreateProjectCmd struct {
	Name        string
	Description *string
}

// UpdateProjectCmd carries the input of ProjectService.UpdateProject.
type UpdateProjectCmd struct {
	ID          uuid.UUID
	Name        string
	Description *string
}

// CreateSubprojectCmd carries the input of SubprojectService.CreateSubproject.
type CreateSubprojectCmd struct {
	ProjectID    uuid.UUID
	Name         string
	Description  *string
	FromTemplate bool
}

// UpdateSubprojectCmd carries the input of SubprojectService.UpdateSubproject.
type UpdateSubprojectCmd struct {
	ID          uuid.UUID
	Name        string
	Description *string
}

// CreateStageCmd carries the input of StageService.CreateStage.
type CreateStageCmd struct {
	SubprojectID uuid.UUID
	Name         string
	Description  *string
}

// UpdateStageCmd carries the input of StageService.UpdateStage.
type UpdateStageCmd struct {
	ID          uuid.UUID
	Name        string
	Description *string
}

// ChangeStageStatusCmd carries the input of StageService.ChangeStageStatus.
// Message, when set, is appended to the stage thread as the principal.
type ChangeStageStatusCmd struct {
	StageID   uuid.UUID
	Status    project.StageStatus
	Principal domain.Principal
	Message   *string
}

// AddMessageCmd carries the input of StageService.AddMessage.
type AddMessageCmd struct {
	StageID  uuid.UUID
	AuthorID uuid.UUID
	Text     string
}

// StageView is the read model returned by StageService.GetStage.
type StageView struct {
	Stage        *project.Stage
	SubprojectID uuid.UUID
	Messages     []MessageView
}

// MessageView is a message with its author's username resolved.
type MessageView struct {
	project.Message
	AuthorUsername string
}

// FileUpload is one file of an upload request. Body is read once.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Download is an opened stored file.
type Download struct {
	File project.FileAttachment
	Body io.ReadCloser
}
