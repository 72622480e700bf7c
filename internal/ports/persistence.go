package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
)

// Page bounds for list queries.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 100
)

// PageRequest selects a window of a list ordered by the query's sort key.
type PageRequest struct {
	Limit  int
	Offset int
}

// NewPageRequest validates paging input. A zero limit selects DefaultPageLimit.
func NewPageRequest(limit, offset int) (PageRequest, error) {
	if limit == 0 {
		limit = DefaultPageLimit
	}
	fields := make(map[string]string)
	if limit < 1 || limit > MaxPageLimit {
		fields["limit"] = "must be between 1 and 100"
	}
	if offset < 0 {
		fields["offset"] = "must not be negative"
	}
	if len(fields) > 0 {
		return PageRequest{}, &domain.ValidationError{Fields: fields}
	}
	return PageRequest{Limit: limit, Offset: offset}, nil
}

// Page is one window of a list together with the total number of rows.
type Page[T any] struct {
	Items []T
	Total int
}

// ProjectRepository loads and stores whole Project aggregates.
type ProjectRepository interface {
	// Get returns the project with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*project.Project, error)

	// GetBySubproject returns the project owning the subproject.
	// Returns domain.ErrNotFound if no project holds it.
	GetBySubproject(ctx context.Context, subprojectID uuid.UUID) (*project.Project, error)

	// GetByStage returns the project owning the stage.
	// Returns domain.ErrNotFound if no project holds it.
	GetByStage(ctx context.Context, stageID uuid.UUID) (*project.Project, error)

	// Save inserts or replaces the whole aggregate, including removed children.
	Save(ctx context.Context, p *project.Project) error

	// Delete removes the project and everything it owns.
	// Returns domain.ErrNotFound if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindFile returns an attachment by id wherever it lives in any tree.
	// Returns domain.ErrNotFound if it does not exist.
	FindFile(ctx context.Context, fileID uuid.UUID) (project.FileAttachment, project.FileOwner, error)
}

// ProjectSummary is a list row for a project, read without loading the tree.
type ProjectSummary struct {
	ID          uuid.UUID
	Name        string
	Description string
	Status      project.Status
	Progress    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubprojectSummary is a list row for a subproject.
type SubprojectSummary struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description string
	Status      project.Status
	Progress    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StageSummary is a list row for a stage.
type StageSummary struct {
	ID           uuid.UUID
	SubprojectID uuid.UUID
	Name         string
	Description  string
	Status       project.StageStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SubprojectFilter narrows ListSubprojects. A zero ProjectID matches all.
type SubprojectFilter struct {
	ProjectID uuid.UUID
}

// StageFilter narrows ListStages. A zero SubprojectID matches all.
type StageFilter struct {
	SubprojectID uuid.UUID
}

// ProjectQueries serves list projections. Rows are ordered by updated_at
// descending and never hydrate aggregates.
type ProjectQueries interface {
	ListProjects(ctx context.Context, page PageRequest) (Page[ProjectSummary], error)
	ListSubprojects(ctx context.Context, filter SubprojectFilter, page PageRequest) (Page[SubprojectSummary], error)
	ListStages(ctx context.Context, filter StageFilter, page PageRequest) (Page[StageSummary], error)
}

// StageHistoryRepository stores the append-only stage status audit log.
type StageHistoryRepository interface {
	Append(ctx context.Context, entry project.StageStatusHistory) error

	// ListByStage returns entries newest first.
	ListByStage(ctx context.Context, stageID uuid.UUID, page PageRequest) (Page[project.StageStatusHistory], error)
}

// Tx exposes the repositories bound to one unit of work.
type Tx interface {
	Projects() ProjectRepository
	History() StageHistoryRepository
}

// UnitOfWork runs fn in a transaction. A non-nil error from fn rolls the
// transaction back and is returned unchanged. Implementations serialize
// writers of the same project for the duration of fn.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
