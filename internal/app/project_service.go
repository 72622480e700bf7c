package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements the project-level use cases.
type ProjectService struct {
	store  Storage
	events ports.EventPublisher
	logger *slog.Logger
	opts   options
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(store Storage, events ports.EventPublisher, logger *slog.Logger, opts ...Option) *ProjectService {
	return &ProjectService{
		store:  store,
		events: events,
		logger: loggerOrDiscard(logger),
		opts:   newOptions(opts),
	}
}

// CreateProject stores a new project and publishes ProjectCreated.
func (s *ProjectService) CreateProject(ctx context.Context, cmd ports.CreateProjectCmd) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("name", cmd.Name))

	p, err := project.NewProject(cmd.Name, cmd.Description, s.opts.clock)
	if err != nil {
		return nil, err
	}

	err = s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving project: %w", err)
	}

	publish(ctx, s.events, s.logger, ports.ProjectCreated{
		ProjectID:   p.ID(),
		Name:        p.Name().String(),
		Description: p.Description().String(),
	})
	return p, nil
}

// GetProject returns the whole aggregate.
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.store.Projects.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch project",
			slog.String("operation", "GetProject"),
			slog.String("project_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

// UpdateProject renames a project.
func (s *ProjectService) UpdateProject(ctx context.Context, cmd ports.UpdateProjectCmd) (*project.Project, error) {
	s.logger.InfoContext(ctx, "updating project", slog.String("project_id", cmd.ID.String()))

	var updated *project.Project
	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().Get(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := p.Update(cmd.Name, cmd.Description); err != nil {
			return err
		}
		updated = p
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update project",
			slog.String("operation", "UpdateProject"),
			slog.String("project_id", cmd.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes a project and everything it owns.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting project", slog.String("project_id", id.String()))

	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		return tx.Projects().Delete(ctx, id)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete project",
			slog.String("operation", "DeleteProject"),
			slog.String("project_id", id.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ListProjects returns project summaries, most recently updated first.
func (s *ProjectService) ListProjects(ctx context.Context, page ports.PageRequest) (ports.Page[ports.ProjectSummary], error) {
	result, err := s.store.Queries.ListProjects(ctx, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return ports.Page[ports.ProjectSummary]{}, err
	}
	return result, nil
}

// MakeTemplate captures a subproject's stages as the project's template.
func (s *ProjectService) MakeTemplate(ctx context.Context, projectID, subprojectID uuid.UUID) (*project.Template, error) {
	s.logger.InfoContext(ctx, "making template",
		slog.String("project_id", projectID.String()),
		slog.String("subproject_id", subprojectID.String()),
	)

	var tmpl *project.Template
	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().Get(ctx, projectID)
		if err != nil {
			return err
		}
		tmpl, err = p.MakeTemplateFromSubproject(subprojectID)
		if err != nil {
			return err
		}
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to make template",
			slog.String("operation", "MakeTemplate"),
			slog.String("project_id", projectID.String()),
			slog.String("subproject_id", subprojectID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tmpl, nil
}

// publish sends an event and logs a failure. Publication never fails the
// use case: the change is already committed.
func publish(ctx context.Context, events ports.EventPublisher, logger *slog.Logger, event ports.Event) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish event",
			slog.String("operation", "publish"),
			slog.String("topic", event.Topic()),
			slog.Any("error", err),
		)
	}
}
