package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that SubprojectService implements ports.SubprojectService.
var _ ports.SubprojectService = (*SubprojectService)(nil)

// SubprojectService implements the subproject use cases.
type SubprojectService struct {
	store  Storage
	logger *slog.Logger
	opts   options
}

// NewSubprojectService creates a SubprojectService. A nil logger discards output.
func NewSubprojectService(store Storage, logger *slog.Logger, opts ...Option) *SubprojectService {
	return &SubprojectService{
		store:  store,
		logger: loggerOrDiscard(logger),
		opts:   newOptions(opts),
	}
}

// CreateSubproject adds a subproject, optionally seeded from the template.
func (s *SubprojectService) CreateSubproject(ctx context.Context, cmd ports.CreateSubprojectCmd) (*project.Subproject, error) {
	s.logger.InfoContext(ctx, "creating subproject",
		slog.String("project_id", cmd.ProjectID.String()),
		slog.String("name", cmd.Name),
		slog.Bool("from_template", cmd.FromTemplate),
	)

	var created *project.Subproject
	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().Get(ctx, cmd.ProjectID)
		if err != nil {
			return err
		}

		var stages []*project.Stage
		if cmd.FromTemplate {
			tmpl := p.Template()
			if tmpl == nil {
				return ErrTemplateMissing
			}
			stages = tmpl.Instantiate(s.opts.clock)
		}

		sp, err := project.NewSubproject(cmd.Name, cmd.Description, s.opts.clock, stages...)
		if err != nil {
			return err
		}
		if err := p.AddSubproject(sp); err != nil {
			return err
		}
		created = sp
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create subproject",
			slog.String("operation", "CreateSubproject"),
			slog.String("project_id", cmd.ProjectID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// GetSubproject returns a subproject with its stages.
func (s *SubprojectService) GetSubproject(ctx context.Context, id uuid.UUID) (*project.Subproject, error) {
	p, err := s.store.Projects.GetBySubproject(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch subproject",
			slog.String("operation", "GetSubproject"),
			slog.String("subproject_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	sub := p.Subproject(id)
	if sub == nil {
		return nil, fmt.Errorf("subproject %s: %w", id, domain.ErrNotFound)
	}
	return sub, nil
}

// UpdateSubproject renames a subproject.
func (s *SubprojectService) UpdateSubproject(ctx context.Context, cmd ports.UpdateSubprojectCmd) (*project.Subproject, error) {
	s.logger.InfoContext(ctx, "updating subproject", slog.String("subproject_id", cmd.ID.String()))

	var updated *project.Subproject
	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().GetBySubproject(ctx, cmd.ID)
		if err != nil {
			return err
		}
		updated, err = p.UpdateSubproject(cmd.ID, cmd.Name, cmd.Description)
		if err != nil {
			return err
		}
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update subproject",
			slog.String("operation", "UpdateSubproject"),
			slog.String("subproject_id", cmd.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteSubproject removes a subproject and recomputes the project.
func (s *SubprojectService) DeleteSubproject(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting subproject", slog.String("subproject_id", id.String()))

	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().GetBySubproject(ctx, id)
		if err != nil {
			return err
		}
		if err := p.RemoveSubproject(id); err != nil {
			return err
		}
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete subproject",
			slog.String("operation", "DeleteSubproject"),
			slog.String("subproject_id", id.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ListSubprojects returns subproject summaries, most recently updated first.
func (s *SubprojectService) ListSubprojects(ctx context.Context, filter ports.SubprojectFilter, page ports.PageRequest) (ports.Page[ports.SubprojectSummary], error) {
	result, err := s.store.Queries.ListSubprojects(ctx, filter, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list subprojects",
			slog.String("operation", "ListSubprojects"),
			slog.String("project_id", filter.ProjectID.String()),
			slog.Any("error", err),
		)
		return ports.Page[ports.SubprojectSummary]{}, err
	}
	return result, nil
}
