package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/project-service/internal/app/context"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that StageService implements ports.StageService.
var _ ports.StageService = (*StageService)(nil)

// StageService implements the stage use cases, including the status
// workflow and its audit trail.
type StageService struct {
	store  Storage
	users  ports.UserDirectory
	events ports.EventPublisher
	logger *slog.Logger
	opts   options
}

// NewStageService creates a StageService. A nil logger discards output.
func NewStageService(store Storage, users ports.UserDirectory, events ports.EventPublisher, logger *slog.Logger, opts ...Option) *StageService {
	return &StageService{
		store:  store,
		users:  users,
		events: events,
		logger: loggerOrDiscard(logger),
		opts:   newOptions(opts),
	}
}

// CreateStage appends a new stage to a subproject.
func (s *StageService) CreateStage(ctx context.Context, cmd ports.CreateStageCmd) (*project.Stage, error) {
	s.logger.InfoContext(ctx, "creating stage",
		slog.String("subproject_id", cmd.SubprojectID.String()),
		slog.String("name", cmd.Name),
	)

	st, err := project.NewStage(cmd.Name, cmd.Description, s.opts.clock)
	if err != nil {
		return nil, err
	}

	err = s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().GetBySubproject(ctx, cmd.SubprojectID)
		if err != nil {
			return err
		}
		if err := p.AddStage(cmd.SubprojectID, st); err != nil {
			return err
		}
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create stage",
			slog.String("operation", "CreateStage"),
			slog.String("subproject_id", cmd.SubprojectID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return st, nil
}

// GetStage returns the stage with message authors resolved to usernames.
func (s *StageService) GetStage(ctx context.Context, id uuid.UUID) (*ports.StageView, error) {
	p, err := s.store.Projects.GetByStage(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch stage",
			slog.String("operation", "GetStage"),
			slog.String("stage_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	st, sub := p.Stage(id), p.SubprojectOfStage(id)
	if st == nil || sub == nil {
		return nil, fmt.Errorf("stage %s: %w", id, domain.ErrNotFound)
	}
	usernames := s.resolveAuthors(appctx.New(ctx), st.Messages())

	messages := make([]ports.MessageView, 0, len(st.Messages()))
	for _, m := range st.Messages() {
		messages = append(messages, ports.MessageView{Message: m, AuthorUsername: usernames[m.AuthorID]})
	}

	return &ports.StageView{
		Stage:        st,
		SubprojectID: sub.ID(),
		Messages:     messages,
	}, nil
}

// resolveAuthors looks up the distinct authors once per request. A
// directory failure is logged and leaves every username empty.
func (s *StageService) resolveAuthors(rc *appctx.RequestContext, messages []project.Message) map[uuid.UUID]string {
	if len(messages) == 0 || s.users == nil {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		if !slices.Contains(ids, m.AuthorID) {
			ids = append(ids, m.AuthorID)
		}
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	slices.Sort(keys)

	infos, err := appctx.GetOrFetch(rc, "users:"+strings.Join(keys, ","), func(ctx context.Context) ([]ports.UserInfo, error) {
		return s.users.GetUserInfo(ctx, ids)
	})
	if err != nil {
		s.logger.WarnContext(rc, "failed to resolve message authors",
			slog.String("operation", "GetStage"),
			slog.Int("authors", len(ids)),
			slog.Any("error", err),
		)
		return nil
	}

	names := make(map[uuid.UUID]string, len(infos))
	for _, info := range infos {
		names[info.ID] = info.Username
	}
	return names
}

// UpdateStage renames a stage.
func (s *StageService) UpdateStage(ctx context.Context, cmd ports.UpdateStageCmd) (*project.Stage, error) {
	s.logger.InfoContext(ctx, "updating stage", slog.String("stage_id", cmd.ID.String()))

	var updated *project.Stage
	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().GetByStage(ctx, cmd.ID)
		if err != nil {
			return err
		}
		updated, err = p.UpdateStage(cmd.ID, cmd.Name, cmd.Description)
		if err != nil {
			return err
		}
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update stage",
			slog.String("operation", "UpdateStage"),
			slog.String("stage_id", cmd.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteStage removes a stage and recomputes both ancestors.
func (s *StageService) DeleteStage(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting stage", slog.String("stage_id", id.String()))

	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().GetByStage(ctx, id)
		if err != nil {
			return err
		}
		if err := p.RemoveStage(id); err != nil {
			return err
		}
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete stage",
			slog.String("operation", "DeleteStage"),
			slog.String("stage_id", id.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ListStages returns stage summaries, most recently updated first.
func (s *StageService) ListStages(ctx context.Context, filter ports.StageFilter, page ports.PageRequest) (ports.Page[ports.StageSummary], error) {
	result, err := s.store.Queries.ListStages(ctx, filter, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list stages",
			slog.String("operation", "ListStages"),
			slog.String("subproject_id", filter.SubprojectID.String()),
			slog.Any("error", err),
		)
		return ports.Page[ports.StageSummary]{}, err
	}
	return result, nil
}

// requiredPermission returns the permission a target status needs, if any.
func requiredPermission(to project.StageStatus) (string, bool) {
	switch to {
	case project.StageCompleted:
		return PermissionCompleteStage, true
	case project.StageConfirmed:
		return PermissionConfirmStage, true
	default:
		return "", false
	}
}

// ChangeStageStatus checks permissions, applies the transition, appends the
// history record in the same transaction and publishes the change.
func (s *StageService) ChangeStageStatus(ctx context.Context, cmd ports.ChangeStageStatusCmd) (*project.Stage, error) {
	s.logger.InfoContext(ctx, "changing stage status",
		slog.String("stage_id", cmd.StageID.String()),
		slog.String("to_status", cmd.Status.String()),
		slog.String("user_id", cmd.Principal.UserID.String()),
	)

	if perm, ok := requiredPermission(cmd.Status); ok && !cmd.Principal.HasPermission(perm) {
		err := &PermissionError{UserID: cmd.Principal.UserID, Permission: perm}
		s.logger.WarnContext(ctx, "stage status change denied",
			slog.String("operation", "ChangeStageStatus"),
			slog.String("stage_id", cmd.StageID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	var msg *project.Message
	if cmd.Message != nil {
		m, err := project.NewMessage(cmd.Principal.UserID, *cmd.Message, s.opts.clock)
		if err != nil {
			return nil, err
		}
		msg = &m
	}

	var transition []project.TransitionOption
	if s.opts.rejectSameStatus {
		transition = append(transition, project.RejectSameStatus())
	}

	var (
		changed *project.Stage
		entry   project.StageStatusHistory
	)
	err := s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().GetByStage(ctx, cmd.StageID)
		if err != nil {
			return err
		}
		changed, err = p.ChangeStageStatus(cmd.StageID, cmd.Status, msg, transition...)
		if err != nil {
			return err
		}
		if err := tx.Projects().Save(ctx, p); err != nil {
			return err
		}
		entry = project.NewStageStatusHistory(cmd.StageID, cmd.Status, cmd.Principal.UserID, s.opts.clock)
		return tx.History().Append(ctx, entry)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to change stage status",
			slog.String("operation", "ChangeStageStatus"),
			slog.String("stage_id", cmd.StageID.String()),
			slog.String("to_status", cmd.Status.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if s.opts.metrics != nil {
		s.opts.metrics.StageTransitions.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrToStatus.String(cmd.Status.String())))
	}
	publish(ctx, s.events, s.logger, ports.StageStatusChanged{
		StageID:   entry.StageID,
		ToStatus:  entry.ToStatus.String(),
		ChangedBy: entry.ChangedBy,
		ChangedAt: entry.ChangedAt,
	})
	return changed, nil
}

// AddMessage appends a note to a stage.
func (s *StageService) AddMessage(ctx context.Context, cmd ports.AddMessageCmd) (*project.Message, error) {
	s.logger.InfoContext(ctx, "adding stage message", slog.String("stage_id", cmd.StageID.String()))

	if cmd.AuthorID == uuid.Nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"author_id": "is required"}}
	}
	msg, err := project.NewMessage(cmd.AuthorID, cmd.Text, s.opts.clock)
	if err != nil {
		return nil, err
	}

	err = s.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := tx.Projects().GetByStage(ctx, cmd.StageID)
		if err != nil {
			return err
		}
		if _, err := p.AddMessageToStage(cmd.StageID, msg); err != nil {
			return err
		}
		return tx.Projects().Save(ctx, p)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add stage message",
			slog.String("operation", "AddMessage"),
			slog.String("stage_id", cmd.StageID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &msg, nil
}

// ListStageHistory returns the status changes of a stage, newest first.
func (s *StageService) ListStageHistory(ctx context.Context, stageID uuid.UUID, page ports.PageRequest) (ports.Page[project.StageStatusHistory], error) {
	result, err := s.store.History.ListByStage(ctx, stageID, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list stage history",
			slog.String("operation", "ListStageHistory"),
			slog.String("stage_id", stageID.String()),
			slog.Any("error", err),
		)
		return ports.Page[project.StageStatusHistory]{}, err
	}
	return result, nil
}
