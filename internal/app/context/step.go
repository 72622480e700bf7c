package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/project-service/internal/app/fanout"
	"github.com/jsamuelsen11/project-service/internal/domain"
)

// step is one entry of the plan. A step with several actions runs them
// concurrently; done keeps the ones that succeeded, in staging order.
type step struct {
	actions []domain.Action
	done    []domain.Action
}

func (s *step) run(ctx context.Context) error {
	if len(s.actions) == 1 {
		if err := s.actions[0].Execute(ctx); err != nil {
			return err
		}
		s.done = s.actions
		return nil
	}

	groupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once  sync.Once
		cause error
	)
	results := fanout.Run(groupCtx, len(s.actions), s.actions, func(ctx context.Context, a domain.Action) (struct{}, error) {
		err := a.Execute(ctx)
		if err != nil {
			once.Do(func() {
				cause = err
				cancel()
			})
		}
		return struct{}{}, err
	})

	for i, r := range results {
		if r.Err == nil {
			s.done = append(s.done, s.actions[i])
		}
	}
	return cause
}

// undo rolls back the finished actions, newest first. Failures are logged
// and do not stop the remaining rollbacks.
func (s *step) undo(ctx context.Context, logger *slog.Logger) {
	for i := len(s.done) - 1; i >= 0; i-- {
		a := s.done[i]
		if err := a.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.String("action", a.Description()),
				slog.Any("error", err),
			)
		}
	}
	s.done = nil
}

func (s *step) String() string {
	switch len(s.actions) {
	case 0:
		return "empty group"
	case 1:
		return s.actions[0].Description()
	default:
		return fmt.Sprintf("%s and %d more", s.actions[0].Description(), len(s.actions)-1)
	}
}
