package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// Commit runs the staged plan in order. When a step fails, the steps that
// already ran are undone in reverse order, and so are the actions of the
// failing group that did finish. The returned error is the step failure.
//
// Commit runs at most once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	plan := rc.plan
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, s := range plan {
		logger.DebugContext(ctx, "running step",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("steps", len(plan)),
			slog.String("action", s.String()),
		)

		err := s.run(ctx)
		if err == nil {
			continue
		}

		logger.WarnContext(ctx, "step failed, undoing completed work",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.String("action", s.String()),
			slog.Any("error", err),
		)
		for j := i; j >= 0; j-- {
			plan[j].undo(ctx, logger)
		}
		return fmt.Errorf("executing %s: %w", s, err)
	}
	return nil
}
