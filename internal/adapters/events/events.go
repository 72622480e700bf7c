// Package events holds EventPublisher implementations that need no broker.
// The redis subpackage publishes to redis pub/sub.
package events

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that Noop implements ports.EventPublisher.
var _ ports.EventPublisher = Noop{}

// Noop drops every event. It is used when no broker is configured.
type Noop struct {
	Logger *slog.Logger
}

// Publish logs the topic at DEBUG and discards the event.
func (n Noop) Publish(ctx context.Context, event ports.Event) error {
	if n.Logger != nil {
		n.Logger.DebugContext(ctx, "event dropped, no broker configured",
			slog.String("topic", event.Topic()),
		)
	}
	return nil
}
