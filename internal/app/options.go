// Package app provides application services that orchestrate use cases by
// coordinating between the Project aggregate and infrastructure through port
// interfaces. Every write runs inside one unit of work; events are published
// only after it commits.
package app

import (
	"log/slog"

	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Storage bundles the persistence ports the services share. Reads that
// do not mutate go through Projects, Queries and History directly; writes go
// through UnitOfWork.
type Storage struct {
	UnitOfWork ports.UnitOfWork
	Projects   ports.ProjectRepository
	Queries    ports.ProjectQueries
	History    ports.StageHistoryRepository
}

// Option configures a service.
type Option func(*options)

type options struct {
	clock            project.Clock
	metrics          *telemetry.Metrics
	rejectSameStatus bool
}

// WithClock replaces the wall clock used to stamp new entities.
func WithClock(clock project.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithMetrics enables the domain counters.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithRejectSameStatus controls whether a stage status change to the current
// status fails with a conflict. It is enabled by default.
func WithRejectSameStatus(enabled bool) Option {
	return func(o *options) { o.rejectSameStatus = enabled }
}

func newOptions(opts []Option) options {
	o := options{clock: project.SystemClock, rejectSameStatus: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
