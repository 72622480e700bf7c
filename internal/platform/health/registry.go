// Package health backs the readiness probe. Backends register once at startup
// and each probe checks all of them in parallel.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-service/internal/app/fanout"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds every individual check. A check that overruns
// reports context.DeadlineExceeded without affecting its peers.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// Registry holds checkers in registration order. When two share a name the
// later one's result is reported.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll runs every check against a snapshot of the registered set, so
// registration never waits on a slow probe.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, len(snapshot), snapshot, r.check)

	results := make(map[string]error, len(snapshot))
	for i, c := range snapshot {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return struct{}{}, c.HealthCheck(ctx)
}
