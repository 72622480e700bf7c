package ports

import "context"

// HealthChecker is a backend the readiness probe depends on: the store, the
// object store, the event stream or the identity service.
type HealthChecker interface {
	// Name keys the checker in readiness output, e.g. "postgres".
	Name() string

	// HealthCheck returns nil when the backend can serve requests. It must
	// give up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and probes them on demand.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker name to its result, nil meaning healthy.
	CheckAll(ctx context.Context) map[string]error
}
