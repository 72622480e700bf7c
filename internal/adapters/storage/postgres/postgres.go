// Package postgres implements the persistence ports on PostgreSQL through
// database/sql and lib/pq.
//
// A project aggregate is stored across one table per entity. Save rewrites
// the children of the saved project inside the caller's transaction, and
// UnitOfWork.Do locks the project root row with SELECT ... FOR UPDATE so
// that writers of the same project are serialized.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/platform/config"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time checks that Store implements the persistence ports.
var (
	_ ports.UnitOfWork     = (*Store)(nil)
	_ ports.ProjectQueries = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// Open creates a connection pool from cfg and verifies it with a ping.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// querier is the subset of *sql.DB and *sql.Tx the repositories need.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Option configures a Store.
type Option func(*Store)

// WithMaxRetries sets how many times Do replays a transaction that failed
// on a serialization conflict or deadlock.
func WithMaxRetries(n int) Option {
	return func(s *Store) { s.maxRetries = n }
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// Store implements ports.UnitOfWork and ports.ProjectQueries. Repositories
// returned by Projects and History read outside any transaction and reject
// writes.
type Store struct {
	db         *sql.DB
	clock      project.Clock
	maxRetries int
	logger     *slog.Logger
}

// New creates a Store over db. The clock is handed to hydrated aggregates.
func New(db *sql.DB, clock project.Clock, opts ...Option) *Store {
	s := &Store{
		db:         db,
		clock:      clock,
		maxRetries: 3,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Projects returns a read-only repository over the pool.
func (s *Store) Projects() ports.ProjectRepository {
	return &projectRepo{q: s.db, clock: s.clock}
}

// History returns a read-only history repository over the pool.
func (s *Store) History() ports.StageHistoryRepository {
	return &historyRepo{q: s.db}
}

// Do runs fn in a transaction and commits if fn returns nil. A transaction
// that fails with 40001 or 40P01 is replayed up to maxRetries times with a
// short linear backoff.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx ports.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = s.attempt(ctx, fn)
		if err == nil || !retryable(err) || attempt >= s.maxRetries {
			return err
		}

		s.logger.WarnContext(ctx, "retrying transaction",
			slog.String("operation", "Store.Do"),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.Join(ctx.Err(), err)
		case <-time.After(time.Duration(attempt+1) * 10 * time.Millisecond):
		}
	}
}

func (s *Store) attempt(ctx context.Context, fn func(ctx context.Context, tx ports.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError("begin transaction", err)
	}

	if err := fn(ctx, &tx{q: sqlTx, clock: s.clock}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return mapError("commit transaction", err)
	}
	return nil
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Name returns the health check name.
func (s *Store) Name() string { return "database" }

// tx binds the repositories to one *sql.Tx.
type tx struct {
	q     querier
	clock project.Clock
}

func (t *tx) Projects() ports.ProjectRepository {
	return &projectRepo{q: t.q, clock: t.clock, inTx: true}
}

func (t *tx) History() ports.StageHistoryRepository {
	return &historyRepo{q: t.q, inTx: true}
}
