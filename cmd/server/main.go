// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/project-service/internal/adapters/http"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/project-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/project-service/internal/adapters/clients/usercache"
	"github.com/jsamuelsen11/project-service/internal/adapters/events"
	redisevents "github.com/jsamuelsen11/project-service/internal/adapters/events/redis"
	memobjects "github.com/jsamuelsen11/project-service/internal/adapters/objectstore/memory"
	"github.com/jsamuelsen11/project-service/internal/adapters/objectstore/s3"
	memstore "github.com/jsamuelsen11/project-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/project-service/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/project-service/internal/app"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/platform/auth"
	"github.com/jsamuelsen11/project-service/internal/platform/config"
	"github.com/jsamuelsen11/project-service/internal/platform/health"
	"github.com/jsamuelsen11/project-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	connectTimeout        = 10 * time.Second
	readinessCheckTimeout = 3 * time.Second
)

// storageBackend is what both the postgres and the in-memory store provide.
type storageBackend interface {
	ports.UnitOfWork
	ports.ProjectQueries
	ports.HealthChecker
	Projects() ports.ProjectRepository
	History() ports.StageHistoryRepository
}

type objectBackend interface {
	ports.ObjectStore
	ports.HealthChecker
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerInfrastructure(injector, cfg, logger)
	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		closeInfrastructure(injector, cfg, logger)
		return fmt.Errorf("resolving server: %w", err)
	}

	registerHealthCheckers(injector)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeInfrastructure(injector, cfg, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	closeInfrastructure(injector, cfg, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// registerInfrastructure provides the storage, object store, redis and
// identity backends selected by cfg.
func registerInfrastructure(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Database.Driver == config.DriverPostgres {
		do.Provide(injector, func(_ do.Injector) (*sql.DB, error) {
			ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
			defer cancel()
			return postgres.Open(ctx, &cfg.Database)
		})
	}

	do.Provide(injector, func(i do.Injector) (storageBackend, error) {
		if cfg.Database.Driver != config.DriverPostgres {
			logger.Warn("using in-memory storage; data is lost on restart")
			return memstore.New(project.SystemClock), nil
		}
		db := do.MustInvoke[*sql.DB](i)
		return postgres.New(db, project.SystemClock,
			postgres.WithMaxRetries(cfg.Database.TxMaxRetries),
			postgres.WithLogger(logger),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (objectBackend, error) {
		if cfg.Storage.Driver != config.StorageS3 {
			return memobjects.New(), nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		client, err := s3.NewClient(ctx, &cfg.Storage)
		if err != nil {
			return nil, err
		}
		return s3.New(client, cfg.Storage.Bucket), nil
	})

	if cfg.Redis.Enabled {
		do.Provide(injector, func(_ do.Injector) (goredis.UniversalClient, error) {
			return goredis.NewClient(&goredis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			}), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.EventPublisher, error) {
		if !cfg.Redis.Enabled {
			return events.Noop{Logger: logger}, nil
		}
		client := do.MustInvoke[goredis.UniversalClient](i)
		return redisevents.NewPublisher(client, cfg.Redis.ChannelPrefix), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "identity-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserDirectory, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		users := acl.NewUserClient(client, logger)
		if !cfg.Redis.Enabled {
			return users, nil
		}
		rdb := do.MustInvoke[goredis.UniversalClient](i)
		return usercache.New(users, rdb, cfg.Redis.UserCacheTTL, logger), nil
	})
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (app.Storage, error) {
		store := do.MustInvoke[storageBackend](i)
		return app.Storage{
			UnitOfWork: store,
			Projects:   store.Projects(),
			Queries:    store,
			History:    store.History(),
		}, nil
	})

	serviceOptions := func(i do.Injector) []app.Option {
		return []app.Option{
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
			app.WithRejectSameStatus(cfg.Domain.RejectSameStatus),
		}
	}

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		store := do.MustInvoke[app.Storage](i)
		publisher := do.MustInvoke[ports.EventPublisher](i)
		return app.NewProjectService(store, publisher, logger, serviceOptions(i)...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SubprojectService, error) {
		store := do.MustInvoke[app.Storage](i)
		return app.NewSubprojectService(store, logger, serviceOptions(i)...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StageService, error) {
		store := do.MustInvoke[app.Storage](i)
		users := do.MustInvoke[ports.UserDirectory](i)
		publisher := do.MustInvoke[ports.EventPublisher](i)
		return app.NewStageService(store, users, publisher, logger, serviceOptions(i)...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FileService, error) {
		store := do.MustInvoke[app.Storage](i)
		objects := do.MustInvoke[objectBackend](i)
		return app.NewFileService(store, objects, logger, serviceOptions(i)...), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(readinessCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Projects:    handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i)),
			Subprojects: handlers.NewSubprojectHandler(do.MustInvoke[ports.SubprojectService](i)),
			Stages:      handlers.NewStageHandler(do.MustInvoke[ports.StageService](i)),
			Files: handlers.NewFileHandler(do.MustInvoke[ports.FileService](i),
				cfg.Server.UploadMaxBytes, cfg.Server.DownloadTimeout),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

		return adapthttp.NewRouter(h, cfg.Server.WriteTimeout,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Authenticate(verifier),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthCheckers adds every resolved backend to the readiness
// registry. It runs after the graph is wired.
func registerHealthCheckers(injector *do.RootScope) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[storageBackend](injector))
	registry.Register(do.MustInvoke[objectBackend](injector))
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	if publisher, ok := do.MustInvoke[ports.EventPublisher](injector).(ports.HealthChecker); ok {
		registry.Register(publisher)
	}
}

// closeInfrastructure releases the connection pools cfg enabled.
func closeInfrastructure(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Database.Driver == config.DriverPostgres {
		if db, err := do.Invoke[*sql.DB](injector); err == nil {
			if err := db.Close(); err != nil {
				logger.Error("database close error", slog.Any("error", err))
			}
		}
	}
	if cfg.Redis.Enabled {
		if rdb, err := do.Invoke[goredis.UniversalClient](injector); err == nil {
			if err := rdb.Close(); err != nil {
				logger.Error("redis close error", slog.Any("error", err))
			}
		}
	}
}
