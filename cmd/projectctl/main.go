// Command projectctl is the operator CLI of the project service. It applies
// database migrations and mints development tokens.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-service/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/project-service/internal/platform/auth"
	"github.com/jsamuelsen11/project-service/internal/platform/config"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
}

func (o *rootOptions) load() (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	profile := o.profile
	if profile == "" {
		profile = os.Getenv("APP_PROFILE")
	}
	if profile == "" {
		return nil, errors.New("profile is required: pass --profile or set APP_PROFILE")
	}
	cfg, err := config.Load(profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "projectctl",
		Short:         "Operate the project service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.profile, "profile", "", "config profile (defaults to $APP_PROFILE)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding the YAML config files")

	root.AddCommand(newMigrateCmd(opts), newTokenCmd(opts), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "projectctl %s\n", version)
			return err
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrate requires the %q database driver, profile uses %q",
					config.DriverPostgres, cfg.Database.Driver)
			}
			logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return migrateUp(cmd.Context(), cmd.OutOrStdout(), &cfg.Database, logger)
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the embedded migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			migrations, err := postgres.Migrations()
			if err != nil {
				return err
			}
			for _, m := range migrations {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), m.Version); err != nil {
					return err
				}
			}
			return nil
		},
	})

	return migrate
}

func migrateUp(ctx context.Context, out io.Writer, cfg *config.DatabaseConfig, logger *slog.Logger) error {
	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	applied, err := postgres.Migrate(ctx, db, logger)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		_, err = fmt.Fprintln(out, "schema is up to date")
		return err
	}
	for _, v := range applied {
		if _, err := fmt.Fprintf(out, "applied %s\n", v); err != nil {
			return err
		}
	}
	return nil
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID      string
		permissions []string
		ttl         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token signed with the configured secret",
		Long: `Mint an HS256 bearer token for local testing. The token is signed with
auth.jwt_secret of the selected profile and carries the given permissions.

Example:
  projectctl token --profile local --permission stages:change_status_to_completed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			id := uuid.New()
			if userID != "" {
				if id, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("--user must be a UUID: %w", err)
				}
			}

			token, err := auth.Issue(auth.IssueParams{
				Secret:      cfg.Auth.JWTSecret,
				Issuer:      cfg.Auth.Issuer,
				UserID:      id,
				Permissions: permissions,
				TTL:         ttl,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id of the subject (random when empty)")
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "permission code to grant, repeatable")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime, 0 for no expiry")
	return cmd
}
