// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/fieldpass/fieldpass/internal/api"
	"github.com/fieldpass/fieldpass/internal/auth"
	authpg "github.com/fieldpass/fieldpass/internal/auth/postgres"
	"github.com/fieldpass/fieldpass/internal/config"
	"github.com/fieldpass/fieldpass/internal/logging"
	"github.com/fieldpass/fieldpass/internal/observability"
	"github.com/fieldpass/fieldpass/internal/store"
)

// readinessProbeTimeout bounds the database ping behind the readiness
// endpoint.
const readinessProbeTimeout = 2 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the FieldPass API server",
		Long: `Start the HTTP API server serving the signup and login endpoints,
plus a separate metrics/health listener.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, autoMigrate)
		},
	}

	// Flag names mirror config keys so posflag can overlay them directly.
	// The signing secret is intentionally not a flag; it would leak into
	// process listings.
	cmd.Flags().String("server.host", "", "API listen host")
	cmd.Flags().Int("server.port", 5000, "API listen port")
	cmd.Flags().String("metrics.addr", "127.0.0.1:9100", "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("database.url", "", "PostgreSQL connection URL")
	cmd.Flags().String("log.format", "json", "log format (json or text)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "run pending schema migrations before serving")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, autoMigrate bool) error {
	logging.SetDefault("fieldpass", version, cfg.Log.Format)
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if autoMigrate {
		if err := migrateUp(cfg.Database.URL); err != nil {
			return err
		}
	}

	pool, err := store.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	defer pool.Close()

	issuer, err := auth.NewJWTIssuer([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	svc, err := auth.NewServiceWithLogger(
		authpg.NewProfileRepository(pool),
		auth.NewBcryptHasher(),
		issuer,
		logger,
	)
	if err != nil {
		return err
	}

	var metrics *observability.Metrics
	var obsErrCh <-chan error
	var obsServer *observability.Server
	if cfg.Metrics.Addr != "" {
		obsServer = observability.NewServer(cfg.Metrics.Addr, readinessChecker(pool))
		obsErrCh, err = obsServer.Start()
		if err != nil {
			return oops.Code("OBSERVABILITY_START_FAILED").Wrap(err)
		}
		metrics = obsServer.Metrics()
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		AuthService: svc,
		Metrics:     metrics,
	})

	server := api.NewServer(router, api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			return oops.Code("SERVER_FAILED").Wrap(err)
		}
		return nil
	case err, ok := <-obsErrCh:
		if ok && err != nil {
			return oops.Code("OBSERVABILITY_FAILED").Wrap(err)
		}
	}

	// Shut down with a fresh context; the signal context is already done.
	shutdownCtx := context.Background()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return oops.Code("SHUTDOWN_FAILED").Wrap(err)
	}
	if obsServer != nil {
		stopCtx, cancel := context.WithTimeout(shutdownCtx, 5*time.Second)
		defer cancel()
		if err := obsServer.Stop(stopCtx); err != nil {
			return oops.Code("SHUTDOWN_FAILED").Wrap(err)
		}
	}
	return nil
}

// readinessChecker reports readiness by pinging the database pool.
func readinessChecker(pool *pgxpool.Pool) observability.ReadinessChecker {
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), readinessProbeTimeout)
		defer cancel()
		return pool.Ping(ctx) == nil
	}
}
