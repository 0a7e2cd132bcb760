// Package main is the entry point for the construction-stages service. It
// wires the store, its Postgres repository and the HTTP surface using
// samber/do v2, applies migrations when configured, and handles graceful
// shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/construction-stages/internal/adapters/http"
	"github.com/jsamuelsen11/construction-stages/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/construction-stages/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/construction-stages/internal/adapters/postgres"
	"github.com/jsamuelsen11/construction-stages/internal/app"
	"github.com/jsamuelsen11/construction-stages/internal/platform/config"
	"github.com/jsamuelsen11/construction-stages/internal/platform/database"
	"github.com/jsamuelsen11/construction-stages/internal/platform/health"
	"github.com/jsamuelsen11/construction-stages/internal/platform/logging"
	"github.com/jsamuelsen11/construction-stages/internal/platform/telemetry"
	"github.com/jsamuelsen11/construction-stages/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
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
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	db := do.MustInvoke[*database.DB](injector)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(db.SQL()); err != nil {
			return fmt.Errorf("applying migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(db)

	if err := server.Listen(); err != nil {
		return err
	}
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Serve to return.
	<-serverErr

	// Flush telemetry. The database is closed by the deferred Close above.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*database.DB, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return database.Open(&cfg.Database, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.StageRepository, error) {
		db := do.MustInvoke[*database.DB](i)
		return postgres.NewStageRepository(db), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StageStore, error) {
		repo := do.MustInvoke[ports.StageRepository](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewStageStore(repo, logger, app.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Database.QueryTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StageHandler, error) {
		store := do.MustInvoke[ports.StageStore](i)
		return handlers.NewStageHandler(store), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		stageH := do.MustInvoke[*handlers.StageHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(stageH, healthH, middleware.Stack(middleware.StackConfig{
			Logger:         logger,
			Metrics:        metrics,
			RequestTimeout: cfg.Server.RequestTimeout,
		})...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
