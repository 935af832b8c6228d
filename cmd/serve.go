package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "creatorlink/internal/adapter/http"
	"creatorlink/internal/adapter/metrics"
	"creatorlink/internal/adapter/postgres"
	"creatorlink/internal/adapter/usecase"
	"creatorlink/internal/config"
	"creatorlink/internal/db"
)

type depsFunc func() (config.Config, *slog.Logger)

func serveCmd(deps depsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger := deps()
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

// serve optionally migrates the database, wires repositories and use
// cases, then runs the HTTP server until SIGINT or SIGTERM.
func serve(parent context.Context, cfg config.Config, logger *slog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	brandRepo := postgres.NewBrandRepository(pool)
	gate := usecase.NewSubscriptionGate(brandRepo, cfg.Attribution.FreeTrial)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	handler := httpadapter.NewHandler(
		usecase.NewEventUseCase(postgres.NewAttributionRepository(pool)),
		usecase.NewAnalyticsUseCase(postgres.NewAnalyticsRepository(pool), cfg.Attribution.DefaultTopN),
		usecase.NewCampaignUseCase(postgres.NewCampaignRepository(pool), gate, cfg.Attribution.CodeAttempts),
		usecase.NewBrandUseCase(brandRepo, gate),
		m,
		logger,
		httpadapter.Options{
			APIKeyHeader:   cfg.HTTP.APIKeyHeader,
			RequestTimeout: cfg.HTTP.RequestTimeout,
			MetricsPath:    cfg.Metrics.Path,
		},
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
