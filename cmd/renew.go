package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"creatorlink/internal/adapter/postgres"
	"creatorlink/internal/adapter/usecase"
	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
	"creatorlink/internal/db"
)

func renewCmd(deps depsFunc) *cobra.Command {
	var (
		brandID string
		period  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "renew",
		Short: "Extend a brand's subscription after a confirmed payment",
		Long: `Renew extends the brand's subscription by --period. An active subscription
is extended from its current expiry, a lapsed one from now.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger := deps()
			id, err := uuid.Parse(brandID)
			if err != nil {
				return fmt.Errorf("%w: brand id %q", domain.ErrInvalidInput, brandID)
			}
			if period <= 0 {
				return fmt.Errorf("%w: period must be positive", domain.ErrInvalidInput)
			}

			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()

			repo := postgres.NewBrandRepository(pool)
			brands := usecase.NewBrandUseCase(repo, usecase.NewSubscriptionGate(repo, cfg.Attribution.FreeTrial))
			return renewBrand(cmd.Context(), brands, id, period, cmd.OutOrStdout(), logger)
		},
	}
	cmd.Flags().StringVar(&brandID, "brand-id", "", "brand to renew")
	cmd.Flags().DurationVar(&period, "period", 30*24*time.Hour, "length of the paid period")
	_ = cmd.MarkFlagRequired("brand-id")
	return cmd
}

func renewBrand(ctx context.Context, brands port.BrandUseCase, brandID uuid.UUID, period time.Duration, out io.Writer, logger *slog.Logger) error {
	sub, err := brands.Renew(ctx, brandID, period)
	if err != nil {
		return fmt.Errorf("renew: %w", err)
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	logger.Info("subscription renewed",
		slog.String("brand_id", brandID.String()),
		slog.Time("expires_at", sub.ExpiresAt),
	)
	fmt.Fprintf(out, "expires at: %s\n", sub.ExpiresAt.UTC().Format(time.RFC3339))
	return nil
}
