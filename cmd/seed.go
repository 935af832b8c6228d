package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"creatorlink/internal/adapter/usecase"
	"creatorlink/internal/db"
)

func seedCmd(deps depsFunc) *cobra.Command {
	var apiKey string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo brands, campaigns and events",
		Long: `Seed inserts a demo brand with an active subscription, one campaign per
payout model, creators with referral codes and two weeks of click and sale
events. The brand's API key is printed once.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger := deps()
			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()

			if apiKey == "" {
				if apiKey, err = usecase.GenerateAPIKey(); err != nil {
					return err
				}
			}
			res, err := db.Seed(cmd.Context(), pool, usecase.HashAPIKey(apiKey))
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("seed complete",
				slog.String("brand_id", res.BrandID.String()),
				slog.Int("campaigns", len(res.CampaignIDs)),
				slog.Any("referral_codes", res.Codes),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "api key: %s\n", apiKey)
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "plaintext API key for the demo brand (random when empty)")
	return cmd
}
