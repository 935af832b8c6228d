package main

import (
	"github.com/spf13/cobra"

	"creatorlink/internal/db"
)

func migrateCmd(deps depsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger := deps()
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return err
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
}
