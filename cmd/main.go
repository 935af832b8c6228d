package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"creatorlink/internal/config"
)

var version = "dev"

// main is the entry point of creatorlink. Configuration is read from the
// environment once and shared by every subcommand.
func main() {
	root := &cobra.Command{
		Use:           "creatorlink",
		Short:         "Referral attribution and campaign analytics service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		cfg    config.Config
		logger *slog.Logger
	)
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger = cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
		return nil
	}

	deps := func() (config.Config, *slog.Logger) { return cfg, logger }
	root.AddCommand(serveCmd(deps))
	root.AddCommand(migrateCmd(deps))
	root.AddCommand(seedCmd(deps))
	root.AddCommand(renewCmd(deps))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
