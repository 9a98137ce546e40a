package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/refresh"
)

var refreshConfigPath string

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Regenerate all stored industry insights",
	Long:  "Walk every industry with a stored insight and regenerate its payload. Intended to run weekly from a scheduler such as cron.",
	RunE:  runRefresh,
}

func init() {
	refreshCmd.Flags().StringVar(&refreshConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(refreshConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := newCompletionClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	report, err := refresh.NewRunner(database, client).Run(ctx)
	if err != nil {
		// A cancelled pass still carries the industries walked so far.
		if report != nil {
			observability.NewPrinter(os.Stdout).PrintRefreshReport(report)
		}
		return fmt.Errorf("refresh failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintRefreshReport(report)

	if len(report.Failed) > 0 {
		return fmt.Errorf("%d of %d industries failed to refresh",
			len(report.Failed), len(report.Failed)+len(report.Succeeded))
	}
	return nil
}
