package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/insights"
	"github.com/jonathan/career-coach/internal/observability"
)

var (
	insightSave       bool
	insightConfigPath string
	insightJSONOut    bool
)

var insightCmd = &cobra.Command{
	Use:   "insight <industry>",
	Short: "Generate an industry insight ad hoc",
	Long:  "Generate a structured insight for one industry and print it. With --save the result is also persisted, resetting the weekly refresh window.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInsight,
}

func init() {
	insightCmd.Flags().BoolVar(&insightSave, "save", false, "Persist the generated insight to the database")
	insightCmd.Flags().BoolVar(&insightJSONOut, "json", false, "Print the raw JSON payload instead of a summary")
	insightCmd.Flags().StringVar(&insightConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(insightCmd)
}

func runInsight(_ *cobra.Command, args []string) error {
	insightIndustry := args[0]

	cfg, err := resolveConfig(insightConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := newCompletionClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	insight, err := insights.Generate(ctx, client, insightIndustry)
	if err != nil {
		return fmt.Errorf("failed to generate insight: %w", err)
	}

	if insightSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL required with --save")
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if _, err := database.UpsertInsight(ctx, insightIndustry, insight); err != nil {
			return fmt.Errorf("failed to save insight: %w", err)
		}
	}

	if insightJSONOut {
		jsonBytes, err := json.MarshalIndent(insight, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintInsight(insightIndustry, insight)
	return nil
}
