package main

import (
	"context"
	"fmt"

	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/llm"
)

// resolveConfig merges environment variables over an optional config file.
func resolveConfig(configPath string) (*config.Config, error) {
	cfg := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCompletionClient builds an llm.Client from resolved configuration.
func newCompletionClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	llmConfig := llm.DefaultGeminiConfig()
	apiKey := cfg.APIKey
	if cfg.Provider == string(llm.ProviderAnthropic) {
		llmConfig = llm.DefaultClaudeConfig()
		apiKey = cfg.AnthropicAPIKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY or ANTHROPIC_API_KEY)")
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	return client, nil
}
