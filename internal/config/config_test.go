package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"addr": ":9090",
		"provider": "gemini",
		"database_url": "postgres://localhost/career_coach",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "postgres://localhost/career_coach", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "openai"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidate_ValidConfig(t *testing.T) {
	for _, provider := range []string{"", "gemini", "anthropic"} {
		cfg := &Config{Provider: provider}
		assert.NoError(t, cfg.Validate())
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Addr:        ":8080",
		Provider:    "gemini",
		DatabaseURL: "postgres://localhost/defaults",
	}

	partial := Config{
		Provider: "anthropic",
		APIKey:   "custom-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "anthropic", merged.Provider)
	assert.Equal(t, "custom-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, ":8080", merged.Addr)
	assert.Equal(t, "postgres://localhost/defaults", merged.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Addr:   ":3000",
		APIKey: "key",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, ":3000", merged.Addr)
	assert.Equal(t, "key", merged.APIKey)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":8081")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("DATABASE_URL", "postgres://localhost/env_db")

	cfg := FromEnv()
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "postgres://localhost/env_db", cfg.DatabaseURL)
}
