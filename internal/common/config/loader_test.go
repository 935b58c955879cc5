package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DEBUG", "")

	path := writeConfigFile(t, `
openai:
  vector_store_id: vs_abc123
logging:
  level: warn
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "vs_abc123", cfg.OpenAI.VectorStoreID)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.False(t, cfg.OpenAI.Debug)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// defaults
	assert.Equal(t, "docsearch-mcp", cfg.App.Name)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 9100, cfg.Metrics.Port)
}

func TestLoadFromFile_DebugEnabled(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DEBUG", "TRUE")

	path := writeConfigFile(t, "openai:\n  vector_store_id: vs_abc123\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.OpenAI.Debug)
}

func TestLoadFromFile_MissingVectorStoreID(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := writeConfigFile(t, "logging:\n  level: info\n")

	_, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vector_store_id")
}

func TestLoadFromFile_BadVectorStorePrefix(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := writeConfigFile(t, "openai:\n  vector_store_id: store-123\n")

	_, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vs_")
}

func TestLoadFromFile_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	path := writeConfigFile(t, "openai:\n  vector_store_id: vs_abc123\n")

	_, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestParseDebugFlag(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"1", true},
		{" 1 ", true},
		{"false", false},
		{"0", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDebugFlag(tt.value))
		})
	}
}
