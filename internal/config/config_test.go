package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, InputPath, cfg.InputPath)
		assert.Equal(t, OutputPath, cfg.OutputPath)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Empty(t, cfg.NullTokens)
	})

	t.Run("reads log level and null tokens", func(t *testing.T) {
		path := writeConfig(t, "log_level: DEBUG\nnull_tokens: [\"null\", \"none\"]\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, []string{"null", "none"}, cfg.NullTokens)
	})

	t.Run("paths cannot be overridden", func(t *testing.T) {
		path := writeConfig(t, "input_path: other.csv\noutput_path: other.json\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, InputPath, cfg.InputPath)
		assert.Equal(t, OutputPath, cfg.OutputPath)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "log_level: [unterminated\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log_level: loud\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log_level")
	})

	t.Run("blank null token", func(t *testing.T) {
		path := writeConfig(t, "null_tokens: [\"  \"]\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "null_tokens[0] is blank")
	})
}
