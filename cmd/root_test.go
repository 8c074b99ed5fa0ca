package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/csvparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// setupWorkdir switches into a temp dir holding examples/data.csv.
func setupWorkdir(t *testing.T, csvText string) string {
	t.Helper()
	dir := t.TempDir()
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	require.NoError(t, os.MkdirAll("examples", 0o755))
	if csvText != "" {
		require.NoError(t, os.WriteFile(config.InputPath, []byte(csvText), 0o644))
	}
	return dir
}

func TestRunConvert(t *testing.T) {
	t.Run("writes output and confirms", func(t *testing.T) {
		setupWorkdir(t, "nom,preu\nAna,\"3,14\"\n,\nJoan,42\n")
		var stdout, stderr bytes.Buffer

		require.NoError(t, runConvert(&stdout, &stderr))

		assert.Equal(t, "✓ CSV converted to JSON\n  File:    examples/data.json\n  Records: 2\n", stdout.String())
		assert.Empty(t, stderr.String())

		out, err := os.ReadFile(config.OutputPath)
		require.NoError(t, err)
		assert.Equal(t, "3.14", gjson.GetBytes(out, "0.preu").Raw)
		assert.Equal(t, "42", gjson.GetBytes(out, "1.preu").Raw)
	})

	t.Run("config file enables null tokens and debug logs", func(t *testing.T) {
		setupWorkdir(t, "a\nNone\n")
		require.NoError(t, os.WriteFile(config.FileName, []byte("log_level: debug\nnull_tokens: [\"none\"]\n"), 0o644))
		var stdout, stderr bytes.Buffer

		require.NoError(t, runConvert(&stdout, &stderr))

		out, err := os.ReadFile(config.OutputPath)
		require.NoError(t, err)
		assert.Equal(t, "null", gjson.GetBytes(out, "0.a").Raw)
		assert.Contains(t, stderr.String(), "Wrote output")
	})

	t.Run("missing input is fatal", func(t *testing.T) {
		setupWorkdir(t, "")
		var stdout, stderr bytes.Buffer

		err := runConvert(&stdout, &stderr)

		require.Error(t, err)
		assert.True(t, errors.Is(err, csvparser.ErrOpenInput))
		assert.Empty(t, stdout.String())
		_, statErr := os.Stat(config.OutputPath)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("bad config is fatal", func(t *testing.T) {
		setupWorkdir(t, "a\n1\n")
		require.NoError(t, os.WriteFile(config.FileName, []byte("log_level: chatty\n"), 0o644))

		err := runConvert(&bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("runs the conversion", func(t *testing.T) {
		dir := setupWorkdir(t, "a\n1\n")
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs([]string{})
		t.Cleanup(func() { rootCmd.SetArgs(nil) })

		require.NoError(t, rootCmd.Execute())

		assert.Contains(t, stdout.String(), "Records: 1")
		assert.FileExists(t, filepath.Join(dir, config.OutputPath))
	})

	t.Run("rejects arguments", func(t *testing.T) {
		setupWorkdir(t, "a\n1\n")
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs([]string{"other.csv"})
		t.Cleanup(func() { rootCmd.SetArgs(nil) })

		assert.Error(t, rootCmd.Execute())
	})

	t.Run("version", func(t *testing.T) {
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetArgs([]string{"version"})
		t.Cleanup(func() { rootCmd.SetArgs(nil) })

		require.NoError(t, rootCmd.Execute())

		assert.Contains(t, stdout.String(), "CSV to JSON Converter")
		assert.Contains(t, stdout.String(), "Version:    "+Version)
	})
}
