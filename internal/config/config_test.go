package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-sqlscan/internal/logging"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadExplicitFile(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	path := writeFile(t, t.TempDir(), "custom.yaml", `
format: JSON
skip_invalid: true
max_tokens: 500
workers: 2
color: false
log:
  level: debug
  format: json
  output: /tmp/sqlscan.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
	require.True(t, cfg.SkipInvalid)
	require.Equal(t, 500, cfg.MaxTokens)
	require.Equal(t, 2, cfg.Workers)
	require.False(t, cfg.Color)
	require.Equal(t, logging.Config{
		Level:      logging.LevelDebug,
		OutputPath: "/tmp/sqlscan.log",
		Format:     "json",
	}, cfg.Logging())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	path := writeFile(t, t.TempDir(), "partial.yaml", "format: yaml\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.Format)
	require.True(t, cfg.Color)
	require.Equal(t, Default().Workers, cfg.Workers)
}

func TestLoadSearchesDefaultPaths(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	writeFile(t, dir, ".config/sqlscan.yaml", "format: yaml\n")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.Format)

	// An earlier entry in the search list wins.
	writeFile(t, dir, "sqlscan.yaml", "format: json\n")
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvLogLevel, "error")
	path := writeFile(t, t.TempDir(), "c.yaml", "format: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, logging.LevelError, cfg.Logging().Level)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "format: [\n"},
		{"bad format", "format: xml\n"},
		{"bad workers", "workers: 0\n"},
		{"bad max tokens", "max_tokens: -1\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"bad log format", "log:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".yaml", tt.content)
			_, err := Load(path)
			require.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "not found")
}
