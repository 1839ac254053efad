package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "gobees")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Database.Path)
	assert.Equal(t, 4, cfg.DataSource.MaxConcurrency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "honey", cfg.Theme.Preset)
	assert.Equal(t, "#FFAF00", cfg.Theme.Accent)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	writeConfig(t, dir, `
database:
  path: /tmp/bees.db
datasource:
  max_concurrency: 2
log:
  level: debug
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/bees.db", cfg.Database.Path)
	assert.Equal(t, 2, cfg.DataSource.MaxConcurrency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "#123456", cfg.Theme.Accent, "custom value wins over preset")
	assert.Equal(t, "#585858", cfg.Theme.Subtle, "missing value comes from preset")
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	writeConfig(t, dir, "datasource:\n  max_concurrency: 2\n")
	t.Setenv("GOBEES_DATASOURCE__MAX_CONCURRENCY", "9")
	t.Setenv("GOBEES_DATABASE__PATH", "/data/env.db")
	t.Setenv("GOBEES_THEME__PRESET", "monochrome")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.DataSource.MaxConcurrency)
	assert.Equal(t, "/data/env.db", cfg.Database.Path)
	assert.Equal(t, "#FFFFFF", cfg.Theme.Accent)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero concurrency", "datasource:\n  max_concurrency: 0\n"},
		{"unknown log level", "log:\n  level: chatty\n"},
		{"malformed yaml", "database: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)
			writeConfig(t, dir, tt.content)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Database.Path = "/var/lib/gobees.db"
	cfg.Log.Level = "warn"
	require.NoError(t, cfg.Save())

	path, err := Path()
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/gobees.db", loaded.Database.Path)
	assert.Equal(t, "warn", loaded.Log.Level)
}

func TestSlogLevel(t *testing.T) {
	level, err := LogConfig{Level: "warn"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = LogConfig{Level: "loud"}.SlogLevel()
	assert.Error(t, err)
}
