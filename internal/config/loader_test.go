package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9191
  mode: test
dataset:
  source: embedded
scoring:
  solar_weight: 0.4
  wind_weight: 0.3
  small_hydro_weight: 0.2
  bio_weight: 0.1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, 0.4, cfg.Scoring.SolarWeight)
	// Defaults fill what the file leaves out.
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := writeConfig(t, `
scoring:
  solar_weight: 0.9
  wind_weight: 0.9
  small_hydro_weight: 0.1
  bio_weight: 0.1
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GREENSCORE_SERVER_PORT", "7070")
	t.Setenv("GREENSCORE_DATASET_SOURCE", "embedded")
	t.Setenv("GREENSCORE_LOGGING_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { MustLoad("/nonexistent/config.yaml") })
}
