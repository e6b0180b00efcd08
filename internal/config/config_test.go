package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scoring"
)

func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "embedded", cfg.Dataset.Source)
	assert.Equal(t, scoring.DefaultWeights(), cfg.Scoring.Weights())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"stdout"}, cfg.Logging.OutputPaths)
	assert.Equal(t, "greenscore", cfg.Metrics.Namespace)
}

func TestApplyDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9090
	cfg.Scoring.SolarWeight = 0.4
	ApplyDefaults(cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	// Partially set weights are not overwritten with defaults.
	assert.Equal(t, 0.4, cfg.Scoring.SolarWeight)
	assert.Equal(t, 0.0, cfg.Scoring.WindWeight)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Server.Mode = "production"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Dataset.Source = "csv"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Dataset.Source = "postgres"
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Scoring.SolarWeight = 0.5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")

	cfg = validConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Metrics.Namespace = ""
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := validConfig()
	dsn := cfg.Database.DSN()
	assert.Equal(t, "postgres://greenscore:@localhost:5432/greenscore?sslmode=disable&pool_max_conns=10", dsn)
}
