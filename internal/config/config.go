// Package config defines the engine's configuration structures.  No I/O or
// parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scoring"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// DatasetConfig selects where the capacity dataset comes from.
type DatasetConfig struct {
	Source string `mapstructure:"source"` // "embedded" | "postgres"
	// Seed inserts the embedded dataset into an empty Postgres table at
	// startup.  Ignored for the embedded source.
	Seed bool `mapstructure:"seed"`
}

// DatabaseConfig holds PostgreSQL connection parameters, used only when the
// dataset source is "postgres".
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
	MaxConns int    `mapstructure:"max_conns"`
}

// DSN renders the pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.MaxConns)
}

// ScoringConfig carries the category weights.
type ScoringConfig struct {
	SolarWeight      float64 `mapstructure:"solar_weight"`
	WindWeight       float64 `mapstructure:"wind_weight"`
	SmallHydroWeight float64 `mapstructure:"small_hydro_weight"`
	BioWeight        float64 `mapstructure:"bio_weight"`
}

// Weights converts the config fields into the canonical weight vector.
func (c ScoringConfig) Weights() scoring.Weights {
	return scoring.Weights{c.SolarWeight, c.WindWeight, c.SmallHydroWeight, c.BioWeight}
}

// LoggingConfig holds structured-logging settings.
type LoggingConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Namespace            string `mapstructure:"namespace"`
	EnableProcessMetrics bool   `mapstructure:"enable_process_metrics"`
	EnableGoMetrics      bool   `mapstructure:"enable_go_metrics"`
}

// Config is the root configuration object.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Database DatabaseConfig `mapstructure:"database"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// Validate rejects configurations that cannot produce a working process.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release, or test, got %q", c.Server.Mode)
	}
	switch c.Dataset.Source {
	case "embedded":
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("dataset.source is postgres but database.host or database.db_name is empty")
		}
	default:
		return fmt.Errorf("dataset.source must be embedded or postgres, got %q", c.Dataset.Source)
	}
	if err := c.Scoring.Weights().Validate(); err != nil {
		return fmt.Errorf("scoring weights: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace must not be empty")
	}
	return nil
}
