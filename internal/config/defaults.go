package config

import "time"

const (
	DefaultServerPort      = 8080
	DefaultServerMode      = "release"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultDatasetSource = "embedded"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBUser     = "greenscore"
	DefaultDBName     = "greenscore"
	DefaultDBSSLMode  = "disable"
	DefaultDBMaxConns = 10

	DefaultCategoryWeight = 0.25

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "greenscore"
)

// ApplyDefaults fills zero-value fields with well-known defaults.  Explicit
// configuration always wins: fields already set by the caller are untouched.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Dataset.Source == "" {
		cfg.Dataset.Source = DefaultDatasetSource
	}

	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.User == "" {
		cfg.Database.User = DefaultDBUser
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = DefaultDBSSLMode
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}

	// An all-zero weight vector means "not configured"; a partially set one
	// is left alone so Validate can reject it.
	if cfg.Scoring.SolarWeight == 0 && cfg.Scoring.WindWeight == 0 &&
		cfg.Scoring.SmallHydroWeight == 0 && cfg.Scoring.BioWeight == 0 {
		cfg.Scoring.SolarWeight = DefaultCategoryWeight
		cfg.Scoring.WindWeight = DefaultCategoryWeight
		cfg.Scoring.SmallHydroWeight = DefaultCategoryWeight
		cfg.Scoring.BioWeight = DefaultCategoryWeight
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if len(cfg.Logging.OutputPaths) == 0 {
		cfg.Logging.OutputPaths = []string{"stdout"}
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}
