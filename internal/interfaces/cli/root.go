// Package cli implements the greenscore command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/GreenScore-Intelligence/internal/application/readiness"
	"github.com/turtacn/GreenScore-Intelligence/internal/config"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/dataset"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/mlmodels"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// app bundles everything a command needs after bootstrap.
type app struct {
	cfg       *config.Config
	logger    logging.Logger
	collector prometheus.MetricsCollector
	metrics   *prometheus.AppMetrics
	service   *readiness.Service
	cleanup   func()
}

// NewRootCommand builds the greenscore command tree.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "greenscore",
		Short:         "Renewable-energy transition readiness scoring engine",
		Long:          "Ranks regions by renewable-transition readiness, merges unsupervised-model insights, generates advisories, and evaluates what-if capacity scenarios.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default: environment only)")

	root.AddCommand(
		newServeCommand(&configPath),
		newRankCommand(&configPath),
		newRecommendCommand(&configPath),
		newScenarioCommand(&configPath),
		newSummaryCommand(&configPath),
	)
	return root
}

// buildApp performs the shared bootstrap: config, logger, metrics, dataset
// repository, model store, and the readiness service.
func buildApp(ctx context.Context, configPath string) (*app, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: cfg.Logging.OutputPaths,
	})
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            cfg.Metrics.Namespace,
		EnableProcessMetrics: cfg.Metrics.EnableProcessMetrics,
		EnableGoMetrics:      cfg.Metrics.EnableGoMetrics,
	}, logger)
	if err != nil {
		return nil, err
	}
	metrics := prometheus.NewAppMetrics(collector)

	repo, cleanup, err := buildRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	store, err := mlmodels.NewStore()
	if err != nil {
		cleanup()
		return nil, err
	}

	service, err := readiness.NewService(repo,
		readiness.Models{Cluster: store, Outlier: store, Projection: store, Membership: store},
		cfg.Scoring.Weights(), logger, metrics)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		collector: collector,
		metrics:   metrics,
		service:   service,
		cleanup:   cleanup,
	}, nil
}

func buildRepository(ctx context.Context, cfg *config.Config, logger logging.Logger) (readiness.RegionRepository, func(), error) {
	switch cfg.Dataset.Source {
	case dataset.SourcePostgres:
		repo, err := dataset.NewPostgresRepository(ctx, cfg.Database.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Dataset.Seed {
			if err := repo.Seed(ctx); err != nil {
				repo.Close()
				return nil, nil, err
			}
		}
		return repo, repo.Close, nil
	default:
		return dataset.NewEmbeddedRepository(), func() {}, nil
	}
}
