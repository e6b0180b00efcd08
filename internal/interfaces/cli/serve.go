package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/GreenScore-Intelligence/internal/config"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/geodata"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/logging"
	httpiface "github.com/turtacn/GreenScore-Intelligence/internal/interfaces/http"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.cleanup()

			geo, err := geodata.NewProvider()
			if err != nil {
				return err
			}

			if *configPath != "" {
				config.Watch(*configPath, func(updated *config.Config) {
					a.logger.Info("configuration file changed",
						logging.String("log_level", updated.Logging.Level))
				})
			}

			// Build the snapshot before accepting traffic so the first
			// request never pays the pipeline cost and /readyz is honest.
			if err := a.service.Ready(ctx); err != nil {
				return err
			}

			router := httpiface.NewRouter(httpiface.RouterConfig{
				Mode:        a.cfg.Server.Mode,
				CORSOrigins: a.cfg.Server.CORSOrigins,
			}, httpiface.NewHandlers(a.service, geo.GeoJSON()), a.logger, a.metrics, a.collector)

			srv := httpiface.NewServer(a.cfg.Server, router, a.logger)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("shutdown incomplete", logging.Err(err))
				return err
			}
			return <-errCh
		},
	}
}
