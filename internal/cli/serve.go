package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lookup-console/internal/config"
	"lookup-console/internal/database"
	"lookup-console/internal/logger"
	"lookup-console/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the console HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.New(cfg.Server.Environment)
			log.Info("starting server", "env", cfg.Server.Environment, "addr", cfg.Address(), "backend", cfg.Backend.URL)

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := database.Initialize(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize audit database: %w", err)
			}
			defer db.Close()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv, err := server.New(cfg, db, log, reg)
			if err != nil {
				return err
			}

			return srv.Run(ctx)
		},
	}
}

// commandContext falls back to Background when cobra was executed without one
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
