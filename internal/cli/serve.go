package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eshaffer321/komisi/internal/api"
	"github.com/eshaffer321/komisi/internal/infrastructure/config"
	"github.com/eshaffer321/komisi/internal/infrastructure/logging"
	"github.com/eshaffer321/komisi/internal/infrastructure/metrics"
)

// RunServe runs the API server until SIGINT or SIGTERM.
func RunServe(cfg *config.Config, flags *ServeFlags, verbose bool) error {
	// Set up logging
	loggingCfg := cfg.Observability.Logging
	if verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(loggingCfg, "api")

	var m *metrics.Manager
	if cfg.Observability.Metrics.Enabled {
		m = metrics.NewManager(metrics.WithNamespace(cfg.Observability.Metrics.Namespace))
	}

	svc, err := newService(context.Background(), cfg, m, logger)
	if err != nil {
		return err
	}

	// Create API config
	apiCfg := api.Config{
		Port:           flags.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	// Create and start server
	server := api.NewServer(apiCfg, svc, m, logger)

	// Handle graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-quit:
		case <-stop:
			return
		}
		logger.Info("received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		close(done)
	}()

	// Start server (blocks until shutdown)
	if err := server.Start(); err != nil {
		return err
	}

	<-done
	logger.Info("server stopped")
	return nil
}
