package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/config"
)

// Run starts the HTTP API and blocks until ctx is cancelled or the server
// fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting kotoba",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("quiz_timezone", cfg.Quiz.Timezone),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Any("versions", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc, err := NewServices(cfg, pool, logger)
	if err != nil {
		return err
	}

	handler, stop := NewHandler(cfg, svc, pool, logger)
	defer stop()

	if err := Serve(ctx, newHTTPServer(cfg.Server, handler), cfg.Server, logger); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
