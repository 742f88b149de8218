package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/app"
	"github.com/heartmarshall/kotoba-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kotobactl",
		Short:         "Administer the kotoba vocabulary quiz",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newUserCmd(),
		newImportCmd(),
		newRecomputeCmd(),
		newStatsCmd(),
	)
	return root
}

// runtime is an opened configuration, logger, pool and service graph.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	svc    *app.Services
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	svc, err := app.NewServices(cfg, pool, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &runtime{cfg: cfg, logger: logger, pool: pool, svc: svc}, nil
}

func (r *runtime) Close() {
	r.pool.Close()
}

func parseUserFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString("user")
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid --user %q: expected a learner UUID", raw)
	}
	return id, nil
}
