package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

// openTaskStore connects to the configured database and returns the matching
// store implementation. The schema must already exist.
func openTaskStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.TaskStore, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.URL, postgres.PoolConfig{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %s", redact.Error(err))
		}
		logger.Info("Database connection established", "driver", cfg.Driver)
		return postgres.NewTaskStore(db)

	case config.DriverSQLite:
		gdb, err := sqlite.Open(cfg.URL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		taskStore, err := sqlite.NewTaskStore(gdb)
		if err != nil {
			return nil, err
		}
		if err := taskStore.Ping(ctx); err != nil {
			_ = taskStore.Close()
			return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
		}
		logger.Info("Database connection established", "driver", cfg.Driver, "path", cfg.URL)
		return taskStore, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// dbSystem returns the OpenTelemetry db.system value for a driver name.
func dbSystem(driver string) string {
	if driver == config.DriverPostgres {
		return "postgresql"
	}
	return driver
}
