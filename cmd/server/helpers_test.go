package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
	"github.com/phrazzld/tasks-api/internal/testdb"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            3001,
			LogLevel:        "debug",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     30 * time.Second,
			ShutdownTimeout: 2 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			URL:    "tasks.db",
		},
		Tracing: config.TracingConfig{
			ServiceName: "tasks-api",
			SampleRatio: 1,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestApp builds an application over a migrated sqlite database.
func newTestApp(t *testing.T) *application {
	t.Helper()

	taskStore, err := sqlite.NewTaskStore(testdb.OpenSQLite(t))
	require.NoError(t, err)

	app, err := newApplication(testConfig(), discardLogger(), taskStore)
	require.NoError(t, err)
	return app
}
