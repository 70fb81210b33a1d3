package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
	"github.com/phrazzld/tasks-api/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// PostgresURLEnv names the environment variable holding the PostgreSQL
// connection string used by integration tests.
const PostgresURLEnv = "TASKS_TEST_DATABASE_URL"

// Migrate applies every pending goose migration for driver to db.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	fsys, err := migrations.FS(driver)
	if err != nil {
		return err
	}

	dialect := goose.DialectSQLite3
	if driver == "postgres" {
		dialect = goose.DialectPostgres
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// OpenSQLite creates a migrated SQLite database in a temporary directory that
// is removed when the test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.db")
	gdb, err := sqlite.Open(path, nil)
	require.NoError(t, err, "Failed to open sqlite database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err, "Failed to access sqlite connection pool")
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, Migrate(ctx, sqlDB, "sqlite"), "Failed to migrate sqlite database")

	return gdb
}

// PostgresURL returns the integration database URL, or "" when unset.
func PostgresURL() string {
	return os.Getenv(PostgresURLEnv)
}

// OpenPostgres connects to the integration PostgreSQL database, migrates it
// and empties the tasks table. The test is skipped when PostgresURLEnv is not
// set.
func OpenPostgres(t testing.TB) *sql.DB {
	t.Helper()

	url := PostgresURL()
	if url == "" {
		t.Skipf("%s not set; skipping PostgreSQL integration test", PostgresURLEnv)
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err, "Failed to open database connection")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, db.PingContext(ctx), "Failed to ping database")
	require.NoError(t, Migrate(ctx, db, "postgres"), "Failed to migrate database")

	_, err = db.ExecContext(ctx, "TRUNCATE TABLE tasks RESTART IDENTITY")
	require.NoError(t, err, "Failed to reset tasks table")

	return db
}
