// Package testdb provides utilities specifically for database testing.
//
// It opens throwaway databases and applies the embedded goose migrations to
// them, so store and API tests exercise the same schema that is deployed.
// SQLite databases are always available; PostgreSQL tests run only when
// TASKS_TEST_DATABASE_URL points at a reachable server and are skipped
// otherwise.
package testdb
