// Package postgres provides the PostgreSQL implementation of store.TaskStore.
// It runs plain SQL through database/sql using the pgx stdlib driver, and maps
// PostgreSQL error codes onto the errors defined in the internal/store package.
package postgres
