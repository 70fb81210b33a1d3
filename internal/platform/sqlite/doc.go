// Package sqlite provides the gorm-backed implementation of store.TaskStore
// over an embedded SQLite database, using the pure-Go modernc.org/sqlite
// driver so the binary needs no cgo.
package sqlite
