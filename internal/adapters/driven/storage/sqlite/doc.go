// Package sqlite provides a SQLite-based implementation of driven.HistoryStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. The database lives in memory and disappears with the
// process; it is selected with history.backend = "sqlite".
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; applied versions are recorded in schema_migrations.
//
// # Thread Safety
//
// All operations are thread-safe. The connection pool is limited to a single
// connection, which serialises access.
package sqlite
