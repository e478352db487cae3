// Package sqlite provides a SQLite-backed implementation of the credential store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Records are kept in a single key/value
// table; the session credential is stored as JSON under domain.CredentialKey.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.workly/data/workly.db
//
// # Thread Safety
//
// All operations are thread-safe. Several workly processes may share the
// database; SQLite in WAL mode serialises their writes and the last writer wins.
package sqlite
