// Package postgres provides the gorm-backed implementations of the storage
// interfaces defined in the internal/store package. Production connections go
// through the pgx driver; the same stores run against SQLite in tests.
//
// The package also embeds the goose SQL migrations that define the schema.
package postgres
