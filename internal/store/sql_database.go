package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/migrations"
)

// Driver names accepted by [database/sql.Open] for the two supported backends.
const (
	driverSQLite   = "sqlite3"
	driverPostgres = "pgx"
)

// DB wraps an open database connection together with the driver it was opened
// with. The driver name selects the migration dialect and the placeholder
// format used by query builders.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a squirrel statement builder configured with the placeholder
// format the connected backend expects ($1 for PostgreSQL, ? for SQLite).
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == driverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// isUniqueViolation reports whether err was caused by a unique-constraint
// violation on either supported backend.
func (db *DB) isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return sqliteUniqueViolation(err) || postgresUniqueViolation(err)
}
