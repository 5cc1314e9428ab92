package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-learn-tracker/internal/config"
	"github.com/MKhiriev/go-learn-tracker/internal/logger"
)

// Storages bundles every repository of the persistence layer behind one
// value, sharing a single database connection.
type Storages struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository

	db *DB
}

// NewStorages opens the backend selected by the DSN (a "postgres://" or
// "postgresql://" URI connects to PostgreSQL, anything else is treated as a
// SQLite file path), applies pending migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	dsn := cfg.Storage.DB.DSN
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg.Storage.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.Storage.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
