// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/models"
)

// documentRepository is the SQL-backed implementation of [DocumentRepository].
// Each user owns exactly one row in the "documents" table holding the whole
// learning document as a JSON payload. Reading and writing is all-or-nothing.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// Load returns the document stored for userID. A user with no stored row
// receives an empty document and a nil error.
//
// Before returning an empty document, Load checks the single-row
// legacy_document table left behind by pre-account installations. When the
// legacy document holds at least one topic and the user's own slot is empty,
// its content is copied to the user (stamped with MigratedAt) and the legacy
// row is deleted, all inside one transaction. The migration runs at most once:
// a second Load finds the user slot populated and the legacy row gone.
func (r *documentRepository) Load(ctx context.Context, userID string) (models.Document, error) {
	log := logger.FromContext(ctx)

	document, found, err := r.loadUserDocument(ctx, userID)
	if err != nil {
		return models.Document{}, err
	}
	if found && !document.Empty() {
		return document, nil
	}

	legacy, legacyFound, err := r.loadLegacyDocument(ctx)
	if err != nil {
		return models.Document{}, err
	}
	if !legacyFound || len(legacy.Topics) == 0 {
		return document, nil
	}

	migrated, err := r.migrateLegacyDocument(ctx, userID, legacy)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Load").Msg("error: legacy migration failed")
		return models.Document{}, err
	}

	log.Info().Str("user_id", userID).
		Int("topics", len(migrated.Topics)).
		Int("sessions", len(migrated.Sessions)).
		Msg("migrated legacy document to user")

	return migrated, nil
}

// Save overwrites the document stored for userID. LastUpdated is stamped at
// save time; MigratedAt is not carried over, so a document saved after a
// legacy migration loses the migration marker on its next write.
func (r *documentRepository) Save(ctx context.Context, userID string, document models.Document) error {
	log := logger.FromContext(ctx)

	document.LastUpdated = time.Now()
	document.MigratedAt = time.Time{}

	payload, err := json.Marshal(document)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Save").Msg("error: encoding document")
		return errors.Join(ErrEncodingDocument, err)
	}

	query, args, err := buildUpsertDocumentQuery(r.db.builder(), userID, payload, document.LastUpdated)
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Save").Msg("error: upserting document")
		return errors.Join(ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrDocumentNotSaved
	}

	return nil
}

func (r *documentRepository) loadUserDocument(ctx context.Context, userID string) (models.Document, bool, error) {
	query, args, err := buildSelectDocumentQuery(r.db.builder(), userID)
	if err != nil {
		return models.Document{}, false, errors.Join(ErrBuildingSQLQuery, err)
	}

	var payload string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, false, nil
		}
		return models.Document{}, false, errors.Join(ErrExecutingQuery, err)
	}

	var document models.Document
	if err = json.Unmarshal([]byte(payload), &document); err != nil {
		return models.Document{}, false, errors.Join(ErrDecodingDocument, err)
	}

	return document, true, nil
}

func (r *documentRepository) loadLegacyDocument(ctx context.Context) (models.Document, bool, error) {
	query, args, err := buildSelectLegacyDocumentQuery(r.db.builder())
	if err != nil {
		return models.Document{}, false, errors.Join(ErrBuildingSQLQuery, err)
	}

	var payload string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, false, nil
		}
		return models.Document{}, false, errors.Join(ErrExecutingQuery, err)
	}

	var document models.Document
	if err = json.Unmarshal([]byte(payload), &document); err != nil {
		return models.Document{}, false, errors.Join(ErrDecodingDocument, err)
	}

	return document, true, nil
}

// migrateLegacyDocument copies the legacy document into the user's slot and
// removes the legacy row. Both statements run in one transaction so a crash
// mid-migration never loses the legacy content.
func (r *documentRepository) migrateLegacyDocument(ctx context.Context, userID string, legacy models.Document) (models.Document, error) {
	legacy.MigratedAt = time.Now()
	legacy.LastUpdated = legacy.MigratedAt

	payload, err := json.Marshal(legacy)
	if err != nil {
		return models.Document{}, errors.Join(ErrEncodingDocument, err)
	}

	upsertQuery, upsertArgs, err := buildUpsertDocumentQuery(r.db.builder(), userID, payload, legacy.LastUpdated)
	if err != nil {
		return models.Document{}, errors.Join(ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := buildDeleteLegacyDocumentQuery(r.db.builder())
	if err != nil {
		return models.Document{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Document{}, errors.Join(ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		return models.Document{}, errors.Join(ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return models.Document{}, errors.Join(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Document{}, errors.Join(ErrCommitingTransaction, err)
	}

	return legacy, nil
}
