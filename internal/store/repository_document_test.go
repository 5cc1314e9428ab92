package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &documentRepository{
		db:     &DB{DB: db, driver: driverSQLite, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func documentPayload(t *testing.T, document models.Document) string {
	payload, err := json.Marshal(document)
	require.NoError(t, err)
	return string(payload)
}

func TestDocumentLoad_NoRowsYieldsEmptyDocument(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM documents").
		WithArgs("user-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT payload FROM legacy_document").
		WillReturnError(sql.ErrNoRows)

	document, err := repo.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, document.Empty())
}

func TestDocumentLoad_ReturnsStoredDocument(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	stored := models.Document{
		Topics:   []models.Topic{{ID: "t1", Name: "Go Concurrency", Category: models.CategoryProgramming, GoalHours: 10}},
		Sessions: []models.Session{{ID: "s1", TopicID: "t1", Duration: 30, Date: "2026-08-29"}},
	}

	mock.ExpectQuery("SELECT payload FROM documents").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(documentPayload(t, stored)))

	document, err := repo.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored.Topics, document.Topics)
	assert.Equal(t, stored.Sessions, document.Sessions)

	// a populated slot must not touch the legacy table
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentLoad_MigratesLegacyDocument(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	legacy := models.Document{
		Topics: []models.Topic{{ID: "t1", Name: "Spanish Verbs", Category: models.CategoryLanguages, GoalHours: 5}},
	}

	mock.ExpectQuery("SELECT payload FROM documents").
		WithArgs("user-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT payload FROM legacy_document").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(documentPayload(t, legacy)))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM legacy_document").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	document, err := repo.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, legacy.Topics, document.Topics)
	assert.False(t, document.MigratedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentLoad_MigrationRunsAtMostOnce(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	// After a migration the user slot holds the copied content, so a second
	// Load never reaches the legacy table again.
	migrated := models.Document{
		Topics: []models.Topic{{ID: "t1", Name: "Spanish Verbs", Category: models.CategoryLanguages, GoalHours: 5}},
	}

	mock.ExpectQuery("SELECT payload FROM documents").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(documentPayload(t, migrated)))

	document, err := repo.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, migrated.Topics, document.Topics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentLoad_EmptyLegacySkipsMigration(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM documents").
		WithArgs("user-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT payload FROM legacy_document").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(documentPayload(t, models.Document{})))

	document, err := repo.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, document.Empty())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentLoad_MigrationRolledBackOnDeleteFailure(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	legacy := models.Document{
		Topics: []models.Topic{{ID: "t1", Name: "Figma Basics", Category: models.CategoryDesign, GoalHours: 2}},
	}

	mock.ExpectQuery("SELECT payload FROM documents").
		WithArgs("user-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT payload FROM legacy_document").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(documentPayload(t, legacy)))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM legacy_document").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err := repo.Load(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDocumentLoad_CorruptPayload(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM documents").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow("{not json"))

	_, err := repo.Load(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrDecodingDocument)
}

func TestDocumentSave_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	document := models.Document{
		Topics: []models.Topic{{ID: "t1", Name: "Go Concurrency", Category: models.CategoryProgramming, GoalHours: 10}},
	}

	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), "user-1", document))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentSave_ZeroRowsAffected(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), "user-1", models.Document{})
	assert.ErrorIs(t, err, ErrDocumentNotSaved)
}

func TestDocumentSaveLoad_RoundTrip(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	document := models.Document{
		Topics:   []models.Topic{{ID: "t1", Name: "Go Concurrency", Category: models.CategoryProgramming, GoalHours: 10, Priority: models.PriorityHigh}},
		Sessions: []models.Session{{ID: "s1", TopicID: "t1", Duration: 45, Notes: "channels", Date: "2026-08-29"}},
	}

	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Save(context.Background(), "user-1", document))

	// serve back what the upsert would have written
	saved := documentPayload(t, document)

	mock.ExpectQuery("SELECT payload FROM documents").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(saved))

	loaded, err := repo.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, document.Topics, loaded.Topics)
	assert.Equal(t, document.Sessions, loaded.Sessions)
}
