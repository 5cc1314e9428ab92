package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-learn-tracker/models"
)

// Column sets shared by the user queries below. Order matters: scans in the
// repository follow it.
var userColumns = []string{
	"user_id", "name", "email", "phone", "age", "gender",
	"password_hash", "password_salt", "login_time", "created_at",
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Name, user.Email, user.Phone, user.Age, user.Gender,
			user.PasswordHash, user.PasswordSalt, user.LoginTime, user.CreatedAt).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSetLoginTimeQuery(b sq.StatementBuilderType, userID string, loginTime *time.Time) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("login_time", loginTime).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertDocumentQuery(b sq.StatementBuilderType, userID string, payload []byte, updatedAt time.Time) (string, []any, error) {
	// The conflict clause works on both SQLite (>= 3.24) and PostgreSQL.
	return b.Insert("documents").
		Columns("user_id", "payload", "updated_at").
		Values(userID, string(payload), updatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectDocumentQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("payload").
		From("documents").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSelectLegacyDocumentQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("payload").
		From("legacy_document").
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func buildDeleteLegacyDocumentQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete("legacy_document").
		Where(sq.Eq{"id": 1}).
		ToSql()
}
