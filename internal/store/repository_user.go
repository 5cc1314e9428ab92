package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns it unchanged on
// success.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose email matches the one provided.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmailQuery(r.db.builder(), email)
	if err != nil {
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}
	return r.findOne(ctx, query, args)
}

// FindUserByID retrieves the account with the given id.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(r.db.builder(), userID)
	if err != nil {
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}
	return r.findOne(ctx, query, args)
}

func (r *userRepository) findOne(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found user from db
	if err := row.Scan(&found.UserID, &found.Name, &found.Email, &found.Phone, &found.Age,
		&found.Gender, &found.PasswordHash, &found.PasswordSalt, &found.LoginTime, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return found, nil
}

// SetLoginTime stamps (or clears, when loginTime is nil) the most recent
// successful login instant of the account.
func (r *userRepository) SetLoginTime(ctx context.Context, userID string, loginTime *time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetLoginTimeQuery(r.db.builder(), userID, loginTime)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetLoginTime").Msg("error: building query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetLoginTime").Msg("error: updating login time")
		return errors.Join(ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
