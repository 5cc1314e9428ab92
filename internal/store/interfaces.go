// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-learn-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account record. Returns
	// [ErrEmailAlreadyRegistered] when the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email. Returns
	// [ErrNoUserWasFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its id. Returns
	// [ErrNoUserWasFound] when no such account exists.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// SetLoginTime records the instant of the most recent successful
	// authentication. A nil loginTime clears it (logout).
	SetLoginTime(ctx context.Context, userID string, loginTime *time.Time) error
}

// DocumentRepository persists and retrieves per-user learning documents.
// A document is saved and loaded as a whole.
type DocumentRepository interface {
	// Load returns the document keyed by userID. A user with no stored
	// document receives an empty document and a nil error. When a legacy
	// un-keyed document exists and the user's own slot is empty, Load
	// migrates the legacy content to the user before returning it.
	Load(ctx context.Context, userID string) (models.Document, error)

	// Save overwrites the document stored for userID.
	Save(ctx context.Context, userID string, document models.Document) error
}
