package models

import "time"

// User represents a registered account used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (time-ordered UUID).
	UserID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique address used to look the account up at login
	// and for the uniqueness check at registration.
	Email string `json:"email"`

	// Phone is the contact number including country code, digits only
	// after the leading "+".
	Phone string `json:"phone"`

	// Age of the user in years, 0..120.
	Age int `json:"age"`

	// Gender is one of "male", "female", "other".
	Gender string `json:"gender"`

	// PasswordHash stores the Argon2id digest of the user's password,
	// base64-encoded. Plaintext passwords are never persisted.
	PasswordHash string `json:"-"`

	// PasswordSalt is the random per-user salt used to derive PasswordHash,
	// base64-encoded.
	PasswordSalt string `json:"-"`

	// LoginTime is the instant of the most recent successful authentication.
	// Nil while the user is logged out.
	LoginTime *time.Time `json:"login_time,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
