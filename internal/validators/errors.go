package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidAge       = errors.New("age must be between 0 and 120")
	ErrInvalidPhone     = errors.New("phone must contain digits only")
	ErrInvalidGender    = errors.New("invalid gender")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidGoalHours = errors.New("goal hours must be greater than zero")
	ErrTargetDateInPast = errors.New("target date cannot be in the past")
	ErrEmptyTopicID     = errors.New("topic is required")
	ErrInvalidDuration  = errors.New("duration must be at least 1 minute")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD form")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
