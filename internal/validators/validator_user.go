package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-learn-tracker/models"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

var allowedGenders = []string{"male", "female", "other"}

// UserValidator validates registration and login form input.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterInput:
		return v.validateRegisterInput(ctx, value, fields...)
	case *models.RegisterInput:
		return v.validateRegisterInput(ctx, *value, fields...)

	case models.LoginInput:
		return v.validateLoginInput(ctx, value, fields...)
	case *models.LoginInput:
		return v.validateLoginInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidGender(gender string) bool {
	for _, g := range allowedGenders {
		if gender == g {
			return true
		}
	}
	return false
}

func isDigitsOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (v *UserValidator) validateRegisterInput(_ context.Context, input models.RegisterInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword, FieldPhone, FieldAge, FieldGender}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(input.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if input.Email == "" {
				return ErrEmptyEmail
			}
			if !strings.Contains(input.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(input.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldConfirmPassword:
			if input.ConfirmPassword != input.Password {
				return ErrPasswordMismatch
			}
		case FieldPhone:
			// optional; a leading "+" is allowed, the rest is digits
			if input.Phone != "" && !isDigitsOnly(strings.TrimPrefix(input.Phone, "+")) {
				return ErrInvalidPhone
			}
		case FieldAge:
			if input.Age < 0 || input.Age > 120 {
				return ErrInvalidAge
			}
		case FieldGender:
			if input.Gender != "" && !isValidGender(input.Gender) {
				return ErrInvalidGender
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLoginInput(_ context.Context, input models.LoginInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if input.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if input.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
