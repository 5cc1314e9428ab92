package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-learn-tracker/models"
	"github.com/stretchr/testify/assert"
)

func validRegisterInput() models.RegisterInput {
	return models.RegisterInput{
		Name:            "John Doe",
		Email:           "john@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "+79991234567",
		Age:             30,
		Gender:          "male",
	}
}

func TestUserValidator_RegisterInput(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.RegisterInput)
		wantErr error
	}{
		{name: "valid input", mutate: func(in *models.RegisterInput) {}},
		{name: "blank name", mutate: func(in *models.RegisterInput) { in.Name = "   " }, wantErr: ErrEmptyName},
		{name: "empty email", mutate: func(in *models.RegisterInput) { in.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "email without at sign", mutate: func(in *models.RegisterInput) { in.Email = "john.example.com" }, wantErr: ErrInvalidEmail},
		{name: "short password", mutate: func(in *models.RegisterInput) { in.Password = "12345"; in.ConfirmPassword = "12345" }, wantErr: ErrPasswordTooShort},
		{name: "password mismatch", mutate: func(in *models.RegisterInput) { in.ConfirmPassword = "other1" }, wantErr: ErrPasswordMismatch},
		{name: "letters in phone", mutate: func(in *models.RegisterInput) { in.Phone = "+7999abc" }, wantErr: ErrInvalidPhone},
		{name: "empty phone allowed", mutate: func(in *models.RegisterInput) { in.Phone = "" }},
		{name: "negative age", mutate: func(in *models.RegisterInput) { in.Age = -1 }, wantErr: ErrInvalidAge},
		{name: "age over 120", mutate: func(in *models.RegisterInput) { in.Age = 121 }, wantErr: ErrInvalidAge},
		{name: "age boundary 120", mutate: func(in *models.RegisterInput) { in.Age = 120 }},
		{name: "unknown gender", mutate: func(in *models.RegisterInput) { in.Gender = "robot" }, wantErr: ErrInvalidGender},
		{name: "empty gender allowed", mutate: func(in *models.RegisterInput) { in.Gender = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterInput()
			tt.mutate(&input)

			err := v.Validate(ctx, input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserValidator_RegisterInput_FieldScoping(t *testing.T) {
	v := NewUserValidator()

	// only the requested field is checked
	input := models.RegisterInput{Email: "john@example.com"}
	assert.NoError(t, v.Validate(context.Background(), input, FieldEmail))
}

func TestUserValidator_LoginInput(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginInput{Email: "john@example.com", Password: "secret1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginInput{Password: "secret1"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginInput{Email: "john@example.com"}), ErrEmptyPassword)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
