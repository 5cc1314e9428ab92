package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-learn-tracker/internal/config"
	"github.com/MKhiriev/go-learn-tracker/internal/crypto"
	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/internal/store"
	"github.com/MKhiriev/go-learn-tracker/internal/utils"
	"github.com/MKhiriev/go-learn-tracker/internal/validators"
	"github.com/MKhiriev/go-learn-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and session-token
// lifecycle using a UserRepository for persistence and Argon2id for password
// hashing. Plaintext passwords never leave this service.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies salted password digests.
	hasher crypto.PasswordHasher

	// validator enforces the registration and login form rules.
	validator validators.Validator

	// uuidGenerator assigns time-ordered account ids.
	uuidGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		uuidGenerator:  utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account from the registration form input.
//
// The input is validated field by field, the password is hashed with a fresh
// random salt, and the account is persisted with a time-ordered id. On
// success a session is opened immediately; no separate login is needed.
//
// Returns the opened session or:
//   - a validators error when the form input breaks a rule.
//   - [store.ErrEmailAlreadyRegistered] (wrapped) when the email is taken.
func (a *authService) Register(ctx context.Context, input models.RegisterInput) (*Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("email", input.Email).Msg("invalid registration input")
		return nil, err
	}

	hash, salt, err := a.hasher.HashPassword(input.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.uuidGenerator.Generate(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Age:          input.Age,
		Gender:       input.Gender,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    time.Now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return nil, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.openSession(ctx, registeredUser)
}

// Login authenticates an existing account.
//
// The credentials are validated, the account is looked up by email, and the
// supplied password is verified against the stored salted digest.
//
// Returns the opened session or:
//   - a validators error when the form input breaks a rule.
//   - [ErrUserNotFound] when no account carries the email.
//   - [ErrWrongPassword] when the password does not verify.
func (a *authService) Login(ctx context.Context, input models.LoginInput) (*Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("email", input.Email).Msg("invalid login input")
		return nil, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, input.Email)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user search by email failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.VerifyPassword(input.Password, foundUser.PasswordHash, foundUser.PasswordSalt)
	if err != nil {
		log.Err(err).Str("user_id", foundUser.UserID).Msg("stored credentials are unreadable")
		return nil, fmt.Errorf("stored credentials are unreadable: %w", err)
	}
	if !ok {
		log.Warn().Str("user_id", foundUser.UserID).Msg("wrong password")
		return nil, ErrWrongPassword
	}

	return a.openSession(ctx, foundUser)
}

// Logout clears the account's login timestamp. A repository failure is
// reported but the in-memory session is considered closed either way.
func (a *authService) Logout(ctx context.Context, session *Session) error {
	log := logger.FromContext(ctx)

	if session == nil {
		return ErrNotAuthenticated
	}

	if err := a.userRepository.SetLoginTime(ctx, session.UserID(), nil); err != nil {
		log.Err(err).Str("user_id", session.UserID()).Msg("clearing login time failed")
		return fmt.Errorf("clearing login time failed: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw session-token string.
//
// It verifies the signature and the issuer claim. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level token errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// openSession issues a session token, stamps the login time and assembles the
// session context handed to the UI.
func (a *authService) openSession(ctx context.Context, user models.User) (*Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	now := time.Now()
	if err = a.userRepository.SetLoginTime(ctx, user.UserID, &now); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("stamping login time failed")
		return nil, fmt.Errorf("stamping login time failed: %w", err)
	}
	user.LoginTime = &now

	return &Session{
		User:      user,
		Token:     token,
		StartedAt: now,
	}, nil
}
