// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-learn-tracker application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session-token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds session-timer settings (forced-logout ceiling, tick).
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "3h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database backend.
type DB struct {
	// DSN is the data source name. A plain file path opens a local SQLite
	// database; a "postgres://" URI opens a PostgreSQL connection instead.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Session holds configuration for the login session timer.
type Session struct {
	// IdleCeiling is the maximum wall-clock duration of one login session.
	// Once elapsed time reaches the ceiling the user is logged out by force.
	// Env: SESSION_IDLE_CEILING
	IdleCeiling time.Duration `env:"IDLE_CEILING"`

	// TickInterval is how often the session timer re-evaluates elapsed time.
	// Env: SESSION_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`
}

// Defaults applied after all sources are merged, for fields still unset.
const (
	defaultDSN          = "learn-tracker.db"
	defaultTokenIssuer  = "go-learn-tracker"
	defaultTokenTTL     = 3 * time.Hour
	defaultIdleCeiling  = 3 * time.Hour
	defaultTickInterval = time.Second
)

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first non-zero value
// wins under mergo semantics):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields then receive the package defaults. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenTTL
	}
	if cfg.Session.IdleCeiling == 0 {
		cfg.Session.IdleCeiling = defaultIdleCeiling
	}
	if cfg.Session.TickInterval == 0 {
		cfg.Session.TickInterval = defaultTickInterval
	}
}
