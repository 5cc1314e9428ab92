package config

import (
	"flag"
	"time"
)

// ParseFlags parses configuration flags from args (the program arguments
// without the binary name).
//
// Flags:
//
//	-d database DSN (file path for SQLite, postgres:// URI for PostgreSQL)
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "3h", "30m")
//	-idle-ceiling forced-logout ceiling (e.g., "3h")
//	-tick-interval session timer tick interval (e.g., "1s")
//
// A dedicated flag set is used instead of the global one so the parser can
// be exercised in tests without touching os.Args.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-learn-tracker", flag.ContinueOnError)

	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var idleCeiling time.Duration
	var tickInterval time.Duration

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 3h, 30m)")
	fs.DurationVar(&idleCeiling, "idle-ceiling", 0, "Forced-logout ceiling (e.g., 3h)")
	fs.DurationVar(&tickInterval, "tick-interval", 0, "Session timer tick interval (e.g., 1s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Session: Session{
			IdleCeiling:  idleCeiling,
			TickInterval: tickInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
