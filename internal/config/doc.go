// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merges the
// sources with mergo (earlier sources win for non-zero fields), applies
// defaults, and validates the result.
package config
