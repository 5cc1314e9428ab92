// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel
// validation errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Session.IdleCeiling <= 0 || cfg.Session.TickInterval <= 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}
