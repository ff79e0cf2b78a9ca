// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

// supportedAlgorithms lists the HMAC signing methods accepted for tokens.
var supportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Environment == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Auth.SecretKey == "" {
		return ErrEmptySecretKey
	}

	if cfg.App.IsProduction() && cfg.Auth.SecretKey == DefaultSecretKey {
		return ErrDefaultSecretKeyInProduction
	}

	if !slices.Contains(supportedAlgorithms, cfg.Auth.Algorithm) {
		return ErrUnsupportedAlgorithm
	}

	if cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
