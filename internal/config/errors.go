// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty environment name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrEmptySecretKey indicates that no token signing key is configured.
	ErrEmptySecretKey = errors.New("secret key is empty")
	// ErrDefaultSecretKeyInProduction indicates that the built-in secret key
	// is used in production.
	ErrDefaultSecretKeyInProduction = errors.New("default secret key must not be used in production")
	// ErrUnsupportedAlgorithm indicates a signing algorithm other than HS256,
	// HS384 or HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported token signing algorithm")
	// ErrInvalidTokenDuration indicates a non-positive token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty address or a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
