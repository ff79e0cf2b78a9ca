// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultProjectName   = "Go API Scaffold"
	defaultVersion       = "0.1.0"
	defaultDescription   = "HTTP service scaffold"
	defaultEnvironment   = "development"
	defaultAPIPrefix     = "/api/v1"
	defaultHTTPAddress   = "0.0.0.0:8000"
	defaultAlgorithm     = "HS256"
	defaultTokenDuration = 30 * time.Minute
	defaultCORSOrigins   = "*"

	// DefaultSecretKey is accepted outside production only.
	DefaultSecretKey = "your-secret-key-change-in-production"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ProjectName: defaultProjectName,
			Version:     defaultVersion,
			Description: defaultDescription,
			Environment: defaultEnvironment,
			APIPrefix:   defaultAPIPrefix,
		},
		Auth: Auth{
			SecretKey:     DefaultSecretKey,
			Algorithm:     defaultAlgorithm,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		CORS: CORS{
			Origins: defaultCORSOrigins,
		},
	}
}
