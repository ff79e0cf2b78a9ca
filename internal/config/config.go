// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvironmentProduction is the environment name that hides API docs and
// forbids the default secret key.
const EnvironmentProduction = "production"

// StructuredConfig is the top-level configuration container for the
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds descriptive and runtime settings of the application.
	App App `envPrefix:"APP_"`

	// Auth holds token signing settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds cross-origin settings.
	CORS CORS `envPrefix:"CORS_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// ProjectName is shown in API docs.
	// Env: APP_PROJECT_NAME
	ProjectName string `env:"PROJECT_NAME"`

	// Version is the semantic version reported by the health probes.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Description is shown in API docs.
	// Env: APP_DESCRIPTION
	Description string `env:"DESCRIPTION"`

	// Environment is the deployment environment name (e.g. "development",
	// "production"). Interactive API docs are exposed everywhere except
	// production.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// APIPrefix is the path prefix of the versioned API (e.g. "/api/v1").
	// Env: APP_API_PREFIX
	APIPrefix string `env:"API_PREFIX"`

	// Debug switches the log level to debug.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// LogDir, when set, makes the logger additionally append to
	// <LogDir>/app.log.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// IsProduction reports whether the application runs in production.
func (a App) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}

// Auth holds JWT settings.
type Auth struct {
	// SecretKey is the HMAC secret used to sign and verify tokens.
	// Env: AUTH_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Algorithm is the JWT signing algorithm (HS256, HS384 or HS512).
	// Env: AUTH_ALGORITHM
	Algorithm string `env:"ALGORITHM"`

	// TokenDuration is the default lifetime of issued tokens (e.g. "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handler execution of a single request.
	// Zero disables the bound.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// CORS holds cross-origin resource sharing settings.
type CORS struct {
	// Origins is either "*" or a comma-separated list of allowed origins.
	// Env: CORS_ORIGINS
	Origins string `env:"ORIGINS"`
}

// AllowedOrigins parses Origins into an [Origins] set.
func (c CORS) AllowedOrigins() Origins {
	return ParseOrigins(c.Origins)
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. "postgres://" and
	// "postgresql://" select PostgreSQL, "sqlite://" and "file:" select
	// SQLite. An empty DSN disables the database.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. args are the command-line
// arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(dotEnvFile).
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
