// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func missingDotEnv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".env")
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "Go API Scaffold", cfg.App.ProjectName)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "/api/v1", cfg.App.APIPrefix)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultSecretKey, cfg.Auth.SecretKey)
	assert.Equal(t, "*", cfg.CORS.Origins)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{SecretKey: "first"}},
		&StructuredConfig{Auth: Auth{SecretKey: "second", Algorithm: "HS384"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Auth.SecretKey)
	assert.Equal(t, "HS384", cfg.Auth.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenDuration)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":  "localhost:9999",
		"AUTH_SECRET_KEY": "env_secret",
	})

	b := newConfigBuilder().withEnv(missingDotEnv(t))
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9999", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "env_secret", b.configs[0].Auth.SecretKey)
}

func TestWithEnv_ReadsDotEnvFile(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENVIRONMENT=qa\n"), 0o600))

	b := newConfigBuilder().withEnv(path)
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "qa", b.configs[0].App.Environment)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"AUTH_TOKEN_DURATION": "x"})

	b := newConfigBuilder().withEnv(missingDotEnv(t))
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "127.0.0.1:8081"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "127.0.0.1:8081", b.configs[0].Server.HTTPAddress)

	b = newConfigBuilder().withFlags([]string{"-a", "bad"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "localhost:7070"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "localhost:7070", b.configs[1].Server.HTTPAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"auth": map[string]any{"secret_key": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"auth": map[string]any{"secret_key": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].Auth.SecretKey)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	t.Chdir(t.TempDir())

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"api_prefix": "/json"},
		"auth":   map[string]any{"secret_key": "json_secret", "algorithm": "HS512"},
		"server": map[string]any{"http_address": "localhost:1111"},
	})
	setEnvVars(t, map[string]string{
		"AUTH_SECRET_KEY": "env_secret",
		"CONFIG":          jsonPath,
	})

	cfg, err := GetStructuredConfig([]string{"-secret-key", "flag_secret", "-a", "localhost:2222"})
	require.NoError(t, err)

	assert.Equal(t, "env_secret", cfg.Auth.SecretKey)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "HS512", cfg.Auth.Algorithm)
	assert.Equal(t, "/json", cfg.App.APIPrefix)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestGetStructuredConfig_ProductionRequiresSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	setEnvVars(t, map[string]string{"APP_ENVIRONMENT": "production"})

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrDefaultSecretKeyInProduction)
}
