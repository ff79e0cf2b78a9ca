// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/mock"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testVersion = "1.2.3"

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			ProjectName: "Test API",
			Version:     testVersion,
			Environment: "development",
			APIPrefix:   "/api/v1",
		},
		Auth: config.Auth{
			SecretKey:     "test-secret",
			Algorithm:     "HS256",
			TokenDuration: 30 * time.Minute,
		},
		Server: config.Server{HTTPAddress: "127.0.0.1:0"},
		CORS:   config.CORS{Origins: "*"},
	}
}

// testServices holds the mocked services behind a Handler.
type testServices struct {
	tokens *mock.MockTokenService
	auth   *mock.MockAuthService
	users  *mock.MockUserService
}

func newTestServices(t *testing.T, cfg config.StructuredConfig) (*service.Services, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	appInfo, err := service.NewAppInfoService(cfg.App, logger.Nop())
	require.NoError(t, err)

	mocks := &testServices{
		tokens: mock.NewMockTokenService(ctrl),
		auth:   mock.NewMockAuthService(ctrl),
		users:  mock.NewMockUserService(ctrl),
	}

	return &service.Services{
		TokenService:   mocks.tokens,
		AuthService:    mocks.auth,
		UserService:    mocks.users,
		AppInfoService: appInfo,
	}, mocks
}

// newTestRouter builds the full chain around the router.
func newTestRouter(t *testing.T, cfg config.StructuredConfig, log *logger.Logger) (http.Handler, *testServices) {
	t.Helper()
	services, mocks := newTestServices(t, cfg)

	router, err := NewHandler(services, cfg, log).Init()
	require.NoError(t, err)

	return router, mocks
}

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewLogger("test", logger.WithOutput(buf), logger.WithDebug(true))
}

func decodeEnvelope(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope), "body: %s", body)
	return envelope
}

// isEnvelope reports whether body has the error envelope shape.
func isEnvelope(body []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	_, hasError := probe["error"]
	_, hasMessage := probe["message"]
	_, hasDetails := probe["details"]
	return hasError && hasMessage && hasDetails
}
