// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIssueToken(t *testing.T) {
	expiresAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		body     string
		setup    func(m *testServices)
		wantCode int
		wantBody string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"Str0ng!Pass"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().
					Authenticate(gomock.Any(), models.TokenRequest{Username: "alice", Password: "Str0ng!Pass"}).
					Return(models.TokenResponse{AccessToken: "tok", TokenType: "bearer", ExpiresAt: expiresAt}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"access_token":"tok","token_type":"bearer","expires_at":"2026-05-01T12:00:00Z"}`,
		},
		{
			name: "wrong credentials",
			body: `{"username":"alice","password":"nope"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(models.TokenResponse{}, apperr.Unauthorized(service.MsgIncorrectCredentials))
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":true,"message":"Incorrect username or password","details":{}}`,
		},
		{
			name: "inactive user",
			body: `{"username":"alice","password":"Str0ng!Pass"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(models.TokenResponse{}, apperr.Forbidden(service.MsgInactiveUser))
			},
			wantCode: http.StatusForbidden,
			wantBody: `{"error":true,"message":"Inactive user","details":{}}`,
		},
		{
			name:     "empty body",
			body:     ``,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "unknown field",
			body:     `{"username":"alice","password":"x","admin":true}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "blank username",
			body:     `{"username":"","password":"x"}`,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t, testConfig(), logger.Nop())
			if tt.setup != nil {
				tt.setup(mocks)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantCode == http.StatusUnprocessableEntity {
				envelope := decodeEnvelope(t, rec.Body.Bytes())
				assert.Equal(t, MsgValidationError, envelope.Message)
				assert.NotEmpty(t, envelope.Details["validation_errors"])
			}
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, mocks := newTestRouter(t, testConfig(), logger.Nop())
		mocks.auth.EXPECT().
			RegisterUser(gomock.Any(), models.TokenRequest{Username: "bob", Password: "Str0ng!Pass"}).
			Return(models.User{
				UserID:       7,
				Username:     "bob",
				PasswordHash: "$2a$10$secret",
				IsActive:     true,
				CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
			strings.NewReader(`{"username":"bob","password":"Str0ng!Pass"}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"username":"bob","is_active":true,"created_at":"2026-01-02T03:04:05Z"}`, rec.Body.String())
	})

	t.Run("username taken", func(t *testing.T) {
		router, mocks := newTestRouter(t, testConfig(), logger.Nop())
		mocks.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, apperr.New(service.MsgUsernameTaken, http.StatusConflict, nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
			strings.NewReader(`{"username":"bob","password":"Str0ng!Pass"}`)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":true,"message":"Username already registered","details":{}}`, rec.Body.String())
	})
}

func TestMe(t *testing.T) {
	router, mocks := newTestRouter(t, testConfig(), logger.Nop())
	mocks.tokens.EXPECT().ExtractSubject("good-token").Return("alice", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"alice"}`, rec.Body.String())
}
