// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-api-scaffold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies signed bearer tokens.
//
// Every failure of Verify and ExtractSubject is an Unauthorized
// *apperr.Error; callers never see signing-library errors.
type TokenService interface {
	// Issue signs a copy of payload with an "exp" claim of now+ttl. A zero
	// ttl means the configured token duration.
	Issue(payload models.Claims, ttl time.Duration) (string, error)
	// IssueToken is Issue returning the token response with its expiry.
	IssueToken(payload models.Claims, ttl time.Duration) (models.TokenResponse, error)
	// Verify checks signature, algorithm and expiry and returns the claims.
	Verify(token string) (models.Claims, error)
	// ExtractSubject verifies token and returns its non-empty "sub" claim.
	ExtractSubject(token string) (string, error)
}

// AuthService exchanges credentials for tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.TokenRequest) (models.User, error)
	Authenticate(ctx context.Context, req models.TokenRequest) (models.TokenResponse, error)
}

// UserService reads user accounts.
type UserService interface {
	ListUsers(ctx context.Context, page models.PageParams) ([]models.User, error)
}

// AppInfoService reports the identity of the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Root(ctx context.Context) models.RootResponse
	Health(ctx context.Context) models.HealthResponse
}
