// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the scaffold's HTTP API.
//
// The primary abstraction is [APIClient]. Non-2xx responses are decoded from
// the error envelope into a [*ResponseError] that wraps a sentinel per
// status, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401)
// or [errors.As] to inspect the envelope.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-api-scaffold/models"
)

// APIClient talks to a running API instance.
type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// IssueToken exchanges credentials for an access token and stores it
	// via SetToken.
	IssueToken(ctx context.Context, req models.TokenRequest) (models.TokenResponse, error)

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.TokenRequest) (models.User, error)

	// Me returns the subject of the stored token.
	Me(ctx context.Context) (models.CurrentUser, error)

	// ListUsers returns one page of users.
	ListUsers(ctx context.Context, page models.PageParams) ([]models.User, error)
}
