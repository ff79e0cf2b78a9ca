// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-api-scaffold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionManager scopes a unit of work to a single database session.
type SessionManager interface {
	WithSession(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository persists user accounts. Methods join the session bound to
// ctx by [SessionManager.WithSession], if any.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context, page models.PageParams) ([]models.User, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
