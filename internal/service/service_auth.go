// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository inside scoped sessions, bcrypt for password hashing and a
// TokenService for issuance.
type authService struct {
	// sessions scopes every storage operation. Nil when no database is
	// configured.
	sessions store.SessionManager

	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokens issues the access token after a successful authentication.
	tokens TokenService

	// now stamps the "iat" claim.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. storages may be empty, in
// which case every call fails with an Internal error.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		sessions:       storages.SessionManager,
		userRepository: storages.UserRepository,
		tokens:         tokens,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new active user account.
//
// Returns the persisted user or:
//   - a Validation error if the password is weak or longer than bcrypt accepts;
//   - a 409 error if the username is taken;
//   - an Internal error if no database is configured.
func (a *authService) RegisterUser(ctx context.Context, req models.TokenRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if a.sessions == nil {
		return models.User{}, errDatabaseNotConfigured()
	}

	if !utils.IsStrongPassword(req.Password) {
		return models.User{}, apperr.Validation(MsgWeakPassword, map[string]any{
			"field":      "password",
			"min_length": utils.MinPasswordLength,
		})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, apperr.Validation(MsgWeakPassword, map[string]any{"field": "password", "max_bytes": 72})
		}
		return models.User{}, err
	}

	var created models.User
	err = a.sessions.WithSession(ctx, func(ctx context.Context) error {
		var err error
		created, err = a.userRepository.CreateUser(ctx, models.User{
			Username:     req.Username,
			PasswordHash: hash,
			IsActive:     true,
		})
		return err
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Authenticate checks the credentials and issues an access token whose
// subject is the username.
//
// Unknown usernames and wrong passwords both yield the same Unauthorized
// error. Inactive accounts are Forbidden.
func (a *authService) Authenticate(ctx context.Context, req models.TokenRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if a.sessions == nil {
		return models.TokenResponse{}, errDatabaseNotConfigured()
	}

	var user models.User
	err := a.sessions.WithSession(ctx, func(ctx context.Context) error {
		var err error
		user, err = a.userRepository.FindUserByUsername(ctx, req.Username)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("username", req.Username).Msg("unknown username")
			return models.TokenResponse{}, apperr.Unauthorized(MsgIncorrectCredentials)
		}
		return models.TokenResponse{}, mapStoreError(err)
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.TokenResponse{}, apperr.Unauthorized(MsgIncorrectCredentials)
	}

	if !user.IsActive {
		return models.TokenResponse{}, apperr.Forbidden(MsgInactiveUser)
	}

	return a.tokens.IssueToken(models.NewTokenData(user.UserID, user.Username, a.now()), 0)
}
