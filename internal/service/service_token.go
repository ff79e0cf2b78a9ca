// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// tokenService is the HMAC implementation of [TokenService].
// It holds no mutable state and is safe for concurrent use.
type tokenService struct {
	// secretKey signs and verifies every token.
	secretKey []byte

	// algorithm is the JWT name of the HMAC method (HS256, HS384, HS512).
	// Tokens whose header names another algorithm are rejected.
	algorithm string

	// tokenDuration is the lifetime used when Issue receives a zero ttl.
	tokenDuration time.Duration

	// now is the clock used for issuance and verification.
	now func() time.Time

	logger *logger.Logger
}

// TokenServiceOption customizes a token service.
type TokenServiceOption func(*tokenService)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) { s.now = now }
}

// NewTokenService builds a [TokenService] from the auth configuration.
func NewTokenService(cfg config.Auth, logger *logger.Logger, opts ...TokenServiceOption) (TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, ErrEmptySecretKey
	}
	if _, err := utils.HMACSigningMethod(cfg.Algorithm); err != nil {
		return nil, err
	}
	if cfg.TokenDuration <= 0 {
		return nil, ErrInvalidTokenDuration
	}

	s := &tokenService{
		secretKey:     []byte(cfg.SecretKey),
		algorithm:     cfg.Algorithm,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *tokenService) Issue(payload models.Claims, ttl time.Duration) (string, error) {
	token, err := s.IssueToken(payload, ttl)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

// IssueToken never mutates payload. Any "exp" it carries is overwritten.
// A negative ttl yields an already expired token.
func (s *tokenService) IssueToken(payload models.Claims, ttl time.Duration) (models.TokenResponse, error) {
	if ttl == 0 {
		ttl = s.tokenDuration
	}
	expiresAt := time.Unix(s.now().Add(ttl).Unix(), 0).UTC()

	claims := make(map[string]any, len(payload)+1)
	maps.Copy(claims, payload)
	claims["exp"] = expiresAt.Unix()

	token, err := utils.SignJWT(claims, s.algorithm, s.secretKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("error issuing token: %w", err)
	}

	return models.TokenResponse{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *tokenService) Verify(token string) (models.Claims, error) {
	claims, err := utils.ParseJWT(token, s.algorithm, s.secretKey, s.now)
	if err != nil {
		s.logger.Debug().Err(err).Msg("token verification failed")
		return nil, apperr.Unauthorized(MsgCouldNotValidateCredentials)
	}

	return models.Claims(claims), nil
}

func (s *tokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return "", err
	}

	subject, ok := claims.Subject()
	if !ok {
		return "", apperr.Unauthorized(MsgCouldNotValidateCredentials)
	}

	return subject, nil
}
