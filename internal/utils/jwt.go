// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrUnsupportedAlgorithm is returned for signing methods other than
	// HS256, HS384 and HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// bearerScheme is the only authorization scheme accepted by ParseBearerToken.
const bearerScheme = "bearer"

// HMACSigningMethod resolves an HMAC signing method by its JWT name.
func HMACSigningMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	return method, nil
}

// SignJWT serializes claims into a compact JWT signed with the HMAC method
// named by alg.
//
// Example usage:
//
//	token, err := utils.SignJWT(map[string]any{"sub": "alice", "exp": exp}, "HS256", key)
func SignJWT(claims map[string]any, alg string, signKey []byte) (string, error) {
	method, err := HMACSigningMethod(alg)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(method, jwt.MapClaims(claims))
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseJWT verifies tokenString and returns its claims.
//
// Validation includes:
//   - the header algorithm must equal alg (no algorithm substitution);
//   - signature verification with signKey;
//   - the exp claim must be present and later than now();
//   - nbf and iat, when present, must not lie in the future.
//
// now supplies the verification time; nil means time.Now.
func ParseJWT(tokenString, alg string, signKey []byte, now func() time.Time) (map[string]any, error) {
	method, err := HMACSigningMethod(alg)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
