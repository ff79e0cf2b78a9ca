// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// TokenTypeBearer is the token_type reported for every issued token.
const TokenTypeBearer = "bearer"

// Claims is the decoded payload of a token. It is a plain JSON object: values
// are strings, float64 numbers, bools, nested maps or slices.
type Claims map[string]any

// Subject returns the "sub" claim and whether it is a non-empty string.
func (c Claims) Subject() (string, bool) {
	sub, ok := c["sub"].(string)
	return sub, ok && sub != ""
}

// TokenRequest is the credential body accepted by the token endpoint.
type TokenRequest struct {
	// Username identifies the account. Required.
	Username string `json:"username"`

	// Password is the plain-text password. Required.
	Password string `json:"password"`
}

// TokenResponse is returned after a successful authentication.
type TokenResponse struct {
	// AccessToken is the compact signed token.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"expires_at"`
}

// NewTokenData builds the standard payload for a user token: the username as
// subject, the numeric user id and the issue time in Unix seconds.
func NewTokenData(userID int64, username string, issuedAt time.Time) Claims {
	return Claims{
		"sub":     username,
		"user_id": strconv.FormatInt(userID, 10),
		"iat":     issuedAt.Unix(),
	}
}
