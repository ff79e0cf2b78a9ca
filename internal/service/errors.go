// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrEmptySecretKey        = errors.New("token secret key is empty")
	ErrInvalidTokenDuration  = errors.New("token duration must be positive")
)

// Messages of the classified errors returned to clients.
const (
	MsgCouldNotValidateCredentials = "Could not validate credentials"
	MsgIncorrectCredentials        = "Incorrect username or password"
	MsgInactiveUser                = "Inactive user"
	MsgUsernameTaken               = "Username already registered"
	MsgWeakPassword                = "Password is too weak"
	MsgDatabaseNotConfigured       = "database is not configured"
	MsgServiceUnavailable          = "Service temporarily unavailable"
	MsgUnknownOrderColumn          = "Unknown order_by column"
)

// errDatabaseNotConfigured is returned by storage-backed operations when the
// application runs without a DSN.
func errDatabaseNotConfigured() error {
	return apperr.Internal(MsgDatabaseNotConfigured)
}
