// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-api-scaffold/internal/logger"

// Storages bundles the persistence components built on one database.
type Storages struct {
	SessionManager SessionManager
	UserRepository UserRepository
}

// NewStorages wires the repositories of db. A nil db yields empty Storages,
// which services report as an unconfigured database.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	if db == nil {
		return &Storages{}
	}

	return &Storages{
		SessionManager: NewSessionManager(db),
		UserRepository: NewUserRepository(db, log),
	}
}
