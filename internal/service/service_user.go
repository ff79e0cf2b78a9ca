// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
	"github.com/MKhiriev/go-api-scaffold/models"
)

type userService struct {
	sessions       store.SessionManager
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(storages *store.Storages, logger *logger.Logger) UserService {
	return &userService{
		sessions:       storages.SessionManager,
		userRepository: storages.UserRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, page models.PageParams) ([]models.User, error) {
	if s.sessions == nil {
		return nil, errDatabaseNotConfigured()
	}

	var users []models.User
	err := s.sessions.WithSession(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.userRepository.ListUsers(ctx, page)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return users, nil
}
