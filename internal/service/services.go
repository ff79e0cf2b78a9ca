// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		TokenService:   tokens,
		AuthService:    NewAuthService(storages, tokens, logger),
		UserService:    NewUserService(storages, logger),
		AppInfoService: appInfo,
	}, nil
}
