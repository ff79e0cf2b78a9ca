// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// Paths of the interactive documentation pages.
const (
	DocsPathSwagger = "/docs"
	DocsPathRedoc   = "/redoc"
	DocsPathScalar  = "/scalar"
	DocsPathRapidoc = "/rapidoc"
	OpenAPIPath     = "/openapi.json"
)

// MsgAPIRunning is the greeting of the root probe.
const MsgAPIRunning = "API is running!"

type appInfoService struct {
	appVersion string
	apiPrefix  string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		apiPrefix:  cfg.APIPrefix,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Root(ctx context.Context) models.RootResponse {
	return models.RootResponse{
		Message: MsgAPIRunning,
		Version: s.appVersion,
		Documentation: models.DocumentationLinks{
			Swagger: DocsPathSwagger,
			Redoc:   DocsPathRedoc,
			Scalar:  DocsPathScalar,
			Rapidoc: DocsPathRapidoc,
		},
		API: s.apiPrefix,
	}
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:  models.HealthStatusHealthy,
		Version: s.appVersion,
	}
}
