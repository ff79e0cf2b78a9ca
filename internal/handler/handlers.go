// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
)

// Handlers groups the transport handlers enabled by the configuration.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates a handler for every transport that has a listen
// address configured.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
