// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/internal/validators"
	"github.com/pkg/errors"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	cfg       config.StructuredConfig

	translator *Translator
	logger     *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		validator:  validators.NewRequestValidator(),
		cfg:        cfg,
		translator: NewTranslator(logger),
		logger:     logger,
	}
}

// handle adapts fn to the router. A returned error is recorded in the
// request context for the chain to translate. Outside a chain the error is
// translated right away.
func (h *Handler) handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.fail(w, r, withStack(err))
		}
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// withStack records the call stack on errors that carry none, so the
// translator can log where an unclassified failure surfaced.
func withStack(err error) error {
	var st stackTracer
	if errors.As(err, &st) {
		return err
	}
	return errors.WithStack(err)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if rc, ok := RequestContextFrom(r.Context()); ok {
		rc.Fail(err)
		return
	}
	h.translator.Translate(w, r, err)
}
