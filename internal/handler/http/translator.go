// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// Envelope messages that never depend on the failure.
const (
	MsgInternalServerError = "Internal server error"
	MsgValidationError     = "Validation error"
)

// Translator converts a failure leaving the chain into exactly one
// response envelope.
//
// Matching order, most specific first:
//  1. *apperr.Error: its own status, message and details. Internal errors
//     keep their details but get the generic message.
//  2. *apperr.HTTPError: its status and reason with empty details.
//  3. *apperr.ValidationError: 422 with details.validation_errors.
//  4. anything else: 500 "Internal server error" with empty details. The
//     cause is only logged.
type Translator struct {
	logger *logger.Logger
}

func NewTranslator(logger *logger.Logger) *Translator {
	return &Translator{logger: logger}
}

// Translate replaces whatever w buffered with the envelope for err.
func (t *Translator) Translate(w http.ResponseWriter, r *http.Request, err error) {
	status, body := t.resolve(t.requestLogger(r), err)

	if rw, ok := w.(*responseWriter); ok {
		rw.reset()
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		t.requestLogger(r).Error().Err(writeErr).Msg("error response could not be encoded")
		_, _ = utils.WriteJSON(w, models.NewErrorResponse(MsgInternalServerError, nil), http.StatusInternalServerError)
	}
}

func (t *Translator) resolve(log *logger.Logger, err error) (int, models.ErrorResponse) {
	var (
		classified *apperr.Error
		httpErr    *apperr.HTTPError
		validation *apperr.ValidationError
	)

	switch {
	case errors.As(err, &classified):
		message := classified.Message()
		event := log.Error()
		if classified.Kind() == apperr.KindInternal {
			message = MsgInternalServerError
			event = event.Stack()
		}
		event.Err(err).
			Str("kind", classified.Kind().String()).
			Int("status", classified.StatusCode()).
			Interface("details", classified.Details()).
			Msg("application error")
		return classified.StatusCode(), models.NewErrorResponse(message, classified.Details())

	case errors.As(err, &httpErr):
		log.Warn().Int("status", httpErr.StatusCode()).Msg(httpErr.Reason())
		return httpErr.StatusCode(), models.NewErrorResponse(httpErr.Reason(), nil)

	case errors.As(err, &validation):
		log.Info().Err(err).Msg("request validation failed")
		return http.StatusUnprocessableEntity, models.NewErrorResponse(MsgValidationError, map[string]any{
			"validation_errors": validation.Errors(),
		})

	default:
		log.Error().Stack().Err(err).Msg("unhandled error")
		return http.StatusInternalServerError, models.NewErrorResponse(MsgInternalServerError, nil)
	}
}

// requestLogger returns the translator's logger tagged with the request's
// correlation id.
func (t *Translator) requestLogger(r *http.Request) *logger.Logger {
	rc, ok := RequestContextFrom(r.Context())
	if !ok || rc.ID == "" {
		return t.logger
	}

	return &logger.Logger{Logger: t.logger.With().Str("request_id", rc.ID).Logger()}
}
