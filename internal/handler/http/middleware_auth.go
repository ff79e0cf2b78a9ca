// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It reads the "Authorization" header, extracts the bearer token, resolves
// its subject via [service.TokenService.ExtractSubject] and stores it in the
// request context under [utils.SubjectCtxKey] before delegating to the next
// handler.
//
// Every rejection is an Unauthorized classified error:
//   - the header is absent: "Authorization header required";
//   - the header is not "Bearer <token>", or the token fails verification:
//     "Could not validate credentials".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Msg("request without authorization header")
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.fail(w, r, apperr.Unauthorized(MsgAuthorizationHeaderRequired))
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.fail(w, r, apperr.Unauthorized(service.MsgCouldNotValidateCredentials))
			return
		}

		subject, err := h.services.TokenService.ExtractSubject(token)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSubject(r.Context(), subject)))
	})
}
