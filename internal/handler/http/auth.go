// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// issueToken exchanges credentials for an access token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) error {
	req, err := h.decodeTokenRequest(w, r)
	if err != nil {
		return err
	}

	token, err := h.services.AuthService.Authenticate(r.Context(), req)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Str("username", req.Username).Msg("token issued")

	_, err = utils.WriteJSON(w, token, http.StatusOK)
	return err
}

// register creates an account and answers 201 with the public user fields.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	req, err := h.decodeTokenRequest(w, r)
	if err != nil {
		return err
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusCreated)
	return err
}

// me returns the subject of the bearer token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		return apperr.Unauthorized(service.MsgCouldNotValidateCredentials)
	}

	_, err := utils.WriteJSON(w, models.CurrentUser{Username: subject}, http.StatusOK)
	return err
}

func (h *Handler) decodeTokenRequest(w http.ResponseWriter, r *http.Request) (models.TokenRequest, error) {
	var req models.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return models.TokenRequest{}, err
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		return models.TokenRequest{}, err
	}

	return req, nil
}
