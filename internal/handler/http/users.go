// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// listUsers returns one page of users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	page, err := h.pageParams(r)
	if err != nil {
		return err
	}

	users, err := h.services.UserService.ListUsers(r.Context(), page)
	if err != nil {
		return err
	}
	if users == nil {
		users = []models.User{}
	}

	_, err = utils.WriteJSON(w, users, http.StatusOK)
	return err
}

// pageParams parses and validates the pagination query. Parse and range
// failures are reported in one validation error.
func (h *Handler) pageParams(r *http.Request) (models.PageParams, error) {
	page, fieldErrs := parsePageParams(r.URL.Query())

	if err := h.validator.Validate(r.Context(), page); err != nil {
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			return models.PageParams{}, err
		}
		fieldErrs = append(fieldErrs, ve.Errors()...)
	}

	if len(fieldErrs) > 0 {
		return models.PageParams{}, apperr.NewValidationError(fieldErrs...)
	}

	return page, nil
}
