// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
)

// mapStoreError translates a storage error into a classified error.
// Classified errors pass through unchanged. Unknown errors are returned as
// they are and end up as unclassified failures.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var classified *apperr.Error
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return apperr.New(MsgUsernameTaken, http.StatusConflict, nil)
	case errors.Is(err, store.ErrUnknownOrderColumn):
		return apperr.Validation(MsgUnknownOrderColumn, map[string]any{"field": "order_by"})
	case errors.Is(err, store.ErrTransient):
		return apperr.New(MsgServiceUnavailable, http.StatusServiceUnavailable, map[string]any{"retryable": true})
	}

	return err
}
