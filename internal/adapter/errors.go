// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-api-scaffold/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	errEmptyAddress = errors.New("empty address")
	errNoHost       = errors.New("address must include host and scheme")
)

// ResponseError is a non-2xx answer from the API. Envelope is zero when the
// body was not an error envelope.
type ResponseError struct {
	StatusCode int
	Envelope   models.ErrorResponse

	sentinel error
}

func (e *ResponseError) Error() string {
	if e.Envelope.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Envelope.Message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

func (e *ResponseError) Unwrap() error {
	return e.sentinel
}
