// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldSkip     = "skip"
	FieldLimit    = "limit"
)

// Locations of validated values, used as the first element of a field
// error's loc.
const (
	LocBody  = "body"
	LocQuery = "query"
)

const msgFieldRequired = "Field required"

// RequestValidator checks decoded request inputs.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var errs []apperr.FieldError
	var err error

	switch value := obj.(type) {
	case models.TokenRequest:
		errs, err = v.validateTokenRequest(value, fields...)
	case *models.TokenRequest:
		errs, err = v.validateTokenRequest(*value, fields...)

	case models.PageParams:
		errs, err = v.validatePageParams(value, fields...)
	case *models.PageParams:
		errs, err = v.validatePageParams(*value, fields...)

	default:
		return ErrUnsupportedType
	}

	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return apperr.NewValidationError(errs...)
	}
	return nil
}

func (v *RequestValidator) validateTokenRequest(req models.TokenRequest, fields ...string) ([]apperr.FieldError, error) {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	var errs []apperr.FieldError
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				errs = append(errs, missing(LocBody, FieldUsername))
			}
		case FieldPassword:
			if req.Password == "" {
				errs = append(errs, missing(LocBody, FieldPassword))
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs, nil
}

func (v *RequestValidator) validatePageParams(page models.PageParams, fields ...string) ([]apperr.FieldError, error) {
	if len(fields) == 0 {
		fields = []string{FieldSkip, FieldLimit}
	}

	var errs []apperr.FieldError
	for _, f := range fields {
		switch f {
		case FieldSkip:
			if page.Skip < 0 {
				errs = append(errs, apperr.FieldError{
					Loc:  []string{LocQuery, FieldSkip},
					Msg:  "Input should be greater than or equal to 0",
					Type: apperr.TypeValue,
				})
			}
		case FieldLimit:
			if page.Limit < 1 || page.Limit > models.MaxPageLimit {
				errs = append(errs, apperr.FieldError{
					Loc:  []string{LocQuery, FieldLimit},
					Msg:  fmt.Sprintf("Input should be between 1 and %d", models.MaxPageLimit),
					Type: apperr.TypeValue,
				})
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs, nil
}

func missing(loc, field string) apperr.FieldError {
	return apperr.FieldError{
		Loc:  []string{loc, field},
		Msg:  msgFieldRequired,
		Type: apperr.TypeMissing,
	}
}
