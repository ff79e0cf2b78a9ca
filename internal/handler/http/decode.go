// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/validators"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON decodes a single JSON object from the request body into dst.
// Every decoding problem becomes an *apperr.ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return apperr.NewValidationError(apperr.FieldError{
			Loc:  []string{validators.LocBody},
			Msg:  "JSON decode error: trailing data after the object",
			Type: apperr.TypeJSONInvalid,
		})
	}

	return nil
}

func decodeError(err error) error {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return apperr.NewValidationError(apperr.FieldError{
			Loc:  []string{validators.LocBody},
			Msg:  "Field required",
			Type: apperr.TypeMissing,
		})

	case errors.As(err, &syntaxErr):
		return apperr.NewValidationError(apperr.FieldError{
			Loc:  []string{validators.LocBody, strconv.FormatInt(syntaxErr.Offset, 10)},
			Msg:  "JSON decode error: " + syntaxErr.Error(),
			Type: apperr.TypeJSONInvalid,
		})

	case errors.Is(err, io.ErrUnexpectedEOF):
		return apperr.NewValidationError(apperr.FieldError{
			Loc:  []string{validators.LocBody},
			Msg:  "JSON decode error: unexpected end of input",
			Type: apperr.TypeJSONInvalid,
		})

	case errors.As(err, &typeErr):
		loc := []string{validators.LocBody}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return apperr.NewValidationError(apperr.FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s", typeErr.Type.Kind()),
			Type: apperr.TypeTypeError,
		})

	case errors.As(err, &maxBytesErr):
		return apperr.NewHTTPError(http.StatusRequestEntityTooLarge, "")

	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperr.NewValidationError(apperr.FieldError{
			Loc:  []string{validators.LocBody, field},
			Msg:  "Extra inputs are not permitted",
			Type: apperr.TypeExtra,
		})

	default:
		return apperr.NewValidationError(apperr.FieldError{
			Loc:  []string{validators.LocBody},
			Msg:  "JSON decode error: " + err.Error(),
			Type: apperr.TypeJSONInvalid,
		})
	}
}

// parsePageParams reads skip, limit, order_by and order_desc from query.
// Missing values keep their defaults and limit is capped at
// models.MaxPageLimit. Unparsable values are returned as field errors and
// leave the default in place.
func parsePageParams(query url.Values) (models.PageParams, []apperr.FieldError) {
	page := models.DefaultPageParams()
	var errs []apperr.FieldError

	parseInt := func(name string, dst *int) {
		raw := query.Get(name)
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, apperr.FieldError{
				Loc:  []string{validators.LocQuery, name},
				Msg:  "Input should be a valid integer",
				Type: apperr.TypeTypeError,
			})
			return
		}
		*dst = n
	}

	parseInt(validators.FieldSkip, &page.Skip)
	parseInt(validators.FieldLimit, &page.Limit)
	page.Limit = min(page.Limit, models.MaxPageLimit)

	page.OrderBy = strings.TrimSpace(query.Get("order_by"))

	if raw := query.Get("order_desc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, apperr.FieldError{
				Loc:  []string{validators.LocQuery, "order_desc"},
				Msg:  "Input should be a valid boolean",
				Type: apperr.TypeTypeError,
			})
		}
		page.OrderDesc = desc
	}

	return page, errs
}
