// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/config"
)

// CORS response and request headers.
const (
	headerOrigin                        = "Origin"
	headerVary                          = "Vary"
	headerAccessControlAllowOrigin      = "Access-Control-Allow-Origin"
	headerAccessControlAllowMethods     = "Access-Control-Allow-Methods"
	headerAccessControlAllowHeaders     = "Access-Control-Allow-Headers"
	headerAccessControlAllowCredentials = "Access-Control-Allow-Credentials"
	headerAccessControlMaxAge           = "Access-Control-Max-Age"
	headerAccessControlRequestMethod    = "Access-Control-Request-Method"
	headerAccessControlRequestHeaders   = "Access-Control-Request-Headers"
)

const (
	corsAllowedMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"
	corsMaxAge         = 600

	msgDisallowedCORSOrigin = "Disallowed CORS origin"
)

// CORS answers preflight requests and stamps Access-Control-Allow-* headers
// for the configured origins. Every method and request header is allowed and
// credentials are permitted.
//
// With a wildcard, simple requests get "Access-Control-Allow-Origin: *"
// unless they carry cookies. Preflights and credentialed requests always get
// the requesting origin echoed back, since browsers refuse "*" together with
// credentials.
type CORS struct {
	origins config.Origins
}

func NewCORS(origins config.Origins) *CORS {
	return &CORS{origins: origins}
}

func (c *CORS) Intercept(w http.ResponseWriter, r *http.Request, next Next) error {
	origin := r.Header.Get(headerOrigin)
	if origin == "" {
		return next(w, r)
	}

	if r.Method == http.MethodOptions && r.Header.Get(headerAccessControlRequestMethod) != "" {
		return c.preflight(w, r, origin)
	}

	header := w.Header()
	switch {
	case c.origins.AllowsAny() && r.Header.Get("Cookie") == "":
		header.Set(headerAccessControlAllowOrigin, config.WildcardOrigin)
	case c.origins.Allows(origin):
		header.Set(headerAccessControlAllowOrigin, origin)
		header.Add(headerVary, headerOrigin)
	default:
		return next(w, r)
	}
	header.Set(headerAccessControlAllowCredentials, "true")

	return next(w, r)
}

// preflight short-circuits the chain. A disallowed origin fails with 400.
func (c *CORS) preflight(w http.ResponseWriter, r *http.Request, origin string) error {
	header := w.Header()
	header.Add(headerVary, headerOrigin)

	if !c.origins.Allows(origin) {
		return apperr.NewHTTPError(http.StatusBadRequest, msgDisallowedCORSOrigin)
	}

	header.Set(headerAccessControlAllowOrigin, origin)
	header.Set(headerAccessControlAllowMethods, corsAllowedMethods)
	header.Set(headerAccessControlAllowCredentials, "true")
	header.Set(headerAccessControlMaxAge, strconv.Itoa(corsMaxAge))
	if requested := strings.TrimSpace(r.Header.Get(headerAccessControlRequestHeaders)); requested != "" {
		header.Set(headerAccessControlAllowHeaders, requested)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
