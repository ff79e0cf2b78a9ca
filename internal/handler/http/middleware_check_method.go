// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/go-chi/chi/v5"
)

var routableMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed]. It fails with a 405 HTTP error and lists the
// methods the matched path does serve in the Allow header. A GET route also
// serves HEAD.
func CheckHTTPMethod(router chi.Routes) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		matches := func(method string) bool {
			return router.Match(chi.NewRouteContext(), method, r.URL.Path)
		}

		allowed := make([]string, 0, len(routableMethods))
		for _, method := range routableMethods {
			if matches(method) || (method == http.MethodHead && matches(http.MethodGet)) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		return apperr.NewHTTPError(http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	}
}

// notFound is registered with [chi.Mux.NotFound].
func notFound(w http.ResponseWriter, r *http.Request) error {
	return apperr.NewHTTPError(http.StatusNotFound, MsgNotFound)
}
