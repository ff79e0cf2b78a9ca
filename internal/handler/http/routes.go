// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router and wraps it in the interceptor chain:
// request logger, security headers, CORS, then the router.
func (h *Handler) Init() (http.Handler, error) {
	router := chi.NewRouter()

	// HEAD is answered by the GET route of the same path
	router.Use(middleware.GetHead)

	// must precede Route so mounted subrouters inherit them
	router.NotFound(h.handle(notFound))
	router.MethodNotAllowed(h.handle(CheckHTTPMethod(router)))

	router.Get("/", h.handle(h.root))
	router.Get("/health", h.handle(h.health))

	if !h.cfg.App.IsProduction() {
		if err := h.registerDocs(router); err != nil {
			return nil, fmt.Errorf("error registering documentation routes: %w", err)
		}
	}

	prefix := strings.TrimRight(h.cfg.App.APIPrefix, "/")
	if prefix == "" {
		router.Group(h.registerAPI)
	} else {
		router.Route(prefix, h.registerAPI)
	}

	chain := NewChain(h.translator,
		NewRequestLogger(utils.NewUUIDGenerator(), h.logger),
		SecurityHeaders(),
		NewCORS(h.cfg.CORS.AllowedOrigins()),
	)

	return chain.Then(Dispatch(router, h.cfg.Server.RequestTimeout)), nil
}

func (h *Handler) registerAPI(r chi.Router) {
	// routes without authorization
	r.Group(func(r chi.Router) {
		r.Post("/auth/token", h.handle(h.issueToken))
		r.Post("/auth/register", h.handle(h.register))
	})

	// routes with authorization
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth/me", h.handle(h.me))
		r.Get("/users", h.handle(h.listUsers))
	})
}
