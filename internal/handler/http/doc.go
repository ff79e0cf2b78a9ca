// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// Every request passes through a [Chain] of interceptors (request logger,
// security headers, CORS) before reaching the chi router. Handlers return
// errors instead of writing failures themselves; the [Translator] turns the
// error that leaves the chain into a single JSON envelope of the form
//
//	{"error": true, "message": "...", "details": {...}}
package http
