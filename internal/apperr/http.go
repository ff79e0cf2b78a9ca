// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"fmt"
	"net/http"
)

// HTTPError is a framework-level failure raised by the router itself, for
// example when no route matches or the method is not registered.
type HTTPError struct {
	status int
	reason string
}

// NewHTTPError returns an HTTPError. An empty reason defaults to the standard
// status text.
func NewHTTPError(status int, reason string) *HTTPError {
	if reason == "" {
		reason = http.StatusText(status)
	}
	return &HTTPError{status: status, reason: reason}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.status, e.reason)
}

// StatusCode returns the HTTP status of the failure.
func (e *HTTPError) StatusCode() int {
	return e.status
}

// Reason returns the failure reason sent to the client.
func (e *HTTPError) Reason() string {
	return e.reason
}
