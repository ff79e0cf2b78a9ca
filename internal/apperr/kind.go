// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import "net/http"

// Kind classifies an application failure.
type Kind int

const (
	// KindGeneric is an application failure with an explicitly chosen status.
	KindGeneric Kind = iota
	// KindValidation means the caller must fix its input.
	KindValidation
	// KindNotFound means the requested resource does not exist.
	KindNotFound
	// KindUnauthorized means the caller must (re-)authenticate.
	KindUnauthorized
	// KindForbidden means the caller is authenticated but not allowed.
	KindForbidden
	// KindInternal is a server-side failure; its message is not exposed.
	KindInternal
)

var kindNames = map[Kind]string{
	KindGeneric:      "generic",
	KindValidation:   "validation",
	KindNotFound:     "not_found",
	KindUnauthorized: "unauthorized",
	KindForbidden:    "forbidden",
	KindInternal:     "internal",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Status returns the HTTP status code bound to the kind. KindGeneric has no
// fixed status and reports 500; generic errors carry their own status.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
