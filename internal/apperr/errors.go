// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"maps"
	"net/http"
)

// Default messages used when a constructor receives an empty message.
const (
	defaultNotFoundMessage     = "Resource not found"
	defaultUnauthorizedMessage = "Unauthorized"
	defaultForbiddenMessage    = "Forbidden"
	defaultInternalMessage     = "Internal server error"
	defaultValidationMessage   = "Validation error"
)

// Error is a classified application failure.
//
// Values are immutable: every accessor returns a copy of the internal state,
// and the status code is fixed by the constructor to match the kind.
type Error struct {
	kind    Kind
	message string
	status  int
	details map[string]any
}

// New returns a generic application error with an explicit status code.
// A status outside the 4xx/5xx range is replaced with 500.
func New(message string, status int, details map[string]any) *Error {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}
	return newError(KindGeneric, message, status, details)
}

// Validation returns a 422 error describing invalid input.
func Validation(message string, details map[string]any) *Error {
	if message == "" {
		message = defaultValidationMessage
	}
	return newError(KindValidation, message, KindValidation.Status(), details)
}

// NotFound returns a 404 error.
func NotFound(message string) *Error {
	if message == "" {
		message = defaultNotFoundMessage
	}
	return newError(KindNotFound, message, KindNotFound.Status(), nil)
}

// Unauthorized returns a 401 error.
func Unauthorized(message string) *Error {
	if message == "" {
		message = defaultUnauthorizedMessage
	}
	return newError(KindUnauthorized, message, KindUnauthorized.Status(), nil)
}

// Forbidden returns a 403 error.
func Forbidden(message string) *Error {
	if message == "" {
		message = defaultForbiddenMessage
	}
	return newError(KindForbidden, message, KindForbidden.Status(), nil)
}

// Internal returns a 500 error. The message is logged but replaced with a
// generic text before it reaches a client.
func Internal(message string) *Error {
	if message == "" {
		message = defaultInternalMessage
	}
	return newError(KindInternal, message, KindInternal.Status(), nil)
}

func newError(kind Kind, message string, status int, details map[string]any) *Error {
	d := make(map[string]any, len(details))
	maps.Copy(d, details)

	return &Error{
		kind:    kind,
		message: message,
		status:  status,
		details: d,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Kind returns the classification of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the human-readable message.
func (e *Error) Message() string {
	return e.message
}

// StatusCode returns the HTTP status bound to the error.
func (e *Error) StatusCode() int {
	return e.status
}

// Details returns a copy of the structured details. The result is never nil.
func (e *Error) Details() map[string]any {
	d := make(map[string]any, len(e.details))
	maps.Copy(d, e.details)
	return d
}

// Is reports whether target is a classified error of the same kind and
// status, so callers can match with errors.Is(err, apperr.NotFound("")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind && t.status == e.status
}
