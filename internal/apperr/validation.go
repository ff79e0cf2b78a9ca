// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"slices"
	"strings"
)

// Field error types.
const (
	TypeMissing     = "missing"
	TypeJSONInvalid = "json_invalid"
	TypeTypeError   = "type_error"
	TypeExtra       = "extra_forbidden"
	TypeValue       = "value_error"
)

// FieldError describes a single invalid input field. Loc is the path to the
// field, starting with its source ("body", "query", "header").
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// String renders the error as "loc.path: msg".
func (f FieldError) String() string {
	return strings.Join(f.Loc, ".") + ": " + f.Msg
}

// ValidationError reports invalid request input.
type ValidationError struct {
	errs []FieldError
}

// NewValidationError returns a ValidationError holding errs.
func NewValidationError(errs ...FieldError) *ValidationError {
	return &ValidationError{errs: slices.Clone(errs)}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.errs))
	for _, fe := range e.errs {
		parts = append(parts, fe.String())
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Errors returns a copy of the field errors.
func (e *ValidationError) Errors() []FieldError {
	return slices.Clone(e.errs)
}
