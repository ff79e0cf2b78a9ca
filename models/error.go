// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	// Error is always true.
	Error bool `json:"error"`

	// Message is the human-readable summary.
	Message string `json:"message"`

	// Details carries structured context. Never null.
	Details map[string]any `json:"details"`
}

// NewErrorResponse builds an envelope, replacing nil details with an empty
// object.
func NewErrorResponse(message string, details map[string]any) ErrorResponse {
	if details == nil {
		details = map[string]any{}
	}

	return ErrorResponse{Error: true, Message: message, Details: details}
}
