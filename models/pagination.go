// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Pagination limits.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// PageParams are the common list query parameters.
type PageParams struct {
	// Skip is the number of records to skip. Never negative.
	Skip int `json:"skip"`

	// Limit is the maximum number of records to return,
	// between 1 and MaxPageLimit.
	Limit int `json:"limit"`

	// OrderBy names the sort column. Empty means storage order.
	OrderBy string `json:"order_by,omitempty"`

	// OrderDesc reverses the sort order.
	OrderDesc bool `json:"order_desc"`
}

// DefaultPageParams returns the parameters used when the query is empty.
func DefaultPageParams() PageParams {
	return PageParams{Limit: DefaultPageLimit}
}
