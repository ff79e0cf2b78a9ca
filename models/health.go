// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatusHealthy is the only status reported by the health probe.
const HealthStatusHealthy = "healthy"

// DocumentationLinks lists the paths of the interactive API documentation
// pages.
type DocumentationLinks struct {
	Swagger string `json:"swagger"`
	Redoc   string `json:"redoc"`
	Scalar  string `json:"scalar"`
	Rapidoc string `json:"rapidoc"`
}

// RootResponse is returned by the root probe.
type RootResponse struct {
	// Message greets the caller with the project name.
	Message string `json:"message"`

	// Version is the configured application version.
	Version string `json:"version"`

	// Documentation links to the interactive API docs.
	Documentation DocumentationLinks `json:"documentation"`

	// API is the path prefix of the versioned API.
	API string `json:"api"`
}

// HealthResponse is returned by the health probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
