// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr defines the closed set of failure conditions that may cross
// the HTTP transport boundary.
//
// Three families exist:
//   - [Error] is a classified application failure with a [Kind], a message,
//     an HTTP status consistent with the kind, and structured details.
//   - [HTTPError] is a framework-level failure such as an unknown route or an
//     unsupported method.
//   - [ValidationError] reports malformed or incomplete request input as a
//     list of [FieldError] values.
//
// Anything else reaching the transport boundary is treated as an
// unclassified failure and is never exposed to clients.
package apperr
