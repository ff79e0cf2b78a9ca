// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Messages of the classified errors raised by this package.
const (
	MsgAuthorizationHeaderRequired = "Authorization header required"
	MsgNotFound                    = "Not Found"
	MsgMethodNotAllowed            = "Method Not Allowed"
)
