// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

var securityHeaders = [...][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
}

// SecurityHeaders stamps the fixed security headers after the rest of the
// chain ran, whether it failed or not.
func SecurityHeaders() Interceptor {
	return InterceptorFunc(func(w http.ResponseWriter, r *http.Request, next Next) error {
		err := next(w, r)

		for _, h := range securityHeaders {
			w.Header().Set(h[0], h[1])
		}

		return err
	})
}
