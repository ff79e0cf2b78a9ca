// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"
)

type requestContextKey struct{}

// RequestContext is the per-request record shared by the links of a chain.
// It is owned by one request and never escapes it.
type RequestContext struct {
	// ID is the correlation id assigned by the request logger.
	ID string

	Start      time.Time
	Method     string
	URL        string
	ClientAddr string

	err error
}

func newRequestContext(r *http.Request) *RequestContext {
	return &RequestContext{
		Start:      time.Now(),
		Method:     r.Method,
		URL:        r.URL.String(),
		ClientAddr: r.RemoteAddr,
	}
}

func withRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFrom returns the request context attached by a [Chain].
func RequestContextFrom(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc, ok
}

// Fail records the failure of a handler. The first recorded failure wins.
func (rc *RequestContext) Fail(err error) {
	if rc.err == nil {
		rc.err = err
	}
}

// Err returns the recorded failure.
func (rc *RequestContext) Err() error {
	return rc.err
}
