// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// HandlerFunc is an HTTP handler that reports failures by returning them.
// A returned error is turned into a response envelope by the [Translator].
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Next invokes the remainder of a chain.
type Next func(w http.ResponseWriter, r *http.Request) error

// Interceptor is one link of a [Chain]. It may act before and after calling
// next, or skip next to short-circuit the request. An interceptor calls next
// at most once and must return the error next returned, if any.
type Interceptor interface {
	Intercept(w http.ResponseWriter, r *http.Request, next Next) error
}

// InterceptorFunc adapts a function to [Interceptor].
type InterceptorFunc func(w http.ResponseWriter, r *http.Request, next Next) error

func (f InterceptorFunc) Intercept(w http.ResponseWriter, r *http.Request, next Next) error {
	return f(w, r, next)
}

// Chain runs an ordered list of interceptors around a handler. The first
// interceptor is the outermost one: it is entered first and left last.
//
// A Chain holds no per-request state; every request gets its own
// [RequestContext] and buffered response writer.
type Chain struct {
	interceptors []Interceptor
	translator   *Translator
}

// NewChain builds a chain that translates failures with translator.
func NewChain(translator *Translator, interceptors ...Interceptor) *Chain {
	return &Chain{
		interceptors: interceptors,
		translator:   translator,
	}
}

// Then returns an [http.Handler] running h inside the chain. Errors leaving
// the outermost interceptor are written as envelopes and the buffered
// response is flushed exactly once.
func (c *Chain) Then(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := newRequestContext(r)
		r = r.WithContext(withRequestContext(r.Context(), rc))

		rw := newResponseWriter(w)
		if err := c.run(0, rw, r, h); err != nil {
			c.translator.Translate(rw, r, err)
		}

		rw.commit()
	})
}

// run enters link i. A panic inside the link is returned as an error to the
// link around it, so outer interceptors and the translator still see it.
func (c *Chain) run(i int, w http.ResponseWriter, r *http.Request, h HandlerFunc) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = panicError(p)
		}
	}()

	if i == len(c.interceptors) {
		return h(w, r)
	}

	return c.interceptors[i].Intercept(w, r, func(w http.ResponseWriter, r *http.Request) error {
		return c.run(i+1, w, r, h)
	})
}

// Dispatch turns a router into the innermost link of a chain. Handlers
// registered on the router report failures through [Handler.handle], which
// records them in the request context. Panics are recovered here and become
// unclassified failures carrying a stack trace.
//
// A positive timeout bounds the handler through its request context.
func Dispatch(router http.Handler, timeout time.Duration) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) (err error) {
		if timeout > 0 {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)
		}

		defer func() {
			if p := recover(); p != nil {
				err = panicError(p)
			}
		}()

		router.ServeHTTP(w, r)

		if rc, ok := RequestContextFrom(r.Context()); ok {
			return rc.Err()
		}
		return nil
	}
}

// panicError converts a recovered value into an unclassified failure with a
// stack trace. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func panicError(p any) error {
	if p == http.ErrAbortHandler {
		panic(p)
	}
	return errors.Errorf("panic recovered: %v", p)
}
