// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
)

// Response headers stamped by [RequestLogger].
const (
	HeaderRequestID   = "X-Request-ID"
	HeaderProcessTime = "X-Process-Time"
)

// IDGenerator produces correlation ids.
type IDGenerator interface {
	Generate() string
}

// RequestLogger assigns every request a fresh correlation id, attaches a
// child logger carrying it to the request context and logs the start and
// the outcome of the request.
//
// Incoming X-Request-ID headers are ignored: a client cannot choose the id.
type RequestLogger struct {
	ids    IDGenerator
	logger *logger.Logger
}

func NewRequestLogger(ids IDGenerator, logger *logger.Logger) *RequestLogger {
	return &RequestLogger{
		ids:    ids,
		logger: logger,
	}
}

func (l *RequestLogger) Intercept(w http.ResponseWriter, r *http.Request, next Next) error {
	start := time.Now()
	requestID := l.ids.Generate()

	method, url, clientAddr := r.Method, r.URL.String(), r.RemoteAddr
	if rc, ok := RequestContextFrom(r.Context()); ok {
		rc.ID = requestID
		start = rc.Start
		method, url, clientAddr = rc.Method, rc.URL, rc.ClientAddr
	}

	child := l.logger.With().Str("request_id", requestID).Logger()
	r = r.WithContext(child.WithContext(r.Context()))

	child.Info().
		Str("method", method).
		Str("url", url).
		Str("client", clientAddr).
		Msg("request started")

	err := next(w, r)

	elapsed := time.Since(start)
	w.Header().Set(HeaderRequestID, requestID)
	w.Header().Set(HeaderProcessTime, strconv.FormatFloat(elapsed.Seconds(), 'f', 6, 64))

	if err != nil {
		child.Error().
			Err(err).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return err
	}

	status := http.StatusOK
	if sw, ok := w.(interface{ Status() int }); ok {
		status = sw.Status()
	}
	child.Info().
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("request completed")

	return nil
}
