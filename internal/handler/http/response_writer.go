// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// responseWriter is a buffering decorator around [http.ResponseWriter].
//
// Status and body are held back until commit, so interceptors can still add
// headers after the handler returned and a failed response can replace
// whatever the handler wrote before failing. Headers go straight to the
// underlying header map.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	wroteHeader bool

	// body accumulates every Write.
	body bytes.Buffer

	committed bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

// WriteHeader records the status code. Only the first call counts.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

// Write buffers b. If WriteHeader has not been called before Write, the
// status defaults to [http.StatusOK].
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

// Status returns the recorded status, or 200 when nothing was written yet.
func (w *responseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Size returns the number of buffered body bytes.
func (w *responseWriter) Size() int {
	return w.body.Len()
}

// representationHeaders describe a body that reset discards.
var representationHeaders = []string{
	"Cache-Control",
	"Content-Disposition",
	"Content-Encoding",
	"Content-Length",
	"ETag",
	"Last-Modified",
}

// reset drops the buffered status and body together with the headers that
// describe that body. Other headers, such as Allow, WWW-Authenticate and
// CORS, are kept.
func (w *responseWriter) reset() {
	w.status = 0
	w.wroteHeader = false
	w.body.Reset()

	header := w.Header()
	for _, name := range representationHeaders {
		header.Del(name)
	}
}

// commit sends the status and body to the underlying writer. Later calls do
// nothing.
func (w *responseWriter) commit() {
	if w.committed {
		return
	}
	w.committed = true

	w.ResponseWriter.WriteHeader(w.Status())
	if w.body.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.body.Bytes())
	}
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
