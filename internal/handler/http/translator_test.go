// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-api-scaffold/internal/apperr"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translate(t *testing.T, log *logger.Logger, err error) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	NewTranslator(log).Translate(rr, httptest.NewRequest(http.MethodGet, "/", nil), err)
	return rr
}

var fieldErr = apperr.FieldError{Loc: []string{"body", "username"}, Msg: "Field required", Type: apperr.TypeMissing}

func TestTranslator_Precedence(t *testing.T) {
	classified := apperr.Forbidden("not yours")
	httpErr := apperr.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed")
	validation := apperr.NewValidationError(fieldErr)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"classified alone", classified, http.StatusForbidden, "not yours"},
		{"wrapped classified", fmt.Errorf("service: %w", classified), http.StatusForbidden, "not yours"},
		{"http alone", httpErr, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"validation alone", validation, http.StatusUnprocessableEntity, "Validation error"},
		{"classified beats http and validation", errors.Join(validation, httpErr, classified), http.StatusForbidden, "not yours"},
		{"http beats validation", errors.Join(validation, httpErr), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"validation beats catch-all", errors.Join(errors.New("raw"), validation), http.StatusUnprocessableEntity, "Validation error"},
		{"catch-all", errors.New("raw"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := translate(t, logger.Nop(), tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			envelope := decodeEnvelope(t, rr.Body.Bytes())
			assert.True(t, envelope.Error)
			assert.Equal(t, tt.wantMessage, envelope.Message)
			assert.NotNil(t, envelope.Details)
		})
	}
}

func TestTranslator_ClassifiedKeepsDetails(t *testing.T) {
	rr := translate(t, logger.Nop(), apperr.New("Conflict", http.StatusConflict, map[string]any{"field": "username"}))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":true,"message":"Conflict","details":{"field":"username"}}`, rr.Body.String())
}

func TestTranslator_InternalMessageIsSanitized(t *testing.T) {
	var buf bytes.Buffer
	rr := translate(t, bufferLogger(&buf), apperr.Internal("database is not configured"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":true,"message":"Internal server error","details":{}}`, rr.Body.String())
	assert.Contains(t, buf.String(), "database is not configured")
}

func TestTranslator_ValidationDetails(t *testing.T) {
	rr := translate(t, logger.Nop(), apperr.NewValidationError(fieldErr))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{
		"error": true,
		"message": "Validation error",
		"details": {"validation_errors": [{"loc": ["body", "username"], "msg": "Field required", "type": "missing"}]}
	}`, rr.Body.String())
}

func TestTranslator_UnclassifiedCauseIsOnlyLogged(t *testing.T) {
	var buf bytes.Buffer
	cause := pkgerrors.New("pq: password authentication failed for user admin")

	rr := translate(t, bufferLogger(&buf), cause)

	assert.Equal(t, `{"error":true,"message":"Internal server error","details":{}}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "password")
	assert.Contains(t, buf.String(), "password authentication failed")
	assert.Contains(t, buf.String(), `"stack"`)
}

func TestTranslator_ReplacesBufferedOutput(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)
	rw.Header().Set("Allow", "GET")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte(`{"half":`))

	NewTranslator(logger.Nop()).Translate(rw, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("late failure"))
	rw.commit()

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, `{"error":true,"message":"Internal server error","details":{}}`, rec.Body.String())
	assert.Equal(t, "GET", rec.Header().Get("Allow"))
}

func TestTranslator_FailedHandlerHeadersDoNotDescribeEnvelope(t *testing.T) {
	chain := NewChain(NewTranslator(logger.Nop()), SecurityHeaders())

	rr := serve(chain.Then(func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Content-Disposition", "attachment")
		_, _ = w.Write([]byte("col1,col2\n"))
		return errors.New("export failed")
	}), httptest.NewRequest(http.MethodGet, "/export", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("Cache-Control"))
	assert.Empty(t, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assertSecurityHeaders(t, rr.Header())
}

func TestTranslator_UnencodableDetailsFallBackToInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)
	err := apperr.New("odd", http.StatusTeapot, map[string]any{"ch": make(chan int)})

	NewTranslator(logger.Nop()).Translate(rw, httptest.NewRequest(http.MethodGet, "/", nil), err)
	rw.commit()

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, `{"error":true,"message":"Internal server error","details":{}}`, rec.Body.String())
}
