// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrValidation,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode(), sentinel: ErrUnexpectedStatus}
	if sentinel, ok := statusSentinels[resp.StatusCode()]; ok {
		respErr.sentinel = sentinel
	}

	// a body that is not an envelope leaves Envelope zero
	_ = json.Unmarshal(resp.Body(), &respErr.Envelope)

	return respErr
}
