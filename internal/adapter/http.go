// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client    *utils.HTTPClient
	apiPrefix string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient returns an [APIClient] for the API served at address.
// A missing scheme defaults to http. apiPrefix is the versioned API prefix,
// e.g. "/api/v1".
func NewHTTPAPIClient(address, apiPrefix string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid API address: %w", err)
	}

	client := utils.NewHTTPClientWithBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpAPIClient{
		client:    client,
		apiPrefix: strings.TrimRight(apiPrefix, "/"),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpAPIClient) IssueToken(ctx context.Context, req models.TokenRequest) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(req).
		SetResult(&token).
		Post(h.apiPrefix + "/auth/token")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", req.Username).Time("expires_at", token.ExpiresAt).Msg("token received")

	return token, nil
}

func (h *httpAPIClient) Register(ctx context.Context, req models.TokenRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(req).
		SetResult(&user).
		Post(h.apiPrefix + "/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.CurrentUser, error) {
	var me models.CurrentUser

	resp, err := h.authedRequest(ctx).
		SetResult(&me).
		Get(h.apiPrefix + "/auth/me")
	if err != nil {
		return models.CurrentUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CurrentUser{}, err
	}

	return me, nil
}

func (h *httpAPIClient) ListUsers(ctx context.Context, page models.PageParams) ([]models.User, error) {
	var users []models.User

	query := map[string]string{
		"skip":       strconv.Itoa(page.Skip),
		"limit":      strconv.Itoa(page.Limit),
		"order_desc": strconv.FormatBool(page.OrderDesc),
	}
	if page.OrderBy != "" {
		query["order_by"] = page.OrderBy
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParams(query).
		SetResult(&users).
		Get(h.apiPrefix + "/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
