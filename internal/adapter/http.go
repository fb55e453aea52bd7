// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/lumenplay/levelkeeper/internal/config"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/utils"
	"github.com/lumenplay/levelkeeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/auth/login")
	if err != nil {
		return user, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return user, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return user, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// FetchManifest implements [ServerAdapter]. It GETs the manifest from
// GET /api/content/manifest with a fresh cache-busting query value so no
// intermediate cache can serve a stale document. Requires a valid bearer
// token. Returns an error if the request, response mapping, or JSON decoding
// fails.
func (h *httpServerAdapter) FetchManifest(ctx context.Context) (models.Manifest, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("cb", uuid.NewString()).
		Get("/api/content/manifest")
	if err != nil {
		return models.Manifest{}, fmt.Errorf("fetch manifest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Manifest{}, err
	}

	var m models.Manifest
	if err = json.Unmarshal(resp.Body(), &m); err != nil {
		return models.Manifest{}, fmt.Errorf("decode manifest response: %w", err)
	}

	return m, nil
}

// FetchEntityMetas implements [ServerAdapter]. It GETs all entity descriptors
// from GET /api/content/entities. Requires a valid bearer token.
func (h *httpServerAdapter) FetchEntityMetas(ctx context.Context) ([]models.EntityMeta, error) {
	resp, err := h.authedRequest(ctx).Get("/api/content/entities")
	if err != nil {
		return nil, fmt.Errorf("fetch entity metas request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var metas []models.EntityMeta
	if err = json.Unmarshal(resp.Body(), &metas); err != nil {
		return nil, fmt.Errorf("decode entity metas response: %w", err)
	}

	return metas, nil
}

// FetchEntityContent implements [ServerAdapter]. It GETs one entity's payload
// from GET /api/content/entities/{id}. Returns [ErrNotFound] (wrapped) on
// HTTP 404. Requires a valid bearer token.
func (h *httpServerAdapter) FetchEntityContent(ctx context.Context, id models.EntityID) (models.EntityContent, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", string(id)).
		Get("/api/content/entities/{id}")
	if err != nil {
		return models.EntityContent{}, fmt.Errorf("fetch entity content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntityContent{}, err
	}

	var content models.EntityContent
	if err = json.Unmarshal(resp.Body(), &content); err != nil {
		return models.EntityContent{}, fmt.Errorf("decode entity content response: %w", err)
	}

	return content, nil
}

// FetchPlayerState implements [ServerAdapter]. It GETs the combined progress
// and subscription snapshot from GET /api/player/state. Requires a valid
// bearer token.
func (h *httpServerAdapter) FetchPlayerState(ctx context.Context) (models.PlayerState, error) {
	resp, err := h.authedRequest(ctx).Get("/api/player/state")
	if err != nil {
		return models.PlayerState{}, fmt.Errorf("fetch player state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlayerState{}, err
	}

	var state models.PlayerState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.PlayerState{}, fmt.Errorf("decode player state response: %w", err)
	}

	return state, nil
}

// ReplayMutation implements [ServerAdapter]. It POSTs one queued mutation to
// POST /api/player/mutations. A nil return means the server durably accepted
// the mutation. Requires a valid bearer token.
func (h *httpServerAdapter) ReplayMutation(ctx context.Context, payload models.MutationPayload) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/api/player/mutations")
	if err != nil {
		return fmt.Errorf("replay mutation request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
