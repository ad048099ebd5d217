// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/shell-preferences/internal/config"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/MKhiriev/shell-preferences/internal/preferences"
	"github.com/MKhiriev/shell-preferences/internal/utils"
	"github.com/go-resty/resty/v2"
)

const userAgent = "prefsctl"

type httpPreferencesAdapter struct {
	client *utils.HTTPClient

	// last resolved preferences and the ETag they were served with
	mu       sync.Mutex
	etag     string
	resolved preferences.Preferences

	logger *logger.Logger
}

// NewHTTPPreferencesAdapter constructs the HTTP implementation of
// [PreferencesAdapter]. The address may omit the scheme, in which case http
// is assumed.
func NewHTTPPreferencesAdapter(cfg config.ClientAdapter, logger *logger.Logger) (PreferencesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(userAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpPreferencesAdapter{client: client, logger: logger}, nil
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
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Preferences implements [PreferencesAdapter]. It sends the ETag of the last
// response as If-None-Match and reuses the cached copy on 304.
func (h *httpPreferencesAdapter) Preferences(ctx context.Context) (preferences.Preferences, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var resolved preferences.Preferences

	req := h.client.R().
		SetContext(ctx).
		SetResult(&resolved)
	if h.etag != "" {
		req.SetHeader("If-None-Match", h.etag)
	}

	resp, err := req.Get("/api/preferences")
	if err != nil {
		return preferences.Preferences{}, fmt.Errorf("preferences request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return preferences.Preferences{}, err
	}

	if resp.StatusCode() == http.StatusNotModified {
		h.logger.Debug().Str("etag", h.etag).Msg("preferences not modified, using cached copy")
		return preferences.Clone(h.resolved)
	}

	cached, err := preferences.Clone(resolved)
	if err != nil {
		return preferences.Preferences{}, fmt.Errorf("caching preferences: %w", err)
	}
	h.etag = resp.Header().Get("ETag")
	h.resolved = cached

	return resolved, nil
}

// Defaults implements [PreferencesAdapter].
func (h *httpPreferencesAdapter) Defaults(ctx context.Context) (preferences.Preferences, error) {
	var defaults preferences.Preferences
	if err := h.getJSON(ctx, "/api/preferences/defaults", &defaults); err != nil {
		return preferences.Preferences{}, fmt.Errorf("defaults request: %w", err)
	}
	return defaults, nil
}

// Overrides implements [PreferencesAdapter].
func (h *httpPreferencesAdapter) Overrides(ctx context.Context) (preferences.Preferences, error) {
	var overrides preferences.Preferences
	if err := h.getJSON(ctx, "/api/preferences/overrides", &overrides); err != nil {
		return preferences.Preferences{}, fmt.Errorf("overrides request: %w", err)
	}
	return overrides, nil
}

// Section implements [PreferencesAdapter]. An unknown section yields
// [ErrNotFound].
func (h *httpPreferencesAdapter) Section(ctx context.Context, name string) (map[string]any, error) {
	var section map[string]any
	if err := h.getJSON(ctx, "/api/preferences/sections/"+url.PathEscape(name), &section); err != nil {
		return nil, fmt.Errorf("section %q request: %w", name, err)
	}
	return section, nil
}

// Version implements [PreferencesAdapter].
func (h *httpPreferencesAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpPreferencesAdapter) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.request(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}

func (h *httpPreferencesAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}
