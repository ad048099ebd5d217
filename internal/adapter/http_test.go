// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/shell-preferences/internal/config"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/MKhiriev/shell-preferences/internal/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpPreferencesAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpPreferencesAdapter {
	t.Helper()

	a, err := NewHTTPPreferencesAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPreferencesAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://prefs.example.com", want: "https://prefs.example.com"},
		{name: "trailing slash", raw: "http://127.0.0.1:8080/", want: "http://127.0.0.1:8080"},
		{name: "surrounding spaces", raw: "  localhost:9000  ", want: "http://localhost:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPPreferencesAdapter_EmptyAddress(t *testing.T) {
	a, err := NewHTTPPreferencesAdapter(config.ClientAdapter{}, logger.Nop())

	require.ErrorIs(t, err, errEmptyAddress)
	assert.Nil(t, a)
}

// ── Preferences ─────────────────────────────────────────────────────────────

func TestPreferences_Success(t *testing.T) {
	resolved, err := preferences.Resolve(preferences.Defaults(), preferences.Overrides("Demo"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/preferences", r.URL.Path)
		assert.Empty(t, r.Header.Get("If-None-Match"))

		w.Header().Set("ETag", `"v1"`)
		writeJSON(t, w, resolved)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Preferences(context.Background())

	require.NoError(t, err)
	assert.Equal(t, resolved, got)
	assert.Equal(t, `"v1"`, a.etag)
}

func TestPreferences_RevalidatesWithETag(t *testing.T) {
	resolved, err := preferences.Resolve(preferences.Defaults())
	require.NoError(t, err)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("ETag", `"v1"`)
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		writeJSON(t, w, resolved)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	first, err := a.Preferences(context.Background())
	require.NoError(t, err)

	second, err := a.Preferences(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, preferences.DefaultAppName, *second.App.Name)
}

func TestPreferences_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error getting preferences", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Preferences(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "error getting preferences")
}

func TestPreferences_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Preferences(context.Background())

	require.Error(t, err)
}

// ── Defaults / Overrides ────────────────────────────────────────────────────

func TestDefaults_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/preferences/defaults", r.URL.Path)
		writeJSON(t, w, preferences.Defaults())
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Defaults(context.Background())

	require.NoError(t, err)
	assert.Equal(t, preferences.Defaults(), got)
}

func TestOverrides_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/preferences/overrides", r.URL.Path)
		writeJSON(t, w, preferences.Overrides("Acme"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Overrides(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got.App.Name)
	assert.Equal(t, "Acme", *got.App.Name)
	assert.Nil(t, got.Footer.Enable)
}

func TestOverrides_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Overrides(context.Background())

	assert.ErrorIs(t, err, ErrTooManyRequests)
}

// ── Section ─────────────────────────────────────────────────────────────────

func TestSection_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/preferences/sections/theme", r.URL.Path)
		writeJSON(t, w, map[string]any{"mode": "light", "radius": "0.25"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Section(context.Background(), "theme")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"mode": "light", "radius": "0.25"}, got)
}

func TestSection_Unknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error getting preferences section", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Section(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"nope"`)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.2\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.2", got)
}

func TestVersion_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestVersion_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
