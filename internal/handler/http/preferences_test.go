// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/shell-preferences/internal/config"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/MKhiriev/shell-preferences/internal/mock"
	"github.com/MKhiriev/shell-preferences/internal/preferences"
	"github.com/MKhiriev/shell-preferences/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPreferencesRouter(t *testing.T) (http.Handler, *mock.MockPreferencesService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferencesService(ctrl)

	h := NewHandler(&service.Services{PreferencesService: prefs}, config.Server{}, logger.Nop())
	return h.Init(), prefs
}

func TestGetPreferences_ReturnsResolvedWithETag(t *testing.T) {
	router, prefs := newPreferencesRouter(t)

	resolved, err := preferences.Resolve(preferences.Defaults(), preferences.Overrides("Demo Admin"))
	require.NoError(t, err)

	prefs.EXPECT().Fingerprint(gomock.Any()).Return("f00d")
	prefs.EXPECT().Resolved(gomock.Any()).Return(resolved, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/preferences", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `"f00d"`, rr.Header().Get("ETag"))
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Demo Admin", body["app"]["name"])
	assert.Equal(t, "backend", body["app"]["accessMode"])
}

func TestGetPreferences_NotModified(t *testing.T) {
	tests := []struct {
		name        string
		ifNoneMatch string
		wantStatus  int
	}{
		{name: "exact match", ifNoneMatch: `"f00d"`, wantStatus: http.StatusNotModified},
		{name: "weak match", ifNoneMatch: `W/"f00d"`, wantStatus: http.StatusNotModified},
		{name: "wildcard", ifNoneMatch: "*", wantStatus: http.StatusNotModified},
		{name: "one of several", ifNoneMatch: `"aaaa", "f00d"`, wantStatus: http.StatusNotModified},
		{name: "stale tag", ifNoneMatch: `"beef"`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, prefs := newPreferencesRouter(t)

			prefs.EXPECT().Fingerprint(gomock.Any()).Return("f00d")
			if tt.wantStatus == http.StatusOK {
				prefs.EXPECT().Resolved(gomock.Any()).Return(preferences.Defaults(), nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
			req.Header.Set("If-None-Match", tt.ifNoneMatch)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, `"f00d"`, rr.Header().Get("ETag"))
			if tt.wantStatus == http.StatusNotModified {
				assert.Empty(t, rr.Body.Bytes())
			}
		})
	}
}

func TestGetPreferences_ServiceError(t *testing.T) {
	router, prefs := newPreferencesRouter(t)

	prefs.EXPECT().Fingerprint(gomock.Any()).Return("f00d")
	prefs.EXPECT().Resolved(gomock.Any()).Return(preferences.Preferences{}, preferences.ErrInvalidPreferences)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/preferences", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetDefaults(t *testing.T) {
	router, prefs := newPreferencesRouter(t)

	prefs.EXPECT().Defaults(gomock.Any()).Return(preferences.Defaults(), nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/preferences/defaults", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, preferences.DefaultAppName, body["app"]["name"])
	assert.Equal(t, "dark", body["theme"]["mode"])
}

func TestGetOverrides(t *testing.T) {
	router, prefs := newPreferencesRouter(t)

	prefs.EXPECT().Overrides(gomock.Any()).Return(preferences.Overrides("Demo"), nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/preferences/overrides", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Demo", body["app"]["name"])
	assert.Equal(t, "light", body["theme"]["mode"])
}

func TestGetOverrides_ServiceError(t *testing.T) {
	router, prefs := newPreferencesRouter(t)

	prefs.EXPECT().Overrides(gomock.Any()).Return(preferences.Preferences{}, errors.New("boom"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/preferences/overrides", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetSection(t *testing.T) {
	tests := []struct {
		name       string
		section    string
		result     map[string]any
		err        error
		wantStatus int
	}{
		{
			name:       "known section",
			section:    "theme",
			result:     map[string]any{"mode": "light", "radius": "0.25"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown section",
			section:    "nope",
			err:        preferences.ErrUnknownSection,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unexpected error",
			section:    "app",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, prefs := newPreferencesRouter(t)

			prefs.EXPECT().Section(gomock.Any(), tt.section).Return(tt.result, tt.err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/preferences/sections/"+tt.section, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.result, body)
			}
		})
	}
}

func TestEtagMatches(t *testing.T) {
	tests := []struct {
		name        string
		ifNoneMatch string
		want        bool
	}{
		{name: "empty header", ifNoneMatch: "", want: false},
		{name: "exact", ifNoneMatch: `"x1"`, want: true},
		{name: "weak prefix", ifNoneMatch: `W/"x1"`, want: true},
		{name: "wildcard", ifNoneMatch: "*", want: true},
		{name: "list with spaces", ifNoneMatch: ` "a" , "x1" `, want: true},
		{name: "unquoted value", ifNoneMatch: "x1", want: false},
		{name: "different tag", ifNoneMatch: `"x2"`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, etagMatches(tt.ifNoneMatch, `"x1"`))
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown section", err: preferences.ErrUnknownSection, want: http.StatusNotFound},
		{name: "unknown option", err: preferences.ErrUnknownOption, want: http.StatusBadRequest},
		{name: "invalid preferences", err: preferences.ErrInvalidPreferences, want: http.StatusInternalServerError},
		{name: "wrapped unknown section", err: errors.Join(errors.New("ctx"), preferences.ErrUnknownSection), want: http.StatusNotFound},
		{name: "override file", err: service.ErrInvalidOverrideFile, want: http.StatusInternalServerError},
		{name: "unmapped", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
