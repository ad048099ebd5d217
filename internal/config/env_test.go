// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.4.0",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_RATE_LIMIT_RPS":   "12.5",
		"SERVER_RATE_LIMIT_BURST": "40",

		"VITE_APP_TITLE":            "Ops Console",
		"PREFERENCES_OVERRIDE_FILE": "/etc/shell/prefs.yaml",

		"ADAPTER_ADDRESS":         "http://prefs.internal:8080",
		"ADAPTER_REQUEST_TIMEOUT": "3s",
		"ADAPTER_LOG_FILE":        "/tmp/prefsctl.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.4.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, Value(cfg.Server.RequestTimeout))
	assert.InDelta(t, 12.5, Value(cfg.Server.RateLimitRPS), 1e-9)
	assert.Equal(t, 40, cfg.Server.RateLimitBurst)

	assert.Equal(t, "Ops Console", cfg.Preferences.AppTitle)
	assert.Equal(t, "/etc/shell/prefs.yaml", cfg.Preferences.OverrideFile)

	assert.Equal(t, "http://prefs.internal:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/prefsctl.log", cfg.Adapter.LogFile)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"VITE_APP_TITLE": "Console",
		"SERVER_ADDRESS": "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "Console", cfg.Preferences.AppTitle)
	assert.Empty(t, cfg.Preferences.OverrideFile)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Nil(t, cfg.Server.RequestTimeout)
	assert.Zero(t, cfg.Server.RateLimitBurst)

	// Others untouched
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBurst(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_RATE_LIMIT_BURST": "lots",
	})

	err := parseEnv(&StructuredConfig{}, nil)
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg, nil)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Value(cfg.Server.RequestTimeout))
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_RATE_LIMIT_RPS",
		"SERVER_RATE_LIMIT_BURST",

		"VITE_APP_TITLE",
		"PREFERENCES_OVERRIDE_FILE",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_LOG_FILE",
	}
	for _, k := range keys {
		// t.Setenv registers the restore of the previous value.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseEnv_ExplicitEnvironment(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{
		"SERVER_ADDRESS":   ":9090",
		"ADAPTER_LOG_FILE": "/var/log/prefsctl.log",
	})

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "/var/log/prefsctl.log", cfg.Adapter.LogFile)
	assert.Empty(t, cfg.Preferences.AppTitle)
}

func TestParseEnv_ReportsEveryInvalidVariable(t *testing.T) {
	err := parseEnv(&StructuredConfig{}, map[string]string{
		"SERVER_REQUEST_TIMEOUT":  "soon",
		"SERVER_RATE_LIMIT_BURST": "lots",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 invalid")
	assert.Contains(t, err.Error(), "RequestTimeout")
	assert.Contains(t, err.Error(), "RateLimitBurst")
}
