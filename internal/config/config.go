// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// preferences service. It aggregates all sub-configurations and is populated
// by merging built-in defaults, environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the build version.
	App App `envPrefix:"APP_"`

	// Server holds the listen address, timeout and rate limit settings of the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Preferences holds the inputs of the preferences resolution: the shell
	// title and an optional additional override layer.
	Preferences Preferences

	// Adapter holds the settings of the prefsctl HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON (or JSONC) configuration
	// file. When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string of the running service (e.g. "1.2.3").
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, timeout and throttling settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m"). Zero disables
	// the deadline. Nil means not set by this layer.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout *time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRPS is the sustained number of requests per second the server
	// accepts. Zero disables rate limiting. Nil means not set by this layer.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS *float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the token bucket size.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Preferences holds the build-time inputs of the preferences resolution.
type Preferences struct {
	// AppTitle is assigned to app.name of the override record as-is.
	// Env: VITE_APP_TITLE
	AppTitle string `env:"VITE_APP_TITLE"`

	// OverrideFile is an optional JSON, JSONC or YAML document layered on top
	// of the override record.
	// Env: PREFERENCES_OVERRIDE_FILE
	OverrideFile string `env:"PREFERENCES_OVERRIDE_FILE"`
}

// Adapter holds the settings of the outbound HTTP client used by prefsctl.
type Adapter struct {
	// HTTPAddress is the preferences service address, either "host:port" or
	// a full base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogFile is the path of the rotated prefsctl log file.
	// Env: ADAPTER_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Server: Server{
			RequestTimeout: Ptr(5 * time.Second),
			RateLimitRPS:   Ptr(50.0),
			RateLimitBurst: 100,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
			LogFile:        "prefsctl.log",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withConfig(defaultConfig()).
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p, returning the zero value of T when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
