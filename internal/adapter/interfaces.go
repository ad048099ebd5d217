// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the preferences server on behalf of the prefsctl
// client.
//
// [PreferencesAdapter] hides the transport from callers. The HTTP
// implementation ([NewHTTPPreferencesAdapter]) maps non-2xx statuses to the
// sentinel errors of this package, so callers can use [errors.Is] (for
// example [ErrNotFound] for an unknown section).
package adapter

import (
	"context"

	"github.com/MKhiriev/shell-preferences/internal/preferences"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PreferencesAdapter reads preferences from a running preferences server.
type PreferencesAdapter interface {
	// Preferences returns the resolved preferences. Implementations may
	// revalidate a cached copy instead of downloading it again.
	Preferences(ctx context.Context) (preferences.Preferences, error)

	// Defaults returns the built-in default preferences.
	Defaults(ctx context.Context) (preferences.Preferences, error)

	// Overrides returns the project override layer.
	Overrides(ctx context.Context) (preferences.Preferences, error)

	// Section returns one resolved section keyed by option name.
	Section(ctx context.Context, name string) (map[string]any, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
