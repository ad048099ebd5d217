// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/shell-preferences/internal/preferences"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PreferencesService serves the shell preferences. The resolved record is
// computed once at construction; every getter returns a copy that callers may
// modify freely.
type PreferencesService interface {
	// Resolved returns the defaults with all override layers applied.
	Resolved(ctx context.Context) (preferences.Preferences, error)
	// Defaults returns the complete default preferences.
	Defaults(ctx context.Context) (preferences.Preferences, error)
	// Overrides returns the merged override layers; options no layer sets
	// are nil.
	Overrides(ctx context.Context) (preferences.Preferences, error)
	// Section returns the options of one resolved section by its key
	// (e.g. "theme"), or an error wrapping preferences.ErrUnknownSection.
	Section(ctx context.Context, name string) (map[string]any, error)
	// Fingerprint returns the digest of the resolved preferences.
	Fingerprint(ctx context.Context) string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
