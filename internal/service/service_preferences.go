// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shell-preferences/internal/config"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/MKhiriev/shell-preferences/internal/preferences"
)

type preferencesService struct {
	defaults    preferences.Preferences
	overrides   preferences.Preferences
	resolved    preferences.Preferences
	fingerprint string

	logger *logger.Logger
}

// NewPreferencesService builds the override record from cfg.AppTitle, layers
// cfg.OverrideFile on top of it when set, and resolves the result against the
// defaults. Invalid override data fails construction.
func NewPreferencesService(cfg config.Preferences, logger *logger.Logger) (PreferencesService, error) {
	layers := []preferences.Preferences{preferences.Overrides(cfg.AppTitle)}

	if cfg.OverrideFile != "" {
		fileLayer, err := preferences.ReadFile(cfg.OverrideFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOverrideFile, err)
		}
		logger.Debug().
			Str("file", cfg.OverrideFile).
			Int("options", len(preferences.Flatten(fileLayer))).
			Msg("override file loaded")
		layers = append(layers, fileLayer)
	}

	overrides, err := preferences.Merge(layers...)
	if err != nil {
		return nil, fmt.Errorf("error merging override layers: %w", err)
	}

	defaults := preferences.Defaults()
	resolved, err := preferences.Resolve(defaults, overrides)
	if err != nil {
		return nil, fmt.Errorf("error resolving preferences: %w", err)
	}

	fingerprint, err := preferences.Fingerprint(resolved)
	if err != nil {
		return nil, fmt.Errorf("error fingerprinting preferences: %w", err)
	}

	logger.Info().
		Str("fingerprint", fingerprint).
		Int("overridden_options", len(preferences.Flatten(overrides))).
		Msg("preferences resolved")

	return &preferencesService{
		defaults:    defaults,
		overrides:   overrides,
		resolved:    resolved,
		fingerprint: fingerprint,
		logger:      logger,
	}, nil
}

func (s *preferencesService) Resolved(ctx context.Context) (preferences.Preferences, error) {
	return preferences.Clone(s.resolved)
}

func (s *preferencesService) Defaults(ctx context.Context) (preferences.Preferences, error) {
	return preferences.Clone(s.defaults)
}

func (s *preferencesService) Overrides(ctx context.Context) (preferences.Preferences, error) {
	return preferences.Clone(s.overrides)
}

func (s *preferencesService) Section(ctx context.Context, name string) (map[string]any, error) {
	return preferences.Section(s.resolved, name)
}

func (s *preferencesService) Fingerprint(ctx context.Context) string {
	return s.fingerprint
}
