// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/shell-preferences/internal/config"
	"github.com/MKhiriev/shell-preferences/internal/logger"
)

type Services struct {
	PreferencesService PreferencesService
	AppInfoService     AppInfoService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	preferencesService, err := NewPreferencesService(cfg.Preferences, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating preferences service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		PreferencesService: preferencesService,
		AppInfoService:     appInfoService,
	}, nil
}
