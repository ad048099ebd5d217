// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shell-preferences/internal/preferences"
	"github.com/MKhiriev/shell-preferences/internal/service"
)

var errorStatusMap = map[error]int{
	preferences.ErrUnknownSection:     http.StatusNotFound,
	preferences.ErrUnknownOption:      http.StatusBadRequest,
	preferences.ErrInvalidPreferences: http.StatusInternalServerError,

	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
	service.ErrInvalidOverrideFile:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
