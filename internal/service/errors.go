// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidOverrideFile is returned by NewPreferencesService when the
	// configured override file cannot be read or decoded.
	ErrInvalidOverrideFile = errors.New("invalid override file")
)
