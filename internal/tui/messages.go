// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/shell-preferences/internal/preferences"

type preferencesLoadedMsg struct {
	prefs preferences.Preferences
	err   error
}

type copiedMsg struct {
	section string
	err     error
}

type clearStatusMsg struct{}
