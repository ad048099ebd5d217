// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders preferences for the terminal: lipgloss tables for
// one-shot output and a read-only bubbletea browser over the sections.
package tui

import (
	"context"

	"github.com/MKhiriev/shell-preferences/internal/adapter"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter adapter.PreferencesAdapter
	logger  *logger.Logger
}

func New(a adapter.PreferencesAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: a, logger: logger}
}

// Browse runs the section browser until the user quits or ctx is done.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowserModel(ctx, t.adapter, clipboard.WriteAll)

	t.logger.Info().Msg("starting preferences browser")
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Browse").Msg("browser stopped with error")
		return err
	}

	return nil
}
