// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/shell-preferences/internal/adapter"
	"github.com/MKhiriev/shell-preferences/internal/preferences"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// browserModel lists the sections of the resolved preferences and shows the
// options of the selected one.
type browserModel struct {
	ctx     context.Context
	adapter adapter.PreferencesAdapter
	copyFn  func(string) error

	sections []string
	entries  []preferences.Entry
	idx      int
	detail   bool

	loading bool
	spinner spinner.Model
	help    help.Model
	status  string

	showError    bool
	errorOverlay errorOverlayModel
}

func newBrowserModel(ctx context.Context, a adapter.PreferencesAdapter, copyFn func(string) error) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:      ctx,
		adapter:  a,
		copyFn:   copyFn,
		sections: preferences.SectionNames(),
		loading:  true,
		spinner:  s,
		help:     help.New(),
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case preferencesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf("load preferences: %v", msg.err)
			return m, nil
		}
		m.entries = preferences.Flatten(msg.prefs)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf("copy to clipboard: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("copied %s", msg.section)
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.back) || key.Matches(msg, keys.open) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if !m.detail && m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if !m.detail && m.idx < len(m.sections)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.open):
		if !m.loading {
			m.detail = true
		}
	case key.Matches(msg, keys.back):
		m.detail = false
	case key.Matches(msg, keys.copy):
		if !m.loading {
			return m, m.cmdCopy(m.currentSection())
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}

	return m, nil
}

func (m browserModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}

	var b strings.Builder

	header := "Shell preferences"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	if m.detail {
		section := m.currentSection()
		b.WriteString(titleStyle.Render(section) + "\n")
		entries := SectionEntries(m.entries, section)
		if len(entries) == 0 {
			b.WriteString(statusStyle.Render("no options set") + "\n")
		} else {
			b.WriteString(RenderTable(entries) + "\n")
		}
	} else {
		for i, name := range m.sections {
			line := fmt.Sprintf("%s (%d)", name, len(SectionEntries(m.entries, name)))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> "+line) + "\n")
				continue
			}
			b.WriteString("  " + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(keys))
	return appStyle.Render(b.String())
}

func (m browserModel) currentSection() string {
	if m.idx < 0 || m.idx >= len(m.sections) {
		return ""
	}
	return m.sections[m.idx]
}

func (m *browserModel) showErrorf(format string, args ...any) {
	m.showError = true
	m.errorOverlay.message = fmt.Sprintf(format, args...)
}

func (m browserModel) cmdLoad() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		prefs, err := a.Preferences(ctx)
		return preferencesLoadedMsg{prefs: prefs, err: err}
	}
}

// cmdCopy copies the options of section as indented JSON.
func (m browserModel) cmdCopy(section string) tea.Cmd {
	values := make(map[string]any)
	for _, e := range SectionEntries(m.entries, section) {
		values[e.Option] = e.Value
	}
	copyFn := m.copyFn

	return func() tea.Msg {
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return copiedMsg{section: section, err: err}
		}
		return copiedMsg{section: section, err: copyFn(string(data))}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
