// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/shell-preferences/internal/preferences"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable renders entries as a bordered table with one row per option.
// Rows keep the order of entries.
func RenderTable(entries []preferences.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Section, e.Option, e.String()})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SECTION", "OPTION", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		})

	return t.Render()
}

// SectionEntries keeps the entries of one section.
func SectionEntries(entries []preferences.Entry, section string) []preferences.Entry {
	var out []preferences.Entry
	for _, e := range entries {
		if e.Section == section {
			out = append(out, e)
		}
	}
	return out
}
