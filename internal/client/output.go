// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/MKhiriev/shell-preferences/internal/preferences"
	"github.com/MKhiriev/shell-preferences/internal/tui"
	"gopkg.in/yaml.v3"
)

// Output is the rendering of command results.
type Output string

const (
	OutputTable Output = "table"
	OutputJSON  Output = "json"
	OutputYAML  Output = "yaml"
)

func parseOutput(s string) (Output, error) {
	switch o := Output(s); o {
	case OutputTable, OutputJSON, OutputYAML:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json or yaml)", ErrUnsupportedOutput, s)
	}
}

// printPreferences writes a whole preferences layer. Unset options are left
// out of every format.
func printPreferences(w io.Writer, p preferences.Preferences, output Output) error {
	if output == OutputTable {
		_, err := fmt.Fprintln(w, tui.RenderTable(preferences.Flatten(p)))
		return err
	}
	return encode(w, p, output)
}

// printSection writes the options of one section. Table rows are sorted by
// option name.
func printSection(w io.Writer, name string, section map[string]any, output Output) error {
	if output == OutputTable {
		entries := make([]preferences.Entry, 0, len(section))
		for _, option := range slices.Sorted(maps.Keys(section)) {
			entries = append(entries, preferences.Entry{Section: name, Option: option, Value: section[option]})
		}
		_, err := fmt.Fprintln(w, tui.RenderTable(entries))
		return err
	}
	return encode(w, section, output)
}

func encode(w io.Writer, v any, output Output) error {
	switch output {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, output)
	}
}
