// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an override document.
type Format string

const (
	// FormatJSON accepts plain JSON and JSON with comments and trailing commas.
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode parses an override document into a partial [Preferences] layer.
//
// Decoding is strict: a section or option that is not part of the schema
// makes Decode fail with [ErrUnknownOption] instead of being silently
// dropped. Values that are set are validated; options left out stay nil.
// An empty document yields an empty layer.
func Decode(data []byte, format Format) (Preferences, error) {
	var (
		layer Preferences
		err   error
	)

	switch format {
	case FormatJSON:
		err = decodeJSON(data, &layer)
	case FormatYAML:
		err = decodeYAML(data, &layer)
	default:
		return Preferences{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Preferences{}, err
	}

	if err = Validate(layer, false); err != nil {
		return Preferences{}, fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	return layer, nil
}

// ReadFile reads and decodes an override document from disk.
func ReadFile(path string) (Preferences, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Preferences{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Preferences{}, fmt.Errorf("error reading override file: %w", err)
	}

	layer, err := Decode(data, format)
	if err != nil {
		return Preferences{}, fmt.Errorf("%s: %w", path, err)
	}

	return layer, nil
}

func decodeJSON(data []byte, layer *Preferences) error {
	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return nil
	}

	var top map[string]json.RawMessage
	decoder := json.NewDecoder(bytes.NewReader(stripped))
	if err := decoder.Decode(&top); err != nil {
		return fmt.Errorf("error decoding json override: %w", err)
	}
	if err := decoder.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("error decoding json override: %w", ErrTrailingData)
	}

	keys := make(map[string][]string, len(top))
	for section, msg := range top {
		var options map[string]json.RawMessage
		if json.Unmarshal(msg, &options) == nil {
			keys[section] = slices.Collect(maps.Keys(options))
		} else {
			keys[section] = nil
		}
	}
	if err := checkKnownKeys(keys); err != nil {
		return err
	}

	strict := json.NewDecoder(bytes.NewReader(stripped))
	strict.DisallowUnknownFields()
	if err := strict.Decode(layer); err != nil {
		return fmt.Errorf("error decoding json override: %w", err)
	}

	return nil
}

func decodeYAML(data []byte, layer *Preferences) error {
	var top map[string]yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&top); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("error decoding yaml override: %w", err)
	}
	if err := decoder.Decode(&yaml.Node{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("error decoding yaml override: %w", ErrTrailingData)
	}

	keys := make(map[string][]string, len(top))
	for section, node := range top {
		var names []string
		if node.Kind == yaml.MappingNode {
			for i := 0; i+1 < len(node.Content); i += 2 {
				names = append(names, node.Content[i].Value)
			}
		}
		keys[section] = names
	}
	if err := checkKnownKeys(keys); err != nil {
		return err
	}

	strict := yaml.NewDecoder(bytes.NewReader(data))
	strict.KnownFields(true)
	if err := strict.Decode(layer); err != nil {
		return fmt.Errorf("error decoding yaml override: %w", err)
	}

	return nil
}

// checkKnownKeys fails with [ErrUnknownOption] naming the first section or
// option, in sorted order, that the schema does not define.
func checkKnownKeys(keys map[string][]string) error {
	for _, section := range slices.Sorted(maps.Keys(keys)) {
		options, ok := schemaKeys[section]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, section)
		}
		names := slices.Clone(keys[section])
		slices.Sort(names)
		for _, name := range names {
			if _, ok := options[name]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownOption, section+"."+name)
			}
		}
	}
	return nil
}
