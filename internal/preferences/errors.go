// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is wrapped by a [FieldError] when an option holds a value
	// outside its domain (unknown enum tag, negative width, malformed radius).
	ErrInvalidValue = errors.New("invalid option value")
	// ErrMissingValue is wrapped by a [FieldError] when a resolved record has
	// an option that no layer, including the defaults, has set.
	ErrMissingValue = errors.New("option is not set")
	// ErrUnknownOption is returned when an override document names a section
	// or option that does not exist in the schema.
	ErrUnknownOption = errors.New("unknown section or option")
	// ErrUnknownSection is returned by [Section] for names outside the schema.
	ErrUnknownSection = errors.New("unknown section")
	// ErrTrailingData is returned when an override document holds more than
	// one JSON value or YAML document.
	ErrTrailingData = errors.New("override document has trailing data")
	// ErrUnsupportedFormat is returned by [ReadFile] for file extensions other
	// than .json, .jsonc, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("unsupported override file format")
	// ErrInvalidPreferences wraps every validation failure returned by
	// [Resolve].
	ErrInvalidPreferences = errors.New("invalid preferences")
)

// FieldError describes a single option that failed validation.
type FieldError struct {
	// Path is the dotted option path, e.g. "theme.mode".
	Path string
	// Value is the offending value, nil for missing options.
	Value any
	// Err is ErrInvalidValue or ErrMissingValue.
	Err error
	// Reason is an optional human readable hint.
	Reason string
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Path, e.Err)
	if e.Value != nil {
		msg += fmt.Sprintf(" %q", fmt.Sprint(e.Value))
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
