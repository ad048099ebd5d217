// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

import (
	"encoding/json"
	"fmt"

	"dario.cat/mergo"
)

// Resolve overlays layers on top of defaults, in order, and validates the
// result.
//
// A layer option wins whenever it is set (non-nil), including false, 0 and
// empty strings; a nil option keeps the value of the layer below. Sections
// that a layer does not mention resolve to the values below them. Resolving
// is idempotent: repeating a layer does not change the result.
//
// Inputs are never modified and the result shares no memory with them.
// The result must set every option and pass [Validate]; otherwise Resolve
// returns an error wrapping [ErrInvalidPreferences] and the individual
// [FieldError] values.
func Resolve(defaults Preferences, layers ...Preferences) (Preferences, error) {
	resolved, err := Merge(append([]Preferences{defaults}, layers...)...)
	if err != nil {
		return Preferences{}, err
	}

	if err = Validate(resolved, true); err != nil {
		return Preferences{}, fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	return resolved, nil
}

// Merge overlays layers in order without requiring the result to be
// complete. It is used to combine partial override layers, for example the
// override record and an override file, before they meet the defaults.
// Merge never modifies its inputs.
func Merge(layers ...Preferences) (Preferences, error) {
	var merged Preferences
	for i, layer := range layers {
		overlay, err := Clone(layer)
		if err != nil {
			return Preferences{}, fmt.Errorf("error copying layer %d: %w", i, err)
		}

		// WithoutDereference makes a set pointer win even when it points to a
		// zero value.
		if err = mergo.Merge(&merged, overlay, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return Preferences{}, fmt.Errorf("error merging layer %d: %w", i, err)
		}
	}

	return merged, nil
}

// Clone returns a deep copy of p.
func Clone(p Preferences) (Preferences, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return Preferences{}, err
	}

	var cp Preferences
	if err = json.Unmarshal(data, &cp); err != nil {
		return Preferences{}, err
	}

	return cp, nil
}
