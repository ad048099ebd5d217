// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

import (
	"fmt"
	"slices"
)

// Entry is a single set option of a preferences layer.
type Entry struct {
	Section string
	Option  string
	Value   any
}

// Path returns the dotted option path, e.g. "sidebar.width".
func (e Entry) Path() string {
	return e.Section + "." + e.Option
}

// String renders the value the way it appears in tables.
func (e Entry) String() string {
	return fmt.Sprint(e.Value)
}

// Flatten lists every set option of p in schema order.
func Flatten(p Preferences) []Entry {
	var entries []Entry
	walk(&p, func(o option) {
		if o.value.IsNil() {
			return
		}
		entries = append(entries, Entry{
			Section: o.section,
			Option:  o.name,
			Value:   o.value.Elem().Interface(),
		})
	})
	return entries
}

// SectionNames returns the section keys of the schema in schema order.
func SectionNames() []string {
	return sectionNames()
}

// Sections groups the set options of p by section. Sections with no set
// option are present as empty maps.
func Sections(p Preferences) map[string]map[string]any {
	sections := make(map[string]map[string]any)
	for _, name := range sectionNames() {
		sections[name] = map[string]any{}
	}
	for _, e := range Flatten(p) {
		sections[e.Section][e.Option] = e.Value
	}
	return sections
}

// Section returns the set options of one section, or [ErrUnknownSection].
func Section(p Preferences, name string) (map[string]any, error) {
	if !slices.Contains(sectionNames(), name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return Sections(p)[name], nil
}
