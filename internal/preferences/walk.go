// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

import (
	"reflect"
	"strings"
)

// option is one leaf of a [Preferences] value as seen by the walker.
type option struct {
	section string
	name    string
	// value is the pointer field itself; it may be nil.
	value reflect.Value
}

// walk visits every option of p in schema order. Names are taken from the
// json tags, so they match the wire format.
func walk(p *Preferences, fn func(option)) {
	root := reflect.ValueOf(p).Elem()
	for i := range root.NumField() {
		sectionName := tagName(root.Type().Field(i))
		section := root.Field(i)
		for j := range section.NumField() {
			fn(option{
				section: sectionName,
				name:    tagName(section.Type().Field(j)),
				value:   section.Field(j),
			})
		}
	}
}

// schemaKeys maps every section key to the set of its option keys.
var schemaKeys = func() map[string]map[string]struct{} {
	keys := make(map[string]map[string]struct{})
	walk(&Preferences{}, func(o option) {
		if keys[o.section] == nil {
			keys[o.section] = make(map[string]struct{})
		}
		keys[o.section][o.name] = struct{}{}
	})
	return keys
}()

// sectionNames lists the top-level section keys in schema order.
func sectionNames() []string {
	t := reflect.TypeFor[Preferences]()
	names := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		names = append(names, tagName(t.Field(i)))
	}
	return names
}

func tagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
