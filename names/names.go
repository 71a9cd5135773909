// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package names implements a mapping
// from canonical taxon names
// to user defined display names.
//
// A Map is an immutable value:
// every operation that changes the map
// returns a new map.
// Maps from different sources are combined with Merge,
// with the usual precedence:
//
//	names.Merge(names.Defaults(taxa), bundled, user)
//
// so the names defined by the user
// always win.
package names

import (
	"maps"
	"slices"
	"strings"

	"github.com/js-arias/phypan/taxon"
)

// A Map is a mapping of canonical taxon names
// to display names.
// The zero value is an empty map.
type Map struct {
	m map[string]string
}

// New creates a new map
// from a set of name pairs.
// The pairs are copied.
func New(pairs map[string]string) Map {
	return Map{m: maps.Clone(pairs)}
}

// Defaults returns a map
// with the default display name
// of each taxon.
func Defaults(taxa []taxon.Taxon) Map {
	m := make(map[string]string, len(taxa))
	for _, tx := range taxa {
		m[tx.OriginalName] = tx.Name
	}
	return Map{m: m}
}

// Merge merges a set of maps.
// The maps are given in increasing precedence order:
// a name in a later map
// replaces the name of an earlier map.
func Merge(sources ...Map) Map {
	var size int
	for _, s := range sources {
		size += len(s.m)
	}
	m := make(map[string]string, size)
	for _, s := range sources {
		maps.Copy(m, s.m)
	}
	return Map{m: m}
}

// Len returns the number of names in the map.
func (m Map) Len() int {
	return len(m.m)
}

// Lookup returns the display name of a taxon,
// and true if the taxon is defined in the map.
func (m Map) Lookup(id string) (string, bool) {
	n, ok := m.m[id]
	return n, ok
}

// Apply returns the display name of a taxon.
// If the taxon is not in the map,
// it returns the default display name.
func (m Map) Apply(id string) string {
	if n, ok := m.m[id]; ok {
		return n
	}
	return taxon.DisplayName(id)
}

// Resolver returns a function
// that resolves canonical names
// into display names.
func (m Map) Resolver() func(id string) string {
	return m.Apply
}

// Update returns a new map
// in which the taxon has the given name.
// Leading and trailing spaces are removed from the name.
// If the name is empty,
// the map is returned unchanged.
func (m Map) Update(id, name string) Map {
	name = strings.TrimSpace(name)
	if name == "" {
		return m
	}
	nm := maps.Clone(m.m)
	if nm == nil {
		nm = make(map[string]string, 1)
	}
	nm[id] = name
	return Map{m: nm}
}

// Remove returns a new map
// without the given taxon.
func (m Map) Remove(id string) Map {
	if _, ok := m.m[id]; !ok {
		return m
	}
	nm := maps.Clone(m.m)
	delete(nm, id)
	return Map{m: nm}
}

// Fill returns a new map
// in which each taxon without a name
// receives its default display name.
func (m Map) Fill(taxa []taxon.Taxon) Map {
	return Merge(Defaults(taxa), m)
}

// IDs returns the canonical names in the map,
// sorted.
func (m Map) IDs() []string {
	ids := make([]string, 0, len(m.m))
	for id := range m.m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Pairs returns a copy of the name pairs
// of the map.
func (m Map) Pairs() map[string]string {
	if m.m == nil {
		return make(map[string]string)
	}
	return maps.Clone(m.m)
}
