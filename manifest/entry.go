// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package manifest

import (
	"github.com/z5labs/konfig/value"
)

// Reserved table keys which turn a table into a [Linked] entry.
const (
	EnvKey     = "env"
	DefaultKey = "default"
)

// Entry is a classified node of a configuration document. The only
// implementations are [Literal], [Linked] and [Nested].
type Entry interface {
	isEntry()
}

// Literal is an entry which is used as is.
type Literal struct {
	Value value.Value
}

// Linked is an entry bound to an environment variable.
type Linked struct {
	EnvName string

	// Default is the zero [value.Value] when no default was given.
	Default value.Value
}

// HasDefault reports whether a default value was given.
func (l Linked) HasDefault() bool {
	return l.Default.IsValid()
}

// Nested is an entry holding further entries.
type Nested struct {
	Entries Manifest
}

func (Literal) isEntry() {}
func (Linked) isEntry()  {}
func (Nested) isEntry()  {}

// Manifest is an immutable mapping of keys to entries which
// remembers the order keys appeared in.
type Manifest struct {
	keys    []string
	entries map[string]Entry
}

func newManifest(size int) Manifest {
	return Manifest{
		keys:    make([]string, 0, size),
		entries: make(map[string]Entry, size),
	}
}

func (m *Manifest) set(k string, e Entry) {
	if _, exists := m.entries[k]; !exists {
		m.keys = append(m.keys, k)
	}
	m.entries[k] = e
}

// Get returns the entry stored under k.
func (m Manifest) Get(k string) (Entry, bool) {
	e, ok := m.entries[k]
	return e, ok
}

// Keys returns the keys in document order.
func (m Manifest) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries.
func (m Manifest) Len() int {
	return len(m.keys)
}
