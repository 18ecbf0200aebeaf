// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

// Table is a string keyed mapping of values which remembers
// the order keys were first inserted in.
type Table struct {
	keys    []string
	entries map[string]Value
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]Value),
	}
}

// Set associates v with k. Replacing an existing key keeps
// its original position.
func (t *Table) Set(k string, v Value) {
	if t.entries == nil {
		t.entries = make(map[string]Value)
	}
	if _, exists := t.entries[k]; !exists {
		t.keys = append(t.keys, k)
	}
	t.entries[k] = v
}

// Get returns the value stored under k.
func (t *Table) Get(k string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	v, ok := t.entries[k]
	return v, ok
}

// Has reports whether k is present.
func (t *Table) Has(k string) bool {
	_, ok := t.Get(k)
	return ok
}

// Len returns the number of keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Equal reports whether both tables hold the same keys
// with equal values, regardless of order.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	for _, k := range t.Keys() {
		ov, ok := other.Get(k)
		if !ok {
			return false
		}
		if !t.entries[k].Equal(ov) {
			return false
		}
	}
	return true
}
