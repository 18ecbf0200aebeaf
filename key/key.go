// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for addressing entries within a configuration document.
package key

import (
	"strconv"
	"strings"
)

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Name represents a single table key.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Index represents the position of an element within an array.
type Index int

// Key implements the [Keyer] interface.
func (k Index) Key() string {
	return "[" + strconv.Itoa(int(k)) + "]"
}

// Chain represents nested keys, outermost first.
type Chain []Keyer

// Key implements the [Keyer] interface. Names are joined
// with a '.' and indexes are appended directly to the key
// they index e.g. "servers[0].host".
func (k Chain) Key() string {
	var sb strings.Builder
	for i, kk := range k {
		if _, ok := kk.(Index); !ok && i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(kk.Key())
	}
	return sb.String()
}

// String implements the [fmt.Stringer] interface.
func (k Chain) String() string {
	return k.Key()
}

// Append returns a new Chain with the given keys added to the end.
// The receiver is never modified so chains can be safely shared
// between siblings during a tree walk.
func (k Chain) Append(keys ...Keyer) Chain {
	c := make(Chain, 0, len(k)+len(keys))
	c = append(c, k...)
	return append(c, keys...)
}
