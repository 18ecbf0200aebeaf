// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package value provides the dynamic value model shared by every configuration
// document format.
//
// A [Value] is one of six kinds: string, integer, float, boolean, array or table.
// Typed accessors never convert between kinds, e.g. [Value.AsInteger] on a float
// reports false rather than truncating.
package value

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a [Value] holds.
type Kind int

// The supported value kinds. The zero Kind is KindInvalid and
// is only ever held by the zero [Value].
const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindArray
	KindTable
)

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the supported configuration value kinds.
// Values are immutable once constructed.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	arr  []Value
	tbl  *Table
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Integer returns an integer Value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Float returns a float Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Boolean returns a boolean Value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// Array returns an array Value holding the given elements.
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// FromTable returns a table Value. A nil table is treated as empty.
func FromTable(t *Table) Value {
	if t == nil {
		t = NewTable()
	}
	return Value{kind: KindTable, tbl: t}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v holds any variant at all.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// AsString returns the underlying string if v is a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsInteger returns the underlying integer if v is an integer.
func (v Value) AsInteger() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// AsFloat returns the underlying float if v is a float.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsBoolean returns the underlying boolean if v is a boolean.
func (v Value) AsBoolean() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// AsArray returns the underlying elements if v is an array.
// The returned slice must not be modified.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsTable returns the underlying table if v is a table.
// The returned table must not be modified.
func (v Value) AsTable() (*Table, bool) {
	if v.kind != KindTable {
		return nil, false
	}
	return v.tbl, true
}

// Equal reports whether v and other hold the same variant with
// deeply equal contents. Table key order is not significant.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == other.s
	case KindInteger:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBoolean:
		return v.b == other.b
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindTable:
		return v.tbl.Equal(other.tbl)
	default:
		return true
	}
}

// String implements the [fmt.Stringer] interface. The output uses
// the same literal grammar accepted by [ParseLiteral].
func (v Value) String() string {
	var sb strings.Builder
	v.writeLiteral(&sb)
	return sb.String()
}

func (v Value) writeLiteral(sb *strings.Builder) {
	switch v.kind {
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindInteger:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		sb.WriteString(s)
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindArray:
		sb.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			elem.writeLiteral(sb)
		}
		sb.WriteByte(']')
	case KindTable:
		sb.WriteByte('{')
		for i, k := range v.tbl.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteString(" = ")
			v.tbl.entries[k].writeLiteral(sb)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("<invalid>")
	}
}
