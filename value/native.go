// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/z5labs/konfig/key"
)

// UnsupportedTypeError occurs when a native Go value has no
// corresponding [Value] kind, e.g. datetimes or nil.
type UnsupportedTypeError struct {
	Path key.Chain
	Type string
}

// Error implements the error interface.
func (e UnsupportedTypeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("unsupported value type: %s", e.Type)
	}
	return fmt.Sprintf("unsupported value type at %s: %s", e.Path.Key(), e.Type)
}

// IntegerOverflowError occurs when a native unsigned integer
// does not fit into a signed 64-bit integer.
type IntegerOverflowError struct {
	Path  key.Chain
	Value uint64
}

// Error implements the error interface.
func (e IntegerOverflowError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("integer overflows int64: %d", e.Value)
	}
	return fmt.Sprintf("integer overflows int64 at %s: %d", e.Path.Key(), e.Value)
}

// FromNative converts a native Go value, as produced by the common
// document decoders, into a Value. Maps are converted into tables
// whose keys are inserted in sorted order.
func FromNative(v any) (Value, error) {
	return fromNative(nil, v)
}

func fromNative(path key.Chain, v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case *Table:
		return FromTable(x), nil
	case string:
		return String(x), nil
	case bool:
		return Boolean(x), nil
	case int:
		return Integer(int64(x)), nil
	case int8:
		return Integer(int64(x)), nil
	case int16:
		return Integer(int64(x)), nil
	case int32:
		return Integer(int64(x)), nil
	case int64:
		return Integer(x), nil
	case uint:
		return fromUint(path, uint64(x))
	case uint8:
		return Integer(int64(x)), nil
	case uint16:
		return Integer(int64(x)), nil
	case uint32:
		return Integer(int64(x)), nil
	case uint64:
		return fromUint(path, x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Integer(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, UnsupportedTypeError{Path: path, Type: "json.Number(" + x.String() + ")"}
		}
		return Float(f), nil
	case []any:
		return fromSlice(path, reflect.ValueOf(x))
	case map[string]any:
		return fromMap(path, reflect.ValueOf(x))
	case nil:
		return Value{}, UnsupportedTypeError{Path: path, Type: "nil"}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fromSlice(path, rv)
	case reflect.Map:
		return fromMap(path, rv)
	default:
		return Value{}, UnsupportedTypeError{Path: path, Type: fmt.Sprintf("%T", v)}
	}
}

func fromUint(path key.Chain, u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, IntegerOverflowError{Path: path, Value: u}
	}
	return Integer(int64(u)), nil
}

func fromSlice(path key.Chain, rv reflect.Value) (Value, error) {
	elems := make([]Value, rv.Len())
	for i := range elems {
		elem, err := fromNative(path.Append(key.Index(i)), rv.Index(i).Interface())
		if err != nil {
			return Value{}, err
		}
		elems[i] = elem
	}
	return Value{kind: KindArray, arr: elems}, nil
}

func fromMap(path key.Chain, rv reflect.Value) (Value, error) {
	keys := make([]string, 0, rv.Len())
	lookup := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, ok := iter.Key().Interface().(string)
		if !ok {
			return Value{}, UnsupportedTypeError{
				Path: path,
				Type: fmt.Sprintf("map key %T", iter.Key().Interface()),
			}
		}
		keys = append(keys, k)
		lookup[k] = iter.Value()
	}
	sort.Strings(keys)

	t := NewTable()
	for _, k := range keys {
		v, err := fromNative(path.Append(key.Name(k)), lookup[k].Interface())
		if err != nil {
			return Value{}, err
		}
		t.Set(k, v)
	}
	return FromTable(t), nil
}

// Native converts v into plain Go values suitable for generic
// structured decoding: string, int64, float64, bool, []any and
// map[string]any. The zero Value converts to nil.
func (v Value) Native() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindBoolean:
		return v.b
	case KindArray:
		elems := make([]any, len(v.arr))
		for i, elem := range v.arr {
			elems[i] = elem.Native()
		}
		return elems
	case KindTable:
		return v.tbl.Native()
	default:
		return nil
	}
}

// Native converts t into a map[string]any. See [Value.Native].
func (t *Table) Native() map[string]any {
	m := make(map[string]any, t.Len())
	for _, k := range t.Keys() {
		m[k] = t.entries[k].Native()
	}
	return m
}
