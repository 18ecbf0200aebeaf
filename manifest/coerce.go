// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package manifest

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/z5labs/konfig/key"
	"github.com/z5labs/konfig/value"
)

var (
	errNotBoolean = errors.New(`expected exactly "true" or "false"`)
	errMismatch   = errors.New("literal kind does not match")
)

// blindOrder is the order kinds are tried in when an environment
// variable has no default to take its kind from. Anything else
// stays a string.
var blindOrder = []value.Kind{
	value.KindBoolean,
	value.KindInteger,
	value.KindFloat,
	value.KindArray,
	value.KindTable,
}

// Coerce converts the raw string of an environment variable into a value.
//
// When hint is valid, raw must parse as the hint's kind:
//
//   - integer: base 10, signed 64-bit
//   - float: IEEE-754 double
//   - boolean: exactly "true" or "false"
//   - array, table: the TOML literal grammar, e.g. "[1, 2]" or "{a = 1}",
//     with every element conformed to the corresponding element of the hint
//   - string: raw unchanged
//
// Failure to do so is a [CoercionError], never a silent fallback to string.
//
// When hint is the zero value, raw is parsed with [value.ParseLiteral] and kept
// if it is a boolean, integer, float, array or table, in that order of preference.
// Otherwise raw is returned as a string, so blind coercion never fails.
// The blind path accepts the whole TOML number grammar, so "0x10" and "1_000"
// become integers and "inf" a float, whereas an integer hint only accepts base 10.
func Coerce(raw string, hint value.Value) (value.Value, error) {
	if !hint.IsValid() {
		return coerceBlind(raw), nil
	}

	switch hint.Kind() {
	case value.KindString:
		return value.String(raw), nil
	case value.KindInteger:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return value.Value{}, CoercionError{Expected: value.KindInteger, Raw: raw, Cause: err}
		}
		return value.Integer(i), nil
	case value.KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return value.Value{}, CoercionError{Expected: value.KindFloat, Raw: raw, Cause: err}
		}
		return value.Float(f), nil
	case value.KindBoolean:
		switch raw {
		case "true":
			return value.Boolean(true), nil
		case "false":
			return value.Boolean(false), nil
		}
		return value.Value{}, CoercionError{Expected: value.KindBoolean, Raw: raw, Cause: errNotBoolean}
	default:
		lit, err := value.ParseLiteral(raw)
		if err != nil {
			return value.Value{}, CoercionError{Expected: hint.Kind(), Raw: raw, Cause: err}
		}
		return conform(nil, lit, hint)
	}
}

func coerceBlind(raw string) value.Value {
	lit, err := value.ParseLiteral(raw)
	if err != nil {
		return value.String(raw)
	}
	for _, k := range blindOrder {
		if lit.Kind() == k {
			return lit
		}
	}
	return value.String(raw)
}

// conform checks that v has the same shape as hint, widening
// integers into floats where the hint asks for a float.
func conform(path key.Chain, v, hint value.Value) (value.Value, error) {
	if hint.Kind() == value.KindFloat {
		if i, ok := v.AsInteger(); ok {
			return value.Float(float64(i)), nil
		}
	}
	if v.Kind() != hint.Kind() {
		return value.Value{}, CoercionError{
			Path:     path,
			Expected: hint.Kind(),
			Raw:      v.String(),
			Cause:    fmt.Errorf("%w: got %s %s", errMismatch, v.Kind(), v),
		}
	}

	switch hint.Kind() {
	case value.KindArray:
		return conformArray(path, v, hint)
	case value.KindTable:
		return conformTable(path, v, hint)
	default:
		return v, nil
	}
}

func conformArray(path key.Chain, v, hint value.Value) (value.Value, error) {
	elems, _ := v.AsArray()
	hints, _ := hint.AsArray()
	if len(hints) == 0 {
		return v, nil
	}

	elemHint := hints[0]
	out := make([]value.Value, len(elems))
	for i, elem := range elems {
		c, err := conform(path.Append(key.Index(i)), elem, elemHint)
		if err != nil {
			return value.Value{}, err
		}
		out[i] = c
	}
	return value.Array(out...), nil
}

func conformTable(path key.Chain, v, hint value.Value) (value.Value, error) {
	t, _ := v.AsTable()
	hints, _ := hint.AsTable()

	out := value.NewTable()
	for _, k := range t.Keys() {
		fv, _ := t.Get(k)
		fh, ok := hints.Get(k)
		if !ok {
			out.Set(k, fv)
			continue
		}
		c, err := conform(path.Append(key.Name(k)), fv, fh)
		if err != nil {
			return value.Value{}, err
		}
		out.Set(k, c)
	}
	return value.FromTable(out), nil
}
