// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package manifest

import (
	"errors"

	"github.com/z5labs/konfig/key"
	"github.com/z5labs/konfig/value"
)

// Classify turns a single raw value into an [Entry].
func Classify(v value.Value) (Entry, error) {
	return classify(nil, v)
}

// FromTable classifies every key of a raw document table.
func FromTable(t *value.Table) (Manifest, error) {
	return classifyTable(nil, t)
}

// FromDocument classifies a document as decoded into native Go
// values by one of the common format parsers. Values which have
// no [value.Value] kind, e.g. datetimes, fail classification.
func FromDocument(doc map[string]any) (Manifest, error) {
	v, err := value.FromNative(doc)
	if err != nil {
		return Manifest{}, classificationErrorFromNative(err)
	}
	t, _ := v.AsTable()
	return FromTable(t)
}

func classificationErrorFromNative(err error) error {
	var uerr value.UnsupportedTypeError
	if errors.As(err, &uerr) {
		return ClassificationError{
			Path:   uerr.Path,
			Reason: "unsupported value",
			Cause:  err,
		}
	}
	var oerr value.IntegerOverflowError
	if errors.As(err, &oerr) {
		return ClassificationError{
			Path:   oerr.Path,
			Reason: "unsupported value",
			Cause:  err,
		}
	}
	return ClassificationError{
		Reason: "unsupported value",
		Cause:  err,
	}
}

func classify(path key.Chain, v value.Value) (Entry, error) {
	t, ok := v.AsTable()
	if !ok {
		return Literal{Value: v}, nil
	}

	envV, ok := t.Get(EnvKey)
	if !ok {
		m, err := classifyTable(path, t)
		if err != nil {
			return nil, err
		}
		return Nested{Entries: m}, nil
	}

	envName, ok := envV.AsString()
	if !ok {
		return nil, ClassificationError{
			Path:   path.Append(key.Name(EnvKey)),
			Reason: "env must be a string, got " + envV.Kind().String(),
		}
	}

	def, _ := t.Get(DefaultKey)
	return Linked{
		EnvName: envName,
		Default: def,
	}, nil
}

func classifyTable(path key.Chain, t *value.Table) (Manifest, error) {
	m := newManifest(t.Len())
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		e, err := classify(path.Append(key.Name(k)), v)
		if err != nil {
			return Manifest{}, err
		}
		m.set(k, e)
	}
	return m, nil
}
