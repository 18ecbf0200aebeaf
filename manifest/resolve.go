// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package manifest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/z5labs/konfig/env"
	"github.com/z5labs/konfig/internal/slogfield"
	"github.com/z5labs/konfig/key"
	"github.com/z5labs/konfig/value"
)

// Sources a linked entry can be resolved from, as reported in logs.
const (
	SourceEnv     = "env"
	SourceDefault = "default"
	SourceOmitted = "omitted"
)

// ResolverOption represents options for configuring a [Resolver].
type ResolverOption func(*Resolver)

// WithLogger configures the logger resolution decisions are
// written to at debug level. Environment values are never logged.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = log
	}
}

// Resolver turns manifests into concrete value tables. A Resolver
// holds no per resolution state so it may be used concurrently.
type Resolver struct {
	env env.Environment
	log *slog.Logger
}

// NewResolver returns a Resolver which looks up linked entries in e.
func NewResolver(e env.Environment, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		env: e,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is shorthand for NewResolver(e).Resolve(m).
func Resolve(m Manifest, e env.Environment) (*value.Table, error) {
	return NewResolver(e).Resolve(m)
}

// Resolve produces a freshly allocated table in which every entry of m
// has been replaced by a concrete value. m itself is never modified.
// Any failure aborts the whole resolution.
func (r *Resolver) Resolve(m Manifest) (*value.Table, error) {
	return r.resolveManifest(nil, m)
}

func (r *Resolver) resolveManifest(path key.Chain, m Manifest) (*value.Table, error) {
	out := value.NewTable()
	for _, k := range m.keys {
		v, ok, err := r.resolveEntry(path.Append(key.Name(k)), m.entries[k])
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out.Set(k, v)
	}
	return out, nil
}

func (r *Resolver) resolveEntry(path key.Chain, e Entry) (value.Value, bool, error) {
	switch x := e.(type) {
	case Literal:
		return x.Value, true, nil
	case Nested:
		t, err := r.resolveManifest(path, x.Entries)
		if err != nil {
			return value.Value{}, false, err
		}
		return value.FromTable(t), true, nil
	case Linked:
		return r.resolveLinked(path, x)
	default:
		panic(fmt.Sprintf("manifest: unknown entry type %T", e))
	}
}

func (r *Resolver) resolveLinked(path key.Chain, l Linked) (value.Value, bool, error) {
	if l.EnvName == "" {
		return value.Value{}, false, EmptyEnvNameError{Path: path}
	}

	raw, set := r.env.LookupEnv(l.EnvName)
	if !set {
		if l.HasDefault() {
			r.logSource(path, l, SourceDefault)
			return l.Default, true, nil
		}
		r.logSource(path, l, SourceOmitted)
		return value.Value{}, false, nil
	}

	v, err := Coerce(raw, l.Default)
	if err != nil {
		var cerr CoercionError
		if errors.As(err, &cerr) {
			cerr.Path = path.Append(cerr.Path...)
			cerr.EnvName = l.EnvName
			cerr.Raw = raw
			return value.Value{}, false, cerr
		}
		return value.Value{}, false, err
	}
	r.logSource(path, l, SourceEnv)
	return v, true, nil
}

func (r *Resolver) logSource(path key.Chain, l Linked, source string) {
	r.log.LogAttrs(
		context.Background(),
		slog.LevelDebug,
		"resolved linked entry",
		slogfield.KeyPath(path),
		slogfield.EnvName(l.EnvName),
		slogfield.Source(source),
	)
}
