// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides the slog attributes shared across packages
// so log records use consistent keys.
package slogfield

import (
	"log/slog"

	"github.com/z5labs/konfig/key"
)

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// String returns an slog.Attr for a string.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// KeyPath returns an slog.Attr for the dotted path of a document entry.
func KeyPath(k key.Keyer) slog.Attr {
	return slog.String("key_path", k.Key())
}

// EnvName returns an slog.Attr for the name of an environment variable.
// Values must go through [Raw] so they can be masked.
func EnvName(name string) slog.Attr {
	return slog.String("env_name", name)
}

// Source returns an slog.Attr describing where a resolved value came from.
func Source(source string) slog.Attr {
	return slog.String("source", source)
}

// File returns an slog.Attr for a configuration document path.
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// RawKey is the key of attributes holding raw environment variable values.
const RawKey = "raw"

// Raw returns an slog.Attr for a raw environment variable value.
func Raw(v string) slog.Attr {
	return slog.String(RawKey, v)
}
