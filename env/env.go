// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package env provides the environment variable lookups linked
// configuration entries are resolved against.
package env

import (
	"os"
	"strings"
)

// Environment looks up environment variables by name. The boolean
// distinguishes an unset variable from one set to the empty string.
type Environment interface {
	LookupEnv(name string) (string, bool)
}

// Func is a functional implementation of the [Environment] interface.
type Func func(name string) (string, bool)

// LookupEnv implements the [Environment] interface.
func (f Func) LookupEnv(name string) (string, bool) {
	return f(name)
}

// OS returns an Environment backed by the current process.
func OS() Environment {
	return Func(os.LookupEnv)
}

// Map is an in memory Environment.
type Map map[string]string

// LookupEnv implements the [Environment] interface.
func (m Map) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// FromEnviron builds a Map from "KEY=VALUE" pairs, as returned by
// [os.Environ]. Pairs without a '=' are ignored.
func FromEnviron(pairs []string) Map {
	m := make(Map, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

// Layered looks up variables in each Environment in turn
// and returns the first one which is set.
type Layered []Environment

// Layer returns a Layered environment. Earlier environments
// take precedence over later ones.
func Layer(envs ...Environment) Layered {
	return Layered(envs)
}

// LookupEnv implements the [Environment] interface.
func (l Layered) LookupEnv(name string) (string, bool) {
	for _, e := range l {
		if e == nil {
			continue
		}
		v, ok := e.LookupEnv(name)
		if ok {
			return v, true
		}
	}
	return "", false
}
