// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package manifest

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/z5labs/konfig/env"
	"github.com/z5labs/konfig/value"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		doc      map[string]any
		env      env.Map
		expected map[string]any
	}{
		{
			name: "literals are copied",
			doc: map[string]any{
				"name":  "svc",
				"ports": []any{80, 443},
			},
			expected: map[string]any{
				"name":  "svc",
				"ports": []any{80, 443},
			},
		},
		{
			name: "env is preferred over the default and coerced to its kind",
			doc: map[string]any{
				"port": map[string]any{"env": "PORT", "default": 8080},
			},
			env: env.Map{"PORT": "9090"},
			expected: map[string]any{
				"port": 9090,
			},
		},
		{
			name: "default is used verbatim when env is unset",
			doc: map[string]any{
				"mode": map[string]any{"env": "MISSING_VAR", "default": "fallback"},
			},
			expected: map[string]any{
				"mode": "fallback",
			},
		},
		{
			name: "key is omitted when env is unset and there is no default",
			doc: map[string]any{
				"opt":  map[string]any{"env": "UNSET_VAR"},
				"name": "svc",
			},
			expected: map[string]any{
				"name": "svc",
			},
		},
		{
			name: "nested defaults",
			doc: map[string]any{
				"db": map[string]any{
					"host": "localhost",
					"port": map[string]any{"env": "DB_PORT", "default": 5432},
				},
			},
			expected: map[string]any{
				"db": map[string]any{
					"host": "localhost",
					"port": 5432,
				},
			},
		},
		{
			name: "env without a default is parsed blindly",
			doc: map[string]any{
				"debug":   map[string]any{"env": "DEBUG"},
				"backoff": map[string]any{"env": "EXPONENTIAL_BACKOFF"},
				"profile": map[string]any{"env": "PROFILE"},
			},
			env: env.Map{
				"DEBUG":               "true",
				"EXPONENTIAL_BACKOFF": "[3,4,5]",
				"PROFILE":             "prod",
			},
			expected: map[string]any{
				"debug":   true,
				"backoff": []any{3, 4, 5},
				"profile": "prod",
			},
		},
		{
			name: "empty env value is set",
			doc: map[string]any{
				"prefix": map[string]any{"env": "PREFIX", "default": "app"},
			},
			env: env.Map{"PREFIX": ""},
			expected: map[string]any{
				"prefix": "",
			},
		},
		{
			name: "nested table whose entries are all omitted stays present",
			doc: map[string]any{
				"smtp": map[string]any{
					"password": map[string]any{"env": "SMTP_PASSWORD"},
				},
			},
			expected: map[string]any{
				"smtp": map[string]any{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustManifest(t, tc.doc)

			out, err := Resolve(m, tc.env)
			require.NoError(t, err)

			expected := mustValue(t, tc.expected)
			require.True(t, expected.Equal(value.FromTable(out)), "expected %s got %s", expected, value.FromTable(out))
		})
	}
}

func TestResolve_isIdempotent(t *testing.T) {
	m := mustManifest(t, map[string]any{
		"db": map[string]any{
			"host": map[string]any{"env": "DB_HOST"},
			"port": map[string]any{"env": "DB_PORT", "default": 5432},
		},
	})
	e := env.Map{"DB_HOST": "db.internal"}

	first, err := Resolve(m, e)
	require.NoError(t, err)

	second, err := Resolve(m, e)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestResolve_doesNotModifyManifest(t *testing.T) {
	m := mustManifest(t, map[string]any{
		"port": map[string]any{"env": "PORT", "default": 8080},
	})
	before := mustManifest(t, map[string]any{
		"port": map[string]any{"env": "PORT", "default": 8080},
	})

	_, err := Resolve(m, env.Map{"PORT": "1"})
	require.NoError(t, err)
	require.Equal(t, before, m)
}

func TestResolve_errors(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the env var can not be coerced to the default's kind", func(t *testing.T) {
			m := mustManifest(t, map[string]any{
				"server": map[string]any{
					"port": map[string]any{"env": "PORT", "default": 8080},
				},
			})

			out, err := Resolve(m, env.Map{"PORT": "not-a-number"})

			var cerr CoercionError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
			if !assert.Nil(t, out) {
				return
			}
			if !assert.Equal(t, "server.port", cerr.Path.Key()) {
				return
			}
			if !assert.Equal(t, value.KindInteger, cerr.Expected) {
				return
			}
			if !assert.Equal(t, "PORT", cerr.EnvName) {
				return
			}
			if !assert.Equal(t, "not-a-number", cerr.Raw) {
				return
			}
			if !assert.Contains(t, cerr.Error(), "integer") {
				return
			}
		})

		t.Run("with the element path if an array element has the wrong kind", func(t *testing.T) {
			m := mustManifest(t, map[string]any{
				"backoff": map[string]any{"env": "BACKOFF", "default": []any{1, 2}},
			})

			_, err := Resolve(m, env.Map{"BACKOFF": `[1, "x"]`})

			var cerr CoercionError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
			if !assert.Equal(t, "backoff[1]", cerr.Path.Key()) {
				return
			}
			if !assert.Equal(t, `[1, "x"]`, cerr.Raw) {
				return
			}
		})

		t.Run("if the env name is empty", func(t *testing.T) {
			m := mustManifest(t, map[string]any{
				"db": map[string]any{
					"user": map[string]any{"env": "", "default": "postgres"},
				},
			})

			lookups := 0
			e := env.Func(func(string) (string, bool) {
				lookups++
				return "", false
			})

			_, err := Resolve(m, e)

			var eerr EmptyEnvNameError
			if !assert.ErrorAs(t, err, &eerr) {
				return
			}
			if !assert.Equal(t, "db.user", eerr.Path.Key()) {
				return
			}
			if !assert.Zero(t, lookups) {
				return
			}
		})
	})
}

func TestResolver_logging(t *testing.T) {
	t.Run("will log sources but never values", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		m := mustManifest(t, map[string]any{
			"password": map[string]any{"env": "DB_PASSWORD"},
			"port":     map[string]any{"env": "DB_PORT", "default": 5432},
			"token":    map[string]any{"env": "API_TOKEN"},
		})

		r := NewResolver(env.Map{"DB_PASSWORD": "hunter2"}, WithLogger(log))
		_, err := r.Resolve(m)
		require.NoError(t, err)

		out := buf.String()
		require.Contains(t, out, "key_path=password")
		require.Contains(t, out, "source="+SourceEnv)
		require.Contains(t, out, "source="+SourceDefault)
		require.Contains(t, out, "source="+SourceOmitted)
		require.NotContains(t, out, "hunter2")
	})
}
