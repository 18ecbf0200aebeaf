// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	m := mustManifest(t, map[string]any{
		"profile": map[string]any{"env": "PROFILE"},
		"postgres": map[string]any{
			"host": "localhost",
			"port": map[string]any{"env": "DATABASE_PORT", "default": 5432},
		},
		"mail": map[string]any{
			"smtp": map[string]any{
				"password": map[string]any{"env": "SMTP_PASSWORD"},
			},
		},
		"backoff": []any{map[string]any{"env": "IGNORED"}},
	})

	links := Links(m)

	var paths, names []string
	for _, l := range links {
		paths = append(paths, l.Path.Key())
		names = append(names, l.EnvName)
	}

	require.Equal(t, []string{"mail.smtp.password", "postgres.port", "profile"}, paths)
	require.Equal(t, []string{"SMTP_PASSWORD", "DATABASE_PORT", "PROFILE"}, names)
	require.False(t, links[0].HasDefault())
	require.True(t, links[1].HasDefault())
}

func TestLinks_empty(t *testing.T) {
	m := mustManifest(t, map[string]any{"name": "svc"})
	require.Empty(t, Links(m))
}
