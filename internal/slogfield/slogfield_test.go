// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slogfield

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/z5labs/konfig/key"
)

func TestJsonHandler(t *testing.T) {
	testCases := []struct {
		Name  string
		Attrs []any
		Key   string
		Want  any
	}{
		{
			Name:  "error",
			Attrs: []any{Error(errors.New("boom"))},
			Key:   "error",
			Want:  "boom",
		},
		{
			Name:  "key path",
			Attrs: []any{KeyPath(key.Chain{key.Name("servers"), key.Index(0), key.Name("host")})},
			Key:   "key_path",
			Want:  "servers[0].host",
		},
		{
			Name:  "env name",
			Attrs: []any{EnvName("DB_HOST")},
			Key:   "env_name",
			Want:  "DB_HOST",
		},
		{
			Name:  "source",
			Attrs: []any{Source("default")},
			Key:   "source",
			Want:  "default",
		},
		{
			Name:  "file",
			Attrs: []any{File("config.toml")},
			Key:   "file",
			Want:  "config.toml",
		},
		{
			Name:  "raw",
			Attrs: []any{Raw("8080")},
			Key:   RawKey,
			Want:  "8080",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))
			log.Info("hello", testCase.Attrs...)

			var res map[string]any
			err := json.Unmarshal(buf.Bytes(), &res)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, testCase.Want, res[testCase.Key]) {
				return
			}
		})
	}
}
