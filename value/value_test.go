// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Accessors(t *testing.T) {
	t.Run("will only report the held variant", func(t *testing.T) {
		v := Integer(42)

		i, ok := v.AsInteger()
		require.True(t, ok)
		require.Equal(t, int64(42), i)

		_, ok = v.AsFloat()
		require.False(t, ok)
		_, ok = v.AsString()
		require.False(t, ok)
		_, ok = v.AsBoolean()
		require.False(t, ok)
		_, ok = v.AsArray()
		require.False(t, ok)
		_, ok = v.AsTable()
		require.False(t, ok)
	})

	t.Run("will not convert a float into an integer", func(t *testing.T) {
		_, ok := Float(1).AsInteger()
		require.False(t, ok)
	})

	t.Run("will report the zero value as invalid", func(t *testing.T) {
		var v Value
		require.False(t, v.IsValid())
		require.Equal(t, KindInvalid, v.Kind())
		require.Nil(t, v.Native())
	})
}

func TestValue_Equal(t *testing.T) {
	testCases := []struct {
		name  string
		a     Value
		b     Value
		equal bool
	}{
		{
			name:  "same strings",
			a:     String("a"),
			b:     String("a"),
			equal: true,
		},
		{
			name:  "different kinds",
			a:     Integer(1),
			b:     Float(1),
			equal: false,
		},
		{
			name:  "arrays with same elements",
			a:     Array(Integer(1), Integer(2)),
			b:     Array(Integer(1), Integer(2)),
			equal: true,
		},
		{
			name:  "arrays with different lengths",
			a:     Array(Integer(1)),
			b:     Array(Integer(1), Integer(2)),
			equal: false,
		},
		{
			name:  "tables ignore key order",
			a:     tableOf("a", Integer(1), "b", Boolean(true)),
			b:     tableOf("b", Boolean(true), "a", Integer(1)),
			equal: true,
		},
		{
			name:  "tables with different values",
			a:     tableOf("a", Integer(1)),
			b:     tableOf("a", Integer(2)),
			equal: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.equal, tc.a.Equal(tc.b))
			require.Equal(t, tc.equal, tc.b.Equal(tc.a))
		})
	}
}

func TestValue_String(t *testing.T) {
	testCases := []struct {
		name     string
		value    Value
		expected string
	}{
		{
			name:     "string is quoted",
			value:    String("hi"),
			expected: `"hi"`,
		},
		{
			name:     "whole float keeps a fraction",
			value:    Float(2),
			expected: "2.0",
		},
		{
			name:     "array",
			value:    Array(Integer(1), Boolean(false)),
			expected: "[1, false]",
		},
		{
			name:     "table in insertion order",
			value:    tableOf("b", Integer(1), "a", String("x")),
			expected: `{"b" = 1, "a" = "x"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.value.String())
		})
	}
}

func TestValue_String_roundTripsThroughParseLiteral(t *testing.T) {
	v := tableOf(
		"name", String("svc"),
		"ports", Array(Integer(80), Integer(443)),
		"ratio", Float(0.5),
	)

	parsed, err := ParseLiteral(v.String())
	require.NoError(t, err)
	require.True(t, v.Equal(parsed))
}

func TestTable_Set(t *testing.T) {
	t.Run("will keep the original position when replacing a key", func(t *testing.T) {
		tbl := NewTable()
		tbl.Set("a", Integer(1))
		tbl.Set("b", Integer(2))
		tbl.Set("a", Integer(3))

		assert.Equal(t, []string{"a", "b"}, tbl.Keys())
		v, ok := tbl.Get("a")
		assert.True(t, ok)
		assert.Equal(t, Integer(3), v)
	})
}

func TestTable_zero(t *testing.T) {
	var tbl Table
	tbl.Set("a", Integer(1))

	require.Equal(t, []string{"a"}, tbl.Keys())
	v, ok := tbl.Get("a")
	require.True(t, ok)
	require.Equal(t, Integer(1), v)
}

func TestTable_nil(t *testing.T) {
	var tbl *Table
	require.Equal(t, 0, tbl.Len())
	require.False(t, tbl.Has("a"))
	require.Nil(t, tbl.Keys())
}

func tableOf(kvs ...any) Value {
	t := NewTable()
	for i := 0; i < len(kvs); i += 2 {
		t.Set(kvs[i].(string), kvs[i+1].(Value))
	}
	return FromTable(t)
}
