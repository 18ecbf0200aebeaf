// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// literalKey is the synthetic key a literal is bound to so it
// can be parsed as a single TOML key/value pair.
const literalKey = "literal"

var errTrailingContent = errors.New("unexpected content after literal")

// LiteralError occurs when a string is not a valid literal.
type LiteralError struct {
	Literal string
	Cause   error
}

// Error implements the error interface.
func (e LiteralError) Error() string {
	return fmt.Sprintf("invalid literal %q: %s", e.Literal, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e LiteralError) Unwrap() error {
	return e.Cause
}

// ParseLiteral parses s using the TOML value grammar regardless of
// which format the surrounding document was written in.
//
//	"true"          -> boolean
//	"42"            -> integer
//	"3.14"          -> float
//	`"hello"`       -> string
//	"[1, 2, 3]"     -> array of integers
//	"{a = 1}"       -> table
//
// Datetime literals are valid TOML but have no [Value] kind so
// they are rejected with an [UnsupportedTypeError] cause.
func ParseLiteral(s string) (Value, error) {
	var doc map[string]any
	md, err := toml.Decode(literalKey+" = "+s, &doc)
	if err != nil {
		return Value{}, LiteralError{Literal: s, Cause: err}
	}
	for _, k := range md.Keys() {
		if len(k) == 0 || k[0] != literalKey {
			return Value{}, LiteralError{Literal: s, Cause: errTrailingContent}
		}
	}

	v, err := FromNative(doc[literalKey])
	if err != nil {
		return Value{}, LiteralError{Literal: s, Cause: err}
	}
	return v, nil
}
