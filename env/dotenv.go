// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package env

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/z5labs/konfig/internal/try"
)

// InvalidDotenvError occurs if a dotenv source can not be parsed.
type InvalidDotenvError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e InvalidDotenvError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid dotenv: %s", e.Cause)
	}
	return fmt.Sprintf("invalid dotenv file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDotenvError) Unwrap() error {
	return e.Cause
}

// FromDotenv parses "KEY=VALUE" lines in the dotenv format. If r
// is also an [io.Closer] it will be closed.
func FromDotenv(r io.Reader) (_ Map, err error) {
	defer try.Close(&err, r)

	m, err := godotenv.Parse(r)
	if err != nil {
		return nil, InvalidDotenvError{Cause: err}
	}
	return Map(m), nil
}

// FromDotenvFile parses the dotenv file at path.
func FromDotenvFile(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	m, err := FromDotenv(f)
	if err != nil {
		var derr InvalidDotenvError
		if errors.As(err, &derr) {
			derr.Path = path
			return nil, derr
		}
		return nil, err
	}
	return m, nil
}
