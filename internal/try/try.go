// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides helpers for deferred cleanup which must not
// swallow errors.
package try

import (
	"errors"
	"fmt"
	"io"
)

// CloseError occurs when closing a document or dotenv source fails.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v if it implements [io.Closer]. A close failure is
// wrapped in a [CloseError] and joined with any error already in err.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	wrapped := CloseError{Cause: cerr}
	if *err == nil {
		*err = wrapped
		return
	}
	*err = errors.Join(*err, wrapped)
}
