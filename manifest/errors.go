// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package manifest

import (
	"fmt"

	"github.com/z5labs/konfig/key"
	"github.com/z5labs/konfig/value"
)

// ClassificationError occurs when a document node can not be
// classified into an [Entry].
type ClassificationError struct {
	Path   key.Chain
	Reason string
	Cause  error
}

// Error implements the error interface.
func (e ClassificationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("failed to classify %s: %s", e.Path.Key(), e.Reason)
	}
	return fmt.Sprintf("failed to classify %s: %s: %s", e.Path.Key(), e.Reason, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ClassificationError) Unwrap() error {
	return e.Cause
}

// EmptyEnvNameError occurs when a [Linked] entry names the empty string
// as its environment variable.
type EmptyEnvNameError struct {
	Path key.Chain
}

// Error implements the error interface.
func (e EmptyEnvNameError) Error() string {
	return fmt.Sprintf("empty environment variable name at %s", e.Path.Key())
}

// CoercionError occurs when an environment variable can not be parsed
// as the kind of its entry's default value.
type CoercionError struct {
	// Path points at the linked entry or, for arrays and tables,
	// at the offending element within it.
	Path     key.Chain
	EnvName  string
	Expected value.Kind
	Raw      string
	Cause    error
}

// Error implements the error interface.
func (e CoercionError) Error() string {
	msg := fmt.Sprintf("failed to coerce %q into %s", e.Raw, e.Expected)
	if e.EnvName != "" {
		msg = fmt.Sprintf("failed to coerce environment variable %s=%q into %s", e.EnvName, e.Raw, e.Expected)
	}
	if len(e.Path) > 0 {
		msg += " at " + e.Path.Key()
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CoercionError) Unwrap() error {
	return e.Cause
}

// Masked formats e like [CoercionError.Error] but with the raw value
// replaced by mask. The cause is left out since it may quote the value.
func (e CoercionError) Masked(mask string) string {
	msg := fmt.Sprintf("failed to coerce %s into %s", mask, e.Expected)
	if e.EnvName != "" {
		msg = fmt.Sprintf("failed to coerce environment variable %s=%s into %s", e.EnvName, mask, e.Expected)
	}
	if len(e.Path) > 0 {
		msg += " at " + e.Path.Key()
	}
	return msg
}
