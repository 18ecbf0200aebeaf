// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package document parses configuration documents written in TOML, JSON
// (comments and trailing commas allowed) or YAML into native Go trees.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"github.com/z5labs/konfig/internal/try"
	"gopkg.in/yaml.v3"
)

// Format is the surface syntax of a document.
type Format int

// Supported document formats.
const (
	TOML Format = iota + 1
	JSON
	YAML
)

// String implements the [fmt.Stringer] interface.
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// UnknownFormatError occurs when a format can not be determined
// from a file extension or name.
type UnknownFormatError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown document format: %q", e.Name)
}

// FormatOf returns the format implied by the extension of path.
//
//	.toml         -> TOML
//	.json, .jsonc -> JSON
//	.yaml, .yml   -> YAML
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		return TOML, nil
	case ".json", ".jsonc":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, UnknownFormatError{Name: path}
	}
}

// ParseFormat returns the format with the given name, as printed by [Format.String].
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml":
		return TOML, nil
	case "json", "jsonc":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, UnknownFormatError{Name: name}
	}
}

// DocumentError occurs if a document is not valid in its format.
type DocumentError struct {
	Format Format
	Cause  error
}

// Error implements the error interface.
func (e DocumentError) Error() string {
	return fmt.Sprintf("invalid %s document: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DocumentError) Unwrap() error {
	return e.Cause
}

// Parse reads a whole document from r and decodes it in the given format.
// If r is also an [io.Closer] it will be closed. An empty document
// decodes into an empty map.
func Parse(r io.Reader, f Format) (_ map[string]any, err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	switch f {
	case TOML:
		err = toml.Unmarshal(b, &doc)
	case JSON:
		err = decodeJson(b, &doc)
	case YAML:
		err = yaml.Unmarshal(b, &doc)
	default:
		return nil, UnknownFormatError{Name: f.String()}
	}
	if err != nil {
		return nil, DocumentError{Format: f, Cause: err}
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

// decodeJson keeps numbers as json.Number so integers are
// not silently turned into floats.
func decodeJson(b []byte, v any) error {
	b = bytes.TrimSpace(jsonc.ToJSON(b))
	if len(b) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(v)
}
