// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"text/template"

	"github.com/z5labs/konfig/env"
	"github.com/z5labs/konfig/internal/try"
)

// RenderTextTemplateOption represents options for configuring the TextTemplateRenderer.
type RenderTextTemplateOption func(*TextTemplateRenderer)

// TemplateFunc registers the given function, f, for use in the document
// template via the given name.
func TemplateFunc(name string, f any) RenderTextTemplateOption {
	return func(ttr *TextTemplateRenderer) {
		ttr.funcs[name] = f
	}
}

// TemplateDelims sets the action delimiters to the specified strings.
// An empty delimiter stands for the corresponding default: {{ or }}.
func TemplateDelims(left, right string) RenderTextTemplateOption {
	return func(ttr *TextTemplateRenderer) {
		ttr.leftDelim = left
		ttr.rightDelim = right
	}
}

// TemplateEnv registers the "env" and "default" template functions.
// "env" looks variables up in e and renders unset ones as the empty
// string. "default" returns its first argument when the second is
// nil or the zero value of its type.
//
//	host = "{{ env "DB_HOST" | default "localhost" }}"
func TemplateEnv(e env.Environment) RenderTextTemplateOption {
	return func(ttr *TextTemplateRenderer) {
		ttr.funcs["env"] = func(name string) string {
			v, _ := e.LookupEnv(name)
			return v
		}
		ttr.funcs["default"] = defaultFunc
	}
}

func defaultFunc(def, v any) any {
	if v == nil {
		return def
	}
	if reflect.ValueOf(v).IsZero() {
		return def
	}
	return v
}

// TextTemplateRenderer is an io.Reader that renders a text/template from
// a given io.Reader. The rendered document can then be read via [TextTemplateRenderer.Read].
type TextTemplateRenderer struct {
	r io.Reader

	leftDelim  string
	rightDelim string
	funcs      template.FuncMap
	renderOnce sync.Once
	renderErr  error
	buf        bytes.Buffer
}

// RenderTextTemplate configures a TextTemplateRenderer.
func RenderTextTemplate(r io.Reader, opts ...RenderTextTemplateOption) *TextTemplateRenderer {
	ttr := &TextTemplateRenderer{
		r:     r,
		funcs: make(template.FuncMap),
	}
	for _, opt := range opts {
		opt(ttr)
	}
	return ttr
}

// TextTemplateParseError occurs when the document template fails to be parsed.
type TextTemplateParseError struct {
	Cause error
}

// Error implements the error interface.
func (e TextTemplateParseError) Error() string {
	return fmt.Sprintf("failed to parse document template: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e TextTemplateParseError) Unwrap() error {
	return e.Cause
}

// TextTemplateExecError occurs when a template fails to execute. Most
// likely cause is using template functions returning an error or panicing.
type TextTemplateExecError struct {
	Cause error
}

// Error implements the error interface.
func (e TextTemplateExecError) Error() string {
	return fmt.Sprintf("failed to exec document template: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e TextTemplateExecError) Unwrap() error {
	return e.Cause
}

// Read implements the [io.Reader] interface. The template is rendered
// in full on the first call.
func (ttr *TextTemplateRenderer) Read(b []byte) (int, error) {
	ttr.renderOnce.Do(func() {
		ttr.renderErr = ttr.render()
	})
	if ttr.renderErr != nil {
		return 0, ttr.renderErr
	}
	return ttr.buf.Read(b)
}

// Close implements the [io.Closer] interface by closing the
// underlying reader, if it can be closed.
func (ttr *TextTemplateRenderer) Close() (err error) {
	try.Close(&err, ttr.r)
	return err
}

func (ttr *TextTemplateRenderer) render() error {
	var sb strings.Builder
	_, err := io.Copy(&sb, ttr.r)
	if err != nil {
		return err
	}

	tmpl, err := template.New("document").
		Delims(ttr.leftDelim, ttr.rightDelim).
		Funcs(ttr.funcs).
		Parse(sb.String())
	if err != nil {
		return TextTemplateParseError{Cause: err}
	}

	err = tmpl.Execute(&ttr.buf, struct{}{})
	if err != nil {
		return TextTemplateExecError{Cause: err}
	}
	return nil
}
