// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package konfig

import (
	"log/slog"

	"github.com/z5labs/konfig/document"
	"github.com/z5labs/konfig/env"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Option represents options for configuring how documents are loaded.
type Option func(*options)

type options struct {
	env            env.Environment
	log            *slog.Logger
	format         document.Format
	tmpl           bool
	tmplOpts       []document.RenderTextTemplateOption
	tracerProvider trace.TracerProvider
}

func newOptions(opts ...Option) *options {
	o := &options{
		env:            env.OS(),
		log:            slog.New(slog.DiscardHandler),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEnvironment sets where linked entries are looked up.
// The process environment is used by default.
func WithEnvironment(e env.Environment) Option {
	return func(o *options) {
		o.env = e
	}
}

// WithLogger sets the logger resolution decisions are written to.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithFormat overrides the document format which would
// otherwise be chosen from the file extension.
func WithFormat(f document.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithTextTemplate renders the document as a text/template before
// parsing it. The "env" and "default" template functions are always
// available and look variables up in the same environment as linked
// entries.
func WithTextTemplate(opts ...document.RenderTextTemplateOption) Option {
	return func(o *options) {
		o.tmpl = true
		o.tmplOpts = append(o.tmplOpts, opts...)
	}
}

// WithTracerProvider sets the provider spans are created from.
// The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}
