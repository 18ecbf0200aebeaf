// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package konfig

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/z5labs/konfig/document"
	"github.com/z5labs/konfig/internal/slogfield"
	"github.com/z5labs/konfig/manifest"
	"github.com/z5labs/konfig/value"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/konfig"

// FileError occurs when a document can not be opened.
type FileError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e FileError) Error() string {
	return fmt.Sprintf("failed to open configuration document %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FileError) Unwrap() error {
	return e.Cause
}

// Load reads the document at path, resolves it against the environment
// and decodes the result into a T. The document format is chosen from the
// file extension unless overridden with [WithFormat].
func Load[T any](ctx context.Context, path string, opts ...Option) (T, error) {
	return load[T](ctx, path, func() (io.ReadCloser, error) {
		return os.Open(path)
	}, opts...)
}

// LoadFS is like [Load] but reads the document from fsys.
func LoadFS[T any](ctx context.Context, fsys fs.FS, path string, opts ...Option) (T, error) {
	return load[T](ctx, path, func() (io.ReadCloser, error) {
		return fsys.Open(path)
	}, opts...)
}

func load[T any](ctx context.Context, path string, open func() (io.ReadCloser, error), opts ...Option) (cfg T, err error) {
	o := newOptions(opts...)

	ctx, span := o.tracerProvider.Tracer(instrumentationName).Start(
		ctx,
		"konfig.Load",
		trace.WithAttributes(attribute.String("konfig.file", path)),
	)
	defer endSpan(span, &err)

	f := o.format
	if f == 0 {
		f, err = document.FormatOf(path)
		if err != nil {
			return cfg, err
		}
	}
	span.SetAttributes(attribute.String("konfig.format", f.String()))

	r, err := open()
	if err != nil {
		return cfg, FileError{Path: path, Cause: err}
	}

	o.log.LogAttrs(ctx, slog.LevelDebug, "loading configuration document", slogfield.File(path))

	t, err := resolve(r, f, o)
	if err != nil {
		return cfg, err
	}
	err = Unmarshal(t, &cfg)
	return cfg, err
}

// Parse reads a document in the given format from r, resolves it and
// decodes the result into a T. If r is also an [io.Closer] it will be closed.
func Parse[T any](ctx context.Context, r io.Reader, f document.Format, opts ...Option) (cfg T, err error) {
	o := newOptions(opts...)

	_, span := o.tracerProvider.Tracer(instrumentationName).Start(
		ctx,
		"konfig.Parse",
		trace.WithAttributes(attribute.String("konfig.format", f.String())),
	)
	defer endSpan(span, &err)

	t, err := resolve(r, f, o)
	if err != nil {
		return cfg, err
	}
	err = Unmarshal(t, &cfg)
	return cfg, err
}

// Resolve reads a document in the given format from r and returns the
// concrete value tree, without decoding it into any particular type.
func Resolve(ctx context.Context, r io.Reader, f document.Format, opts ...Option) (_ *value.Table, err error) {
	o := newOptions(opts...)

	_, span := o.tracerProvider.Tracer(instrumentationName).Start(
		ctx,
		"konfig.Resolve",
		trace.WithAttributes(attribute.String("konfig.format", f.String())),
	)
	defer endSpan(span, &err)

	return resolve(r, f, o)
}

// Classify reads a document in the given format from r and classifies
// its entries without resolving them.
func Classify(r io.Reader, f document.Format, opts ...Option) (manifest.Manifest, error) {
	return classify(r, f, newOptions(opts...))
}

func classify(r io.Reader, f document.Format, o *options) (manifest.Manifest, error) {
	if o.tmpl {
		tmplOpts := append([]document.RenderTextTemplateOption{document.TemplateEnv(o.env)}, o.tmplOpts...)
		r = document.RenderTextTemplate(r, tmplOpts...)
	}

	doc, err := document.Parse(r, f)
	if err != nil {
		return manifest.Manifest{}, err
	}
	return manifest.FromDocument(doc)
}

func resolve(r io.Reader, f document.Format, o *options) (*value.Table, error) {
	m, err := classify(r, f, o)
	if err != nil {
		return nil, err
	}

	resolver := manifest.NewResolver(o.env, manifest.WithLogger(o.log))
	return resolver.Resolve(m)
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
