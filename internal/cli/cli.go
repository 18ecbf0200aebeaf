// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the konfig command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/z5labs/konfig"
	"github.com/z5labs/konfig/document"
	"github.com/z5labs/konfig/env"
	"github.com/z5labs/konfig/internal/maskslog"
	"github.com/z5labs/konfig/internal/slogfield"
)

// Option configures an App.
type Option func(*App)

// Stdout sets where command output is written.
func Stdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// Stderr sets where logs are written.
func Stderr(w io.Writer) Option {
	return func(a *App) {
		a.stderr = w
	}
}

// Environment sets the base environment which any --env-file
// layers sit beneath.
func Environment(e env.Environment) Option {
	return func(a *App) {
		a.env = e
	}
}

// App is the konfig command line tool.
type App struct {
	stdout io.Writer
	stderr io.Writer
	env    env.Environment

	logLevel string
	envFiles []string
	format   string
	template bool
	show     bool

	log *slog.Logger
}

// New returns a fully initialized App.
func New(opts ...Option) *App {
	a := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		env:    env.OS(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command described by args.
func (a *App) Run(ctx context.Context, args ...string) error {
	cmd := a.buildCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	return cmd.ExecuteContext(ctx)
}

func (a *App) buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "konfig",
		Short:         "Inspect and validate konfig configuration documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			defer errRecover(&err)

			var level slog.Level
			err = level.UnmarshalText([]byte(a.logLevel))
			if err != nil {
				return err
			}
			var h slog.Handler = slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
				Level: level,
			})
			if !a.show {
				h = maskslog.NewHandler(h, maskslog.Attr(slogfield.RawKey, maskslog.Anonymous))
			}
			a.log = slog.New(h)

			layers := []env.Environment{a.env}
			for _, path := range a.envFiles {
				m, err := env.FromDotenvFile(path)
				if err != nil {
					return err
				}
				layers = append(layers, m)
			}
			a.env = env.Layer(layers...)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "WARN", "log level (DEBUG|INFO|WARN|ERROR)")
	flags.StringArrayVar(&a.envFiles, "env-file", nil, "dotenv file consulted after the process environment, may be repeated")
	flags.StringVar(&a.format, "format", "", "document format (toml|json|yaml), detected from the file extension when empty")
	flags.BoolVar(&a.template, "template", false, "render documents as text templates before parsing")
	flags.BoolVar(&a.show, "show-values", false, "log raw environment variable values instead of masking them")

	cmd.AddCommand(
		a.checkCmd(),
		a.linksCmd(),
	)
	return cmd
}

func (a *App) loadOptions() ([]konfig.Option, error) {
	opts := []konfig.Option{
		konfig.WithEnvironment(a.env),
		konfig.WithLogger(a.log),
	}
	if a.format != "" {
		f, err := document.ParseFormat(a.format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, konfig.WithFormat(f))
	}
	if a.template {
		opts = append(opts, konfig.WithTextTemplate())
	}
	return opts, nil
}

type panicError struct {
	v any
}

func (e panicError) Error() string {
	return fmt.Sprintf("konfig: recovered from a panic caused by: %v", e.v)
}

func errRecover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = panicError{v: r}
}
