// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/z5labs/konfig"
	"github.com/z5labs/konfig/internal/maskslog"
	"github.com/z5labs/konfig/internal/slogfield"
	"github.com/z5labs/konfig/manifest"
	"golang.org/x/sync/errgroup"
)

// ErrCheckFailed is returned by the check command when at
// least one document fails to resolve.
var ErrCheckFailed = errors.New("one or more configuration documents are invalid")

func (a *App) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Resolve each document against the environment and report any errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer errRecover(&err)

			opts, err := a.loadOptions()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			results := make([]error, len(args))

			var g errgroup.Group
			for i, path := range args {
				g.Go(func() (e error) {
					defer errRecover(&e)

					_, results[i] = konfig.Load[map[string]any](ctx, path, opts...)
					return nil
				})
			}
			err = g.Wait()
			if err != nil {
				return err
			}

			failed := false
			for i, path := range args {
				if results[i] == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
					continue
				}

				failed = true
				a.logInvalid(ctx, path, results[i])
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, a.describe(results[i]))
			}
			if failed {
				return ErrCheckFailed
			}
			return nil
		},
	}
}

// describe formats err for the check report, masking the raw value
// of a failed coercion unless values are shown.
func (a *App) describe(err error) string {
	var cerr manifest.CoercionError
	if a.show || !errors.As(err, &cerr) {
		return err.Error()
	}
	return cerr.Masked(maskslog.Mask)
}

func (a *App) logInvalid(ctx context.Context, path string, err error) {
	var cerr manifest.CoercionError
	if !errors.As(err, &cerr) {
		a.log.ErrorContext(ctx, "configuration document is invalid", slogfield.File(path), slogfield.Error(err))
		return
	}

	a.log.LogAttrs(
		ctx,
		slog.LevelError,
		"configuration document is invalid",
		slogfield.File(path),
		slogfield.KeyPath(cerr.Path),
		slogfield.EnvName(cerr.EnvName),
		slogfield.String("expected", cerr.Expected.String()),
		slogfield.Raw(cerr.Raw),
	)
}
