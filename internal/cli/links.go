// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/z5labs/konfig"
	"github.com/z5labs/konfig/document"
	"github.com/z5labs/konfig/internal/try"
	"github.com/z5labs/konfig/manifest"
)

// Link statuses reported by the links command.
const (
	StatusSet     = "set"
	StatusDefault = "default"
	StatusMissing = "missing"
)

func (a *App) linksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links FILE",
		Short: "List every environment variable a document links to",
		Long: `List every environment variable a document links to along with
whether it is set, will fall back to its default or is missing.

Values are never printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer errRecover(&err)

			links, err := a.links(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tENV\tSTATUS")
			for _, link := range links {
				fmt.Fprintf(w, "%s\t%s\t%s\n", link.Path.Key(), link.EnvName, a.status(link))
			}
			return w.Flush()
		},
	}
}

func (a *App) links(path string) (_ []manifest.Link, err error) {
	opts, err := a.loadOptions()
	if err != nil {
		return nil, err
	}

	f, err := a.formatOf(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, konfig.FileError{Path: path, Cause: err}
	}
	defer try.Close(&err, file)

	m, err := konfig.Classify(file, f, opts...)
	if err != nil {
		return nil, err
	}
	return manifest.Links(m), nil
}

func (a *App) formatOf(path string) (document.Format, error) {
	if a.format != "" {
		return document.ParseFormat(a.format)
	}
	return document.FormatOf(path)
}

func (a *App) status(link manifest.Link) string {
	if _, ok := a.env.LookupEnv(link.EnvName); ok {
		return StatusSet
	}
	if link.HasDefault() {
		return StatusDefault
	}
	return StatusMissing
}
