// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/z5labs/konfig/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := cli.New().Run(ctx, os.Args[1:]...)
	if err == nil {
		return
	}
	if err != cli.ErrCheckFailed {
		fmt.Fprintln(os.Stderr, err)
	}
	cancel()
	os.Exit(1)
}
