// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command viewplot renders numeric text files as density or scatter
// plots to PNG, optionally re-rendering whenever the input changes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a := newApp(termenv.NewOutput(os.Stderr))
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.term, a.term.String("error: "+err.Error()).Foreground(termenv.ANSIRed))
		stop()
		os.Exit(1)
	}
}
