// Command diffconv renders a summary of a repository's changes: text
// patches with word-level highlights, image comparison sides, and binary
// or submodule markers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fwojciec/diffconv/chroma"
	"github.com/fwojciec/diffconv/gitcli"
	"github.com/fwojciec/diffconv/gitdiff"
	"github.com/fwojciec/diffconv/godiff"
)

func main() {
	repo := flag.String("repo", ".", "path to the git repository")
	rev := flag.String("rev", "", "commit to show; empty shows the working tree")
	flag.Parse()

	client := gitcli.New(*repo)
	app := &App{
		Repo:   client,
		Reader: client,
		Parser: gitdiff.NewParser(),
		Words:  godiff.NewDiffer(),
		Tokens: chroma.NewTokenizer(),
		Rev:    *rev,
		Out:    os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil {
		if errors.Is(err, ErrNoChanges) {
			fmt.Fprintln(os.Stderr, "nothing to show")
			return
		}
		fmt.Fprintln(os.Stderr, "diffconv:", err)
		os.Exit(1)
	}
}
