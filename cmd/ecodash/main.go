// Package main is the ecodash command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/ecodash/internal/cli"
	"github.com/rshade/ecodash/pkg/version"
)

func main() {
	if err := run(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(version.GetVersion()).ExecuteContext(ctx)
}
