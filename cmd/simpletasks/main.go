// Package main is the entry point for the simpletasks CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"simpletasks/internal/cli"
	"simpletasks/internal/commands"
	"simpletasks/internal/config"
	"simpletasks/internal/prompt"
	"simpletasks/internal/store"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	factory := func(cfg *config.Config) cli.Repository {
		return store.NewFile(cfg.DataPath())
	}

	// The corruption prompt shares stderr with diagnostics.
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory, prompt.New(os.Stdin, os.Stderr))

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
