// Package cli parses the command line and runs one command per invocation.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"simpletasks/internal/commands"
	"simpletasks/internal/config"
	"simpletasks/internal/exitcode"
	"simpletasks/internal/logging"
	"simpletasks/internal/prompt"
	"simpletasks/internal/store"
)

// ErrUnknownCommand is reported for names missing from the registry.
var ErrUnknownCommand = errors.New("unknown command")

// CorruptedPrompt is asked before discarding an unreadable snapshot.
const CorruptedPrompt = "Delete file? All data will be lost."

// Repository loads and persists the task snapshot.
type Repository interface {
	Load() (*store.Store, error)
	Save(s *store.Store) error
	Remove() error
	Path() string
}

// RepositoryFactory creates a Repository from config.
// Used to inject storage during dispatch.
type RepositoryFactory func(cfg *config.Config) Repository

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  RepositoryFactory
	prompter prompt.Prompter
}

// NewDispatcher creates a new dispatcher. prompter may be nil, in which case a
// corrupted snapshot always aborts.
func NewDispatcher(registry *commands.Registry, factory RepositoryFactory, prompter prompt.Prompter) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		prompter: prompter,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: no command given")
		return exitcode.UserError
	}

	// Flags require a command, so a leading flag is reported as the command.
	cmdName := args[0]
	cmd, ok := d.registry.Find(cmdName)
	if strings.HasPrefix(cmdName, "-") || !ok {
		fmt.Fprintf(errOut, "error: %s: %s\n", ErrUnknownCommand, cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves
	fs.SetInterspersed(false)

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger, closeLog := logging.New(cfg, errOut)
	defer closeLog()
	logger.Debug("config resolved", "command", cmd.Name(), "dir", cfg.Dir, "data", cfg.DataPath())

	if !cmd.NeedsStore() {
		if _, err := cmd.Run(ctx, cfg, nil, fs.Args(), out); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	repo := d.factory(cfg)
	tasks, code := d.load(ctx, repo, logger, errOut)
	if tasks == nil {
		return code
	}

	mutated, err := cmd.Run(ctx, cfg, tasks, fs.Args(), out)
	if err != nil {
		logger.Debug("command failed", "command", cmd.Name(), "err", err)
		fmt.Fprintf(errOut, "error: %s\n", err)
		if errors.Is(err, store.ErrIO) {
			return exitcode.StoreError
		}
		return exitcode.UserError
	}
	logger.Debug("command finished", "command", cmd.Name(), "mutated", mutated)
	if !mutated {
		return exitcode.Success
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create storage directory: %s\n", err)
		return exitcode.StoreError
	}
	if err := repo.Save(tasks); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.StoreError
	}
	logger.Debug("store saved", "path", repo.Path(), "tasks", tasks.Len())

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// load returns the store, or nil and the exit code to stop with. A corrupted
// snapshot is only discarded after the operator confirms.
func (d *Dispatcher) load(ctx context.Context, repo Repository, logger *slog.Logger, errOut io.Writer) (*store.Store, int) {
	tasks, err := repo.Load()
	if err == nil {
		logger.Debug("store loaded", "path", repo.Path(), "tasks", tasks.Len())
		return tasks, exitcode.Success
	}

	fmt.Fprintf(errOut, "error: %s\n", err)
	if !errors.Is(err, store.ErrCorrupted) {
		return nil, exitcode.StoreError
	}
	if d.prompter == nil {
		return nil, exitcode.UserError
	}

	ok, err := d.prompter.Confirm(ctx, CorruptedPrompt)
	logger.Debug("corruption prompt answered", "delete", ok, "err", err)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return nil, exitcode.UserError
	}
	if !ok {
		return nil, exitcode.UserError
	}

	if err := repo.Remove(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return nil, exitcode.StoreError
	}
	return store.New(), exitcode.Success
}
