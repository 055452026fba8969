// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/pflag"

	"simpletasks/internal/config"
	"simpletasks/internal/store"
)

var (
	// ErrMissingArgument is returned when a required task name is absent.
	ErrMissingArgument = errors.New("no task name given")

	// ErrUnexpectedArgument is returned for extra tokens after a task name.
	ErrUnexpectedArgument = errors.New("unexpected arguments after task name")

	// ErrConflictingFlags is returned for mutually exclusive flags.
	ErrConflictingFlags = errors.New("conflicting flags")
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or writes tasks.
	// Commands like help and version return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags. The flag set stops at
	// the first positional argument unless the command calls
	// fs.SetInterspersed(true).
	RegisterFlags(fs *pflag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// tasks is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns true if tasks was modified and must be saved.
	Run(ctx context.Context, cfg *config.Config, tasks *store.Store, args []string, out io.Writer) (bool, error)
}

// singleTitle validates that args hold exactly one task name.
func singleTitle(args []string) (string, error) {
	switch {
	case len(args) == 0:
		return "", ErrMissingArgument
	case len(args) > 1:
		return "", ErrUnexpectedArgument
	}
	return args[0], nil
}
