package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"simpletasks/internal/config"
	"simpletasks/internal/store"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change a task's description or title" }
func (c *EditCmd) Usage() string {
	return "simpletasks edit [--] <title> [description... | -t <new title> | -d <description> | -t <new title> -d <description>]"
}
func (c *EditCmd) NeedsStore() bool { return true }

// RegisterFlags registers nothing: -t and -d are read from the raw tail by
// ParseEditArgs, and the flag set stops at the title.
func (c *EditCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, tasks *store.Store, args []string, out io.Writer) (bool, error) {
	if len(args) == 0 {
		return false, ErrMissingArgument
	}
	title := args[0]
	current, ok := tasks.Get(title)
	if !ok {
		return false, fmt.Errorf("task %s %w", title, store.ErrUnknownTitle)
	}

	req := ParseEditArgs(args[1:])

	if req.Rename {
		desc := current.Description
		if req.Describe {
			desc = req.Description
		}
		if err := tasks.Rename(title, req.Title, desc); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := tasks.SetDescription(title, req.Description); err != nil {
		return false, err
	}
	return true, nil
}
