package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"simpletasks/internal/config"
	"simpletasks/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "simpletasks add [--] <title> [description...]" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {}

// Run adds args[0] with the remaining args joined as its description.
func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, tasks *store.Store, args []string, out io.Writer) (bool, error) {
	if len(args) == 0 {
		return false, ErrMissingArgument
	}
	if err := tasks.Add(args[0], strings.Join(args[1:], " ")); err != nil {
		return false, err
	}
	return true, nil
}
