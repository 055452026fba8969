package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"simpletasks/internal/config"
	"simpletasks/internal/store"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "simpletasks delete [--] <title>" }
func (c *DeleteCmd) NeedsStore() bool  { return true }

func (c *DeleteCmd) RegisterFlags(fs *pflag.FlagSet) {}

// Run removes the single named task. Multi-word titles must be quoted.
func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, tasks *store.Store, args []string, out io.Writer) (bool, error) {
	title, err := singleTitle(args)
	if err != nil {
		return false, err
	}
	if err := tasks.Delete(title); err != nil {
		return false, err
	}
	return true, nil
}
