package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"simpletasks/internal/config"
	"simpletasks/internal/store"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Mark a task completed" }
func (c *CompleteCmd) Usage() string     { return "simpletasks complete [--] <title>" }
func (c *CompleteCmd) NeedsStore() bool  { return true }

func (c *CompleteCmd) RegisterFlags(fs *pflag.FlagSet) {}

// Run marks the single named task completed. Already-completed tasks
// still count as a mutation.
func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, tasks *store.Store, args []string, out io.Writer) (bool, error) {
	title, err := singleTitle(args)
	if err != nil {
		return false, err
	}
	if err := tasks.Complete(title); err != nil {
		return false, err
	}
	return true, nil
}
