package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"simpletasks/internal/config"
	"simpletasks/internal/output"
	"simpletasks/internal/query"
	"simpletasks/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Non-flag arguments are filter terms; flags may appear anywhere.
type ListCmd struct {
	ignoreCase bool
	titleOnly  bool
	asc        bool
	desc       bool
	mixed      bool
}

// SetOptions sets the flag values (for testing).
func (c *ListCmd) SetOptions(ignoreCase, titleOnly, asc, desc, mixed bool) {
	c.ignoreCase, c.titleOnly, c.asc, c.desc, c.mixed = ignoreCase, titleOnly, asc, desc, mixed
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "simpletasks list [filter...] [-i] [-t] [-a|-d] [-m]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.SetInterspersed(true)
	fs.BoolVarP(&c.ignoreCase, "ignore-case", "i", false, "")
	fs.BoolVarP(&c.titleOnly, "title-only", "t", false, "")
	fs.BoolVarP(&c.asc, "asc", "a", false, "")
	fs.BoolVarP(&c.desc, "desc", "d", false, "")
	fs.BoolVarP(&c.mixed, "mixed", "m", false, "")
}

// Run prints matching tasks. It never modifies tasks.
func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, tasks *store.Store, args []string, out io.Writer) (bool, error) {
	if c.asc && c.desc {
		return false, fmt.Errorf("%w: -a and -d are mutually exclusive", ErrConflictingFlags)
	}

	opts := query.Options{
		Terms:      args,
		IgnoreCase: c.ignoreCase,
		TitleOnly:  c.titleOnly,
		Mixed:      c.mixed,
	}
	switch {
	case c.asc:
		opts.Order = query.Ascending
	case c.desc:
		opts.Order = query.Descending
	}

	entries := query.Run(tasks, opts)
	if len(entries) == 0 {
		output.FormatEmpty(out)
		return false, nil
	}

	styles := output.NewStyles(out, cfg.ColorMode())
	for _, e := range entries {
		output.FormatTask(out, styles, e)
	}
	return false, nil
}
