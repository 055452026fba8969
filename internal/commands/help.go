package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"simpletasks/internal/config"
	"simpletasks/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
// The command list comes from Registry, or DefaultRegistry when nil.
type HelpCmd struct {
	Registry *Registry
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "simpletasks help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, tasks *store.Store, args []string, out io.Writer) (bool, error) {
	r := c.Registry
	if r == nil {
		r = DefaultRegistry
	}
	cmds := r.All()

	fmt.Fprintln(out, "Usage:")
	for _, cmd := range cmds {
		fmt.Fprintf(out, "  %s\n", cmd.Usage())
	}

	fmt.Fprintln(out, "\nCommands:")
	for _, cmd := range cmds {
		line := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			line += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-9s %s\n", cmd.Name(), line)
	}

	fmt.Fprint(out, flagsText)
	return false, nil
}

const flagsText = `
List flags:
  -i, --ignore-case   Match filter terms case-insensitively
  -t, --title-only    Match filter terms against titles only
  -a, --asc           Sort by description, ascending
  -d, --desc          Sort by description, descending
  -m, --mixed         Do not group incomplete tasks first

Common flags (before the title):
  --config <dir>   Override storage directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --               End of flags; needed for titles starting with "-"
`
