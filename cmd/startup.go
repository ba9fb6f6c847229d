package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/funding"
	"github.com/etnz/funding/renderer"
	"github.com/google/subcommands"
)

type startupCmd struct {
	peers int
}

func (*startupCmd) Name() string     { return "startup" }
func (*startupCmd) Synopsis() string { return "display the funding profile of a startup" }
func (*startupCmd) Usage() string {
	return `fnd startup [-peers <n>] <name>

  Displays the funding history, trajectory and investors of a startup, its
  rank within its sector and how its deals compare with its city.

  The name must match exactly, use 'fnd startups' to search for it.
`
}

func (c *startupCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.peers, "peers", 0, "Number of sector peers to rank. Defaults to the configured top.")
}

func (c *startupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: a startup name is required.")
		return subcommands.ExitUsageError
	}

	a, status := newApp()
	if a == nil {
		return status
	}

	p, err := a.analyzer.Startup(name, funding.StartupOptions{Peers: a.top(c.peers)})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StartupMarkdown(p, a.renderOptions()))
	return subcommands.ExitSuccess
}
