package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/funding"
	"github.com/google/subcommands"
)

// printNames prints the names containing query, ignoring case, one per line.
func printNames(w io.Writer, names []string, query string) int {
	matches := funding.MatchNames(names, query)
	for _, name := range matches {
		fmt.Fprintln(w, name)
	}
	return len(matches)
}

type startupsCmd struct{}

func (*startupsCmd) Name() string     { return "startups" }
func (*startupsCmd) Synopsis() string { return "list the startups of the ledger" }
func (*startupsCmd) Usage() string {
	return `fnd startups [<query>]

  Lists the distinct startup names, sorted, optionally only those containing
  the query, ignoring case.
`
}

func (*startupsCmd) SetFlags(f *flag.FlagSet) {}

func (*startupsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := newApp()
	if a == nil {
		return status
	}
	printNames(os.Stdout, a.analyzer.Ledger().Startups(), strings.Join(f.Args(), " "))
	return subcommands.ExitSuccess
}

type investorsCmd struct{}

func (*investorsCmd) Name() string     { return "investors" }
func (*investorsCmd) Synopsis() string { return "list the investors of the ledger" }
func (*investorsCmd) Usage() string {
	return `fnd investors [<query>]

  Lists the distinct investor names, sorted, optionally only those containing
  the query, ignoring case. Names are split on commas and compared ignoring
  case, the first spelling found in the ledger is shown.
`
}

func (*investorsCmd) SetFlags(f *flag.FlagSet) {}

func (*investorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := newApp()
	if a == nil {
		return status
	}
	printNames(os.Stdout, a.analyzer.Ledger().Investors(), strings.Join(f.Args(), " "))
	return subcommands.ExitSuccess
}
