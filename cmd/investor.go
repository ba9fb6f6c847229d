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

type investorCmd struct {
	recent      int
	biggest     int
	coInvestors int
}

func (*investorCmd) Name() string     { return "investor" }
func (*investorCmd) Synopsis() string { return "display the profile of an investor" }
func (*investorCmd) Usage() string {
	return `fnd investor [-recent <n>] [-biggest <n>] [-coinvestors <n>] <query>

  Displays the investments of every investor whose name contains the query,
  ignoring case: recent and biggest deals, sectors, cities and rounds, the
  yearly trend and the usual co-investors.
`
}

func (c *investorCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "recent", funding.DefaultRecent, "Number of recent investments.")
	f.IntVar(&c.biggest, "biggest", funding.DefaultBiggest, "Number of biggest investments.")
	f.IntVar(&c.coInvestors, "coinvestors", funding.DefaultCoInvestors, "Number of co-investors.")
}

func (c *investorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.TrimSpace(strings.Join(f.Args(), " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "Error: an investor name is required.")
		return subcommands.ExitUsageError
	}

	a, status := newApp()
	if a == nil {
		return status
	}

	p, err := a.analyzer.Investor(query, funding.InvestorOptions{Recent: c.recent, Biggest: c.biggest, CoInvestors: c.coInvestors})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InvestorMarkdown(p, a.renderOptions()))
	return subcommands.ExitSuccess
}
