package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/funding"
	"github.com/etnz/funding/renderer"
	"github.com/google/subcommands"
)

type overallCmd struct {
	trend string
	top   int
}

func (*overallCmd) Name() string     { return "overall" }
func (*overallCmd) Synopsis() string { return "display the overview of the funding ecosystem" }
func (*overallCmd) Usage() string {
	return `fnd overall [-trend sum|count] [-top <n>]

  Displays the totals of the ledger, the month-on-month trend and the top
  sectors, cities, startups and investors.
`
}

func (c *overallCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.trend, "trend", "sum", "Month-on-month metric: sum of the amounts or count of the deals.")
	f.IntVar(&c.top, "top", 0, "Size of the rankings. Defaults to the configured top.")
}

func (c *overallCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trend, err := funding.ParseReducer(c.trend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing trend: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, status := newApp()
	if a == nil {
		return status
	}

	p, err := a.analyzer.Overall(funding.OverallOptions{Trend: trend, TopN: a.top(c.top)})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OverallMarkdown(p, a.renderOptions()))
	return subcommands.ExitSuccess
}
