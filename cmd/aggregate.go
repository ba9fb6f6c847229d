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

type aggregateCmd struct {
	by     string
	reduce string
	top    int
}

func (*aggregateCmd) Name() string     { return "aggregate" }
func (*aggregateCmd) Synopsis() string { return "group the events along a dimension" }
func (*aggregateCmd) Usage() string {
	return `fnd aggregate -by <dimension> [-reduce sum|count|mean|max] [-top <n>]

  Groups the events of the ledger by startup, sector, city, round, investor
  or calendar period (day, week, month, quarter, year) and ranks the groups
  by a statistic of their amounts. See 'fnd topic dimensions'.
`
}

func (c *aggregateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "sector", "Dimension to group by.")
	f.StringVar(&c.reduce, "reduce", "sum", "Statistic of each group: sum, count, mean or max.")
	f.IntVar(&c.top, "top", 0, "Number of groups to display, all when 0.")
}

func (c *aggregateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dim, err := funding.ParseDimension(c.by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing dimension: %v\n", err)
		return subcommands.ExitUsageError
	}
	r, err := funding.ParseReducer(c.reduce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing reducer: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, status := newApp()
	if a == nil {
		return status
	}

	l := a.analyzer.Ledger()
	agg := funding.Aggregate(l.Events(), dim, r)
	groups := agg.Groups
	if c.top > 0 || !dim.Temporal() {
		groups = funding.TopK(agg, c.top)
	}
	printMarkdown(renderer.AggregationMarkdown(agg, groups, l.Currency(), a.renderOptions()))
	return subcommands.ExitSuccess
}
