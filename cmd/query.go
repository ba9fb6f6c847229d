package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/funding"
	"github.com/google/subcommands"
)

type queryCmd struct {
	top int
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from a profile with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `fnd query overall <path>
fnd query startup <name> <path>
fnd query investor <query> <path>

  Computes a profile and prints the values selected by the JSONPath
  expression, as JSON. The profile fields are those of the HTTP API,
  see 'fnd topic profiles'.

  Example:

    fnd query overall '$.topSectors[*].key'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "top", 0, "Size of the rankings. Defaults to the configured top.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 2 || (args[0] != "overall" && len(args) < 3) {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	kind, path := args[0], args[len(args)-1]
	name := strings.Join(args[1:len(args)-1], " ")

	a, status := newApp()
	if a == nil {
		return status
	}

	var (
		profile any
		err     error
	)
	switch kind {
	case "overall":
		profile, err = a.analyzer.Overall(funding.OverallOptions{Trend: funding.Sum, TopN: a.top(c.top)})
	case "startup":
		profile, err = a.analyzer.Startup(name, funding.StartupOptions{Peers: a.top(c.top)})
	case "investor":
		profile, err = a.analyzer.Investor(name, funding.InvestorOptions{})
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown profile %q, expected overall, startup or investor.\n", kind)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := query(os.Stdout, profile, path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// query writes the values of v selected by the JSONPath expression path.
func query(w io.Writer, v any, path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("error decoding profile: %w", err)
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", path, err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(val)
}
