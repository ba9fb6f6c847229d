package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/funding"
	"github.com/google/subcommands"
)

type importCmd struct {
	output string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "convert a CSV file into a ledger" }
func (*importCmd) Usage() string {
	return `fnd import [-o <ledger>] <file>

  Reads funding events from a CSV file (or a JSONL ledger) and writes them in
  the canonical JSONL form of the ledger. See 'fnd topic ledger'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Ledger file to write. Defaults to the configured ledger.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	output := c.output
	if output == "" {
		output = cfg.Ledger
	}

	l, err := funding.OpenLedger(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := funding.SaveLedger(output, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d events into %s\n", l.Len(), output)
	return subcommands.ExitSuccess
}
