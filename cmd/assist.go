package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/funding/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `fnd assist [-model <name>] [<question>]

  Starts an interactive session with the AI assistant. The assistant reads the
  ledger through the same reports as the other commands.

  The Gemini API key is read from the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model. Defaults to the configured model.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	a, status := newApp()
	if a == nil {
		return status
	}
	model := c.model
	if model == "" {
		model = a.cfg.Assist.Model
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(model, a.analyzer, a.renderOptions())
	analyst.Log = a.log
	researcher := agent.NewResearcher(model)
	researcher.Log = a.log
	assistant := agent.New(os.Stdout, os.Stdin, model, analyst, researcher)

	if err := assistant.Run(ctx, client, renderMarkdown, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
