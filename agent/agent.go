// Package agent implements fnd assist: a facilitator model answering the
// user with the help of expert models.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	scanner     *bufio.Scanner
	Facilitator *Expert
	Experts     []*Expert
}

// New creates a new Agent whose facilitator, running model, dispatches the
// user's questions to the experts.
//
// The agent writes to w (e.g., os.Stdout) and reads the user's input from r
// (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, model string, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		scanner:     bufio.NewScanner(r),
		Experts:     experts,
		Facilitator: newFacilitator(model, experts...),
	}
}

// Start creates the chats of the facilitator and of every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range append(slices.Clone(a.Experts), a.Facilitator) {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return nil
}

const prompt = "assist> "

// farewells end the session.
var farewells = []string{"bye", "exit", "quit"}

// Run is the chat session: it reads questions until the input ends or the
// user says bye. The prompts are asked first, as if the user had typed them.
//
// Answers are printed with render, which receives markdown.
func (a *Agent) Run(ctx context.Context, client *genai.Client, render func(io.Writer, string), prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to fnd funding assist. Type 'bye' to exit.")
	for {
		input, ok := a.next(&prompts)
		if !ok {
			return a.scanner.Err()
		}
		if input == "" {
			continue
		}
		if slices.Contains(farewells, strings.ToLower(input)) {
			return nil
		}

		answer, err := a.Facilitator.Ask(ctx, genai.NewPartFromText(input))
		if err != nil {
			return err
		}
		render(a.w, answer)
	}
}

// next prints the prompt and returns the next question: a pending prompt,
// echoed, or a line of input. It returns false at the end of the input.
func (a *Agent) next(prompts *[]string) (string, bool) {
	fmt.Fprint(a.w, prompt)
	if len(*prompts) > 0 {
		input := strings.TrimSpace((*prompts)[0])
		*prompts = (*prompts)[1:]
		fmt.Fprintln(a.w, input)
		return input, true
	}
	if !a.scanner.Scan() {
		fmt.Fprintln(a.w)
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}
