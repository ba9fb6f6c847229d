package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/funding"
	"github.com/etnz/funding/date"
	"github.com/etnz/funding/renderer"
	"google.golang.org/genai"
)

func newAnalyzer(t *testing.T) *funding.Analyzer {
	t.Helper()
	ev := func(day, startup, vertical, city, investors string, amount float64) funding.Event {
		return funding.Event{Date: date.MustParse(day), Startup: startup, Vertical: vertical, City: city, Round: "Seed", Investors: investors, Amount: funding.M(amount, "INR")}
	}
	l, err := funding.NewLedger(
		ev("2021-01-01", "Alpha", "Fintech", "Pune", "X, Sequoia Capital", 10),
		ev("2022-06-15", "Beta", "Edtech", "Delhi", "Sequoia Capital India, Z", 20),
	)
	if err != nil {
		t.Fatalf("NewLedger() failed: %v", err)
	}
	a, err := funding.NewAnalyzer(l, 0)
	if err != nil {
		t.Fatalf("NewAnalyzer() failed: %v", err)
	}
	return a
}

func TestAnalystLibrary(t *testing.T) {
	lib := NewLibrary(AnalystFunctions(newAnalyzer(t), renderer.Options{}))

	testCases := []struct {
		name       string
		args       map[string]any
		wantOutput string
		wantError  string
	}{
		{name: "Overall", args: map[string]any{"trend": "count", "top": 1.0}, wantOutput: "# Overall Analysis"},
		{name: "Overall", args: map[string]any{"trend": "median"}, wantError: "unknown reducer"},
		{name: "Startup", args: map[string]any{"name": "Alpha"}, wantOutput: "# Startup Profile: Alpha"},
		{name: "Startup", args: map[string]any{}, wantError: `"name" is required`},
		{name: "Investor", args: map[string]any{"query": "sequoia"}, wantOutput: "Matching investors: Sequoia Capital, Sequoia Capital India."},
		{name: "Investor", args: map[string]any{"query": 3.0}, wantError: "not a string"},
		{name: "Aggregate", args: map[string]any{"by": "city", "reduce": "count"}, wantOutput: "# Count by city"},
		{name: "Aggregate", args: map[string]any{"by": "colour"}, wantError: "unknown dimension"},
		{name: "SearchStartups", args: map[string]any{"query": "ALP"}, wantOutput: "Alpha"},
		{name: "SearchInvestors", args: map[string]any{"query": "india"}, wantOutput: "Sequoia Capital India"},
		{name: "SearchInvestors", args: map[string]any{"query": "nobody"}, wantOutput: `no investor matches "nobody"`},
		{name: "Holdings", args: map[string]any{}, wantError: "unknown function Holdings"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: tc.name, Args: tc.args})
			if resp.ID != "1" || resp.Name != tc.name {
				t.Errorf("response id, name = %q, %q, want 1, %q", resp.ID, resp.Name, tc.name)
			}
			if tc.wantError != "" {
				got, _ := resp.Response["error"].(string)
				if !strings.Contains(got, tc.wantError) {
					t.Errorf("error = %q, want it to contain %q", got, tc.wantError)
				}
				return
			}
			got, _ := resp.Response["output"].(string)
			if !strings.Contains(got, tc.wantOutput) {
				t.Errorf("output = %q, want it to contain %q", got, tc.wantOutput)
			}
		})
	}
}

func TestDeclarations(t *testing.T) {
	a := newAnalyzer(t)
	experts := []*Expert{NewAnalyst(DefaultModel, a, renderer.Options{}), NewResearcher(DefaultModel)}
	seen := make(map[string]bool)
	for _, d := range NewDeclaration(AnalystFunctions(a, renderer.Options{})) {
		if seen[d.Name] {
			t.Errorf("function %q is declared twice", d.Name)
		}
		seen[d.Name] = true
		for _, req := range d.Parameters.Required {
			if _, ok := d.Parameters.Properties[req]; !ok {
				t.Errorf("function %q requires the undeclared parameter %q", d.Name, req)
			}
		}
	}
	ag := New(nil, strings.NewReader(""), DefaultModel, experts...)
	decls := ag.Facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Analyst" || decls[1].Name != "Researcher" {
		t.Errorf("facilitator tools = %v, want the Analyst and the Researcher", decls)
	}
}

func TestAgent_Next(t *testing.T) {
	var out strings.Builder
	a := New(&out, strings.NewReader("  who invests in fintech?  \n\nbye\n"), DefaultModel)
	prompts := []string{" top sectors "}

	var got []string
	for {
		input, ok := a.next(&prompts)
		if !ok {
			break
		}
		got = append(got, input)
	}
	want := []string{"top sectors", "who invests in fintech?", "", "bye"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("next() = %q, want %q", got, want)
	}
	if !strings.Contains(out.String(), prompt+"top sectors\n") {
		t.Errorf("output = %q, want the pending prompt echoed", out.String())
	}
}

func TestExpert_NotStarted(t *testing.T) {
	e := NewResearcher(DefaultModel)
	if _, err := e.Ask(context.Background(), genai.NewPartFromText("hello")); err == nil {
		t.Error("Ask() on a stopped expert succeeded, want an error")
	}

	resp := e.Call(context.Background(), "7", map[string]any{})
	if got, _ := resp.Response["error"].(string); !strings.Contains(got, `"question" is required`) {
		t.Errorf("Call() error = %q, want the missing question", got)
	}
	resp = e.Call(context.Background(), "8", map[string]any{"question": "hello"})
	if got, _ := resp.Response["error"].(string); !strings.Contains(got, "not started") {
		t.Errorf("Call() error = %q, want the expert not started", got)
	}
}
