package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/funding"
	"github.com/etnz/funding/docs"
	"github.com/etnz/funding/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the model of the experts when none is configured.
const DefaultModel = "gemini-2.5-flash"

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user is studying the startup funding ecosystem: startups, sectors, cities and investors.
			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Figures must come from the Analyst. Never make up an amount.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates an expert grounded on Google Search.
func NewResearcher(model string) *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is a researcher of the startup ecosystem.
		Well aware of the news about startups, their founders and their investors.
		Ask the Researcher whenever you need recent information not found in the ledger.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a researcher of the startup ecosystem. You can search anything related to
			startups, venture capital firms, funding rounds and markets. You leverage Google Search to
			ground your assertions.
				`}}},
		},
	}
}

// NewAnalyst creates the expert reading the funding ledger through a.
func NewAnalyst(model string, a *funding.Analyzer, opts renderer.Options) *Expert {
	lib := AnalystFunctions(a, opts)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It reads the funding ledger and computes every figure about
		the ecosystem, a startup or an investor: totals, rankings, trends and co-investors.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the startup funding ledger.
				You use the Tools to extract figures from the ledger. The other experts might use
				approximative names: search the names first and figure out what they meant.

				Amounts are in crores of the ledger currency. An amount shown as Unknown was not disclosed.

				` + topic("undisclosed") + topic("dimensions"),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

// topic returns a documentation topic, or nothing if it is missing.
func topic(name string) string {
	content, err := docs.GetTopic(name)
	if err != nil {
		return ""
	}
	return content
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// markdown is the response schema of every analyst function.
var markdown = &genai.Schema{Type: genai.TypeString, Description: "A markdown report."}

// AnalystFunctions returns the functions of the Analyst.
func AnalystFunctions(a *funding.Analyzer, opts renderer.Options) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Overall",
				Description: "Overall returns the ecosystem overview: totals, monthly trend and the top sectors, cities, startups and investors.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"trend": {Type: genai.TypeString, Description: "The monthly trend metric, 'sum' (default) or 'count'.", Enum: []string{"sum", "count"}},
						"top":   {Type: genai.TypeInteger, Description: "The size of the rankings, 10 by default."},
					},
				},
				Response: markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				o := funding.OverallOptions{Trend: funding.Sum}
				if trend, err := stringArg(args, "trend", false); err != nil {
					return failure(id, "Overall", err)
				} else if trend != "" {
					if o.Trend, err = funding.ParseReducer(trend); err != nil {
						return failure(id, "Overall", err)
					}
				}
				top, err := intArg(args, "top")
				if err != nil {
					return failure(id, "Overall", err)
				}
				o.TopN = top
				p, err := a.Overall(o)
				if err != nil {
					return failure(id, "Overall", err)
				}
				return success(id, "Overall", renderer.OverallMarkdown(p, opts))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Startup",
				Description: "Startup returns the profile of a startup: funding history, investors, rank in its sector and comparison with its city.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString, Description: "The exact name of the startup, as returned by SearchStartups."},
					},
					Required: []string{"name"},
				},
				Response: markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				name, err := stringArg(args, "name", true)
				if err != nil {
					return failure(id, "Startup", err)
				}
				p, err := a.Startup(name, funding.StartupOptions{})
				if err != nil {
					return failure(id, "Startup", err)
				}
				return success(id, "Startup", renderer.StartupMarkdown(p, opts))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Investor",
				Description: "Investor returns the profile of every investor whose name contains the query, ignoring case.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {Type: genai.TypeString, Description: "Part of the investor name, e.g. 'sequoia'."},
					},
					Required: []string{"query"},
				},
				Response: markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				query, err := stringArg(args, "query", true)
				if err != nil {
					return failure(id, "Investor", err)
				}
				p, err := a.Investor(query, funding.InvestorOptions{})
				if err != nil {
					return failure(id, "Investor", err)
				}
				return success(id, "Investor", renderer.InvestorMarkdown(p, opts))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Aggregate",
				Description: "Aggregate groups the events along a dimension and ranks the groups by a statistic of their amounts.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"by":     {Type: genai.TypeString, Description: "The dimension: startup, sector, city, round, investor, month, quarter or year."},
						"reduce": {Type: genai.TypeString, Description: "The statistic: sum (default), count, mean or max.", Enum: []string{"sum", "count", "mean", "max"}},
						"top":    {Type: genai.TypeInteger, Description: "The number of groups to return, all by default."},
					},
					Required: []string{"by"},
				},
				Response: markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				by, err := stringArg(args, "by", true)
				if err != nil {
					return failure(id, "Aggregate", err)
				}
				dim, err := funding.ParseDimension(by)
				if err != nil {
					return failure(id, "Aggregate", err)
				}
				r := funding.Sum
				if reduce, err := stringArg(args, "reduce", false); err != nil {
					return failure(id, "Aggregate", err)
				} else if reduce != "" {
					if r, err = funding.ParseReducer(reduce); err != nil {
						return failure(id, "Aggregate", err)
					}
				}
				top, err := intArg(args, "top")
				if err != nil {
					return failure(id, "Aggregate", err)
				}
				l := a.Ledger()
				agg := funding.Aggregate(l.Events(), dim, r)
				groups := agg.Groups
				if top > 0 || !dim.Temporal() {
					groups = funding.TopK(agg, top)
				}
				return success(id, "Aggregate", renderer.AggregationMarkdown(agg, groups, l.Currency(), opts))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "SearchStartups",
				Description: "SearchStartups lists the startup names containing the query, ignoring case. An empty query lists them all.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {Type: genai.TypeString, Description: "Part of the startup name."},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "One name per line."},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				query, err := stringArg(args, "query", false)
				if err != nil {
					return failure(id, "SearchStartups", err)
				}
				return success(id, "SearchStartups", strings.Join(funding.MatchNames(a.Ledger().Startups(), query), "\n"))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "SearchInvestors",
				Description: "SearchInvestors lists the investor names containing the query, ignoring case.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {Type: genai.TypeString, Description: "Part of the investor name."},
					},
					Required: []string{"query"},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "One name per line."},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				query, err := stringArg(args, "query", true)
				if err != nil {
					return failure(id, "SearchInvestors", err)
				}
				names := a.Ledger().MatchInvestors(query)
				if len(names) == 0 {
					return success(id, "SearchInvestors", fmt.Sprintf("no investor matches %q", query))
				}
				return success(id, "SearchInvestors", strings.Join(names, "\n"))
			},
		},
	}
}
