package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/funding"
	md "github.com/nao1215/markdown"
)

// OverallMarkdown renders the ecosystem overview.
func OverallMarkdown(p *funding.OverallProfile, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overall Analysis")
	if p.IsEmpty() {
		doc.PlainText("No funding event recorded.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Investment"), md.Bold(opts.total(p.Total))},
		Rows: [][]string{
			{"Max Funding", opts.total(*p.Max)},
			{"Avg Ticket Size", opts.total(*p.Mean)},
			{"Total Startups", strconv.Itoa(p.Startups)},
			{"Total Deals", strconv.Itoa(p.Deals)},
		},
	})

	doc.H2("Month-on-Month Analysis")
	if p.Trend.IsEmpty() {
		doc.PlainText(noData("the monthly trend"))
	} else {
		label := "Total Amount"
		if !p.Trend.Reducer.Monetary() {
			label = "Deal Count"
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Month", label},
		}
		for _, g := range p.Trend.Groups {
			table.Rows = append(table.Rows, []string{g.Key, opts.value(p.Trend.Reducer, p.Currency, g.Value)})
		}
		doc.Table(table)
	}

	doc.H2("Top Sectors (by Amount)")
	opts.groupTable(doc, "Sector", funding.Sum, p.Currency, p.TopSectors)
	doc.H2("Top Cities (by Amount)")
	opts.groupTable(doc, "City", funding.Sum, p.Currency, p.TopCities)

	doc.H2("Ecosystem Leaderboards")
	doc.H3("Top Startups")
	opts.groupTable(doc, "Startup Name", funding.Sum, p.Currency, p.TopStartups)
	doc.H3("Top Investors")
	opts.groupTable(doc, "Investor Name", funding.Count, p.Currency, p.TopInvestors)

	return doc.String()
}
