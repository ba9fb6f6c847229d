package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/funding"
	md "github.com/nao1215/markdown"
)

// InvestorMarkdown renders the profile of an investor.
func InvestorMarkdown(p *funding.InvestorProfile, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Investor Profile: %s", p.Query))
	if p.IsEmpty() {
		doc.PlainText(fmt.Sprintf("No records found for '%s'.", p.Query))
		return doc.String()
	}
	if len(p.Matches) > 1 {
		doc.PlainText(fmt.Sprintf("Matching investors: %s.", strings.Join(p.Matches, ", ")))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Invested"), md.Bold(opts.total(p.Total))},
		Rows: [][]string{
			{"Startups Funded", strconv.Itoa(p.Startups)},
			{"Deals", strconv.Itoa(p.Deals)},
		},
	})

	doc.H2("Most Recent Investments")
	recent := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Startup Name", "Vertical", "City", "Investment Type", fmt.Sprintf("Amount (%s)", opts.unit())},
	}
	for _, e := range p.Recent {
		recent.Rows = append(recent.Rows, []string{eventDate(e), e.Startup, e.Vertical, e.City, e.Round, e.Amount.Display()})
	}
	doc.Table(recent)

	doc.H2("Biggest Investments")
	if !p.HasAmounts {
		doc.PlainText("No investment amount data available for this investor.")
	} else {
		opts.groupTable(doc, "Startup", funding.Sum, p.Currency, p.Biggest)
	}

	opts.shareTable(doc, "Sectors Invested In", "Sector", p.Sectors)
	opts.shareTable(doc, "Investment Rounds", "Round", p.Rounds)
	opts.shareTable(doc, "Cities", "City", p.Cities)

	doc.H2("Year-on-Year Investment Trend")
	if p.YearOnYear.IsEmpty() {
		doc.PlainText("No yearly data found.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Year", "Amount"},
		}
		for _, g := range p.YearOnYear.Groups {
			table.Rows = append(table.Rows, []string{g.Key, opts.value(funding.Sum, p.Currency, g.Value)})
		}
		doc.Table(table)
	}

	doc.H2("Top Co-investors")
	if len(p.CoInvestors) == 0 {
		doc.PlainText("This investor usually invests alone.")
	} else {
		opts.groupTable(doc, "Co-investor", funding.Count, p.Currency, p.CoInvestors)
	}

	return doc.String()
}

// shareTable renders a distribution, or a placeholder when it is empty.
func (o Options) shareTable(doc *md.Markdown, title, header string, shares []funding.Share) {
	doc.H2(title)
	if len(shares) == 0 {
		doc.PlainText(noData(title))
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{header, "Amount", "Share", "Deals"},
	}
	for _, s := range shares {
		table.Rows = append(table.Rows, []string{s.Key, o.total(s.Amount), s.Share.String(), strconv.Itoa(s.Deals)})
	}
	doc.Table(table)
}
