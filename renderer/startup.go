package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/funding"
	md "github.com/nao1215/markdown"
)

// StartupMarkdown renders the profile of a startup.
func StartupMarkdown(p *funding.StartupProfile, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Startup Profile: %s", p.Name))
	if p.IsEmpty() {
		doc.PlainText(fmt.Sprintf("No records found for '%s'.", p.Name))
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Funding"), md.Bold(opts.total(p.Total))},
		Rows: [][]string{
			{"Funding Rounds", strconv.Itoa(p.Deals)},
			{"Sector", orUnknown(p.Sector)},
			{"City", orUnknown(p.City)},
		},
	})
	if p.SectorConflict != nil {
		doc.PlainText(md.Italic(fmt.Sprintf("Rounds disagree on the sector: %s.", strings.Join(p.SectorConflict, ", "))))
	}
	if p.CityConflict != nil {
		doc.PlainText(md.Italic(fmt.Sprintf("Rounds disagree on the city: %s.", strings.Join(p.CityConflict, ", "))))
	}

	doc.H2("Funding History")
	history := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Round", "Investors", fmt.Sprintf("Amount (%s)", opts.unit())},
	}
	for _, e := range p.History {
		history.Rows = append(history.Rows, []string{eventDate(e), e.Round, e.Investors, e.Amount.Display()})
	}
	doc.Table(history)

	doc.H2("Funding Trajectory")
	if !p.HasTrajectory() {
		doc.PlainText("Limited time-series data: This startup has only one recorded funding round.")
	} else {
		trajectory := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Amount"},
		}
		for _, pt := range p.Trajectory {
			trajectory.Rows = append(trajectory.Rows, []string{pt.Date.String(), opts.total(pt.Amount)})
		}
		doc.Table(trajectory)
	}

	doc.H2("Investor List")
	if len(p.Investors) == 0 {
		doc.PlainText(noData("the investors"))
	} else {
		doc.BulletList(p.Investors...)
	}

	if p.Sector != "" {
		doc.H2(fmt.Sprintf("Rank within %s Sector", p.Sector))
		doc.PlainText(fmt.Sprintf("%s ranks #%d by total funding.", p.Name, p.PeerRank))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight},
			Header:    []string{"#", "Startup", "Total Funding"},
		}
		for i, peer := range p.Peers {
			name := peer.Startup
			if peer.Focal {
				name = md.Bold(name)
			}
			table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), name, opts.total(peer.Total)})
		}
		doc.Table(table)
	}

	if c := p.LocalContext; c != nil {
		doc.H2(fmt.Sprintf("Funding Context in %s", p.City))
		cityAvg := opts.total(funding.M(c.Population, p.Currency))
		if c.Verdict == funding.Above {
			doc.PlainText(fmt.Sprintf("%s's average deal size is higher than the %s city average of %s.", p.Name, p.City, cityAvg))
		} else {
			doc.PlainText(fmt.Sprintf("The average deal size in %s is %s.", p.City, cityAvg))
		}
	}

	return doc.String()
}

// eventDate formats the date of an event, without the day when unknown.
func eventDate(e funding.Event) string {
	if e.Partial {
		return e.Date.Format("2006-01")
	}
	return e.Date.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
