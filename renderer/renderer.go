// Package renderer renders funding profiles to markdown.
package renderer

import (
	"fmt"
	"strconv"

	"github.com/etnz/funding"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// DefaultUnit is the label of the ledger amounts.
const DefaultUnit = "Cr"

// Options holds configuration for rendering a profile.
type Options struct {
	Unit string // appended to every amount, DefaultUnit when empty.
}

func (o Options) unit() string {
	if o.Unit == "" {
		return DefaultUnit
	}
	return o.Unit
}

// amount formats an amount with its unit, "Unknown" when undisclosed.
func (o Options) amount(m funding.Money) string {
	if m.Undisclosed() {
		return m.Display()
	}
	return fmt.Sprintf("%s %s", m.Display(), o.unit())
}

// total formats a sum that may legitimately be zero.
func (o Options) total(m funding.Money) string {
	return fmt.Sprintf("%s %s", m.String(), o.unit())
}

// value formats a reduced value: a number of deals or an amount.
func (o Options) value(r funding.Reducer, currency string, v decimal.Decimal) string {
	if !r.Monetary() {
		return v.String()
	}
	return o.total(funding.M(v, currency))
}

// groupTable renders ranked groups as a two column table.
func (o Options) groupTable(doc *md.Markdown, header string, r funding.Reducer, currency string, groups []funding.Group) {
	label := "Amount"
	if !r.Monetary() {
		label = "Deal Count"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"#", header, label},
	}
	for i, g := range groups {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			g.Key,
			o.value(r, currency, g.Value),
		})
	}
	doc.Table(table)
}

// noData is the placeholder of an empty section.
func noData(title string) string { return fmt.Sprintf("No data available for %s.", title) }
