package funding

import (
	"cmp"
	"slices"

	"github.com/etnz/funding/date"
)

// Default sizes of the rankings of the profiles.
const (
	DefaultTopN        = 10
	DefaultRecent      = 5
	DefaultBiggest     = 5
	DefaultCoInvestors = 5
)

// Share is one slice of a distribution.
type Share struct {
	Key    string  `json:"key"`
	Amount Money   `json:"amount"`
	Share  Percent `json:"share"` // of the distribution total, 0 when the total is 0.
	Deals  int     `json:"deals"`
}

// Point is one point of a funding trajectory.
type Point struct {
	Date   date.Date `json:"date"`
	Amount Money     `json:"amount"`
}

// latestFirst returns a copy of events sorted by date, most recent first.
// Events on the same day keep their ledger order.
func latestFirst(events []Event) []Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int { return b.Date.Compare(a.Date) })
	return sorted
}

// earliestFirst returns a copy of events sorted by date, oldest first.
func earliestFirst(events []Event) []Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int { return a.Date.Compare(b.Date) })
	return sorted
}

// distribution returns the share of each group of a sum aggregation, largest first.
func distribution(l *Ledger, a Aggregation) []Share {
	total := a.Total()
	var shares []Share
	for _, g := range TopK(a, 0) {
		shares = append(shares, Share{Key: g.Key, Amount: l.Money(g.Value), Share: Ratio(g.Value, total), Deals: g.Count})
	}
	return shares
}

// distinctCount returns the number of distinct values of a field.
func distinctCount(events []Event, f Field) int {
	var names Names
	for _, e := range events {
		for _, v := range e.Values(f) {
			names.Add(v)
		}
	}
	return names.Len()
}

// orDefault returns v, or def when v is not positive.
func orDefault(v, def int) int { return cmp.Or(max(v, 0), def) }
