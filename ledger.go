package funding

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// Ledger is an immutable snapshot of funding events, in source order.
//
// A Ledger is safe for concurrent use: nothing modifies it after NewLedger.
type Ledger struct {
	events   []Event
	currency string
	version  uint64

	investorNames Names            // every investor, first-seen casing
	investorIndex map[string][]int // folded investor name -> event positions
}

// NewLedger creates a snapshot of events.
//
// Events get their ID from their position. Amounts must be non-negative and
// all events must share one currency; events without a currency take the
// ledger's, which is DefaultCurrency when no event declares one.
func NewLedger(events ...Event) (*Ledger, error) {
	l := &Ledger{
		events:        make([]Event, len(events)),
		investorIndex: make(map[string][]int),
	}
	for i, e := range events {
		if e.Amount.IsNegative() {
			return nil, fmt.Errorf("event #%d %q on %s: %w %s", i+1, e.Startup, e.Date, ErrNegativeAmount, e.Amount.Decimal())
		}
		switch c := e.Amount.Currency(); {
		case c == "":
		case l.currency == "":
			l.currency = c
		case l.currency != c:
			return nil, fmt.Errorf("event #%d %q on %s: %w %s != %s", i+1, e.Startup, e.Date, ErrCurrencyMismatch, c, l.currency)
		}
		e.ID = i + 1
		l.events[i] = e
	}
	if l.currency == "" {
		l.currency = DefaultCurrency
	}

	h := xxhash.New()
	for i := range l.events {
		e := &l.events[i]
		e.Amount = M(e.Amount.Decimal(), l.currency)
		fmt.Fprintf(h, "%s|%t|%s|%s|%s|%s|%s|%s\n", e.Date, e.Partial, e.Startup, e.Vertical, e.City, e.Round, e.Investors, e.Amount.Decimal())
		for _, name := range e.InvestorNames() {
			l.investorNames.Add(name)
			id := fold(name)
			l.investorIndex[id] = append(l.investorIndex[id], i)
		}
	}
	h.WriteString(l.currency)
	l.version = h.Sum64()
	return l, nil
}

// Len returns the number of events.
func (l *Ledger) Len() int { return len(l.events) }

// Currency returns the currency of every amount of the ledger.
func (l *Ledger) Currency() string { return l.currency }

// Version identifies the content of the snapshot: two ledgers with the same
// events in the same order have the same version.
func (l *Ledger) Version() string { return fmt.Sprintf("%016x", l.version) }

// Events returns the events in source order.
// The returned slice is shared and must not be modified.
func (l *Ledger) Events() []Event { return l.events }

// Money returns v as an amount in the ledger currency.
func (l *Ledger) Money(v decimal.Decimal) Money { return M(v, l.currency) }

// Startup returns the events of a startup, matched ignoring case as the
// startup dimension groups them. A blank name matches nothing.
func (l *Ledger) Startup(name string) []Event {
	if fold(name) == "" {
		return nil
	}
	var events []Event
	for _, e := range l.events {
		if SameName(e.Startup, name) {
			events = append(events, e)
		}
	}
	return events
}

// MatchInvestors returns the investor names containing query, ignoring case,
// in order of first appearance. A blank query matches nothing.
func (l *Ledger) MatchInvestors(query string) []string {
	if fold(query) == "" {
		return nil
	}
	return MatchNames(l.investorNames.Slice(), query)
}

// SearchInvestor returns the events of every investor whose name contains
// query, ignoring case, in ledger order.
//
// The search is partial on purpose: "sequoia" finds the deals of "Sequoia
// Capital" and of "Sequoia Capital India".
func (l *Ledger) SearchInvestor(query string) []Event {
	var positions []int
	for _, name := range l.MatchInvestors(query) {
		positions = append(positions, l.investorIndex[fold(name)]...)
	}
	slices.Sort(positions)
	positions = slices.Compact(positions)

	var events []Event
	for _, i := range positions {
		events = append(events, l.events[i])
	}
	return events
}

// Investors returns the distinct investor names, sorted.
func (l *Ledger) Investors() []string {
	names := l.investorNames.Slice()
	slices.Sort(names)
	return names
}

// Startups returns the distinct startup names, in their first-seen casing, sorted.
func (l *Ledger) Startups() []string {
	var names Names
	for _, e := range l.events {
		names.Add(e.Startup)
	}
	sorted := names.Slice()
	slices.Sort(sorted)
	return sorted
}
