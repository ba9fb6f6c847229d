package funding

import (
	"testing"

	"github.com/etnz/funding/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// INR is a helper for test to create rupee amounts from const.
func INR(v float64) Money { return M(v, "INR") }

// D is a helper for test to create decimals from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ev is a helper for test to create an event on a day.
func ev(day, startup, vertical, city, round, investors string, amount float64) Event {
	return Event{
		Date:      date.MustParse(day),
		Startup:   startup,
		Vertical:  vertical,
		City:      city,
		Round:     round,
		Investors: investors,
		Amount:    INR(amount),
	}
}

// newTestLedger creates a ledger or fails the test.
func newTestLedger(t *testing.T, events ...Event) *Ledger {
	t.Helper()
	l, err := NewLedger(events...)
	if err != nil {
		t.Fatalf("NewLedger() failed: %v", err)
	}
	return l
}

// scenario is the two-event ledger of the documentation.
func scenario(t *testing.T) *Ledger {
	return newTestLedger(t,
		ev("2021-01-01", "A", "", "", "", "X, Y", 10),
		ev("2022-06-15", "B", "", "", "", "Y, Z", 20),
	)
}

// sample is a small ecosystem with the usual irregularities: names in
// different cases, an undisclosed amount and investors whose names contain
// one another.
func sample(t *testing.T) *Ledger {
	return newTestLedger(t,
		ev("2023-01-10", "Alpha", "Fintech", "Bengaluru", "Seed", "X, Y", 10),
		ev("2023-02-05", "Beta", "Edtech", "Mumbai", "Series A", "Y, Z", 20),
		ev("2023-02-20", "Alpha", "Fintech", "Bengaluru", "Series A", "Sequoia Capital, x", 30),
		ev("2024-03-01", "Gamma", "Fintech", "Mumbai", "Seed", "Sequoia Capital India", 0),
		ev("2024-03-15", "Delta", "fintech", "bengaluru", "Series B", "Accel", 40),
	)
}

// cmpOpts compares the engine values by meaning.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
	cmp.Comparer(func(a, b Dimension) bool { return a == b }),
}

// groups is a helper for test to write expected groups as key, value, count triples.
func groups(triples ...any) []Group {
	var gs []Group
	for i := 0; i+2 < len(triples); i += 3 {
		gs = append(gs, Group{
			Key:   triples[i].(string),
			Value: D(float64(triples[i+1].(int))),
			Count: triples[i+2].(int),
		})
	}
	return gs
}
