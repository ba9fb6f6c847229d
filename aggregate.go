package funding

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/funding/date"
	"github.com/shopspring/decimal"
)

// Reducer reduces the amounts of a group to one value.
type Reducer int

const (
	Sum Reducer = iota
	Mean
	Count
	Max
)

func (r Reducer) String() string {
	switch r {
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case Count:
		return "count"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("reducer(%d)", int(r))
	}
}

// Monetary reports whether the reduced value is an amount (as opposed to a number of deals).
func (r Reducer) Monetary() bool { return r != Count }

func (r Reducer) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

// ParseReducer parses a reducer name.
func ParseReducer(s string) (Reducer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum", "total", "amount":
		return Sum, nil
	case "mean", "avg", "average":
		return Mean, nil
	case "count", "deals":
		return Count, nil
	case "max":
		return Max, nil
	default:
		return Sum, fmt.Errorf("%w %q", ErrUnknownReducer, s)
	}
}

// Dimension is a grouping key: a categorical field or a calendar bucket of the event date.
type Dimension struct {
	field    Field
	period   date.Period
	temporal bool
}

var (
	ByStartup  = Dimension{field: FieldStartup}
	ByVertical = Dimension{field: FieldVertical}
	ByCity     = Dimension{field: FieldCity}
	ByRound    = Dimension{field: FieldRound}
	ByInvestor = Dimension{field: FieldInvestors}
	ByYear     = ByPeriod(date.Yearly)
	ByMonth    = ByPeriod(date.Monthly)
)

// ByPeriod groups events by the calendar period containing their date.
func ByPeriod(p date.Period) Dimension { return Dimension{period: p, temporal: true} }

// Temporal reports whether the dimension buckets dates.
func (d Dimension) Temporal() bool { return d.temporal }

func (d Dimension) String() string {
	if d.temporal {
		return d.period.Name()
	}
	if d.field == FieldInvestors {
		return "investor"
	}
	return d.field.String()
}

func (d Dimension) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// keys returns the group keys of an event, several for a multi-valued field.
func (d Dimension) keys(e Event) []string {
	if d.temporal {
		return []string{d.period.Key(e.Date)}
	}
	return e.Values(d.field)
}

// ParseDimension parses a dimension name such as "sector", "investor" or "month".
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "startup", "startups":
		return ByStartup, nil
	case "vertical", "sector", "sectors":
		return ByVertical, nil
	case "city", "cities":
		return ByCity, nil
	case "round", "rounds":
		return ByRound, nil
	case "investor", "investors":
		return ByInvestor, nil
	}
	p, err := date.ParsePeriod(s)
	if err != nil {
		return Dimension{}, fmt.Errorf("%w %q", ErrUnknownDimension, s)
	}
	return ByPeriod(p), nil
}

// Group is one entry of an Aggregation.
type Group struct {
	Key   string          `json:"key"`
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"` // records in the group, undisclosed amounts included.
}

// Aggregation is the ordered result of Aggregate.
//
// Categorical groups are in order of first appearance in the input, temporal
// groups are in chronological order. A key without records is absent.
type Aggregation struct {
	Dimension Dimension `json:"dimension"`
	Reducer   Reducer   `json:"reducer"`
	Groups    []Group   `json:"groups"`
}

// Len returns the number of groups.
func (a Aggregation) Len() int { return len(a.Groups) }

// IsEmpty reports whether no record was grouped.
func (a Aggregation) IsEmpty() bool { return len(a.Groups) == 0 }

// Get returns the group of a key. Categorical keys match case-insensitively.
func (a Aggregation) Get(key string) (Group, bool) {
	for _, g := range a.Groups {
		if g.Key == key || (!a.Dimension.temporal && SameName(g.Key, key)) {
			return g, true
		}
	}
	return Group{}, false
}

// Keys returns the group keys in order.
func (a Aggregation) Keys() []string {
	keys := make([]string, 0, len(a.Groups))
	for _, g := range a.Groups {
		keys = append(keys, g.Key)
	}
	return keys
}

// Total returns the sum of the group values.
func (a Aggregation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, g := range a.Groups {
		total = total.Add(g.Value)
	}
	return total
}

// accumulator holds the running state of one group.
type accumulator struct {
	count int
	sum   decimal.Decimal
	max   decimal.Decimal
}

func (acc *accumulator) add(v decimal.Decimal) {
	if acc.count == 0 || v.GreaterThan(acc.max) {
		acc.max = v
	}
	acc.count++
	acc.sum = acc.sum.Add(v)
}

func (acc *accumulator) reduce(r Reducer) decimal.Decimal {
	switch r {
	case Sum:
		return acc.sum
	case Count:
		return decimal.NewFromInt(int64(acc.count))
	case Mean:
		return acc.sum.Div(decimal.NewFromInt(int64(acc.count)))
	case Max:
		return acc.max
	default:
		panic(fmt.Sprintf("unknown reducer %d", int(r)))
	}
}

// Aggregate groups events by a dimension and reduces their amounts.
//
// Events are normalized first when the dimension is multi-valued, so an event
// contributes its full amount to each of its investors. Undisclosed amounts
// take part at face value: they count as deals and add zero to sums and means.
func Aggregate(events []Event, dim Dimension, r Reducer) Aggregation {
	if !dim.temporal && dim.field.MultiValued() {
		events = Normalize(events, dim.field)
	}

	var names Names
	groups := make(map[string]*accumulator)
	var order []string
	for _, e := range events {
		for _, key := range dim.keys(e) {
			if !dim.temporal {
				key = names.Add(key)
			}
			acc, ok := groups[key]
			if !ok {
				acc = &accumulator{}
				groups[key] = acc
				order = append(order, key)
			}
			acc.add(e.Amount.Decimal())
		}
	}

	if dim.temporal {
		slices.Sort(order)
	}

	a := Aggregation{Dimension: dim, Reducer: r}
	for _, key := range order {
		acc := groups[key]
		a.Groups = append(a.Groups, Group{Key: key, Value: acc.reduce(r), Count: acc.count})
	}
	return a
}

// Reduce reduces the amounts of all events.
//
// Sum and count of nothing are zero. Mean and max of nothing are undefined
// and return ErrEmptyPopulation.
func Reduce(events []Event, r Reducer) (decimal.Decimal, error) {
	var acc accumulator
	for _, e := range events {
		acc.add(e.Amount.Decimal())
	}
	if acc.count == 0 && (r == Mean || r == Max) {
		return decimal.Zero, fmt.Errorf("%s of no event: %w", r, ErrEmptyPopulation)
	}
	return acc.reduce(r), nil
}

// Filter returns the events whose dimension key matches value.
// Categorical values match case-insensitively, as whole names.
func Filter(events []Event, dim Dimension, value string) []Event {
	var kept []Event
	for _, e := range events {
		for _, key := range dim.keys(e) {
			if key == value || (!dim.temporal && SameName(key, value)) {
				kept = append(kept, e)
				break
			}
		}
	}
	return kept
}
