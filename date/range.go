package date

import "fmt"

// Range is the calendar period containing a date: a bucket of the funding
// timeline.
type Range struct {
	Period   Period
	From, To Date
}

// NewRange returns the bucket of period containing d.
func NewRange(d Date, period Period) Range {
	return Range{Period: period, From: d.StartOf(period), To: d.EndOf(period)}
}

// Identifier is the key of the bucket: "2006-01-02", "2006-W01", "2006-01",
// "2006-Q1" or "2006".
//
// Weeks are numbered in their ISO year, so 2024-12-30 is in 2025-W01 and
// identifiers of a period keep sorting in chronological order.
func (r Range) Identifier() string {
	switch r.Period {
	case Daily:
		return r.From.String()
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return fmt.Sprintf("%04d-%02d", r.From.Year(), r.From.Month())
	case Quarterly:
		return fmt.Sprintf("%04d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return fmt.Sprintf("%04d", r.From.Year())
	default:
		panic(fmt.Sprintf("unknown period %d", r.Period))
	}
}

func (r Range) String() string { return r.Identifier() }
