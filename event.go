package funding

import (
	"fmt"
	"strings"

	"github.com/etnz/funding/date"
)

// Field names a categorical column of the ledger.
type Field int

const (
	FieldStartup Field = iota
	FieldVertical
	FieldCity
	FieldRound
	FieldInvestors
)

func (f Field) String() string {
	switch f {
	case FieldStartup:
		return "startup"
	case FieldVertical:
		return "vertical"
	case FieldCity:
		return "city"
	case FieldRound:
		return "round"
	case FieldInvestors:
		return "investors"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// MultiValued reports whether the field holds a comma separated list of names.
func (f Field) MultiValued() bool { return f == FieldInvestors }

// Event is one row of the funding ledger: one financing transaction.
//
// Events are values and the engine never modifies them; deriving a
// participation record returns a modified copy.
type Event struct {
	ID        int       // position in the ledger, shared by the participation records of an event.
	Date      date.Date // day of the deal, the first of the month when Partial.
	Partial   bool      // true when the day of month is unknown.
	Startup   string
	Vertical  string
	City      string
	Round     string
	Investors string // comma separated, as found in the source.
	Amount    Money  // zero when undisclosed.
}

// Value returns the raw text of a categorical field.
func (e Event) Value(f Field) string {
	switch f {
	case FieldStartup:
		return e.Startup
	case FieldVertical:
		return e.Vertical
	case FieldCity:
		return e.City
	case FieldRound:
		return e.Round
	case FieldInvestors:
		return e.Investors
	default:
		panic(fmt.Sprintf("unknown field %d", int(f)))
	}
}

// with returns a copy of e where the field f is set to v.
func (e Event) with(f Field, v string) Event {
	switch f {
	case FieldStartup:
		e.Startup = v
	case FieldVertical:
		e.Vertical = v
	case FieldCity:
		e.City = v
	case FieldRound:
		e.Round = v
	case FieldInvestors:
		e.Investors = v
	default:
		panic(fmt.Sprintf("unknown field %d", int(f)))
	}
	return e
}

// Values returns the normalized values of f for this event.
//
// A multi-valued field is split into names, a single-valued field yields its
// trimmed text. Blank fields yield nothing.
func (e Event) Values(f Field) []string {
	if f.MultiValued() {
		return SplitNames(e.Value(f))
	}
	v := strings.TrimSpace(e.Value(f))
	if v == "" {
		return nil
	}
	return []string{v}
}

// InvestorNames returns the distinct investors of the event, in source order.
func (e Event) InvestorNames() []string { return SplitNames(e.Investors) }
