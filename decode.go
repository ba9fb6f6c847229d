package funding

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/funding/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// monthFormat is the date format of an event whose day is unknown.
const monthFormat = "2006-01"

// MarshalJSON encodes the event as one ledger line, keys in a fixed order.
func (e Event) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if e.Partial {
		w.Append("date", e.Date.Format(monthFormat))
	} else {
		w.Append("date", e.Date)
	}
	w.Append("startup", e.Startup)
	w.Optional("vertical", e.Vertical)
	w.Optional("city", e.City)
	w.Optional("round", e.Round)
	w.Optional("investors", e.Investors)
	w.Append("amount", e.Amount.Decimal())
	w.Optional("currency", e.Amount.Currency())
	return w.MarshalJSON()
}

// eventLine is the decoding form of a ledger line.
type eventLine struct {
	Date      string           `json:"date"`
	Startup   string           `json:"startup"`
	Vertical  string           `json:"vertical"`
	City      string           `json:"city"`
	Round     string           `json:"round"`
	Investors string           `json:"investors"`
	Amount    *decimal.Decimal `json:"amount"` // missing means undisclosed.
	Currency  string           `json:"currency"`
}

func (l eventLine) event() (Event, error) {
	on, known, err := date.ParsePartial(l.Date)
	if err != nil {
		return Event{}, err
	}
	amount := decimal.Zero
	if l.Amount != nil {
		amount = *l.Amount
	}
	return Event{
		Date:      on,
		Partial:   !known,
		Startup:   strings.TrimSpace(l.Startup),
		Vertical:  strings.TrimSpace(l.Vertical),
		City:      strings.TrimSpace(l.City),
		Round:     strings.TrimSpace(l.Round),
		Investors: strings.TrimSpace(l.Investors),
		Amount:    M(amount, l.Currency),
	}, nil
}

// DecodeLedger decodes events from a stream of JSONL data, one event per line.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue // Skip empty lines
		}
		var line eventLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		e, err := line.event()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return NewLedger(events...)
}

// EncodeLedger writes the events of a ledger in JSONL format, in ledger order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, e := range l.Events() {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event #%d: %w", e.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write event #%d: %w", e.ID, err)
		}
	}
	return nil
}

// csvColumns maps accepted header names to eventLine fields.
var csvColumns = map[string]func(*eventLine, string) error{
	"date":            func(l *eventLine, v string) error { l.Date = v; return nil },
	"startup":         func(l *eventLine, v string) error { l.Startup = v; return nil },
	"vertical":        func(l *eventLine, v string) error { l.Vertical = v; return nil },
	"city":            func(l *eventLine, v string) error { l.City = v; return nil },
	"round":           func(l *eventLine, v string) error { l.Round = v; return nil },
	"investors":       func(l *eventLine, v string) error { l.Investors = v; return nil },
	"currency":        func(l *eventLine, v string) error { l.Currency = strings.TrimSpace(v); return nil },
	"amount":          setAmount,
	"amount_crore_rs": setAmount,
}

func setAmount(l *eventLine, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return fmt.Errorf("invalid amount %q", v)
	}
	l.Amount = &d
	return nil
}

// DecodeCSV decodes events from the cleaned source file: a CSV with a header
// row naming at least the date, startup and amount columns.
//
// A blank amount is undisclosed. A non-numeric amount is a broken loader
// contract and fails the whole decode.
func DecodeCSV(r io.Reader) (*Ledger, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	setters := make([]func(*eventLine, string) error, len(headers))
	found := make(map[string]bool)
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if set, ok := csvColumns[key]; ok {
			setters[i] = set
			found[strings.TrimSuffix(key, "_crore_rs")] = true
		}
	}
	for _, required := range []string{"date", "startup", "amount"} {
		if !found[required] {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	var events []Event
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		var line eventLine
		for i, v := range record {
			if i >= len(setters) || setters[i] == nil {
				continue
			}
			if err := setters[i](&line, v); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		}
		e, err := line.event()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		events = append(events, e)
	}
	return NewLedger(events...)
}
