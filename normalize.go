package funding

import (
	"strings"

	"golang.org/x/text/cases"
)

// nameSeparator separates names in a multi-valued field.
const nameSeparator = ","

// fold returns the case-insensitive identity of a name.
//
// A Caser is stateful, so a new one is used for each call.
func fold(name string) string { return cases.Fold().String(strings.TrimSpace(name)) }

// SplitNames splits a comma separated list of names.
//
// Names are trimmed, empty tokens are dropped and names that differ only by
// case are kept once, in their first-seen casing.
func SplitNames(text string) []string {
	var names Names
	for _, token := range strings.Split(text, nameSeparator) {
		names.Add(token)
	}
	return names.Slice()
}

// Normalize expands events into participation records, one per value of the
// field.
//
// Each record is a copy of its event with the field reduced to one value, so
// an event with three investors yields three records sharing the same ID,
// date and amount. Events with a blank field yield no record. Normalizing an
// already normalized stream on the same field returns an equal stream.
func Normalize(events []Event, field Field) []Event {
	records := make([]Event, 0, len(events))
	for _, e := range events {
		for _, v := range e.Values(field) {
			records = append(records, e.with(field, v))
		}
	}
	return records
}

// Names is a set of names compared case-insensitively, in insertion order.
//
// The first casing seen for a name is its display form. The zero value is an
// empty set ready to use.
type Names struct {
	index map[string]int // folded identity -> position in names
	names []string
}

// Add inserts a name and returns its display form. Blank names are ignored
// and return "".
func (n *Names) Add(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	id := fold(name)
	if i, ok := n.index[id]; ok {
		return n.names[i]
	}
	if n.index == nil {
		n.index = make(map[string]int)
	}
	n.index[id] = len(n.names)
	n.names = append(n.names, name)
	return name
}

// Contains reports whether name, or a name differing only by case, was added.
func (n *Names) Contains(name string) bool {
	_, ok := n.index[fold(name)]
	return ok
}

// Len returns the number of distinct names.
func (n *Names) Len() int { return len(n.names) }

// Slice returns the display forms, in insertion order.
func (n *Names) Slice() []string {
	if len(n.names) == 0 {
		return nil
	}
	return append([]string(nil), n.names...)
}

// SameName reports whether two names have the same case-insensitive identity.
func SameName(a, b string) bool { return fold(a) == fold(b) }

// MatchNames returns the names containing query, ignoring case, in order.
// A blank query matches every name.
func MatchNames(names []string, query string) []string {
	q := fold(query)
	var matches []string
	for _, name := range names {
		if strings.Contains(fold(name), q) {
			matches = append(matches, name)
		}
	}
	return matches
}
