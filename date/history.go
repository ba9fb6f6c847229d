package date

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// History stores a chronological series of amounts, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History struct {
	days   []Date
	values []decimal.Decimal
}

// search returns the insertion index of on and whether it is already present.
func (h *History) search(on Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, on, Date.Compare)
}

// AppendAdd adds a point to the history.
//
// Existing value is added.
func (h *History) AppendAdd(on Date, v decimal.Decimal) *History {
	i, found := h.search(on)
	if found {
		h.values[i] = h.values[i].Add(v)
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History) Values() iter.Seq2[Date, decimal.Decimal] {
	return func(yield func(Date, decimal.Decimal) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
