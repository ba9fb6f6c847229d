package date

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestHistory_AppendAdd(t *testing.T) {
	h := new(History)
	d1, d2 := New(2025, 07, 01), New(2024, 07, 01)

	h.AppendAdd(d1, decimal.NewFromInt(10))
	h.AppendAdd(d2, decimal.NewFromInt(5))
	h.AppendAdd(d1, decimal.NewFromInt(2))

	var days []Date
	var values []string
	for day, v := range h.Values() {
		days = append(days, day)
		values = append(values, v.String())
	}
	if diff := cmp.Diff([]Date{d2, d1}, days, cmp.Comparer(func(a, b Date) bool { return a == b })); diff != "" {
		t.Errorf("History.Values() days mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"5", "12"}, values); diff != "" {
		t.Errorf("History.Values() values mismatch (-want +got):\n%s", diff)
	}
}
