package funding

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMoney(t *testing.T) {
	if got := INR(0).Display(); got != "Unknown" {
		t.Errorf("Display() of an undisclosed amount = %q, want Unknown", got)
	}
	if got := INR(12.5).Display(); !strings.Contains(got, "12.50") {
		t.Errorf("Display() = %q, want it to contain 12.50", got)
	}
	if !INR(0).Undisclosed() || INR(1).Undisclosed() {
		t.Errorf("Undisclosed() is wrong")
	}

	data, err := json.Marshal(INR(12.5))
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	if want := `{"currency":"INR","amount":12.5}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}

func TestRatio(t *testing.T) {
	testCases := []struct {
		part, whole float64
		want        Percent
		display     string
	}{
		{part: 1, whole: 4, want: 25, display: "25.0%"},
		{part: 1, whole: 3, want: 33.3333, display: "33.3%"},
		{part: 5, whole: 0, want: 0, display: "0.0%"},
	}
	for _, tc := range testCases {
		got := Ratio(D(tc.part), D(tc.whole))
		if !got.Equal(tc.want) {
			t.Errorf("Ratio(%v, %v) = %v, want %v", tc.part, tc.whole, float64(got), float64(tc.want))
		}
		if got.String() != tc.display {
			t.Errorf("Ratio(%v, %v).String() = %q, want %q", tc.part, tc.whole, got, tc.display)
		}
	}
}
