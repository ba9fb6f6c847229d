package funding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoOccurrences_Scenario(t *testing.T) {
	co := CoOccurrences(scenario(t).Events(), "Y")
	if diff := cmp.Diff(groups("X", 1, 1, "Z", 1, 1), co.Groups, cmpOpts); diff != "" {
		t.Errorf("CoOccurrences(Y) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(groups("X", 1, 1), TopK(co, 1), cmpOpts); diff != "" {
		t.Errorf("TopK(CoOccurrences(Y), 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestCoOccurrences(t *testing.T) {
	l := sample(t)
	events := l.Events()

	t.Run("focal ignores case", func(t *testing.T) {
		co := CoOccurrences(events, "x")
		if diff := cmp.Diff(groups("Y", 1, 1, "Sequoia Capital", 1, 1), co.Groups, cmpOpts); diff != "" {
			t.Errorf("CoOccurrences(x) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invests alone", func(t *testing.T) {
		if co := CoOccurrences(events, "Accel"); !co.IsEmpty() {
			t.Errorf("CoOccurrences(Accel) = %v, want empty", co.Groups)
		}
	})

	t.Run("normalized input", func(t *testing.T) {
		raw := CoOccurrences(events, "Y")
		normalized := CoOccurrences(Normalize(events, FieldInvestors), "Y")
		if diff := cmp.Diff(raw, normalized, cmpOpts); diff != "" {
			t.Errorf("CoOccurrences() depends on normalization (-raw +normalized):\n%s", diff)
		}
	})

	t.Run("events without ID", func(t *testing.T) {
		events := []Event{{Investors: "X, Y"}, {Investors: "Y, Z"}}
		co := CoOccurrences(events, "X")
		if diff := cmp.Diff(groups("Y", 1, 1), co.Groups, cmpOpts); diff != "" {
			t.Errorf("CoOccurrences(X) mismatch (-want +got):\n%s", diff)
		}
		events[0].ID, events[1].ID = 1, 2
		normalized := CoOccurrences(Normalize(events, FieldInvestors), "Y")
		if diff := cmp.Diff(groups("X", 1, 1, "Z", 1, 1), normalized.Groups, cmpOpts); diff != "" {
			t.Errorf("CoOccurrences(normalized, Y) mismatch (-want +got):\n%s", diff)
		}
	})

	names := l.Investors()
	for _, a := range names {
		coA := CoOccurrences(events, a)
		if _, ok := coA.Get(a); ok {
			t.Errorf("CoOccurrences(%q) lists the focal investor", a)
		}
		for _, b := range names {
			ab, _ := coA.Get(b)
			ba, _ := CoOccurrences(events, b).Get(a)
			if !ab.Value.Equal(ba.Value) {
				t.Errorf("co(%q)[%q] = %s but co(%q)[%q] = %s", a, b, ab.Value, b, a, ba.Value)
			}
		}
	}
}
