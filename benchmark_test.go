package funding

import (
	"errors"
	"testing"
)

func TestBenchmark(t *testing.T) {
	l := sample(t)
	events := l.Events()

	testCases := []struct {
		name        string
		focal       []Event
		wantFocal   float64
		wantVerdict Verdict
	}{
		{name: "below the city mean", focal: l.Startup("Alpha"), wantFocal: 20, wantVerdict: AtOrBelow},
		{name: "above the city mean", focal: l.Startup("Delta"), wantFocal: 40, wantVerdict: Above},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Benchmark(events, ByCity, "bengaluru", tc.focal, Mean)
			if err != nil {
				t.Fatalf("Benchmark() failed: %v", err)
			}
			if !c.Focal.Equal(D(tc.wantFocal)) {
				t.Errorf("Focal = %s, want %v", c.Focal, tc.wantFocal)
			}
			if want := D(80).Div(D(3)); !c.Population.Equal(want) {
				t.Errorf("Population = %s, want %s", c.Population, want)
			}
			if c.Verdict != tc.wantVerdict {
				t.Errorf("Verdict = %s, want %s", c.Verdict, tc.wantVerdict)
			}
		})
	}

	t.Run("self population is at or below", func(t *testing.T) {
		for _, r := range []Reducer{Sum, Mean, Count, Max} {
			population := Filter(events, ByVertical, "Fintech")
			c, err := Benchmark(events, ByVertical, "Fintech", population, r)
			if err != nil {
				t.Fatalf("Benchmark(%s) failed: %v", r, err)
			}
			if !c.Focal.Equal(c.Population) || c.Verdict != AtOrBelow {
				t.Errorf("Benchmark(%s) = %s vs %s %s, want equal and at or below", r, c.Focal, c.Population, c.Verdict)
			}
		}
	})

	t.Run("empty population", func(t *testing.T) {
		if _, err := Benchmark(events, ByCity, "Pune", nil, Mean); !errors.Is(err, ErrEmptyPopulation) {
			t.Errorf("Benchmark() error = %v, want ErrEmptyPopulation", err)
		}
	})
}
