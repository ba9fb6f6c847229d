package funding

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Verdict classifies a focal statistic against its population.
type Verdict int

const (
	// AtOrBelow is also the verdict of an exact tie: there is no "equal" tier.
	AtOrBelow Verdict = iota
	Above
)

func (v Verdict) String() string {
	if v == Above {
		return "above"
	}
	return "at or below"
}

func (v Verdict) MarshalJSON() ([]byte, error) { return json.Marshal(v.String()) }

// Comparison is the result of a peer benchmark.
type Comparison struct {
	Dimension  Dimension       `json:"dimension"`
	Value      string          `json:"value"`
	Reducer    Reducer         `json:"reducer"`
	Focal      decimal.Decimal `json:"focal"`
	Population decimal.Decimal `json:"population"`
	Verdict    Verdict         `json:"verdict"`
}

// Benchmark compares a statistic of the focal events with the same statistic
// over every event sharing a dimension value.
//
// The population includes the focal events themselves. The verdict is Above
// only when the focal value is strictly greater. Means over a population of
// one event are that event's amount; means over an empty focal set or
// population return ErrEmptyPopulation.
func Benchmark(all []Event, dim Dimension, value string, focal []Event, r Reducer) (Comparison, error) {
	c := Comparison{Dimension: dim, Value: value, Reducer: r}
	var err error
	c.Population, err = Reduce(Filter(all, dim, value), r)
	if err != nil {
		return c, fmt.Errorf("benchmark population %s=%q: %w", dim, value, err)
	}
	c.Focal, err = Reduce(focal, r)
	if err != nil {
		return c, fmt.Errorf("benchmark focal events: %w", err)
	}
	if c.Focal.GreaterThan(c.Population) {
		c.Verdict = Above
	}
	return c, nil
}
