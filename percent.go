package funding

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a share of a whole, 12.5 means 12.5%.
type Percent float64

// Ratio returns part as a share of whole, 0 when whole is 0.
func Ratio(part, whole decimal.Decimal) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(part.Div(whole).Shift(2).InexactFloat64())
}

// Equal compares percents to a ten-thousandth of a point.
func (p Percent) Equal(q Percent) bool { return math.Abs(float64(p-q)) < 1e-4 }

func (p Percent) String() string { return fmt.Sprintf("%.1f%%", float64(p)) }
