package folio

import (
	"fmt"
	"math"
)

// Percent is a rate expressed in percent (5.25 means 5.25%).
type Percent float64

// Equal compares two percentages with a fixed precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString returns the percentage with an explicit sign, and "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Round2 rounds the percentage to two decimal places, the reporting precision
// for all rate fields.
func (p Percent) Round2() Percent {
	if p < 0 {
		return Percent(float64(int64(float64(p)*100-0.5)) / 100)
	}
	return Percent(float64(int64(float64(p)*100+0.5)) / 100)
}

// sanitize collapses NaN and infinities to zero so that degenerate divisions
// never leak into a report.
func sanitize(p Percent) Percent {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return p
}
