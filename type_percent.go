package sip

import (
	"fmt"
	"math"
)

type Percent float64

// NotApplicable is the Percent value used when a rate cannot be computed.
func NotApplicable() Percent { return Percent(math.NaN()) }

// IsNA reports whether the percent holds no computable value.
func (p Percent) IsNA() bool { return math.IsNaN(float64(p)) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	if p.IsNA() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if p.IsNA() {
		return "N/A"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
