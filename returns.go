package sip

import "math"

// AbsoluteReturn is the total gain or loss relative to the invested capital,
// regardless of how long the capital was at work.
func AbsoluteReturn(invested, finalValue Money) Percent {
	if !invested.IsPositive() {
		return NotApplicable()
	}
	return Percent(100 * finalValue.Sub(invested).AsFloat() / invested.AsFloat())
}

// DurationYears is the investment duration in fractional years between the
// first executed contribution and the terminal valuation date.
func DurationYears(first, last Date) float64 {
	return float64(last.Sub(first)) / 365.25
}

// CAGR is the simplified compound annual growth rate over the given duration.
//
// It deliberately treats the total contributed capital as a single lump sum at
// the first investment date. For a series of staggered contributions that
// understates the true rate; it is reported alongside XIRR as a rough
// cross-check, never instead of it.
func CAGR(invested, finalValue Money, years float64) Percent {
	if years <= 0 || !invested.IsPositive() || !finalValue.IsPositive() {
		return NotApplicable()
	}
	return Percent(100 * (math.Pow(finalValue.AsFloat()/invested.AsFloat(), 1/years) - 1))
}
