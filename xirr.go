package sip

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// CashFlow is a dated, signed amount in the investment ledger: contributions
// are negative, the terminal redemption is positive.
type CashFlow struct {
	On     Date  `json:"date"`
	Amount Money `json:"amount"`
}

// ErrNotComputable reports that a return metric has no computable value for
// the given inputs. It is recoverable: the rest of a summary remains valid.
var ErrNotComputable = errors.New("not computable")

const (
	// maxIterations bounds the root-finding loops of the XIRR solver.
	maxIterations = 100
	// tolerance is how close to a root the solver must get before stopping.
	tolerance = 1e-7
)

// Xirr computes the money-weighted annualized rate of return of an irregular
// cash-flow series: the rate r that zeroes the net present value
//
//	Σ amount_i / (1+r)^((date_i - date_0)/365)
//
// The flows are sorted by date first, so callers need not order them. The
// result is a Percent (10% annual growth yields 10.0).
//
// It fails with an error wrapping [ErrNotComputable] when there are fewer than
// two flows, when all flows have the same sign, or when the root-finding does
// not converge.
func Xirr(flows []CashFlow) (Percent, error) {
	if len(flows) < 2 {
		return NotApplicable(), fmt.Errorf("xirr requires at least two cash flows, got %d: %w", len(flows), ErrNotComputable)
	}

	sorted := slices.Clone(flows)
	slices.SortStableFunc(sorted, func(a, b CashFlow) int {
		switch {
		case a.On.Before(b.On):
			return -1
		case a.On.After(b.On):
			return 1
		default:
			return 0
		}
	})

	t0 := sorted[0].On
	years := make([]float64, len(sorted))
	amounts := make([]float64, len(sorted))
	var hasPositive, hasNegative bool
	for i, f := range sorted {
		years[i] = float64(f.On.Sub(t0)) / 365.0
		amounts[i] = f.Amount.AsFloat()
		if amounts[i] > 0 {
			hasPositive = true
		}
		if amounts[i] < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return NotApplicable(), fmt.Errorf("xirr requires both positive and negative cash flows: %w", ErrNotComputable)
	}

	npv := func(rate float64) float64 {
		var sum float64
		for i, a := range amounts {
			sum += a / math.Pow(1+rate, years[i])
		}
		return sum
	}
	dnpv := func(rate float64) float64 {
		var sum float64
		for i, a := range amounts {
			sum -= a * years[i] / math.Pow(1+rate, years[i]+1)
		}
		return sum
	}

	if rate, ok := newton(0.1, npv, dnpv); ok {
		return Percent(rate * 100), nil
	}
	// Newton can shoot past -100% or stall on a flat derivative; fall back to a
	// bracketed bisection over a wide but bounded rate interval.
	if rate, ok := bisect(npv); ok {
		return Percent(rate * 100), nil
	}
	return NotApplicable(), fmt.Errorf("xirr did not converge after %d iterations: %w", maxIterations, ErrNotComputable)
}

// newton runs a bounded Newton-Raphson iteration and reports success only for
// a finite root above -100%.
func newton(guess float64, f, df func(float64) float64) (float64, bool) {
	x := guess
	for range maxIterations {
		d := df(x)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, false
		}
		next := x - f(x)/d
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if math.Abs(next-x) < tolerance {
			return next, true
		}
		x = next
	}
	return 0, false
}

// bisect searches (-100%, +1000%] for a sign change of f, then narrows it down.
func bisect(f func(float64) float64) (float64, bool) {
	const lowest, highest, step = -0.9999, 10.0, 0.05

	lo := lowest
	flo := f(lo)
	hi := lo
	for hi < highest {
		hi = math.Min(hi+step, highest)
		fhi := f(hi)
		if flo*fhi <= 0 {
			break
		}
		lo, flo = hi, fhi
	}
	if flo*f(hi) > 0 {
		return 0, false // no bracket found
	}

	for range maxIterations {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if math.Abs(fmid) < tolerance || hi-lo < tolerance {
			return mid, true
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return (lo + hi) / 2, true
}
