package sip

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the distribution of per-period returns across a simulation.
type Stats struct {
	Periods    int     // number of periods with a defined return
	Mean       Percent // arithmetic mean of period returns
	StdDev     Percent // sample standard deviation of period returns
	Volatility Percent // StdDev annualized for monthly periods
	Best       Percent // highest period return
	Worst      Percent // lowest period return
}

// NewStats computes period-return statistics over the performance records.
// The first record carries no period return and is excluded.
func NewStats(records []Record) Stats {
	var returns []float64
	for _, r := range records {
		if r.PeriodReturn.IsNA() {
			continue
		}
		returns = append(returns, float64(r.PeriodReturn))
	}
	if len(returns) == 0 {
		return Stats{
			Mean:       NotApplicable(),
			StdDev:     NotApplicable(),
			Volatility: NotApplicable(),
			Best:       NotApplicable(),
			Worst:      NotApplicable(),
		}
	}

	s := Stats{
		Periods: len(returns),
		Mean:    Percent(stat.Mean(returns, nil)),
		Best:    Percent(returns[0]),
		Worst:   Percent(returns[0]),
	}
	if len(returns) > 1 {
		s.StdDev = Percent(stat.StdDev(returns, nil))
		s.Volatility = Percent(float64(s.StdDev) * math.Sqrt(12))
	} else {
		s.StdDev = NotApplicable()
		s.Volatility = NotApplicable()
	}
	for _, r := range returns {
		if Percent(r) > s.Best {
			s.Best = Percent(r)
		}
		if Percent(r) < s.Worst {
			s.Worst = Percent(r)
		}
	}
	return s
}
