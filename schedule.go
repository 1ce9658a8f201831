package sip

import "time"

// Plan describes a recurring fixed-amount investment: the same amount is
// contributed every calendar month on the same target day, from the start
// month to the end month inclusive.
type Plan struct {
	Amount     Money      // contribution per installment
	StartYear  int        //
	StartMonth time.Month //
	EndYear    int        //
	EndMonth   time.Month //
	Day        int        // target day of the month, clamped to shorter months

	// ProjectionYears is reserved for a future-value projection feature and is
	// not used by the simulation itself.
	ProjectionYears int
}

// contributionDay returns the effective contribution date in the given month:
// the plan's target day, clamped to the month's last day when the month is
// shorter. The clamp is re-derived from the target day every month, so a plan
// on the 31st falls on April 30th and back on May 31st without drifting.
func (p Plan) contributionDay(year int, month time.Month) Date {
	day := p.Day
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}

// Dates returns the ordered list of intended contribution dates, one per
// calendar month from start to end inclusive.
//
// The list is empty when the start month is after the end month; callers must
// treat an empty schedule as fatal.
func (p Plan) Dates() []Date {
	var dates []Date
	end := p.contributionDay(p.EndYear, p.EndMonth)
	y, m := p.StartYear, p.StartMonth
	for {
		on := p.contributionDay(y, m)
		if on.After(end) {
			return dates
		}
		dates = append(dates, on)
		next := NewDate(y, m+1, 1)
		y, m = next.Year(), next.Month()
	}
}

// EndOfPeriod returns the last day of the plan's end month, the target date
// for the terminal valuation.
func (p Plan) EndOfPeriod() Date {
	return NewDate(p.EndYear, p.EndMonth+1, 0)
}

// Range returns the window of price data relevant to the plan, padded by a few
// days on both sides so that boundary lookups still resolve.
func (p Plan) Range() (from, to Date) {
	const padding = 7 // days
	return NewDate(p.StartYear, p.StartMonth, 1).Add(-padding), p.EndOfPeriod().Add(padding)
}
