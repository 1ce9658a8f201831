package sip

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySchedule reports a plan whose start month is after its end month.
	ErrEmptySchedule = errors.New("empty schedule")
	// ErrEmptyHistory reports a price history with no points at all.
	ErrEmptyHistory = errors.New("empty price history")
	// ErrNoInvestments reports that every scheduled contribution was skipped.
	ErrNoInvestments = errors.New("no investments processed")
)

// Record is the performance record of one executed contribution.
type Record struct {
	On           Date     `json:"date"`  // actual investment date
	Price        Money    `json:"nav"`   // NAV at which units were bought
	Units        Quantity `json:"units"` // units bought by this contribution
	TotalUnits   Quantity `json:"totalUnits"`
	Value        Money    `json:"value"`        // holding value right after the contribution
	PeriodReturn Percent  `json:"periodReturn"` // mark-to-market return of prior units since the last contribution; N/A on the first
}

// Skip records a scheduled date that could not be executed and why.
type Skip struct {
	On     Date
	Reason string
}

// Summary is the aggregate outcome of a simulation, structured and unformatted.
type Summary struct {
	Invested        Money
	FinalValue      Money
	Units           Quantity
	FinalPrice      Money
	FinalPriceDate  Date
	FirstInvestment Date
	Scheduled       int // intended contributions
	Executed        int // contributions actually processed

	AbsoluteReturn   Percent
	AnnualizedReturn Percent // money-weighted (XIRR); N/A when the solver fails
	CAGR             Percent // simplified lump-sum approximation; N/A when not computable
	DurationYears    float64
}

// Report is the full outcome of a simulation: the summary, one record per
// executed contribution, the signed cash-flow ledger, and every skipped date.
type Report struct {
	Plan    Plan
	Records []Record
	Ledger  []CashFlow
	Skips   []Skip
	Notes   []string // non-fatal diagnostics raised during the run
	Summary Summary
	Stats   Stats
}

// state is the accumulation state of the simulation fold.
type state struct {
	units     Quantity
	invested  Money
	trades    int
	lastValue Money // holding value right after the previous contribution
}

// apply executes one contribution at the given price and returns the next
// state along with the performance record. The receiver is left untouched, so
// a transition either fully happens or not at all.
func (s state) apply(on Date, price, amount Money) (state, Record) {
	// Value of previously held units at the new price, marked before this
	// contribution's units are added.
	preValue := price.Mul(s.units)
	bought := amount.DivPrice(price)

	next := state{
		units:    s.units.Add(bought),
		invested: s.invested.Add(amount),
		trades:   s.trades + 1,
	}
	next.lastValue = price.Mul(next.units)

	periodReturn := NotApplicable()
	if s.trades > 0 && s.lastValue.IsPositive() {
		periodReturn = Percent(100 * preValue.Sub(s.lastValue).AsFloat() / s.lastValue.AsFloat())
	}

	return next, Record{
		On:           on,
		Price:        price,
		Units:        bought,
		TotalUnits:   next.units,
		Value:        next.lastValue,
		PeriodReturn: periodReturn,
	}
}

// Simulate runs the plan against the price history in a single forward pass:
// it resolves each scheduled date to the first available NAV on or after it,
// folds the executed contributions into the accumulation state, values the
// holding at the end of the plan period, and computes the return metrics.
//
// Unresolvable dates are skipped and reported on the Report; they become fatal
// only when no contribution at all could be executed.
func Simulate(plan Plan, prices *History) (*Report, error) {
	dates := plan.Dates()
	if len(dates) == 0 {
		return nil, fmt.Errorf("plan starts %d-%02d after it ends %d-%02d: %w",
			plan.StartYear, plan.StartMonth, plan.EndYear, plan.EndMonth, ErrEmptySchedule)
	}
	if prices.Len() == 0 {
		return nil, ErrEmptyHistory
	}

	report := &Report{Plan: plan}
	currency := plan.Amount.Currency()

	var st state
	for _, scheduled := range dates {
		on, nav, ok := prices.ValueOnOrAfter(scheduled)
		if !ok {
			report.Skips = append(report.Skips, Skip{On: scheduled, Reason: "no NAV on or after this date"})
			continue
		}
		if math.IsNaN(nav) || math.IsInf(nav, 0) || nav <= 0 {
			report.Skips = append(report.Skips, Skip{On: scheduled, Reason: fmt.Sprintf("invalid NAV %v on %s", nav, on)})
			continue
		}

		var rec Record
		st, rec = st.apply(on, M(nav, currency), plan.Amount)
		report.Records = append(report.Records, rec)
		report.Ledger = append(report.Ledger, CashFlow{On: on, Amount: plan.Amount.Neg()})
	}

	if st.trades == 0 {
		return nil, fmt.Errorf("all %d scheduled dates were skipped: %w", len(dates), ErrNoInvestments)
	}

	// Terminal valuation: last NAV on or before the end of the plan period,
	// falling back to the very last point of the history.
	finalDate, finalNAV, ok := prices.ValueAsOf(plan.EndOfPeriod())
	if !ok {
		finalDate, finalNAV = prices.Latest()
		report.Notes = append(report.Notes,
			fmt.Sprintf("no NAV on or before %s, using last available NAV from %s", plan.EndOfPeriod(), finalDate))
	}
	finalPrice := M(finalNAV, currency)
	finalValue := finalPrice.Mul(st.units)
	report.Ledger = append(report.Ledger, CashFlow{On: finalDate, Amount: finalValue})

	first := report.Records[0].On
	years := DurationYears(first, finalDate)

	annualized, err := Xirr(report.Ledger)
	if err != nil {
		report.Notes = append(report.Notes, fmt.Sprintf("annualized return: %v", err))
	}
	cagr := CAGR(st.invested, finalValue, years)
	if cagr.IsNA() {
		report.Notes = append(report.Notes, fmt.Sprintf("CAGR not computable over %.2f years", years))
	}

	report.Summary = Summary{
		Invested:         st.invested,
		FinalValue:       finalValue,
		Units:            st.units,
		FinalPrice:       finalPrice,
		FinalPriceDate:   finalDate,
		FirstInvestment:  first,
		Scheduled:        len(dates),
		Executed:         st.trades,
		AbsoluteReturn:   AbsoluteReturn(st.invested, finalValue),
		AnnualizedReturn: annualized,
		CAGR:             cagr,
		DurationYears:    years,
	}
	report.Stats = NewStats(report.Records)
	return report, nil
}
