// Package renderer turns simulation reports into markdown. The core emits
// structured values only; everything about presentation lives here.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/sip"
)

// SummaryMarkdown renders the aggregate outcome of a simulation.
func SummaryMarkdown(report *sip.Report) string {
	var b strings.Builder
	s := report.Summary

	fmt.Fprintf(&b, "# SIP Results %d-%02d to %d-%02d (day %d)\n\n",
		report.Plan.StartYear, report.Plan.StartMonth,
		report.Plan.EndYear, report.Plan.EndMonth,
		report.Plan.Day)

	fmt.Fprintf(&b, "Monthly contribution: %s\n\n", report.Plan.Amount)
	fmt.Fprintf(&b, "First investment: %s, final NAV %s on %s\n\n",
		s.FirstInvestment, s.FinalPrice, s.FinalPriceDate)

	fmt.Fprint(&b, "| | |\n")
	fmt.Fprint(&b, "|:---|---:|\n")
	fmt.Fprintf(&b, "| Invested | %s |\n", s.Invested)
	fmt.Fprintf(&b, "| Installments | %d / %d |\n", s.Executed, s.Scheduled)
	fmt.Fprintf(&b, "| Units | %s |\n", s.Units)
	fmt.Fprintf(&b, "| Final value | %s |\n", s.FinalValue)
	fmt.Fprintf(&b, "| Gain/Loss | %s |\n", s.FinalValue.Sub(s.Invested).SignedString())
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "## Returns\n\n")
	fmt.Fprint(&b, "| Metric | Value |\n")
	fmt.Fprint(&b, "|:---|---:|\n")
	fmt.Fprintf(&b, "| Absolute | %s |\n", s.AbsoluteReturn)
	fmt.Fprintf(&b, "| Annualized (XIRR) | %s |\n", s.AnnualizedReturn)
	fmt.Fprintf(&b, "| Simplified CAGR | %s |\n", s.CAGR)
	fmt.Fprintln(&b)
	if !s.CAGR.IsNA() {
		fmt.Fprintf(&b, "Simplified CAGR treats the %s total as a lump sum over %.2f years; XIRR is the money-weighted rate.\n\n",
			s.Invested, s.DurationYears)
	}

	if st := report.Stats; st.Periods > 0 {
		fmt.Fprint(&b, "## Period Returns\n\n")
		fmt.Fprint(&b, "| | |\n")
		fmt.Fprint(&b, "|:---|---:|\n")
		fmt.Fprintf(&b, "| Periods | %d |\n", st.Periods)
		fmt.Fprintf(&b, "| Mean | %s |\n", st.Mean.SignedString())
		fmt.Fprintf(&b, "| Std. deviation | %s |\n", st.StdDev)
		fmt.Fprintf(&b, "| Annualized volatility | %s |\n", st.Volatility)
		fmt.Fprintf(&b, "| Best | %s |\n", st.Best.SignedString())
		fmt.Fprintf(&b, "| Worst | %s |\n", st.Worst.SignedString())
		fmt.Fprintln(&b)
	}

	if len(report.Skips) > 0 {
		fmt.Fprintf(&b, "## Skipped Dates (%d)\n\n", len(report.Skips))
		fmt.Fprint(&b, "| Date | Reason |\n")
		fmt.Fprint(&b, "|:---|:---|\n")
		for _, skip := range report.Skips {
			fmt.Fprintf(&b, "| %s | %s |\n", skip.On, skip.Reason)
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}
