package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/sip"
)

// PerformanceMarkdown renders the per-installment performance table.
func PerformanceMarkdown(records []sip.Record) string {
	var b strings.Builder

	fmt.Fprint(&b, "## Performance Between Installments\n\n")
	fmt.Fprint(&b, "| Date | NAV | Units Bought | Total Units | Value | Period Return |\n")
	fmt.Fprint(&b, "|:---|---:|---:|---:|---:|---:|\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			rec.On,
			rec.Price,
			rec.Units,
			rec.TotalUnits,
			rec.Value,
			rec.PeriodReturn.SignedString(),
		)
	}

	return b.String()
}

// ScheduleMarkdown renders the intended contribution dates of a plan.
func ScheduleMarkdown(plan sip.Plan, dates []sip.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Schedule %d-%02d to %d-%02d (day %d)\n\n",
		plan.StartYear, plan.StartMonth, plan.EndYear, plan.EndMonth, plan.Day)
	fmt.Fprintf(&b, "%d contributions of %s:\n\n", len(dates), plan.Amount)
	for _, on := range dates {
		fmt.Fprintf(&b, "- %s\n", on)
	}

	return b.String()
}
