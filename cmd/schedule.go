package cmd

import (
	"context"
	"flag"

	"github.com/etnz/sip/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	planFlags
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "list the contribution dates of a plan" }
func (*scheduleCmd) Usage() string {
	return `sipc schedule [-c <config>] [plan flags]

  Lists the monthly contribution dates of the plan, with the target day
  clamped to the last day of shorter months.

Usage Examples:
# Month-end plan over 2024.
$ sipc schedule -amount 1000 -start 2024-01 -end 2024-12 -day 31

`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	c.planFlags.SetFlags(f)
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, _, err := c.plan()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ScheduleMarkdown(plan, plan.Dates()))
	return subcommands.ExitSuccess
}
