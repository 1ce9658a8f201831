package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/sip"
	"github.com/etnz/sip/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	planFlags
	input      string
	format     string
	dateCol    string
	navCol     string
	dateLayout string
	datesPath  string
	navsPath   string
	summary    bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a plan against a NAV history" }
func (*simulateCmd) Usage() string {
	return `sipc simulate [-c <config>] [-i <file>] [-format <format>] [plan flags]

  Runs the monthly investment plan against the fund's NAV history and reports
  the accumulated units, final value and return metrics.

Usage Examples:
# Run the plan described in plan.yaml.
$ sipc simulate -c plan.yaml

# Run an ad-hoc plan against a NAV report export.
$ sipc simulate -i fund.csv -amount 10000 -start 2022-03 -end 2023-02

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.planFlags.SetFlags(f)
	f.StringVar(&c.input, "i", "", "NAV history file. Overrides the nav.file configuration.")
	f.StringVar(&c.format, "format", "", "NAV file format (report, investing, json)")
	f.StringVar(&c.dateCol, "date-col", "", "Date column name for the report format")
	f.StringVar(&c.navCol, "nav-col", "", "NAV column name for the report format")
	f.StringVar(&c.dateLayout, "date-layout", "", "Date layout for the report format, e.g. 02-01-2006")
	f.StringVar(&c.datesPath, "dates-path", "", "JSONPath to the list of dates, json format only")
	f.StringVar(&c.navsPath, "navs-path", "", "JSONPath to the list of NAVs, json format only")
	f.BoolVar(&c.summary, "summary", false, "Only print the summary, not the installment table")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, cfg, err := c.plan()
	if err != nil {
		return fail(err)
	}
	c.override(cfg)

	prices, err := c.loadHistory(cfg)
	if err != nil {
		return fail(err)
	}

	// Restrict the history to the plan window before folding.
	from, to := plan.Range()
	report, err := sip.Simulate(plan, prices.Between(from, to))
	if err != nil {
		return fail(err)
	}

	for _, skip := range report.Skips {
		log.Warn().Stringer("date", skip.On).Msg(skip.Reason)
	}
	for _, note := range report.Notes {
		log.Info().Msg(note)
	}

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(report))
	if !c.summary {
		b.WriteString("\n")
		b.WriteString(renderer.PerformanceMarkdown(report.Records))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// override applies the NAV source flags on top of the configuration.
func (c *simulateCmd) override(cfg *sip.Config) {
	if c.input != "" {
		cfg.NAV.File = c.input
	}
	if c.format != "" {
		cfg.NAV.Format = c.format
	}
	if c.dateCol != "" {
		cfg.NAV.DateColumn = c.dateCol
	}
	if c.navCol != "" {
		cfg.NAV.NAVColumn = c.navCol
	}
	if c.dateLayout != "" {
		cfg.NAV.DateLayout = c.dateLayout
	}
	if c.datesPath != "" {
		cfg.NAV.DatesPath = c.datesPath
	}
	if c.navsPath != "" {
		cfg.NAV.NAVsPath = c.navsPath
	}
}

// loadHistory imports the NAV history named by the configuration.
func (c *simulateCmd) loadHistory(cfg *sip.Config) (*sip.History, error) {
	if cfg.NAV.File == "" {
		return nil, fmt.Errorf("no NAV file, use -i or set nav.file in the configuration")
	}
	file, err := os.Open(cfg.NAV.File)
	if err != nil {
		return nil, fmt.Errorf("open NAV file: %w", err)
	}
	defer file.Close()

	var prices *sip.History
	var issues int
	switch cfg.NAV.Format {
	case "", "report":
		prices, issues, err = sip.ImportNAVReport(file, sip.NAVReportOptions{
			DateColumn: cfg.NAV.DateColumn,
			NAVColumn:  cfg.NAV.NAVColumn,
			DateLayout: cfg.NAV.DateLayout,
		})
	case "investing":
		prices, err = sip.ImportInvestingCSV(file)
	case "json":
		prices, issues, err = sip.ImportNAVJSON(file, cfg.NAV.DatesPath, cfg.NAV.NAVsPath)
	default:
		return nil, fmt.Errorf("unknown format %q, want report, investing or json", cfg.NAV.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("import %q: %w", cfg.NAV.File, err)
	}
	if issues > 0 {
		log.Warn().Int("rows", issues).Str("file", cfg.NAV.File).Msg("skipped unreadable rows")
	}
	log.Info().Int("points", prices.Len()).Str("file", cfg.NAV.File).Msg("NAV history loaded")
	return prices, nil
}
