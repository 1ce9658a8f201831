// Package cmd implements the CLI application to simulate investment plans.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sip"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands to register.
// A main package ranges over it and calls Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&scheduleCmd{},
	&xirrCmd{},
	&topicCmd{},
}

// As a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// planFlags holds the plan definition flags shared by the subcommands.
// Values left at their zero value do not override the configuration file.
type planFlags struct {
	config   string
	amount   float64
	currency string
	start    string
	end      string
	day      int
}

func (p *planFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.config, "c", "", "Path to a YAML plan configuration file")
	f.Float64Var(&p.amount, "amount", 0, "Amount contributed every month")
	f.StringVar(&p.currency, "currency", "", "Currency of the contributions (default INR)")
	f.StringVar(&p.start, "start", "", "First contribution month, e.g. 2022-03")
	f.StringVar(&p.end, "end", "", "Last contribution month, e.g. 2023-02")
	f.IntVar(&p.day, "day", 0, "Target day of the month (default 1)")
}

// load reads the configuration file if any and applies flag overrides.
func (p *planFlags) load() (*sip.Config, error) {
	var cfg *sip.Config
	if p.config != "" {
		c, err := sip.LoadConfig(p.config)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		cfg = &sip.Config{Currency: "INR", Day: 1}
		cfg.NAV.Format = "report"
	}
	if p.amount != 0 {
		cfg.Amount = p.amount
	}
	if p.currency != "" {
		cfg.Currency = p.currency
	}
	if p.start != "" {
		cfg.Start = p.start
	}
	if p.end != "" {
		cfg.End = p.end
	}
	if p.day != 0 {
		cfg.Day = p.day
	}
	return cfg, nil
}

// plan builds the plan from the configuration file and flag overrides.
func (p *planFlags) plan() (sip.Plan, *sip.Config, error) {
	cfg, err := p.load()
	if err != nil {
		return sip.Plan{}, nil, err
	}
	plan, err := cfg.Plan()
	if err != nil {
		return sip.Plan{}, nil, err
	}
	return plan, cfg, nil
}

// fail reports a command error and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
