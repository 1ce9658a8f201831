package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/etnz/sip"
	"github.com/google/subcommands"
)

// xirrCmd holds the flags for the 'xirr' subcommand.
type xirrCmd struct {
	input    string
	currency string
}

func (*xirrCmd) Name() string     { return "xirr" }
func (*xirrCmd) Synopsis() string { return "annualized return of an arbitrary cash-flow ledger" }
func (*xirrCmd) Usage() string {
	return `sipc xirr [-i <file>]

  Computes the money-weighted annualized return of a cash-flow ledger read as
  CSV lines of "date,amount" (dates as 2006-01-02, outflows negative). Reads
  standard input when no file is given.

Usage Examples:
$ sipc xirr -i flows.csv
$ printf '2024-01-01,-1000\n2025-01-01,1100\n' | sipc xirr

`
}

func (c *xirrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Cash-flow CSV file. Reads standard input by default.")
	f.StringVar(&c.currency, "currency", "INR", "Currency of the cash flows")
}

func (c *xirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		in = file
	}

	flows, err := c.readFlows(in)
	if err != nil {
		return fail(err)
	}

	rate, err := sip.Xirr(flows)
	if err != nil {
		return fail(err)
	}
	fmt.Println(rate)
	return subcommands.ExitSuccess
}

// readFlows parses "date,amount" CSV lines into a cash-flow ledger.
func (c *xirrCmd) readFlows(in io.Reader) ([]sip.CashFlow, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	var flows []sip.CashFlow
	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		on, err := sip.ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		amount, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, record[1], err)
		}
		flows = append(flows, sip.CashFlow{On: on, Amount: sip.M(amount, c.currency)})
	}
	return flows, nil
}
