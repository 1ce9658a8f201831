package sip

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the NAV import formats. A loader must produce a clean
// History: sorted, unique dates, positive prices. Missing columns are fatal,
// bad rows are dropped and counted so callers can warn about them.

// NAVReportOptions configures the column names and date layout of a tabular
// NAV report export. The zero value matches the AMFI historical NAV report.
type NAVReportOptions struct {
	DateColumn string // header of the date column, default "NAV Date"
	NAVColumn  string // header of the NAV column, default "NAV (Rs)"
	DateLayout string // [time.Parse] layout of the date column, default "02-01-2006"
}

func (o NAVReportOptions) withDefaults() NAVReportOptions {
	if o.DateColumn == "" {
		o.DateColumn = "NAV Date"
	}
	if o.NAVColumn == "" {
		o.NAVColumn = "NAV (Rs)"
	}
	if o.DateLayout == "" {
		o.DateLayout = "02-01-2006"
	}
	return o
}

// ImportNAVReport reads a CSV NAV report from 'r' and returns the price
// history and the number of rows dropped for having an unparseable date or a
// non-positive or non-numeric NAV.
//
// It fails when a required column is absent from the header, or when no valid
// row remains after filtering.
func ImportNAVReport(r io.Reader, opts NAVReportOptions) (*History, int, error) {
	opts = opts.withDefaults()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports are ragged often enough
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("cannot read NAV report header: %w", err)
	}
	dateCol, navCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case opts.DateColumn:
			dateCol = i
		case opts.NAVColumn:
			navCol = i
		}
	}
	if dateCol < 0 {
		return nil, 0, fmt.Errorf("date column %q not found in NAV report header %v", opts.DateColumn, header)
	}
	if navCol < 0 {
		return nil, 0, fmt.Errorf("NAV column %q not found in NAV report header %v", opts.NAVColumn, header)
	}

	prices := &History{}
	issues := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("cannot read NAV report row: %w", err)
		}
		if dateCol >= len(row) || navCol >= len(row) {
			issues++
			continue
		}

		t, err := time.Parse(opts.DateLayout, strings.TrimSpace(row[dateCol]))
		if err != nil {
			issues++
			continue
		}
		nav, err := strconv.ParseFloat(strings.TrimSpace(row[navCol]), 64)
		if err != nil || math.IsNaN(nav) || nav <= 0 {
			issues++
			continue
		}
		prices.Append(NewDate(t.Date()), nav)
	}

	if prices.Len() == 0 {
		return nil, issues, fmt.Errorf("no valid NAV entries after filtering (%d rows dropped): %w", issues, ErrEmptyHistory)
	}
	return prices, issues, nil
}

// "09/30/2022","43.84","42.82","44.62","42.81","25.89M","2.57%"
var investingFmt = regexp.MustCompile(`"(\d\d/\d\d/\d\d\d\d)","(\d+.\d+)"`)

// ImportInvestingCSV parses a price history in investing.com's CSV format.
// The file is expected to have the following format:
// "09/30/2022","43.84","42.82","44.62","42.81","25.89M","2.57%"
// The first line is a header line and is skipped.
// The date is in the format "MM/DD/YYYY" and the price is the close value.
func ImportInvestingCSV(r io.Reader) (*History, error) {
	line := 0
	scanner := bufio.NewScanner(r)
	prices := &History{}

	for scanner.Scan() {
		line++
		// Skip header line
		if line == 1 {
			continue
		}

		row := string(scanner.Bytes())
		subs := investingFmt.FindStringSubmatch(row)
		if len(subs) != 3 {
			return prices, fmt.Errorf("invalid Investing csv format line %d: got %q", line, row)
		}
		sdate := subs[1]
		t, err := time.Parse("01/02/2006", sdate)
		if err != nil {
			return prices, fmt.Errorf("invalid Investing csv format line %d: invalid date %q: %w", line, sdate, err)
		}

		sclose := subs[2]
		value, err := strconv.ParseFloat(sclose, 64)
		if err != nil {
			return prices, fmt.Errorf("invalid Investing csv format line %d: invalid number %q", line, sclose)
		}
		prices.Append(NewDate(t.Date()), value)
	}
	if prices.Len() == 0 {
		return prices, fmt.Errorf("no NAV entries found: %w", ErrEmptyHistory)
	}
	return prices, nil
}

// ImportNAVJSON extracts a price history from a JSON document using two
// JSONPath expressions: one selecting the list of dates (strings in the
// standard date format) and one selecting the matching list of NAV values.
//
// Pairs with an unparseable date or a non-positive value are dropped and
// counted, like rows of a tabular report.
func ImportNAVJSON(r io.Reader, datesPath, navsPath string) (*History, int, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, 0, fmt.Errorf("cannot decode NAV feed: %w", err)
	}

	jdates, err := jsonpath.Get(datesPath, jobj)
	if err != nil {
		return nil, 0, fmt.Errorf("error extracting dates with %q: %w", datesPath, err)
	}
	jnavs, err := jsonpath.Get(navsPath, jobj)
	if err != nil {
		return nil, 0, fmt.Errorf("error extracting NAVs with %q: %w", navsPath, err)
	}

	dates, ok := jdates.([]any)
	if !ok {
		return nil, 0, fmt.Errorf("dates path %q does not select a list", datesPath)
	}
	navs, ok := jnavs.([]any)
	if !ok {
		return nil, 0, fmt.Errorf("NAVs path %q does not select a list", navsPath)
	}
	if len(dates) != len(navs) {
		return nil, 0, fmt.Errorf("mismatched feed: %d dates for %d NAVs", len(dates), len(navs))
	}

	prices := &History{}
	issues := 0
	for i, jd := range dates {
		sdate, ok := jd.(string)
		if !ok {
			issues++
			continue
		}
		on, err := ParseDate(sdate)
		if err != nil {
			issues++
			continue
		}
		nav, ok := navs[i].(float64)
		if !ok || math.IsNaN(nav) || nav <= 0 {
			issues++
			continue
		}
		prices.Append(on, nav)
	}

	if prices.Len() == 0 {
		return nil, issues, fmt.Errorf("no valid NAV entries in feed (%d pairs dropped): %w", issues, ErrEmptyHistory)
	}
	return prices, issues, nil
}
