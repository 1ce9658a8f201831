package sip

import (
	"errors"
	"testing"
	"time"
)

func TestSimulate_AccumulationInvariants(t *testing.T) {
	prices := series(map[string]float64{
		"2024-01-01": 100,
		"2024-02-01": 104,
		"2024-03-01": 98,
		"2024-04-01": 110,
	})
	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.April,
		Day: 1,
	}

	report, err := Simulate(plan, prices)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	if report.Summary.Executed != 4 {
		t.Fatalf("executed %d trades, want 4", report.Summary.Executed)
	}
	if !report.Summary.Invested.Equal(INR(40000)) {
		t.Errorf("invested = %s, want exactly 4 x 10000", report.Summary.Invested)
	}

	wantUnits := Q(0)
	for _, nav := range []float64{100, 104, 98, 110} {
		wantUnits = wantUnits.Add(INR(10000).DivPrice(INR(nav)))
	}
	if !report.Summary.Units.Equal(wantUnits) {
		t.Errorf("units = %s, want %s", report.Summary.Units, wantUnits)
	}

	// Cumulative units on the last record equal the summary total.
	last := report.Records[len(report.Records)-1]
	if !last.TotalUnits.Equal(report.Summary.Units) {
		t.Errorf("last record units = %s, want %s", last.TotalUnits, report.Summary.Units)
	}
}

func TestSimulate_PeriodReturn(t *testing.T) {
	// Two trades at 100 then 110: the first has no period return, the second
	// marks the previously held units 10% higher.
	prices := series(map[string]float64{
		"2024-01-01": 100,
		"2024-02-01": 110,
	})
	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.February,
		Day: 1,
	}

	report, err := Simulate(plan, prices)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if len(report.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(report.Records))
	}
	if !report.Records[0].PeriodReturn.IsNA() {
		t.Errorf("first record period return = %v, want N/A", report.Records[0].PeriodReturn)
	}
	if !report.Records[1].PeriodReturn.Equal(10.0) {
		t.Errorf("second record period return = %v, want 10.00%%", report.Records[1].PeriodReturn)
	}
}

func TestSimulate_SkipsUnresolvableDates(t *testing.T) {
	// No NAV on or after the April contribution: it is skipped, the rest runs.
	prices := series(map[string]float64{
		"2024-01-02": 100,
		"2024-02-02": 105,
		"2024-03-02": 108,
	})
	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.April,
		Day: 1,
	}

	report, err := Simulate(plan, prices)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if report.Summary.Executed != 3 {
		t.Errorf("executed %d trades, want 3", report.Summary.Executed)
	}
	if len(report.Skips) != 1 || report.Skips[0].On != d("2024-04-01") {
		t.Errorf("skips = %v, want exactly the April date", report.Skips)
	}
	// Each trade executed on the next available NAV date.
	if report.Records[0].On != d("2024-01-02") {
		t.Errorf("first trade executed on %s, want 2024-01-02", report.Records[0].On)
	}
}

func TestSimulate_NoInvestments(t *testing.T) {
	// The whole series is before the schedule: every date skips, fatal.
	prices := series(map[string]float64{"2020-01-01": 100})
	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.March,
		Day: 1,
	}

	_, err := Simulate(plan, prices)
	if !errors.Is(err, ErrNoInvestments) {
		t.Fatalf("error = %v, want ErrNoInvestments", err)
	}
}

func TestSimulate_EmptySchedule(t *testing.T) {
	prices := series(map[string]float64{"2024-01-01": 100})
	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.May,
		EndYear: 2024, EndMonth: time.January,
		Day: 1,
	}

	_, err := Simulate(plan, prices)
	if !errors.Is(err, ErrEmptySchedule) {
		t.Fatalf("error = %v, want ErrEmptySchedule", err)
	}
}

func TestSimulate_EmptyHistory(t *testing.T) {
	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.March,
		Day: 1,
	}

	_, err := Simulate(plan, &History{})
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("error = %v, want ErrEmptyHistory", err)
	}
}

func TestSimulate_InvalidNAVSkipped(t *testing.T) {
	prices := &History{}
	prices.Append(d("2024-01-01"), 100)
	prices.Append(d("2024-02-01"), -5) // invalid, resolution must skip it
	prices.Append(d("2024-03-01"), 110)

	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.March,
		Day: 1,
	}

	report, err := Simulate(plan, prices)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if report.Summary.Executed != 2 {
		t.Errorf("executed %d trades, want 2", report.Summary.Executed)
	}
	if len(report.Skips) != 1 || report.Skips[0].On != d("2024-02-01") {
		t.Errorf("skips = %v, want exactly the February date", report.Skips)
	}
}

func TestSimulate_Ledger(t *testing.T) {
	prices := series(map[string]float64{
		"2024-01-01": 100,
		"2024-02-01": 110,
	})
	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.February,
		Day: 1,
	}

	report, err := Simulate(plan, prices)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	// Two negative contributions plus one positive terminal redemption.
	if len(report.Ledger) != 3 {
		t.Fatalf("ledger has %d flows, want 3", len(report.Ledger))
	}
	for _, f := range report.Ledger[:2] {
		if !f.Amount.IsNegative() {
			t.Errorf("contribution on %s is %s, want negative", f.On, f.Amount)
		}
	}
	redemption := report.Ledger[2]
	if !redemption.Amount.IsPositive() {
		t.Errorf("redemption is %s, want positive", redemption.Amount)
	}
	if redemption.On != report.Summary.FinalPriceDate {
		t.Errorf("redemption dated %s, want %s", redemption.On, report.Summary.FinalPriceDate)
	}
	if !redemption.Amount.Equal(report.Summary.FinalValue) {
		t.Errorf("redemption = %s, want final value %s", redemption.Amount, report.Summary.FinalValue)
	}
}

func TestSimulate_EndToEnd(t *testing.T) {
	// NAV rises linearly from 100 to 200 over 12 monthly points; 12
	// contributions of 10000 on the 1st.
	prices := &History{}
	navs := make([]float64, 12)
	for i := range navs {
		navs[i] = 100 + 100*float64(i)/11
		prices.Append(NewDate(2024, time.January+time.Month(i), 1), navs[i])
	}
	plan := Plan{
		Amount:    INR(10000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.December,
		Day: 1,
	}

	report, err := Simulate(plan, prices)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	s := report.Summary

	if !s.Invested.Equal(INR(120000)) {
		t.Errorf("invested = %s, want 120000", s.Invested)
	}
	wantUnits := Q(0)
	for _, nav := range navs {
		wantUnits = wantUnits.Add(INR(10000).DivPrice(INR(nav)))
	}
	if !s.Units.Equal(wantUnits) {
		t.Errorf("units = %s, want %s", s.Units, wantUnits)
	}
	if !s.FinalValue.Equal(INR(200).Mul(wantUnits)) {
		t.Errorf("final value = %s, want units x 200", s.FinalValue)
	}
	if s.FinalPriceDate != d("2024-12-01") {
		t.Errorf("final price date = %s, want 2024-12-01", s.FinalPriceDate)
	}
	if s.FirstInvestment != d("2024-01-01") {
		t.Errorf("first investment = %s, want 2024-01-01", s.FirstInvestment)
	}
	if s.AbsoluteReturn.IsNA() || s.AbsoluteReturn <= 0 {
		t.Errorf("absolute return = %v, want positive", s.AbsoluteReturn)
	}
	if s.AnnualizedReturn.IsNA() || s.AnnualizedReturn <= 0 {
		t.Errorf("annualized return = %v, want computable and positive", s.AnnualizedReturn)
	}
	if s.CAGR.IsNA() || s.CAGR <= 0 {
		t.Errorf("CAGR = %v, want computable and positive", s.CAGR)
	}
	if report.Stats.Periods != 11 {
		t.Errorf("stats over %d periods, want 11", report.Stats.Periods)
	}
	if report.Stats.Mean.IsNA() || report.Stats.Mean <= 0 {
		t.Errorf("mean period return = %v, want positive", report.Stats.Mean)
	}
}

// TestSimulate_FoldIsDeterministic recomputes the fold independently and
// compares, guarding the sequential per-trade dependency.
func TestSimulate_FoldIsDeterministic(t *testing.T) {
	prices := series(map[string]float64{
		"2024-01-01": 100,
		"2024-02-01": 95,
		"2024-03-01": 120,
	})
	plan := Plan{
		Amount:    INR(5000),
		StartYear: 2024, StartMonth: time.January,
		EndYear: 2024, EndMonth: time.March,
		Day: 1,
	}

	report, err := Simulate(plan, prices)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	var st state
	for i, rec := range report.Records {
		var want Record
		st, want = st.apply(rec.On, rec.Price, plan.Amount)
		if !rec.TotalUnits.Equal(want.TotalUnits) || !rec.Value.Equal(want.Value) {
			t.Errorf("record %d diverges from an independent fold", i)
		}
	}
}
