package sip

import (
	"testing"
	"time"
)

func TestPlanDates(t *testing.T) {
	plan := Plan{StartYear: 2022, StartMonth: time.March, EndYear: 2023, EndMonth: time.February, Day: 1}
	dates := plan.Dates()

	if len(dates) != 12 {
		t.Fatalf("got %d dates, want 12", len(dates))
	}
	if dates[0] != d("2022-03-01") {
		t.Errorf("first date = %s, want 2022-03-01", dates[0])
	}
	if dates[11] != d("2023-02-01") {
		t.Errorf("last date = %s, want 2023-02-01", dates[11])
	}
	for i := 1; i < len(dates); i++ {
		prev, cur := dates[i-1], dates[i]
		wantYear, wantMonth := prev.Year(), prev.Month()+1
		if wantMonth > time.December {
			wantYear, wantMonth = wantYear+1, time.January
		}
		if cur.Year() != wantYear || cur.Month() != wantMonth || cur.Day() != 1 {
			t.Errorf("date %d = %s, want one calendar month after %s", i, cur, prev)
		}
	}
}

func TestPlanDates_MonthEndClamp(t *testing.T) {
	// Day 31 clamps to the month's last day, and reverts to the 31st on longer
	// months without drifting.
	plan := Plan{StartYear: 2024, StartMonth: time.January, EndYear: 2024, EndMonth: time.May, Day: 31}
	want := []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30", "2024-05-31"}

	dates := plan.Dates()
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(dates), len(want))
	}
	for i, w := range want {
		if dates[i].String() != w {
			t.Errorf("date %d = %s, want %s", i, dates[i], w)
		}
	}
}

func TestPlanDates_StartAfterEnd(t *testing.T) {
	plan := Plan{StartYear: 2023, StartMonth: time.May, EndYear: 2022, EndMonth: time.February, Day: 1}
	if dates := plan.Dates(); len(dates) != 0 {
		t.Errorf("got %d dates, want an empty schedule", len(dates))
	}
}

func TestPlanDates_SingleMonth(t *testing.T) {
	plan := Plan{StartYear: 2024, StartMonth: time.June, EndYear: 2024, EndMonth: time.June, Day: 15}
	dates := plan.Dates()
	if len(dates) != 1 || dates[0] != d("2024-06-15") {
		t.Errorf("got %v, want exactly [2024-06-15]", dates)
	}
}

func TestPlanEndOfPeriod(t *testing.T) {
	plan := Plan{EndYear: 2025, EndMonth: time.February, Day: 1}
	if got := plan.EndOfPeriod(); got != d("2025-02-28") {
		t.Errorf("EndOfPeriod() = %s, want 2025-02-28", got)
	}
}

func TestPlanRange(t *testing.T) {
	plan := Plan{StartYear: 2022, StartMonth: time.March, EndYear: 2025, EndMonth: time.February, Day: 1}
	from, to := plan.Range()
	if from != d("2022-02-22") {
		t.Errorf("from = %s, want 2022-02-22", from)
	}
	if to != d("2025-03-07") {
		t.Errorf("to = %s, want 2025-03-07", to)
	}
}
