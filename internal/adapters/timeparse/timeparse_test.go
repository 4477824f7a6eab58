package timeparse

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/core/temporal"
)

// ref is a Monday morning
var ref = time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

func parseOne(t *testing.T, text string, ref time.Time, opts temporal.Options) temporal.Match {
	t.Helper()
	ms, err := New().Parse(context.Background(), text, ref, opts)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if len(ms) == 0 {
		t.Fatalf("Parse(%q): no match", text)
	}
	return ms[0]
}

func TestParse_WeekdayWithClock(t *testing.T) {
	t.Parallel()

	m := parseOne(t, "book dentist next friday at 3 pm", ref, temporal.Options{PreferFuture: true})

	if !m.Components.Day || !m.Components.Hour || !m.Components.Meridiem {
		t.Fatalf("components = %+v want day, hour and meridiem known", m.Components)
	}
	if m.Civil.Hour != 15 || m.Civil.Minute != 0 {
		t.Fatalf("clock = %02d:%02d want 15:00", m.Civil.Hour, m.Civil.Minute)
	}
	got := m.Civil.In(time.UTC)
	if !got.After(ref) {
		t.Fatalf("resolved %v is not after ref %v", got, ref)
	}
	if got.Weekday() != time.Friday {
		t.Fatalf("weekday = %v want Friday", got.Weekday())
	}
}

func TestParse_ExplicitISODate(t *testing.T) {
	t.Parallel()

	m := parseOne(t, "cardiology on 2026-09-15 at 3:30 pm", ref, temporal.Options{PreferFuture: true})

	want := temporal.CivilTime{Year: 2026, Month: time.September, Day: 15, Hour: 15, Minute: 30}
	if m.Civil != want {
		t.Fatalf("civil = %+v want %+v", m.Civil, want)
	}
	c := m.Components
	if !c.Year || !c.Month || !c.Day || !c.Hour || !c.Minute || !c.Meridiem {
		t.Fatalf("components = %+v want all known", c)
	}
	if c.Count() != 5 {
		t.Fatalf("count = %d want 5", c.Count())
	}
}

func TestParse_SlashDateWithYear(t *testing.T) {
	t.Parallel()

	m := parseOne(t, "9/15/2026 checkup", ref, temporal.Options{})

	if m.Civil.Year != 2026 || m.Civil.Month != time.September || m.Civil.Day != 15 {
		t.Fatalf("civil = %+v want 2026-09-15", m.Civil)
	}
	if !m.Components.Year {
		t.Fatalf("year should be known")
	}
	// no stated clock defaults to noon
	if m.Civil.Hour != 12 || m.Civil.Minute != 0 {
		t.Fatalf("clock = %02d:%02d want 12:00", m.Civil.Hour, m.Civil.Minute)
	}
}

func TestParse_MonthDayRollsToNextYear(t *testing.T) {
	t.Parallel()

	// ref is already past september 15
	late := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	m := parseOne(t, "september 15 at 9 am", late, temporal.Options{PreferFuture: true})

	if m.Civil.Year != 2027 || m.Civil.Month != time.September || m.Civil.Day != 15 {
		t.Fatalf("civil = %+v want 2027-09-15", m.Civil)
	}
	if m.Components.Year {
		t.Fatalf("year was not stated, should not be marked known")
	}
}

func TestParse_MonthDayStaysPastWithoutPreferFuture(t *testing.T) {
	t.Parallel()

	late := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	m := parseOne(t, "september 15 at 9 am", late, temporal.Options{})

	if m.Civil.Year != 2026 {
		t.Fatalf("year = %d want 2026", m.Civil.Year)
	}
}

func TestParse_ClockOnlyRollsToTomorrow(t *testing.T) {
	t.Parallel()

	evening := time.Date(2026, time.August, 31, 16, 0, 0, 0, time.UTC)
	m := parseOne(t, "at 3 pm", evening, temporal.Options{PreferFuture: true})

	got := m.Civil.In(time.UTC)
	if !got.After(evening) {
		t.Fatalf("resolved %v is not after ref %v", got, evening)
	}
	if m.Civil.Hour != 15 {
		t.Fatalf("hour = %d want 15", m.Civil.Hour)
	}
	if m.Components.Day || m.Components.Month {
		t.Fatalf("no date fields should be known, got %+v", m.Components)
	}
}

func TestParse_NoTemporalContent(t *testing.T) {
	t.Parallel()

	ms, err := New().Parse(context.Background(), "thanks for the help", ref, temporal.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ms) != 0 {
		t.Fatalf("expected no matches, got %+v", ms)
	}
}

func TestParse_EmptyText(t *testing.T) {
	t.Parallel()

	ms, err := New().Parse(context.Background(), "   ", ref, temporal.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ms != nil {
		t.Fatalf("expected nil matches, got %+v", ms)
	}
}

func TestFindClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in          string
		wantHour    int
		wantMinute  int
		wantMinKnwn bool
		wantMerid   bool
		wantOK      bool
	}{
		{"3:30 pm", 15, 30, true, true, true},
		{"3:30pm", 15, 30, true, true, true},
		{"15:45", 15, 45, true, false, true},
		{"3 pm", 15, 0, false, true, true},
		{"12 am", 0, 0, false, true, true},
		{"12 pm", 12, 0, false, true, true},
		{"noon", 12, 0, false, false, true},
		{"midnight", 0, 0, false, false, true},
		{"room 15", 0, 0, false, false, false},
		{"", 0, 0, false, false, false},
	}
	for _, tc := range tests {
		cl, ok := findClock(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("findClock(%q) ok = %v want %v", tc.in, ok, tc.wantOK)
		}
		if !ok {
			continue
		}
		if cl.hour != tc.wantHour || cl.minute != tc.wantMinute {
			t.Fatalf("findClock(%q) = %02d:%02d want %02d:%02d", tc.in, cl.hour, cl.minute, tc.wantHour, tc.wantMinute)
		}
		if cl.minuteKnown != tc.wantMinKnwn || cl.meridiem != tc.wantMerid {
			t.Fatalf("findClock(%q) flags = %+v", tc.in, cl)
		}
	}
}

func TestFindExplicitDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		wantY     int
		wantM     time.Month
		wantD     int
		wantYKnwn bool
		wantOK    bool
	}{
		{"2026-09-15", 2026, time.September, 15, true, true},
		{"9/15/2026", 2026, time.September, 15, true, true},
		{"9/15", 2026, time.September, 15, false, true},
		{"september 15", 2026, time.September, 15, false, true},
		{"september 15th, 2027", 2027, time.September, 15, true, true},
		{"15 september", 2026, time.September, 15, false, true},
		{"15th of september 2027", 2027, time.September, 15, true, true},
		{"13/15", 0, 0, 0, false, false},
		{"next friday", 0, 0, 0, false, false},
	}
	for _, tc := range tests {
		ed, ok := findExplicitDate(tc.in, ref)
		if ok != tc.wantOK {
			t.Fatalf("findExplicitDate(%q) ok = %v want %v", tc.in, ok, tc.wantOK)
		}
		if !ok {
			continue
		}
		if ed.year != tc.wantY || ed.month != tc.wantM || ed.day != tc.wantD || ed.yearKnown != tc.wantYKnwn {
			t.Fatalf("findExplicitDate(%q) = %+v", tc.in, ed)
		}
	}
}
