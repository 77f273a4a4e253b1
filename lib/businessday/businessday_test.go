// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package businessday

import (
	"slices"
	"testing"
	"time"

	"github.com/bureau-foundation/firetime/lib/cron"
)

func schedule(t *testing.T, expression string) *cron.Expression {
	t.Helper()
	parsed, err := cron.Parser{Location: time.UTC}.Parse(expression)
	if err != nil {
		t.Fatalf("Parse(%q): %v", expression, err)
	}
	return parsed
}

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type calendarFunc func(time.Time) bool

func (f calendarFunc) IsBusinessDay(t time.Time) bool { return f(t) }

func TestNextDailyAroundWeekend(t *testing.T) {
	daily := "0 0 10 * * ?"
	tests := []struct {
		name       string
		from       time.Time
		adjustment Adjustment
		want       time.Time
	}{
		{"skip_moves_to_monday", utc(2024, time.November, 22, 11, 0), Skip, utc(2024, time.November, 25, 10, 0)},
		{"shift_zero_returns_raw", utc(2024, time.November, 22, 10, 0), Shift(0), utc(2024, time.November, 23, 10, 0)},
		{"shift_two_forward", utc(2024, time.November, 22, 11, 0), Shift(2), utc(2024, time.November, 26, 10, 0)},
		{"shift_back_on_business_day", utc(2024, time.November, 21, 10, 0), Shift(-1), utc(2024, time.November, 22, 10, 0)},
		{"shift_one_forward", utc(2024, time.November, 22, 11, 0), Shift(1), utc(2024, time.November, 25, 10, 0)},
		{"shift_back_before_from_resumes", utc(2024, time.November, 22, 11, 0), Shift(-1), utc(2024, time.November, 25, 10, 0)},
		{"shift_back_after_from", utc(2024, time.November, 22, 9, 0), Shift(-1), utc(2024, time.November, 22, 10, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := Next(schedule(t, daily), test.from, test.adjustment, nil)
			if !ok {
				t.Fatalf("Next(%v, %s) found nothing", test.from, test.adjustment)
			}
			if !got.Equal(test.want) {
				t.Errorf("Next(%v, %s) = %v, want %v", test.from, test.adjustment, got, test.want)
			}
		})
	}
}

func TestNextWeeklyOnSaturday(t *testing.T) {
	saturdays := schedule(t, "0 0 9 ? * SAT")
	from := utc(2024, time.November, 20, 0, 0)

	forward, _ := Next(saturdays, from, Shift(1), DefaultWeekends())
	if !forward.Equal(utc(2024, time.November, 25, 9, 0)) {
		t.Errorf("Shift(1) = %v, want Monday 2024-11-25 09:00", forward)
	}
	backward, _ := Next(saturdays, from, Shift(-1), DefaultWeekends())
	if !backward.Equal(utc(2024, time.November, 22, 9, 0)) {
		t.Errorf("Shift(-1) = %v, want Friday 2024-11-22 09:00", backward)
	}
	if got, ok := Next(saturdays, from, Skip, DefaultWeekends()); ok {
		t.Errorf("Skip on a Saturday-only schedule = %v, want nothing", got)
	}
}

func TestNextWithHolidays(t *testing.T) {
	daily := schedule(t, "0 0 10 * * ?")
	calendar := WithHolidays(DefaultWeekends(), date(2024, time.November, 25), date(2024, time.November, 28))
	from := utc(2024, time.November, 22, 11, 0)

	got, _ := Next(daily, from, Skip, calendar)
	if !got.Equal(utc(2024, time.November, 26, 10, 0)) {
		t.Errorf("Skip = %v, want Tuesday 2024-11-26 10:00", got)
	}
	got, _ = Next(daily, from, Shift(1), calendar)
	if !got.Equal(utc(2024, time.November, 26, 10, 0)) {
		t.Errorf("Shift(1) = %v, want Tuesday 2024-11-26 10:00", got)
	}

	times := NextN(daily, from, 5, Skip, calendar)
	want := []time.Time{
		utc(2024, time.November, 26, 10, 0),
		utc(2024, time.November, 27, 10, 0),
		utc(2024, time.November, 29, 10, 0),
		utc(2024, time.December, 2, 10, 0),
		utc(2024, time.December, 3, 10, 0),
	}
	if !slices.EqualFunc(times, want, time.Time.Equal) {
		t.Errorf("NextN = %v, want %v", times, want)
	}
}

func TestNextCustomWeekends(t *testing.T) {
	daily := schedule(t, "0 0 10 * * ?")
	fridaySaturday := NewWeekends(time.Friday, time.Saturday)
	got, _ := Next(daily, utc(2024, time.November, 21, 11, 0), Skip, fridaySaturday)
	if !got.Equal(utc(2024, time.November, 24, 10, 0)) {
		t.Errorf("Skip = %v, want Sunday 2024-11-24 10:00", got)
	}
}

func TestNextWithoutBusinessDays(t *testing.T) {
	daily := schedule(t, "0 0 10 * * ?")
	everyDay := NewWeekends(time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday)
	from := utc(2024, time.November, 22, 11, 0)

	for _, calendar := range []Calendar{everyDay, &everyDay, WithHolidays(everyDay, date(2024, time.December, 25))} {
		for _, adjustment := range []Adjustment{Skip, Shift(1), Shift(-3)} {
			if got, ok := Next(daily, from, adjustment, calendar); ok {
				t.Errorf("Next(%T, %s) = %v, want nothing", calendar, adjustment, got)
			}
		}
	}
	if _, ok := Next(daily, from, Shift(0), everyDay); !ok {
		t.Error("Shift(0) should ignore the calendar")
	}

	never := calendarFunc(func(time.Time) bool { return false })
	if got, ok := Next(daily, from, Shift(1), never); ok {
		t.Errorf("Shift(1) with an opaque closed calendar = %v, want nothing", got)
	}
	if got, ok := Next(schedule(t, "0 0 10 * * ? 2024"), from, Skip, never); ok {
		t.Errorf("Skip with an opaque closed calendar = %v, want nothing", got)
	}
}

func TestNextExhaustedSchedule(t *testing.T) {
	past := schedule(t, "0 0 10 * * ? 2010")
	for _, adjustment := range []Adjustment{Skip, Shift(0), Shift(2)} {
		if got, ok := Next(past, utc(2024, time.January, 1, 0, 0), adjustment, nil); ok {
			t.Errorf("Next(%s) = %v, want nothing", adjustment, got)
		}
	}
}

func TestShiftKeepsWallClockAcrossDaylightSaving(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	// 2024-11-03 is a Sunday and the end of daylight saving time.
	saturday := time.Date(2024, time.November, 2, 9, 0, 0, 0, newYork)
	got, ok := shift(saturday, 1, DefaultWeekends())
	want := time.Date(2024, time.November, 4, 9, 0, 0, 0, newYork)
	if !ok || !got.Equal(want) {
		t.Errorf("shift = %v, want %v", got, want)
	}
}
