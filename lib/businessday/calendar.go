// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package businessday

import (
	"fmt"
	"strings"
	"time"
)

// Calendar reports whether the calendar day containing t, in t's
// location, is a business day.
type Calendar interface {
	IsBusinessDay(t time.Time) bool
}

// Weekends is a set of weekdays that are never business days. The zero
// value has no weekend days.
type Weekends struct {
	days uint8
}

// DefaultWeekends returns Saturday and Sunday.
func DefaultWeekends() Weekends {
	return NewWeekends(time.Saturday, time.Sunday)
}

// NewWeekends returns a weekend set containing days. Values outside
// Sunday through Saturday are ignored.
func NewWeekends(days ...time.Weekday) Weekends {
	var weekends Weekends
	for _, day := range days {
		if day >= time.Sunday && day <= time.Saturday {
			weekends.days |= 1 << day
		}
	}
	return weekends
}

// Contains reports whether day is a weekend day.
func (w Weekends) Contains(day time.Weekday) bool {
	return day >= time.Sunday && day <= time.Saturday && w.days&(1<<day) != 0
}

// Days returns the weekend days from Sunday to Saturday.
func (w Weekends) Days() []time.Weekday {
	var days []time.Weekday
	for day := time.Sunday; day <= time.Saturday; day++ {
		if w.Contains(day) {
			days = append(days, day)
		}
	}
	return days
}

// Full reports whether every day of the week is a weekend day.
func (w Weekends) Full() bool {
	return w.days == 1<<7-1
}

// IsBusinessDay implements Calendar.
func (w Weekends) IsBusinessDay(t time.Time) bool {
	return !w.Contains(t.Weekday())
}

func (w Weekends) String() string {
	names := make([]string, 0, 7)
	for _, day := range w.Days() {
		names = append(names, day.String()[:3])
	}
	return strings.Join(names, ",")
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday parses an English weekday name, full or abbreviated to
// three letters, in any case.
func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return day, nil
}

// ParseWeekends parses weekday names into a weekend set.
func ParseWeekends(names []string) (Weekends, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, err := ParseWeekday(name)
		if err != nil {
			return Weekends{}, err
		}
		days = append(days, day)
	}
	return NewWeekends(days...), nil
}

// Holidays is a Calendar that excludes fixed dates from a base calendar.
type Holidays struct {
	base  Calendar
	dates map[civilDate]struct{}
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	year, month, day := t.Date()
	return civilDate{year, month, day}
}

// WithHolidays returns a calendar where each of dates is a non-business
// day in addition to the non-business days of base. Only the calendar
// date of each holiday is used; its time and location are ignored. A
// nil base means DefaultWeekends.
func WithHolidays(base Calendar, dates ...time.Time) *Holidays {
	if base == nil {
		base = DefaultWeekends()
	}
	holidays := &Holidays{base: base, dates: make(map[civilDate]struct{}, len(dates))}
	for _, holiday := range dates {
		holidays.dates[dateOf(holiday)] = struct{}{}
	}
	return holidays
}

// IsBusinessDay implements Calendar.
func (h *Holidays) IsBusinessDay(t time.Time) bool {
	if _, holiday := h.dates[dateOf(t)]; holiday {
		return false
	}
	return h.base.IsBusinessDay(t)
}

// Len returns the number of distinct holiday dates.
func (h *Holidays) Len() int { return len(h.dates) }

// DateLayout is the format of holiday dates in configuration and flags.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD holiday date.
func ParseDate(text string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid holiday date %q: want YYYY-MM-DD", text)
	}
	return parsed, nil
}

// ParseDates parses a list of YYYY-MM-DD holiday dates.
func ParseDates(texts []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(texts))
	for _, text := range texts {
		parsed, err := ParseDate(text)
		if err != nil {
			return nil, err
		}
		dates = append(dates, parsed)
	}
	return dates, nil
}

// hasBusinessDays reports whether calendar can ever report a business
// day. Only the calendars in this package can be inspected; any other
// calendar is assumed to have some.
func hasBusinessDays(calendar Calendar) bool {
	switch calendar := calendar.(type) {
	case Weekends:
		return !calendar.Full()
	case *Weekends:
		return !calendar.Full()
	case *Holidays:
		return hasBusinessDays(calendar.base)
	default:
		return true
	}
}
