// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package businessday

import "time"

// Schedule produces successive fire times. *cron.Expression satisfies
// it.
type Schedule interface {
	Next(from time.Time) (time.Time, bool)
}

// maxShiftDays bounds the walk in a single shift so a calendar whose
// business days have run out cannot stall the search.
const maxShiftDays = 3660

// Next returns the first fire time of schedule after from, adjusted by
// adjustment against calendar. A nil calendar means DefaultWeekends.
// It reports false when the schedule runs out of fire times or the
// calendar has no business days.
func Next(schedule Schedule, from time.Time, adjustment Adjustment, calendar Calendar) (time.Time, bool) {
	if calendar == nil {
		calendar = DefaultWeekends()
	}
	days, shifting := adjustment.Days()
	if shifting && days == 0 {
		return schedule.Next(from)
	}
	if !hasBusinessDays(calendar) {
		return time.Time{}, false
	}
	if !shifting {
		return nextBusiness(schedule, from, calendar)
	}

	// A backward shift can land at or before from. Such a candidate is
	// dropped and the search resumes after the raw fire time, so every
	// iteration makes progress.
	cursor := from
	for {
		candidate, ok := schedule.Next(cursor)
		if !ok {
			return time.Time{}, false
		}
		adjusted, ok := shift(candidate, days, calendar)
		if !ok {
			return time.Time{}, false
		}
		if adjusted.After(from) {
			return adjusted, true
		}
		cursor = candidate
	}
}

// NextN returns up to n successive adjusted fire times after from.
func NextN(schedule Schedule, from time.Time, n int, adjustment Adjustment, calendar Calendar) []time.Time {
	var times []time.Time
	for range n {
		next, ok := Next(schedule, from, adjustment, calendar)
		if !ok {
			break
		}
		times = append(times, next)
		from = next
	}
	return times
}

// nextBusiness returns the first raw fire time on a business day. After
// a miss the search jumps to the end of the rejected day rather than
// stepping through every fire time on it.
func nextBusiness(schedule Schedule, from time.Time, calendar Calendar) (time.Time, bool) {
	cursor := from
	for {
		candidate, ok := schedule.Next(cursor)
		if !ok {
			return time.Time{}, false
		}
		if calendar.IsBusinessDay(candidate) {
			return candidate, true
		}
		cursor = lastSecondOfDay(candidate)
	}
}

// lastSecondOfDay returns the final second of t's calendar day, or t
// itself if a zone transition puts that second before t.
func lastSecondOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	last := time.Date(year, month, day+1, 0, 0, 0, 0, t.Location()).Add(-time.Second)
	if !last.After(t) {
		return t
	}
	return last
}

// shift leaves t alone on a business day and otherwise walks |days|
// business days away from it, keeping the wall-clock time.
func shift(t time.Time, days int, calendar Calendar) (time.Time, bool) {
	if calendar.IsBusinessDay(t) {
		return t, true
	}
	step := 1
	if days < 0 {
		step, days = -1, -days
	}
	for walked, counted := 0, 0; counted < days; walked++ {
		if walked == maxShiftDays {
			return time.Time{}, false
		}
		t = t.AddDate(0, 0, step)
		if calendar.IsBusinessDay(t) {
			counted++
		}
	}
	return t, true
}
