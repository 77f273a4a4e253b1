// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "time"

const (
	sunday   = 1
	saturday = 7
)

// resolveDay returns the first day of the month on or after from that
// the day fields allow. When both day fields constrain the schedule the
// earlier of the two candidates wins.
func (e *Expression) resolveDay(year int, month time.Month, from int) (int, bool) {
	last := daysIn(year, month)
	if from > last {
		return 0, false
	}

	byMonth := e.sets[DayOfMonth].constrains() || e.lastDayOfMonth
	byWeek := e.sets[DayOfWeek].constrains()
	switch {
	case byWeek && !byMonth:
		return e.dayOfWeekFrom(year, month, from, last)
	case byWeek && byMonth:
		monthDay, monthFound := e.dayOfMonthFrom(year, month, from, last)
		weekDay, weekFound := e.dayOfWeekFrom(year, month, from, last)
		switch {
		case monthFound && weekFound:
			return min(monthDay, weekDay), true
		case monthFound:
			return monthDay, true
		default:
			return weekDay, weekFound
		}
	default:
		return e.dayOfMonthFrom(year, month, from, last)
	}
}

func (e *Expression) dayOfMonthFrom(year int, month time.Month, from, last int) (int, bool) {
	days := &e.sets[DayOfMonth]
	switch {
	case e.lastDayOfMonth:
		day := last - e.lastDayOffset
		if e.nearestWeekday {
			switch weekday(year, month, max(day, 1)) {
			case saturday:
				day--
			case sunday:
				day -= 2
			}
			day -= e.lastWeekdayOffset
		}
		day = max(day, 1)
		return day, day >= from

	case e.nearestWeekday:
		target := days.Min()
		if target > last {
			return 0, false
		}
		day := target
		switch weekday(year, month, target) {
		case saturday:
			if target == 1 {
				day = 3
			} else {
				day = target - 1
			}
		case sunday:
			if target == last {
				day = target - 2
			} else {
				day = target + 1
			}
		}
		return day, day >= from

	default:
		day, found := days.TryMinFrom(from)
		return day, found && day <= last
	}
}

func (e *Expression) dayOfWeekFrom(year int, month time.Month, from, last int) (int, bool) {
	days := &e.sets[DayOfWeek]
	switch {
	case e.lastDayOfWeek:
		target := days.Min()
		day := last - (weekday(year, month, last)-target+7)%7
		return day, day >= from

	case e.nthDayOfWeek > 0:
		target := days.Min()
		first := 1 + (target-weekday(year, month, 1)+7)%7
		for day := first + (e.nthDayOfWeek-1)*7; day <= last; day += 7 * e.everyNthWeek {
			if day >= from {
				return day, true
			}
			if e.everyNthWeek == 0 {
				break
			}
		}
		return 0, false

	default:
		start := weekday(year, month, from)
		for delta := range 7 {
			day := from + delta
			if day > last {
				break
			}
			if days.Contains((start-1+delta)%7 + 1) {
				return day, true
			}
		}
		return 0, false
	}
}

// weekday numbers days 1 (Sunday) through 7 (Saturday).
func weekday(year int, month time.Month, day int) int {
	return int(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()) + 1
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
