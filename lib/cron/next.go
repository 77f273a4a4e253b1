// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "time"

// cursor is the wall-clock candidate the search walks forward. Fields
// may temporarily overflow (minute 60, month 13) until normalize folds
// them back.
type cursor struct {
	year, month, day     int
	hour, minute, second int
}

func cursorAt(t time.Time) cursor {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return cursor{year, int(month), day, hour, minute, second}
}

// normalize carries overflowed fields into coarser ones. The arithmetic
// runs in UTC so no wall-clock value is lost to a zone transition.
func (c *cursor) normalize() {
	*c = cursorAt(time.Date(c.year, time.Month(c.month), c.day, c.hour, c.minute, c.second, 0, time.UTC))
}

func (c *cursor) in(location *time.Location) time.Time {
	return time.Date(c.year, time.Month(c.month), c.day, c.hour, c.minute, c.second, 0, location)
}

func (c *cursor) slot(field Field) *int {
	switch field {
	case Second:
		return &c.second
	case Minute:
		return &c.minute
	case Hour:
		return &c.hour
	case DayOfMonth:
		return &c.day
	case Month:
		return &c.month
	default:
		return &c.year
	}
}

// Next returns the first instant strictly after from that satisfies the
// expression, in the expression's time zone. It reports false when no
// such instant exists before the end of the horizon year.
//
// The search runs six progress steps from the finest field to the
// coarsest. A step that has to move its field resets every finer field
// to its minimum and restarts the cascade; a full pass without a
// restart is a match.
func (e *Expression) Next(from time.Time) (time.Time, bool) {
	location := e.Location()
	c := cursorAt(from.In(location).Truncate(time.Second).Add(time.Second))

	for c.year <= e.horizonYear {
		if e.progressTime(&c, Second) ||
			e.progressTime(&c, Minute) ||
			e.progressTime(&c, Hour) ||
			e.progressDay(&c) ||
			e.progressMonth(&c) ||
			e.progressYear(&c) {
			continue
		}

		// A wall time inside a daylight-saving gap does not exist, and
		// one inside a fold may resolve to an instant before from.
		// Either way the search resumes at the next second.
		candidate := c.in(location)
		if cursorAt(candidate) != c || !candidate.After(from) {
			c.second++
			c.normalize()
			continue
		}
		return candidate, true
	}
	return time.Time{}, false
}

// NextN returns up to n successive fire times after from.
func (e *Expression) NextN(from time.Time, n int) []time.Time {
	var times []time.Time
	for range n {
		next, ok := e.Next(from)
		if !ok {
			break
		}
		times = append(times, next)
		from = next
	}
	return times
}

// IsSatisfiedBy reports whether t, truncated to the second, is a fire
// time.
func (e *Expression) IsSatisfiedBy(t time.Time) bool {
	instant := t.Truncate(time.Second)
	next, ok := e.Next(instant.Add(-time.Second))
	return ok && next.Equal(instant)
}

// progressTime handles the second, minute and hour fields.
func (e *Expression) progressTime(c *cursor, field Field) bool {
	set := &e.sets[field]
	current := c.slot(field)
	value, found := set.TryMinFrom(*current)
	if found && value == *current {
		return false
	}

	e.resetBelow(c, field)
	if found {
		*current = value
		return true
	}
	*current = set.Min()
	*c.slot(field + 1)++
	c.normalize()
	return true
}

func (e *Expression) progressDay(c *cursor) bool {
	day, found := e.resolveDay(c.year, time.Month(c.month), c.day)
	if found && day == c.day {
		return false
	}

	e.resetBelow(c, DayOfMonth)
	if found {
		c.day = day
		return true
	}
	c.day = 1
	c.month++
	c.normalize()
	return true
}

func (e *Expression) progressMonth(c *cursor) bool {
	months := &e.sets[Month]
	month, found := months.TryMinFrom(c.month)
	if found && month == c.month {
		return false
	}

	c.day = 1
	e.resetBelow(c, DayOfMonth)
	if found {
		c.month = month
		return true
	}
	c.month = months.Min()
	c.year++
	return true
}

func (e *Expression) progressYear(c *cursor) bool {
	year, found := e.sets[Year].TryMinFrom(c.year)
	if found && year == c.year {
		return false
	}
	if !found || year > e.horizonYear {
		c.year = e.horizonYear + 1
		return true
	}

	c.year = year
	c.month = e.sets[Month].Min()
	c.day = 1
	e.resetBelow(c, DayOfMonth)
	return true
}

// resetBelow sets every time-of-day field finer than field to its
// minimum.
func (e *Expression) resetBelow(c *cursor, field Field) {
	for finer := Second; finer < field && finer <= Hour; finer++ {
		*c.slot(finer) = e.sets[finer].Min()
	}
}
