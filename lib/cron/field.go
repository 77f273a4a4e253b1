// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "fmt"

// Field identifies one of the seven schedule components.
type Field int

const (
	Second Field = iota
	Minute
	Hour
	DayOfMonth
	Month
	DayOfWeek
	Year

	fieldCount = int(Year) + 1
)

// wholeExpression marks errors that concern the expression rather than
// a single field.
const wholeExpression Field = -1

const (
	// MinYear is the smallest value the year field accepts.
	MinYear = 1970

	// HorizonYears is how far past the parse-time year the year field
	// extends, and how far Next searches before giving up.
	HorizonYears = 100
)

var fieldNames = [fieldCount]string{
	"second",
	"minute",
	"hour",
	"day-of-month",
	"month",
	"day-of-week",
	"year",
}

func (f Field) String() string {
	if f < Second || f > Year {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// domain returns the inclusive value range of the field. The year range
// depends on the horizon computed at parse time.
func (f Field) domain(horizonYear int) (int, int) {
	switch f {
	case Second, Minute:
		return 0, 59
	case Hour:
		return 0, 23
	case DayOfMonth:
		return 1, 31
	case Month:
		return 1, 12
	case DayOfWeek:
		return 1, 7
	default:
		return MinYear, horizonYear
	}
}

// maxIncrement is the largest step accepted after "/" in the field.
func (f Field) maxIncrement(horizonYear int) int {
	low, high := f.domain(horizonYear)
	return high - low + 1
}

var monthNames = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

var dayNames = map[string]int{
	"SUN": 1, "MON": 2, "TUE": 3, "WED": 4, "THU": 5, "FRI": 6, "SAT": 7,
}

// names returns the textual aliases the field accepts, or nil.
func (f Field) names() map[string]int {
	switch f {
	case Month:
		return monthNames
	case DayOfWeek:
		return dayNames
	default:
		return nil
	}
}
