// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LastDay passed as the day to MonthlyOn, Quarterly or Annually selects
// the last day of the month ("L").
const LastDay = -1

// DailyAt fires every day at hour:minute.
func DailyAt(hour, minute int) (*Expression, error) {
	if err := checkTimeOfDay(hour, minute); err != nil {
		return nil, err
	}
	return Parse(fmt.Sprintf("0 %d %d * * ?", minute, hour))
}

// WeeklyOn fires at hour:minute on each of days.
func WeeklyOn(hour, minute int, days ...time.Weekday) (*Expression, error) {
	if err := checkTimeOfDay(hour, minute); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, newParseError(ErrOutOfRange, DayOfWeek, "", -1, "at least one weekday is required")
	}
	names := make([]string, len(days))
	for index, day := range days {
		if day < time.Sunday || day > time.Saturday {
			return nil, newParseError(ErrOutOfRange, DayOfWeek, "", -1, "invalid weekday %d", int(day))
		}
		names[index] = strconv.Itoa(int(day) + 1)
	}
	return Parse(fmt.Sprintf("0 %d %d ? * %s", minute, hour, strings.Join(names, ",")))
}

// MonthlyOn fires at hour:minute on the given day of every month. Months
// shorter than day are skipped; use LastDay for the month's end.
func MonthlyOn(day, hour, minute int) (*Expression, error) {
	return onDay(day, hour, minute, "*")
}

// Quarterly fires at hour:minute on the given day of January, April,
// July and October.
func Quarterly(day, hour, minute int) (*Expression, error) {
	return onDay(day, hour, minute, "1,4,7,10")
}

// Annually fires once a year at hour:minute on the given month and day.
func Annually(month time.Month, day, hour, minute int) (*Expression, error) {
	if month < time.January || month > time.December {
		return nil, newParseError(ErrOutOfRange, Month, "", -1, "invalid month %d", int(month))
	}
	return onDay(day, hour, minute, strconv.Itoa(int(month)))
}

func onDay(day, hour, minute int, months string) (*Expression, error) {
	if err := checkTimeOfDay(hour, minute); err != nil {
		return nil, err
	}
	dayField := "L"
	if day != LastDay {
		if day < 1 || day > 31 {
			return nil, newParseError(ErrOutOfRange, DayOfMonth, "", -1, "value out of range [1-31]: got %d", day)
		}
		dayField = strconv.Itoa(day)
	}
	return Parse(fmt.Sprintf("0 %d %d %s %s ?", minute, hour, dayField, months))
}

func checkTimeOfDay(hour, minute int) error {
	if hour < 0 || hour > 23 {
		return newParseError(ErrOutOfRange, Hour, "", -1, "value out of range [0-23]: got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return newParseError(ErrOutOfRange, Minute, "", -1, "value out of range [0-59]: got %d", minute)
	}
	return nil
}
