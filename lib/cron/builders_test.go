// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"errors"
	"testing"
	"time"
)

func TestBuilders(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Expression, error)
		want  string
	}{
		{"daily", func() (*Expression, error) { return DailyAt(9, 30) }, "0 30 9 * * ? *"},
		{"weekly", func() (*Expression, error) {
			return WeeklyOn(8, 0, time.Monday, time.Friday)
		}, "0 0 8 ? * 2,6 *"},
		{"weekly_sunday", func() (*Expression, error) { return WeeklyOn(20, 15, time.Sunday) }, "0 15 20 ? * 1 *"},
		{"monthly", func() (*Expression, error) { return MonthlyOn(15, 12, 0) }, "0 0 12 15 * ? *"},
		{"monthly_last_day", func() (*Expression, error) { return MonthlyOn(LastDay, 17, 0) }, "0 0 17 L * ? *"},
		{"quarterly", func() (*Expression, error) { return Quarterly(1, 6, 0) }, "0 0 6 1 1,4,7,10 ? *"},
		{"annually", func() (*Expression, error) { return Annually(time.December, 25, 0, 0) }, "0 0 0 25 12 ? *"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expression, err := test.build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if expression.String() != test.want {
				t.Errorf("String() = %q, want %q", expression.String(), test.want)
			}
		})
	}
}

func TestBuildersFire(t *testing.T) {
	weekly, err := WeeklyOn(8, 0, time.Monday, time.Friday)
	if err != nil {
		t.Fatalf("WeeklyOn: %v", err)
	}
	weekly.SetLocation(time.UTC)
	got, ok := weekly.Next(utc(2024, time.November, 19, 0, 0))
	if !ok || !got.Equal(utc(2024, time.November, 22, 8, 0)) {
		t.Errorf("weekly Next = %v, %v, want Friday 2024-11-22 08:00", got, ok)
	}

	quarterly, err := Quarterly(LastDay, 18, 0)
	if err != nil {
		t.Fatalf("Quarterly: %v", err)
	}
	quarterly.SetLocation(time.UTC)
	got, ok = quarterly.Next(utc(2024, time.February, 1, 0, 0))
	if !ok || !got.Equal(utc(2024, time.April, 30, 18, 0)) {
		t.Errorf("quarterly Next = %v, %v, want 2024-04-30 18:00", got, ok)
	}
}

func TestBuildersReject(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Expression, error)
	}{
		{"hour_too_large", func() (*Expression, error) { return DailyAt(24, 0) }},
		{"negative_minute", func() (*Expression, error) { return DailyAt(9, -1) }},
		{"no_weekdays", func() (*Expression, error) { return WeeklyOn(8, 0) }},
		{"invalid_weekday", func() (*Expression, error) { return WeeklyOn(8, 0, time.Weekday(7)) }},
		{"day_zero", func() (*Expression, error) { return MonthlyOn(0, 12, 0) }},
		{"day_too_large", func() (*Expression, error) { return Quarterly(32, 12, 0) }},
		{"invalid_month", func() (*Expression, error) { return Annually(time.Month(13), 1, 0, 0) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.build()
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("build error = %v, want ErrOutOfRange", err)
			}
		})
	}
}
