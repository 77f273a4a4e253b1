// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/firetime/cmd/firetime/cli"
	"github.com/bureau-foundation/firetime/lib/businessday"
	"github.com/bureau-foundation/firetime/lib/cron"
)

// buildParams are the flags shared by every build subcommand.
type buildParams struct {
	cli.JSONOutput
	At string `json:"-" flag:"at" desc:"time of day as HH:MM" default:"00:00"`
}

type buildResult struct {
	Expression string `json:"expression"`
}

func buildCommand(env Environment) *cli.Command {
	return &cli.Command{
		Name:    "build",
		Summary: "Write an expression for a common schedule",
		Description: `Write the cron expression for a common schedule. The result can be
passed to any other firetime command or stored in a job definition.`,
		Subcommands: []*cli.Command{
			buildDailyCommand(env),
			buildWeeklyCommand(env),
			buildMonthlyCommand(env),
			buildQuarterlyCommand(env),
			buildAnnualCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Every weekday at 08:30",
				Command:     "firetime build weekly --days mon,tue,wed,thu,fri --at 08:30",
			},
			{
				Description: "The last day of each quarter at 18:00",
				Command:     "firetime build quarterly --day last --at 18:00",
			},
		},
	}
}

func buildDailyCommand(env Environment) *cli.Command {
	var params buildParams
	return &cli.Command{
		Name:    "daily",
		Summary: "Every day at a time",
		Usage:   "firetime build daily [--at HH:MM]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("daily", &params)
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			hour, minute, err := parseTimeOfDay(params.At)
			if err != nil {
				return err
			}
			return emitBuilt(env, &params.JSONOutput)(cron.DailyAt(hour, minute))
		},
	}
}

func buildWeeklyCommand(env Environment) *cli.Command {
	var params struct {
		buildParams
		Days []string `json:"-" flag:"days" desc:"weekday names, e.g. mon,fri"`
	}
	return &cli.Command{
		Name:    "weekly",
		Summary: "Some weekdays at a time",
		Usage:   "firetime build weekly --days DAY[,DAY...] [--at HH:MM]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("weekly", &params)
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			hour, minute, err := parseTimeOfDay(params.At)
			if err != nil {
				return err
			}
			if len(params.Days) == 0 {
				return fmt.Errorf("--days is required")
			}
			days := make([]time.Weekday, 0, len(params.Days))
			for _, name := range params.Days {
				day, err := businessday.ParseWeekday(name)
				if err != nil {
					return fmt.Errorf("--days: %w", err)
				}
				days = append(days, day)
			}
			return emitBuilt(env, &params.JSONOutput)(cron.WeeklyOn(hour, minute, days...))
		},
	}
}

// dayParams adds --day to builders that fire on a day of the month.
type dayParams struct {
	buildParams
	Day string `json:"-" flag:"day" desc:"day of the month (1-31) or 'last'" default:"1"`
}

func buildMonthlyCommand(env Environment) *cli.Command {
	var params dayParams
	return &cli.Command{
		Name:    "monthly",
		Summary: "One day of every month at a time",
		Usage:   "firetime build monthly [--day N|last] [--at HH:MM]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("monthly", &params)
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			hour, minute, day, err := params.parse()
			if err != nil {
				return err
			}
			return emitBuilt(env, &params.JSONOutput)(cron.MonthlyOn(day, hour, minute))
		},
	}
}

func buildQuarterlyCommand(env Environment) *cli.Command {
	var params dayParams
	return &cli.Command{
		Name:    "quarterly",
		Summary: "One day of January, April, July and October at a time",
		Usage:   "firetime build quarterly [--day N|last] [--at HH:MM]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("quarterly", &params)
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			hour, minute, day, err := params.parse()
			if err != nil {
				return err
			}
			return emitBuilt(env, &params.JSONOutput)(cron.Quarterly(day, hour, minute))
		},
	}
}

func buildAnnualCommand(env Environment) *cli.Command {
	var params struct {
		dayParams
		Month string `json:"-" flag:"month" desc:"month name or number" default:"1"`
	}
	return &cli.Command{
		Name:    "annual",
		Summary: "One day of the year at a time",
		Usage:   "firetime build annual [--month M] [--day N|last] [--at HH:MM]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("annual", &params)
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			hour, minute, day, err := params.parse()
			if err != nil {
				return err
			}
			month, err := parseMonth(params.Month)
			if err != nil {
				return err
			}
			return emitBuilt(env, &params.JSONOutput)(cron.Annually(month, day, hour, minute))
		},
	}
}

// emitBuilt returns a function that prints a builder's result, so the
// builder's two return values can be passed straight through.
func emitBuilt(env Environment, output *cli.JSONOutput) func(*cron.Expression, error) error {
	return func(expression *cron.Expression, err error) error {
		if err != nil {
			return err
		}
		result := buildResult{Expression: expression.String()}
		if done, err := output.EmitJSON(env.Stdout, result); done {
			return err
		}
		_, err = fmt.Fprintln(env.Stdout, result.Expression)
		return err
	}
}

func (p *dayParams) parse() (hour, minute, day int, err error) {
	hour, minute, err = parseTimeOfDay(p.At)
	if err != nil {
		return 0, 0, 0, err
	}
	day, err = parseDayOfMonth(p.Day)
	return hour, minute, day, err
}

func parseTimeOfDay(text string) (int, int, error) {
	parsed, err := time.Parse("15:04", text)
	if err != nil {
		return 0, 0, fmt.Errorf("--at %q: want HH:MM", text)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

func parseDayOfMonth(text string) (int, error) {
	if strings.EqualFold(text, "last") || strings.EqualFold(text, "l") {
		return cron.LastDay, nil
	}
	day, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("--day %q: want a number or 'last'", text)
	}
	return day, nil
}

// parseMonth accepts 1-12, an English month name, or its first three
// letters.
func parseMonth(text string) (time.Month, error) {
	if number, err := strconv.Atoi(text); err == nil {
		if number < 1 || number > 12 {
			return 0, fmt.Errorf("--month %d: want 1-12", number)
		}
		return time.Month(number), nil
	}
	for month := time.January; month <= time.December; month++ {
		name := month.String()
		if strings.EqualFold(text, name) || strings.EqualFold(text, name[:3]) {
			return month, nil
		}
	}
	return 0, fmt.Errorf("--month %q: unknown month", text)
}
