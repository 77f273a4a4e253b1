// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/firetime/cmd/firetime/cli"
	"github.com/bureau-foundation/firetime/lib/cron"
)

type calendarParams struct {
	cli.JSONOutput
	scheduleParams
	Month   string `json:"-" flag:"month" desc:"month to show as YYYY-MM (default the current month)"`
	NoColor bool   `json:"-" flag:"no-color" desc:"disable colors (also honored: NO_COLOR)"`
}

type calendarResult struct {
	Expression string `json:"expression"`
	Month      string `json:"month"`
	Days       []int  `json:"days"`
}

// calendarCellWidth fits a two-digit day, its fire marker and a gap.
const calendarCellWidth = 4

func calendarCommand(env Environment) *cli.Command {
	var params calendarParams
	return &cli.Command{
		Name:    "calendar",
		Summary: "Show the days of a month on which an expression fires",
		Description: `Print a month grid with the days on which a cron expression fires
marked with '*' (and highlighted on color terminals).`,
		Usage: "firetime calendar EXPR [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("calendar", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Second Tuesday of March 2027",
				Command:     "firetime calendar '0 0 12 ? * TUE#2' --month 2027-03",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			settings, err := params.settings()
			if err != nil {
				return err
			}
			expression, err := parseSchedule(env, settings, args)
			if err != nil {
				return err
			}
			location := expression.Location()
			now := env.Clock.Now().In(location)

			year, month := now.Year(), now.Month()
			if params.Month != "" {
				parsed, err := time.Parse("2006-01", params.Month)
				if err != nil {
					return fmt.Errorf("--month %q: want YYYY-MM", params.Month)
				}
				year, month = parsed.Year(), parsed.Month()
			}

			result := calendarResult{
				Expression: expression.String(),
				Month:      fmt.Sprintf("%04d-%02d", year, int(month)),
				Days:       fireDays(expression, year, month),
			}
			if done, err := params.EmitJSON(env.Stdout, result); done {
				return err
			}

			profile := termenv.NewOutput(env.Stdout).EnvColorProfile()
			if params.NoColor {
				profile = termenv.Ascii
			}
			today := 0
			if now.Year() == year && now.Month() == month {
				today = now.Day()
			}
			_, err = io.WriteString(env.Stdout, renderMonth(year, month, result.Days, today, profile))
			return err
		},
	}
}

// fireDays returns the days of the month, in the expression's zone, on
// which expression fires at least once.
func fireDays(expression *cron.Expression, year int, month time.Month) []int {
	location := expression.Location()
	start := time.Date(year, month, 1, 0, 0, 0, 0, location)
	end := start.AddDate(0, 1, 0)

	days := make([]int, 0, 5)
	cursor := start.Add(-time.Second)
	for {
		next, ok := expression.Next(cursor)
		if !ok || !next.Before(end) {
			return days
		}
		days = append(days, next.Day())
		cursor = time.Date(next.Year(), next.Month(), next.Day()+1, 0, 0, 0, 0, location).Add(-time.Second)
	}
}

// renderMonth draws a Sunday-first month grid. Fire days carry a '*'
// so the grid reads the same without color; today is underlined.
func renderMonth(year int, month time.Month, days []int, today int, profile termenv.Profile) string {
	var output strings.Builder
	renderer := lipgloss.NewRenderer(&output, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	titleStyle := renderer.NewStyle().Bold(true).Width(7 * calendarCellWidth).Align(lipgloss.Center)
	headerStyle := renderer.NewStyle().Faint(true)
	fireStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	todayStyle := renderer.NewStyle().Underline(true)

	fires := make(map[int]bool, len(days))
	for _, day := range days {
		fires[day] = true
	}

	output.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", month, year)))
	output.WriteByte('\n')
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		output.WriteString(headerStyle.Render(fmt.Sprintf("%3s ", weekday.String()[:2])))
	}
	output.WriteByte('\n')

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	output.WriteString(strings.Repeat(" ", calendarCellWidth*int(first.Weekday())))
	for day := 1; day <= last; day++ {
		number := fmt.Sprintf("%3d", day)
		if day == today {
			number = todayStyle.Render(number)
		}
		if fires[day] {
			output.WriteString(fireStyle.Render(number + "*"))
		} else {
			output.WriteString(number + " ")
		}
		if (int(first.Weekday())+day)%7 == 0 && day != last {
			output.WriteByte('\n')
		}
	}
	output.WriteByte('\n')

	switch len(days) {
	case 0:
		output.WriteString("no fire days\n")
	case 1:
		output.WriteString("1 fire day\n")
	default:
		fmt.Fprintf(&output, "%d fire days\n", len(days))
	}
	return output.String()
}
