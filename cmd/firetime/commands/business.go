// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/firetime/cmd/firetime/cli"
	"github.com/bureau-foundation/firetime/lib/businessday"
)

type businessParams struct {
	cli.OutputFormat
	scheduleParams
	From     string   `json:"-" flag:"from" desc:"start after this instant (RFC 3339 or YYYY-MM-DD[THH:MM[:SS]]; default now)"`
	Count    int      `json:"-" flag:"count,n" desc:"number of fire times (default from config, else 5)"`
	Adjust   string   `json:"-" flag:"adjust" desc:"'skip' to drop fire times on non-business days, or N to move them N business days (default from config, else skip)"`
	Weekends []string `json:"-" flag:"weekends" desc:"weekday names that are not business days (default from config, else sat,sun)"`
	Holidays []string `json:"-" flag:"holidays" desc:"additional non-business dates as YYYY-MM-DD"`
}

func businessCommand(env Environment) *cli.Command {
	var params businessParams
	return &cli.Command{
		Name:    "business",
		Summary: "List fire times adjusted to business days",
		Description: `List the next fire times of a cron expression adjusted to business days.

With --adjust skip, fire times on weekends and holidays are dropped. With
--adjust N, a fire time on a non-business day is moved N business days
later (earlier when N is negative), keeping its time of day; fire times
on business days stay where they are. --adjust 0 applies no adjustment
at all.

Holidays given with --holidays are added to those in the configuration
file; --weekends replaces the configured weekend days.`,
		Usage: "firetime business EXPR [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("business", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Daily at 10:00, only on business days",
				Command:     "firetime business '0 0 10 * * ?' --adjust skip",
			},
			{
				Description: "Settlement two business days after each month end",
				Command:     "firetime business '0 0 9 L * ?' --adjust 2 --holidays 2026-12-25,2027-01-01",
			},
			{
				Description: "A Friday/Saturday weekend",
				Command:     "firetime business '0 0 8 * * ?' --weekends fri,sat",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := params.Validate(); err != nil {
				return err
			}
			settings, err := params.settings()
			if err != nil {
				return err
			}
			if params.Weekends != nil {
				settings.Weekends = params.Weekends
			}
			settings.Holidays = append(settings.Holidays, params.Holidays...)
			if params.Adjust != "" {
				settings.Adjustment = params.Adjust
			}

			calendar, err := settings.Calendar()
			if err != nil {
				return err
			}
			adjustment, err := settings.BusinessAdjustment()
			if err != nil {
				return err
			}
			expression, err := parseSchedule(env, settings, args)
			if err != nil {
				return err
			}
			from, err := parseInstant(params.From, env.Clock.Now(), expression.Location())
			if err != nil {
				return err
			}
			count := params.Count
			if count == 0 {
				count = settings.Count
			}
			if count < 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			if weekends, ok := calendar.(businessday.Weekends); ok && weekends.Full() {
				logger.Warn("every weekday is a weekend day; no fire time can be adjusted",
					"weekends", weekends.String())
			}

			result := fireTimesResult{
				Expression: expression.String(),
				Location:   expression.Location().String(),
				From:       from,
				Adjustment: adjustment.String(),
				Times:      businessday.NextN(expression, from, count, adjustment, calendar),
			}
			if len(result.Times) < count {
				logger.Warn("schedule has no further business fire times",
					"requested", count,
					"found", len(result.Times),
					"adjustment", adjustment.String(),
				)
			}

			if done, err := params.Emit(env.Stdout, result); done {
				return err
			}
			for _, fireTime := range result.Times {
				fmt.Fprintln(env.Stdout, formatInstant(fireTime))
			}
			return nil
		},
	}
}
