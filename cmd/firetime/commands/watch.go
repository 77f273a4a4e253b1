// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/firetime/cmd/firetime/cli"
	"github.com/bureau-foundation/firetime/lib/businessday"
	"github.com/bureau-foundation/firetime/lib/clock"
	"github.com/bureau-foundation/firetime/lib/cron"
)

type watchParams struct {
	cli.JSONOutput
	scheduleParams
	Count  int    `json:"-" flag:"count,n" desc:"stop after this many fire times (0 runs until interrupted)"`
	Adjust string `json:"-" flag:"adjust" desc:"business-day adjustment: 'skip' or N (default none)"`
}

type firedEvent struct {
	Expression string    `json:"expression"`
	FireTime   time.Time `json:"fire_time"`
	Sequence   int       `json:"sequence"`
}

func watchCommand(env Environment) *cli.Command {
	var params watchParams
	return &cli.Command{
		Name:    "watch",
		Summary: "Wait for fire times and print each as it passes",
		Description: `Wait for each fire time of a cron expression and print it when it
passes. With --json each fire time is one JSON object per line, so the
output can drive other programs.

The command stops after --count fire times, when the schedule runs out,
or when interrupted.`,
		Usage: "firetime watch EXPR [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("watch", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Print a line at the top of every minute, five times",
				Command:     "firetime watch '0 * * * * ?' -n 5",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			settings, err := params.settings()
			if err != nil {
				return err
			}
			expression, err := parseSchedule(env, settings, args)
			if err != nil {
				return err
			}
			if params.Count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", params.Count)
			}

			next := expression.Next
			if params.Adjust != "" {
				settings.Adjustment = params.Adjust
				adjustment, err := settings.BusinessAdjustment()
				if err != nil {
					return err
				}
				calendar, err := settings.Calendar()
				if err != nil {
					return err
				}
				next = func(from time.Time) (time.Time, bool) {
					return businessday.Next(expression, from, adjustment, calendar)
				}
			}

			return watch(ctx, env, expression, next, params.Count, params.OutputJSON, logger)
		},
	}
}

// watch waits on env.Clock for successive fire times produced by next
// and reports each one. count 0 means no limit.
func watch(ctx context.Context, env Environment, expression *cron.Expression, next func(time.Time) (time.Time, bool), count int, asJSON bool, logger *slog.Logger) error {
	from := env.Clock.Now()
	for sequence := 1; count == 0 || sequence <= count; sequence++ {
		fireTime, ok := next(from)
		if !ok {
			logger.Info("schedule has no further fire times", "fired", sequence-1)
			return nil
		}
		logger.Debug("waiting", "fire_time", fireTime, "wait", fireTime.Sub(env.Clock.Now()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.Until(env.Clock, fireTime):
		}

		if asJSON {
			event := firedEvent{Expression: expression.String(), FireTime: fireTime, Sequence: sequence}
			if err := cli.WriteJSONLine(env.Stdout, event); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(env.Stdout, formatInstant(fireTime))
		}
		from = fireTime
	}
	return nil
}
