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
)

type nextParams struct {
	cli.OutputFormat
	scheduleParams
	From  string `json:"-" flag:"from" desc:"start after this instant (RFC 3339 or YYYY-MM-DD[THH:MM[:SS]]; default now)"`
	Count int    `json:"-" flag:"count,n" desc:"number of fire times (default from config, else 5)"`
}

// fireTimesResult is the machine-readable output of next and business.
type fireTimesResult struct {
	Expression string      `json:"expression"`
	Location   string      `json:"location"`
	From       time.Time   `json:"from"`
	Adjustment string      `json:"adjustment,omitempty"`
	Times      []time.Time `json:"times"`
}

func nextCommand(env Environment) *cli.Command {
	var params nextParams
	return &cli.Command{
		Name:    "next",
		Summary: "List upcoming fire times",
		Description: `List the next fire times of a cron expression, strictly after --from.

Fewer than --count times are printed when the schedule runs out before
its horizon, one hundred years after the current year.`,
		Usage: "firetime next EXPR [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("next", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Next three fire times in New York",
				Command:     "firetime next '0 0 9 ? * MON-FRI' -n 3 --location America/New_York",
			},
			{
				Description: "Fire times as CBOR diagnostic notation",
				Command:     "firetime next '0 0 0 1 1 ?' --format diag",
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

			result := fireTimesResult{
				Expression: expression.String(),
				Location:   expression.Location().String(),
				From:       from,
				Times:      expression.NextN(from, count),
			}
			if len(result.Times) < count {
				logger.Warn("schedule has no further fire times",
					"requested", count,
					"found", len(result.Times),
					"horizon_year", expression.HorizonYear(),
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
