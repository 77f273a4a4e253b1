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

type checkParams struct {
	cli.JSONOutput
	scheduleParams
	At    string `json:"-" flag:"at" desc:"instant to test (RFC 3339 or YYYY-MM-DD[THH:MM[:SS]]; default now)"`
	Quiet bool   `json:"-" flag:"quiet,q" desc:"print nothing; report only through the exit code"`
}

type checkResult struct {
	Expression string    `json:"expression"`
	At         time.Time `json:"at"`
	Satisfied  bool      `json:"satisfied"`
	Next       time.Time `json:"next,omitzero"`
}

func checkCommand(env Environment) *cli.Command {
	var params checkParams
	return &cli.Command{
		Name:    "check",
		Summary: "Test whether an instant matches an expression",
		Description: `Test whether an instant matches a cron expression. Sub-second
precision is ignored.

Exits 0 when the instant matches and 1 when it does not, so the command
can guard shell steps.`,
		Usage: "firetime check EXPR [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("check", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Is 2026-10-30 the last Friday of its month?",
				Command:     "firetime check '0 0 0 ? * 6L' --at 2026-10-30",
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
			at, err := parseInstant(params.At, env.Clock.Now(), expression.Location())
			if err != nil {
				return err
			}

			result := checkResult{
				Expression: expression.String(),
				At:         at,
				Satisfied:  expression.IsSatisfiedBy(at),
			}
			if next, ok := expression.Next(at); ok {
				result.Next = next
			}

			switch {
			case params.Quiet:
			case params.OutputJSON:
				if _, err := params.EmitJSON(env.Stdout, result); err != nil {
					return err
				}
			case result.Satisfied:
				fmt.Fprintf(env.Stdout, "%s matches %s\n", formatInstant(at), result.Expression)
			default:
				fmt.Fprintf(env.Stdout, "%s does not match %s\n", formatInstant(at), result.Expression)
			}

			if !result.Satisfied {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
