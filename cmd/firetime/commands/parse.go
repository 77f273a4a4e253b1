// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/firetime/cmd/firetime/cli"
	"github.com/bureau-foundation/firetime/lib/cron"
)

type parseParams struct {
	cli.OutputFormat
	scheduleParams
}

type fieldResult struct {
	Field  string `json:"field"`
	Text   string `json:"text"`
	Values string `json:"values"`
}

type modifierResult struct {
	LastDayOfMonth    bool `json:"last_day_of_month,omitempty"`
	LastDayOffset     int  `json:"last_day_offset,omitempty"`
	NearestWeekday    bool `json:"nearest_weekday,omitempty"`
	LastWeekdayOffset int  `json:"last_weekday_offset,omitempty"`
	NthDayOfWeek      int  `json:"nth_day_of_week,omitempty"`
	EveryNthWeek      int  `json:"every_nth_week,omitempty"`
	LastDayOfWeek     bool `json:"last_day_of_week,omitempty"`
}

type parseResult struct {
	Expression  string         `json:"expression"`
	Fields      []fieldResult  `json:"fields"`
	Modifiers   modifierResult `json:"modifiers"`
	HorizonYear int            `json:"horizon_year"`
	Location    string         `json:"location"`
	Fingerprint string         `json:"fingerprint"`
}

func parseCommand(env Environment) *cli.Command {
	var params parseParams
	return &cli.Command{
		Name:    "parse",
		Summary: "Validate an expression and show how it was read",
		Description: `Validate a cron expression and print its seven normalized fields,
the values each field admits, and any day modifiers (L, W, #).

The fingerprint is a BLAKE3 digest of the normalized expression and its
time zone. Spacing, letter case and omitted default fields do not
change it, so "0 12 * * mon" and "0 0 12 * * MON *" share a fingerprint
and it can key caches or deduplicate job definitions.`,
		Usage: "firetime parse EXPR [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("parse", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Check a quartz-style expression",
				Command:     "firetime parse '0 15 10 L-2 * ? 2027'",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
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

			result := describe(expression)
			if done, err := params.Emit(env.Stdout, result); done {
				return err
			}
			return printDescription(env, result)
		},
	}
}

func describe(expression *cron.Expression) parseResult {
	fields := expression.Fields()
	result := parseResult{
		Expression: expression.String(),
		Modifiers: modifierResult{
			LastDayOfMonth:    expression.LastDayOfMonth(),
			LastDayOffset:     expression.LastDayOffset(),
			NearestWeekday:    expression.NearestWeekday(),
			LastWeekdayOffset: expression.LastWeekdayOffset(),
			NthDayOfWeek:      expression.NthDayOfWeek(),
			EveryNthWeek:      expression.EveryNthWeek(),
			LastDayOfWeek:     expression.LastDayOfWeek(),
		},
		HorizonYear: expression.HorizonYear(),
		Location:    expression.Location().String(),
		Fingerprint: fingerprint(expression),
	}
	for field := cron.Second; field <= cron.Year; field++ {
		set := expression.FieldSet(field)
		result.Fields = append(result.Fields, fieldResult{
			Field:  field.String(),
			Text:   fields[field],
			Values: set.String(),
		})
	}
	return result
}

// fingerprintKey domain-separates schedule fingerprints from any other
// BLAKE3 digest of the same bytes. NewKeyed requires exactly 32 bytes.
var fingerprintKey = [32]byte([]byte("firetime schedule fingerprint v1"))

// fingerprint is a keyed BLAKE3 digest of the normalized expression and
// its zone name. The zero byte keeps "a b" + "c" distinct from "a" + "b c".
func fingerprint(expression *cron.Expression) string {
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("firetime: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(expression.String()))
	hasher.Write([]byte{0})
	hasher.Write([]byte(expression.Location().String()))
	return hex.EncodeToString(hasher.Sum(nil))
}

func printDescription(env Environment, result parseResult) error {
	writer := tabwriter.NewWriter(env.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "expression\t%s\n", result.Expression)
	for _, field := range result.Fields {
		if field.Values == field.Text {
			fmt.Fprintf(writer, "%s\t%s\n", field.Field, field.Text)
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", field.Field, field.Text, field.Values)
	}

	modifiers := result.Modifiers
	if modifiers.LastDayOfMonth {
		fmt.Fprintf(writer, "last day of month\toffset %d\n", modifiers.LastDayOffset)
	}
	if modifiers.NearestWeekday {
		if modifiers.LastDayOfMonth {
			fmt.Fprintf(writer, "nearest weekday\toffset %d\n", modifiers.LastWeekdayOffset)
		} else {
			fmt.Fprintf(writer, "nearest weekday\tyes\n")
		}
	}
	if modifiers.NthDayOfWeek > 0 {
		fmt.Fprintf(writer, "nth day of week\t%d\n", modifiers.NthDayOfWeek)
	}
	if modifiers.EveryNthWeek > 0 {
		fmt.Fprintf(writer, "every nth week\t%d\n", modifiers.EveryNthWeek)
	}
	if modifiers.LastDayOfWeek {
		fmt.Fprintf(writer, "last day of week\tyes\n")
	}

	fmt.Fprintf(writer, "horizon\t%d\n", result.HorizonYear)
	fmt.Fprintf(writer, "location\t%s\n", result.Location)
	fmt.Fprintf(writer, "fingerprint\t%s\n", result.Fingerprint)
	return writer.Flush()
}
