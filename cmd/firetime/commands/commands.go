// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the firetime command tree. Every command
// writes through an [Environment] so tests can capture output and
// drive time with a fake clock.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bureau-foundation/firetime/cmd/firetime/cli"
	"github.com/bureau-foundation/firetime/lib/clock"
	"github.com/bureau-foundation/firetime/lib/config"
	"github.com/bureau-foundation/firetime/lib/cron"
)

// Environment is what commands take from the process.
type Environment struct {
	// Stdout receives command results.
	Stdout io.Writer

	// Stderr receives help text.
	Stderr io.Writer

	// Clock is the source of "now" for default instants, the parse-time
	// horizon, and watch's waits.
	Clock clock.Clock
}

// ProcessEnvironment returns the environment of the running binary.
func ProcessEnvironment() Environment {
	return Environment{Stdout: os.Stdout, Stderr: os.Stderr, Clock: clock.Real()}
}

// errExpressionRequired is returned by commands whose positional
// arguments are empty.
var errExpressionRequired = errors.New("a cron expression is required")

// Root builds the firetime command tree.
func Root(env Environment) *cli.Command {
	return &cli.Command{
		Name: "firetime",
		Description: `firetime: evaluate cron expressions.

Parse seven-field cron expressions, list their fire times, test instants
against them, and move fire times onto business days.

Expressions may be given as one quoted argument or as separate words.
Five fields (minute to day-of-week) and six fields (with seconds, or
with a trailing year) are accepted; the missing fields default to
second 0 and every year.`,
		HelpOutput: env.Stderr,
		Subcommands: []*cli.Command{
			parseCommand(env),
			nextCommand(env),
			checkCommand(env),
			businessCommand(env),
			buildCommand(env),
			calendarCommand(env),
			watchCommand(env),
			versionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Show the next five fire times of a weekday schedule",
				Command:     "firetime next '0 30 9 ? * MON-FRI'",
			},
			{
				Description: "Run on the last business day of each month",
				Command:     "firetime business '0 0 18 L * ?' --adjust -1",
			},
			{
				Description: "Check whether now matches, for use in scripts",
				Command:     "firetime check '0 0 * * * ?' && echo on the hour",
			},
			{
				Description: "Highlight every other Monday of this month, from the first",
				Command:     "firetime calendar '0 0 12 ? * 2#1/2'",
			},
		},
	}
}

// scheduleParams are the flags every schedule-evaluating command shares.
type scheduleParams struct {
	Location string `json:"-" flag:"location" desc:"IANA time zone the schedule runs in (default from config, else Local)"`
	Config   string `json:"-" flag:"config" desc:"configuration file (default $FIRETIME_CONFIG)"`
}

// settings loads the configuration named by --config or FIRETIME_CONFIG,
// or the defaults when neither is given, and applies --location.
func (p *scheduleParams) settings() (*config.Config, error) {
	var settings *config.Config
	var err error
	switch {
	case p.Config != "":
		settings, err = config.LoadFile(p.Config)
	case os.Getenv(config.EnvironmentVariable) != "":
		settings, err = config.Load()
	default:
		settings = config.Default()
	}
	if err != nil {
		return nil, err
	}
	if p.Location != "" {
		settings.Location = p.Location
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return settings, nil
}

// parseSchedule parses the positional arguments as one expression in
// the configured zone.
func parseSchedule(env Environment, settings *config.Config, args []string) (*cron.Expression, error) {
	if len(args) == 0 {
		return nil, errExpressionRequired
	}
	location, err := settings.TimeLocation()
	if err != nil {
		return nil, err
	}
	parser := cron.Parser{Clock: env.Clock, Location: location}
	return parser.Parse(strings.Join(args, " "))
}

// Layouts accepted by --from and --at, tried in order. Layouts without
// an offset are read in the schedule's zone.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseInstant reads an instant flag. Empty means now.
func parseInstant(text string, now time.Time, location *time.Location) (time.Time, error) {
	if text == "" {
		return now.In(location), nil
	}
	for _, layout := range instantLayouts {
		if instant, err := time.ParseInLocation(layout, text, location); err == nil {
			return instant, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse instant %q: want RFC 3339 or YYYY-MM-DD[THH:MM[:SS]]", text)
}

// formatInstant renders fire times for text output.
func formatInstant(t time.Time) string {
	return t.Format("2006-01-02T15:04:05Z07:00 Mon")
}
