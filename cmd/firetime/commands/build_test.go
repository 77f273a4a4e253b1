// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/bureau-foundation/firetime/cmd/firetime/cli"
	"github.com/bureau-foundation/firetime/lib/cron"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"daily", []string{"daily", "--at", "08:30"}, "0 30 8 * * ? *"},
		{"daily midnight", []string{"daily"}, "0 0 0 * * ? *"},
		{"weekly", []string{"weekly", "--days", "mon,fri", "--at", "09:00"}, "0 0 9 ? * 2,6 *"},
		{"weekly full names", []string{"weekly", "--days", "Sunday"}, "0 0 0 ? * 1 *"},
		{"monthly last day", []string{"monthly", "--day", "last", "--at", "18:00"}, "0 0 18 L * ? *"},
		{"monthly", []string{"monthly", "--day", "15"}, "0 0 0 15 * ? *"},
		{"quarterly", []string{"quarterly", "--day", "15"}, "0 0 0 15 1,4,7,10 ? *"},
		{"annual by name", []string{"annual", "--month", "dec", "--day", "25", "--at", "07:15"}, "0 15 7 25 12 ? *"},
		{"annual by number", []string{"annual", "--month", "2", "--day", "29"}, "0 0 0 29 2 ? *"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHarness(t)
			if err := h.run(append([]string{"build"}, test.args...)...); err != nil {
				t.Fatalf("build: %v", err)
			}
			requireLines(t, h, test.want)

			// The printed expression must parse back to itself.
			if _, err := cron.Parse(test.want); err != nil {
				t.Errorf("built expression does not parse: %v", err)
			}
		})
	}
}

func TestBuildJSON(t *testing.T) {
	h := newHarness(t)
	if err := h.run("build", "quarterly", "--day", "last", "--json"); err != nil {
		t.Fatalf("build: %v", err)
	}
	var result buildResult
	if err := json.Unmarshal(h.stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if result.Expression != "0 0 0 L 1,4,7,10 ? *" {
		t.Errorf("Expression = %q", result.Expression)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"weekly without days", []string{"weekly"}},
		{"unknown weekday", []string{"weekly", "--days", "funday"}},
		{"bad time", []string{"daily", "--at", "25:00"}},
		{"day out of range", []string{"monthly", "--day", "32"}},
		{"day not a number", []string{"monthly", "--day", "first"}},
		{"unknown month", []string{"annual", "--month", "smarch"}},
		{"month out of range", []string{"annual", "--month", "13"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHarness(t)
			if err := h.run(append([]string{"build"}, test.args...)...); err == nil {
				t.Errorf("build %v succeeded with %q", test.args, h.stdout.String())
			}
		})
	}
}

func TestBuildRequiresSubcommand(t *testing.T) {
	h := newHarness(t)
	if err := h.run("build"); !errors.Is(err, cli.ErrSubcommandRequired) {
		t.Errorf("build = %v, want ErrSubcommandRequired", err)
	}
}
