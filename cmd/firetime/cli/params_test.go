// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Location string        `flag:"location" desc:"time zone"`
		Verbose  bool          `flag:"verbose,v" desc:"enable verbose output"`
		Count    int           `flag:"count,n" desc:"number of fire times"`
		Timeout  time.Duration `flag:"timeout" desc:"give up after"`
		Weekends []string      `flag:"weekends" desc:"weekend days"`
		Untagged string        // no flag tag, skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--location", "Europe/Berlin",
		"-v",
		"-n", "42",
		"--timeout", "30s",
		"--weekends", "fri,sat",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Location != "Europe/Berlin" {
		t.Errorf("Location = %q, want %q", p.Location, "Europe/Berlin")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Count != 42 {
		t.Errorf("Count = %d, want 42", p.Count)
	}
	if p.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", p.Timeout)
	}
	if len(p.Weekends) != 2 || p.Weekends[0] != "fri" || p.Weekends[1] != "sat" {
		t.Errorf("Weekends = %v, want [fri sat]", p.Weekends)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Adjust   string        `flag:"adjust" desc:"adjustment" default:"skip"`
		Count    int           `flag:"count" desc:"count" default:"5"`
		Timeout  time.Duration `flag:"timeout" desc:"timeout" default:"10s"`
		Color    bool          `flag:"color" desc:"color" default:"true"`
		Weekends []string      `flag:"weekends" desc:"weekends" default:"sat,sun"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Adjust != "skip" {
		t.Errorf("Adjust = %q, want skip", p.Adjust)
	}
	if p.Count != 5 {
		t.Errorf("Count = %d, want 5", p.Count)
	}
	if p.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", p.Timeout)
	}
	if !p.Color {
		t.Error("Color = false, want true")
	}
	if len(p.Weekends) != 2 || p.Weekends[0] != "sat" || p.Weekends[1] != "sun" {
		t.Errorf("Weekends = %v, want [sat sun]", p.Weekends)
	}
}

func TestBindFlags_EmbeddedStructs(t *testing.T) {
	type params struct {
		OutputFormat
		At string `flag:"at" desc:"instant"`
	}

	var p params
	flagSet := FlagsFromParams("check", &p)
	if err := flagSet.Parse([]string{"--json", "--at", "2026-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.Format != FormatText {
		t.Errorf("Format = %q, want %q", p.Format, FormatText)
	}
	if p.At != "2026-01-01T00:00:00Z" {
		t.Errorf("At = %q", p.At)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params any
		want   string
	}{
		{
			name:   "not a pointer",
			params: struct{}{},
			want:   "pointer to a struct",
		},
		{
			name: "unsupported type",
			params: &struct {
				Rate float32 `flag:"rate"`
			}{},
			want: "unsupported type float32",
		},
		{
			name: "bad default",
			params: &struct {
				Count int `flag:"count" default:"many"`
			}{},
			want: "default for --count",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := BindFlags(test.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil {
				t.Fatal("BindFlags() = nil, want error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), test.want)
			}
		})
	}
}

func TestFlagsFromParams_PanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic")
		}
	}()
	FlagsFromParams("bad", &struct {
		Rate float32 `flag:"rate"`
	}{})
}

func TestParseFlagTag(t *testing.T) {
	tests := []struct {
		tag, name, shorthand string
	}{
		{"count", "count", ""},
		{"count,n", "count", "n"},
	}
	for _, test := range tests {
		name, shorthand := parseFlagTag(test.tag)
		if name != test.name || shorthand != test.shorthand {
			t.Errorf("parseFlagTag(%q) = (%q, %q), want (%q, %q)",
				test.tag, name, shorthand, test.name, test.shorthand)
		}
	}
}
