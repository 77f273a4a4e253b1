// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func run(command *Command, args ...string) error {
	return command.Execute(context.Background(), args, DiscardLogger())
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "firetime",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "next",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "next"
					return nil
				},
			},
		},
	}

	if err := run(root, "next"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "next" {
		t.Errorf("dispatched to %q, want %q", called, "next")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "firetime",
		Subcommands: []*Command{
			{
				Name: "build",
				Subcommands: []*Command{
					{
						Name: "daily",
						Run: func(_ context.Context, args []string, _ *slog.Logger) error {
							called = "build daily"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := run(root, "build", "daily", "extra-arg"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "build daily" {
		t.Errorf("dispatched to %q, want %q", called, "build daily")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var count int
	var expression string

	command := &Command{
		Name: "next",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("next", pflag.ContinueOnError)
			flagSet.IntVar(&count, "count", 5, "fire times to print")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			expression = strings.Join(args, " ")
			return nil
		},
	}

	if err := run(command, "--count", "3", "0 0 12 * * ?"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if expression != "0 0 12 * * ?" {
		t.Errorf("expression = %q, want %q", expression, "0 0 12 * * ?")
	}
}

func TestCommand_Execute_LoggerScopedWithCommandPath(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, nil))

	root := &Command{
		Name: "firetime",
		Subcommands: []*Command{
			{
				Name: "watch",
				Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
					logger.Info("fired")
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"watch"}, logger); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(buffer.String(), `command="firetime watch"`) {
		t.Errorf("log output = %q, want command attribute", buffer.String())
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "next",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("next", pflag.ContinueOnError)
			flagSet.Int("count", 5, "fire times to print")
			flagSet.String("location", "", "time zone")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := run(command, "--cuont", "3")
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --count") {
		t.Errorf("error = %q, want suggestion for '--count'", errStr)
	}
	if !strings.Contains(errStr, "cuont") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "next",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("next", pflag.ContinueOnError)
			flagSet.Int("count", 5, "fire times to print")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := run(command, "--zzzzzzzzz")
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "firetime",
		Subcommands: []*Command{
			{Name: "next"},
			{Name: "calendar"},
			{Name: "version"},
		},
	}

	err := run(root, "calender")
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "calendar"`) {
		t.Errorf("error = %q, want suggestion for 'calendar'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "firetime",
		Subcommands: []*Command{
			{Name: "next"},
			{Name: "calendar"},
		},
	}

	err := run(root, "zzzzzzz")
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			var help bytes.Buffer
			called := false
			command := &Command{
				Name:        "check",
				Description: "Test whether an instant matches a schedule.",
				HelpOutput:  &help,
				Run: func(context.Context, []string, *slog.Logger) error {
					called = true
					return nil
				},
			}

			if err := run(command, helpArg); err != nil {
				t.Fatalf("Execute(%q) error: %v", helpArg, err)
			}
			if called {
				t.Error("Run was called for a help request")
			}
			if !strings.Contains(help.String(), "Test whether an instant matches") {
				t.Errorf("help = %q, want the description", help.String())
			}
		})
	}
}

func TestCommand_Execute_HelpAfterFlags(t *testing.T) {
	var help bytes.Buffer
	var count int
	command := &Command{
		Name:       "next",
		HelpOutput: &help,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("next", pflag.ContinueOnError)
			flagSet.IntVar(&count, "count", 5, "fire times to print")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			t.Error("Run was called for a help request")
			return nil
		},
	}

	if err := run(command, "--count", "2", "--help"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(help.String(), "--count") {
		t.Errorf("help = %q, want the flag listing", help.String())
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:       "build",
		HelpOutput: &help,
		Subcommands: []*Command{
			{Name: "daily", Summary: "Fire every day"},
		},
	}

	err := run(root)
	if !errors.Is(err, ErrSubcommandRequired) {
		t.Fatalf("Execute() error = %v, want ErrSubcommandRequired", err)
	}
	if !strings.Contains(help.String(), "daily") {
		t.Errorf("help = %q, want the subcommand listing", help.String())
	}
}

func TestCommand_Execute_SubcommandInheritsHelpOutput(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:       "firetime",
		HelpOutput: &help,
		Subcommands: []*Command{
			{
				Name:        "build",
				Subcommands: []*Command{{Name: "daily", Summary: "Fire every day"}},
			},
		},
	}

	if err := run(root, "build", "--help"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(help.String(), "firetime build <command>") {
		t.Errorf("help = %q, want the nested usage line", help.String())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{Name: "firetime"}
	command := &Command{
		Name:    "next",
		Summary: "List upcoming fire times",
		Usage:   "firetime next EXPR [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("next", pflag.ContinueOnError)
			flagSet.Int("count", 5, "fire times to print")
			return flagSet
		},
		Examples: []Example{
			{Description: "Weekday mornings", Command: "firetime next '0 0 9 ? * MON-FRI'"},
		},
		parent: root,
	}

	var output bytes.Buffer
	command.PrintHelp(&output)
	help := output.String()

	for _, want := range []string{
		"List upcoming fire times",
		"Usage:\n  firetime next EXPR [flags]",
		"--count",
		"# Weekday mornings",
		"firetime next '0 0 9 ? * MON-FRI'",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 1}
	var coder interface{ ExitCode() int }
	if !errors.As(err, &coder) {
		t.Fatal("ExitError does not expose ExitCode")
	}
	if coder.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", coder.ExitCode())
	}
	if err.Error() != "exit code 1" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit code 1")
	}
}
