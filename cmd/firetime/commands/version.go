// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/firetime/cmd/firetime/cli"
	"github.com/bureau-foundation/firetime/lib/version"
)

func versionCommand(env Environment) *cli.Command {
	var params cli.JSONOutput
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			if done, err := params.EmitJSON(env.Stdout, version.Current()); done {
				return err
			}
			_, err := fmt.Fprintf(env.Stdout, "firetime %s\n", version.Full())
			return err
		},
	}
}
