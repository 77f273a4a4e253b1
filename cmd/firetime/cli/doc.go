// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the firetime
// binary: a tree of [Command] values dispatched by name, pflag flag
// sets built from tagged parameter structs ([FlagsFromParams]), shared
// output handling ([JSONOutput], [OutputFormat]), the command logger,
// and [ExitError] for commands whose non-zero exit is an answer rather
// than a failure.
package cli
