// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates the structured logger handed to every
// command. When stderr is a terminal it uses slog.TextHandler for
// human-readable output; when stderr is piped or redirected it uses
// slog.JSONHandler so scripts can parse it.
//
// [Command.Execute] scopes it with the command path:
//
//	logger.With("command", "firetime watch")
func NewCommandLogger() *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), slog.LevelInfo)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// DiscardLogger returns a logger that drops everything. Tests pass it
// to Execute.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
