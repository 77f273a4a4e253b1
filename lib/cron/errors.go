// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds reported by Parse. Every *ParseError unwraps to exactly
// one of these, so callers can branch with errors.Is.
var (
	ErrFieldCount                = errors.New("wrong number of fields")
	ErrOutOfRange                = errors.New("value out of range")
	ErrInvalidIncrement          = errors.New("invalid increment")
	ErrLastDayCombination        = errors.New("'L' cannot be combined with other day-of-month values")
	ErrDayOfWeekCombination      = errors.New("'L' and '#' cannot be combined with other day-of-week values")
	ErrMultipleNth               = errors.New("only one '#' is allowed")
	ErrNearestWeekdayCombination = errors.New("'W' cannot be combined with other day-of-month values")
	ErrUnknownName               = errors.New("unrecognized name")
	ErrMalformedNumber           = errors.New("malformed number")
	ErrUnexpectedCharacter       = errors.New("unexpected character")
	ErrUnspecifiedField          = errors.New("'?' not allowed")
)

// ParseError describes why an expression was rejected.
type ParseError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Field is the offending field. Errors about the expression as a
	// whole (field count, both day fields "?") report -1.
	Field Field

	// Token is the field text or list entry that failed, if any.
	Token string

	// Position is the byte offset of the problem within Token, or -1.
	Position int

	// Message is the human-readable detail.
	Message string
}

func (e *ParseError) Error() string {
	var builder strings.Builder
	builder.WriteString("cron: ")
	if e.Field >= Second {
		fmt.Fprintf(&builder, "%s field: ", e.Field)
	}
	builder.WriteString(e.Message)
	switch {
	case e.Token != "" && e.Position >= 0:
		fmt.Fprintf(&builder, " (in %q at position %d)", e.Token, e.Position)
	case e.Token != "":
		fmt.Fprintf(&builder, " (in %q)", e.Token)
	}
	return builder.String()
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error { return e.Kind }

func newParseError(kind error, field Field, token string, position int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:     kind,
		Field:    field,
		Token:    token,
		Position: position,
		Message:  fmt.Sprintf(format, args...),
	}
}
