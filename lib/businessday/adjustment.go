// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package businessday

import (
	"fmt"
	"strconv"
	"strings"
)

// Adjustment is the policy for fire times that land on non-business
// days. The zero value is Skip.
type Adjustment struct {
	shift bool
	days  int
}

// Skip discards fire times on non-business days.
var Skip = Adjustment{}

// Shift moves a fire time on a non-business day by days business days:
// forward when positive, backward when negative. Shift(0) disables
// adjustment entirely.
func Shift(days int) Adjustment {
	return Adjustment{shift: true, days: days}
}

// IsSkip reports whether a is Skip.
func (a Adjustment) IsSkip() bool { return !a.shift }

// Days returns the shift distance, or false for Skip.
func (a Adjustment) Days() (int, bool) { return a.days, a.shift }

// String returns "skip" or the signed shift distance, the same forms
// ParseAdjustment accepts.
func (a Adjustment) String() string {
	if !a.shift {
		return "skip"
	}
	return strconv.Itoa(a.days)
}

// MarshalText implements encoding.TextMarshaler.
func (a Adjustment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Adjustment) UnmarshalText(text []byte) error {
	parsed, err := ParseAdjustment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAdjustment parses "skip" (or an empty string) as Skip and a
// signed integer as Shift.
func ParseAdjustment(text string) (Adjustment, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, "skip") {
		return Skip, nil
	}
	days, err := strconv.Atoi(text)
	if err != nil {
		return Adjustment{}, fmt.Errorf("invalid adjustment %q: want \"skip\" or a number of business days", text)
	}
	return Shift(days), nil
}
