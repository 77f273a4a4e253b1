// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "strconv"

// maxDigits bounds numeric literals so conversions cannot overflow.
const maxDigits = 9

// scanner walks one comma-separated entry of a field byte by byte,
// keeping the offset so errors point at the character that failed.
// Entries are upper-cased before scanning.
type scanner struct {
	field       Field
	entry       string
	position    int
	horizonYear int
}

func (s *scanner) done() bool { return s.position >= len(s.entry) }

// peek returns the current byte, or 0 at the end of the entry.
func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.entry[s.position]
}

// accept consumes c if it is the current byte.
func (s *scanner) accept(c byte) bool {
	if !s.done() && s.entry[s.position] == c {
		s.position++
		return true
	}
	return false
}

func (s *scanner) expectEnd() error {
	if s.done() {
		return nil
	}
	return s.failAt(s.position, ErrUnexpectedCharacter, "unexpected %q", s.entry[s.position])
}

// number consumes a run of decimal digits.
func (s *scanner) number() (int, error) {
	start := s.position
	for !s.done() && isDigit(s.entry[s.position]) {
		s.position++
	}
	switch {
	case start == s.position && s.done():
		return 0, s.failAt(start, ErrMalformedNumber, "expected a number at end of entry")
	case start == s.position:
		return 0, s.failAt(start, ErrMalformedNumber, "expected a number, found %q", s.entry[start])
	case s.position-start > maxDigits:
		return 0, s.failAt(start, ErrMalformedNumber, "number %s is too long", s.entry[start:s.position])
	}
	value, err := strconv.Atoi(s.entry[start:s.position])
	if err != nil {
		return 0, s.failAt(start, ErrMalformedNumber, "invalid number %q", s.entry[start:s.position])
	}
	return value, nil
}

// value consumes a number or, in the month and day-of-week fields, a
// three-letter name.
func (s *scanner) value() (int, error) {
	names := s.field.names()
	if names == nil || !isLetter(s.peek()) {
		return s.number()
	}
	start := s.position
	end := min(start+3, len(s.entry))
	name := s.entry[start:end]
	value, ok := names[name]
	if !ok {
		return 0, s.failAt(start, ErrUnknownName, "unknown %s name %q", s.field, name)
	}
	s.position = end
	return value, nil
}

// checkRange validates value against the field domain. position is
// where the value started.
func (s *scanner) checkRange(value, position int) error {
	low, high := s.field.domain(s.horizonYear)
	if value < low || value > high {
		return s.failAt(position, ErrOutOfRange, "value out of range [%d-%d]: got %d", low, high, value)
	}
	return nil
}

func (s *scanner) failAt(position int, kind error, format string, args ...any) *ParseError {
	return newParseError(kind, s.field, s.entry, position, format, args...)
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
