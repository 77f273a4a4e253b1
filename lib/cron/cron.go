// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bureau-foundation/firetime/lib/clock"
)

// Parser turns expression text into an Expression. The zero Parser uses
// the real clock and time.Local.
type Parser struct {
	// Clock supplies the parse-time year that anchors the year-field
	// domain and the search horizon. Nil means clock.Real().
	Clock clock.Clock

	// Location is the initial time zone of parsed expressions. Nil
	// means time.Local.
	Location *time.Location
}

// Parse parses text with the zero Parser.
func Parse(text string) (*Expression, error) {
	return Parser{}.Parse(text)
}

// MustParse is like Parse but panics if the expression is malformed.
func MustParse(text string) *Expression {
	expression, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return expression
}

// Parse parses text. Errors are always *ParseError.
func (p Parser) Parse(text string) (*Expression, error) {
	source := p.Clock
	if source == nil {
		source = clock.Real()
	}
	location := p.Location
	if location == nil {
		location = time.Local
	}

	fields, err := arrangeFields(text)
	if err != nil {
		return nil, err
	}

	expression := &Expression{}
	expression.fields = fields
	expression.text = strings.Join(fields[:], " ")
	expression.horizonYear = source.Now().Year() + HorizonYears

	parser := fieldParser{result: &expression.schedule}
	for field := Second; field <= Year; field++ {
		if err := parser.parseField(field, fields[field]); err != nil {
			return nil, err
		}
	}

	if expression.sets[DayOfMonth].IsUnspecified() && expression.sets[DayOfWeek].IsUnspecified() {
		return nil, newParseError(ErrUnspecifiedField, wholeExpression, expression.text, -1,
			"'?' cannot be used in both day-of-month and day-of-week")
	}

	expression.location.Store(location)
	return expression, nil
}

// schedule is the immutable result of parsing.
type schedule struct {
	// text is the normalized seven-field form, upper-cased and joined
	// with single spaces.
	text   string
	fields [fieldCount]string
	sets   [fieldCount]FieldSet

	lastDayOfMonth    bool
	lastDayOffset     int
	nearestWeekday    bool
	lastWeekdayOffset int
	nthDayOfWeek      int
	everyNthWeek      int
	lastDayOfWeek     bool

	// horizonYear is the last year the year field may name and the
	// last year Next searches.
	horizonYear int
}

// Expression is a parsed schedule. Apart from the time zone it never
// changes after Parse returns, and all methods are safe for concurrent
// use, including SetLocation.
type Expression struct {
	schedule
	location atomic.Pointer[time.Location]
}

// Location returns the time zone the expression is evaluated in.
func (e *Expression) Location() *time.Location {
	return e.location.Load()
}

// SetLocation changes the time zone the expression is evaluated in.
// Nil selects time.Local.
func (e *Expression) SetLocation(location *time.Location) {
	if location == nil {
		location = time.Local
	}
	e.location.Store(location)
}

// String returns the normalized seven-field text.
func (e *Expression) String() string { return e.text }

// Fields returns the normalized text of each field, indexed by Field.
func (e *Expression) Fields() [fieldCount]string { return e.fields }

// FieldSet returns a copy of the values allowed for field. The day
// fields hold the target day for the L, W and # forms.
func (e *Expression) FieldSet(field Field) FieldSet {
	return e.sets[field].clone()
}

// LastDayOfMonth reports the day-of-month "L" form.
func (e *Expression) LastDayOfMonth() bool { return e.lastDayOfMonth }

// LastDayOffset is n in "L-n".
func (e *Expression) LastDayOffset() int { return e.lastDayOffset }

// NearestWeekday reports the "W" forms ("nW" and "LW").
func (e *Expression) NearestWeekday() bool { return e.nearestWeekday }

// LastWeekdayOffset is m in "LW-m".
func (e *Expression) LastWeekdayOffset() int { return e.lastWeekdayOffset }

// NthDayOfWeek is k in "d#k", or 0.
func (e *Expression) NthDayOfWeek() int { return e.nthDayOfWeek }

// EveryNthWeek is n in "d#k/n", or 0.
func (e *Expression) EveryNthWeek() int { return e.everyNthWeek }

// LastDayOfWeek reports the day-of-week "dL" form.
func (e *Expression) LastDayOfWeek() bool { return e.lastDayOfWeek }

// HorizonYear is the last year the expression can fire in.
func (e *Expression) HorizonYear() int { return e.horizonYear }

// Equal reports whether both expressions have the same normalized text
// and time zone.
func (e *Expression) Equal(other *Expression) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.text == other.text && e.Location().String() == other.Location().String()
}

// MarshalText returns the normalized text. The time zone is not part
// of the text form.
func (e *Expression) MarshalText() ([]byte, error) {
	return []byte(e.text), nil
}

// UnmarshalText parses text into e with the zero Parser, keeping e's
// time zone if it already has one.
func (e *Expression) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	location := e.Location()
	e.schedule = parsed.schedule
	if location == nil {
		location = parsed.Location()
	}
	e.location.Store(location)
	return nil
}

// IsParseError reports whether err came from Parse.
func IsParseError(err error) bool {
	var parseError *ParseError
	return errors.As(err, &parseError)
}
