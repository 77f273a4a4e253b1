// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"strings"
)

// arrangeFields splits text into tokens and places them in the seven
// field slots, filling the second and year fields when they are omitted.
func arrangeFields(text string) ([fieldCount]string, error) {
	tokens := strings.Fields(strings.ToUpper(text))
	var fields [fieldCount]string
	switch len(tokens) {
	case 5:
		fields[Second] = "0"
		copy(fields[Minute:Year], tokens)
		fields[Year] = "*"
	case 6:
		if minuteFirst(tokens) {
			fields[Second] = "0"
			copy(fields[Minute:], tokens)
		} else {
			copy(fields[:Year], tokens)
			fields[Year] = "*"
		}
	case 7:
		copy(fields[:], tokens)
	default:
		return fields, newParseError(ErrFieldCount, wholeExpression, "", -1,
			"expected 5 to 7 fields, got %d", len(tokens))
	}
	return fields, nil
}

// minuteFirst reports whether six tokens read as minute through year:
// the last token is a four-digit year, or one of the day fields in that
// reading is "?".
func minuteFirst(tokens []string) bool {
	last := tokens[len(tokens)-1]
	if len(last) == 4 && isDigit(last[0]) && isDigit(last[1]) && isDigit(last[2]) && isDigit(last[3]) {
		return true
	}
	return tokens[2] == "?" || tokens[4] == "?"
}

// fieldParser fills a schedule from the seven field tokens.
type fieldParser struct {
	result *schedule
}

func (p *fieldParser) parseField(field Field, token string) error {
	horizonYear := p.result.horizonYear
	low, high := field.domain(horizonYear)
	set := newFieldSet(low, high)

	entries := strings.Split(token, ",")
	if err := checkList(field, token, entries); err != nil {
		return err
	}

	for _, entry := range entries {
		s := &scanner{field: field, entry: entry, horizonYear: horizonYear}
		if entry == "" {
			return newParseError(ErrUnexpectedCharacter, field, token, -1, "empty list entry")
		}
		var err error
		switch field {
		case DayOfMonth:
			err = p.dayOfMonthEntry(s, &set)
		case DayOfWeek:
			err = p.dayOfWeekEntry(s, &set)
		default:
			err = p.plainEntry(s, &set)
		}
		if err != nil {
			return err
		}
	}

	p.result.sets[field] = set
	return nil
}

// checkList enforces the rules about which entries may share a list.
func checkList(field Field, token string, entries []string) error {
	if strings.Contains(token, "?") && len(entries) > 1 {
		return newParseError(ErrUnspecifiedField, field, token, strings.Index(token, "?"),
			"'?' must be the only value")
	}
	switch field {
	case DayOfMonth:
		if len(entries) == 1 {
			return nil
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry, "L") {
				return newParseError(ErrLastDayCombination, field, token, strings.Index(token, "L"),
					"'L' must be the only day-of-month value")
			}
			if strings.HasSuffix(entry, "W") {
				return newParseError(ErrNearestWeekdayCombination, field, token, strings.Index(token, "W"),
					"'W' must follow the only day-of-month value")
			}
		}
	case DayOfWeek:
		if count := strings.Count(token, "#"); count > 1 {
			return newParseError(ErrMultipleNth, field, token, strings.LastIndex(token, "#"),
				"found %d occurrences of '#'", count)
		}
		if len(entries) == 1 {
			return nil
		}
		if index := strings.IndexAny(token, "L#"); index >= 0 {
			return newParseError(ErrDayOfWeekCombination, field, token, index,
				"'%c' must be the only day-of-week value", token[index])
		}
	}
	return nil
}

// plainEntry parses "?", "*", "*/n", "a", "a/n", "a-b" and "a-b/n".
func (p *fieldParser) plainEntry(s *scanner, set *FieldSet) error {
	if s.accept('?') {
		if s.field != DayOfMonth && s.field != DayOfWeek {
			return s.failAt(0, ErrUnspecifiedField, "'?' is only allowed in the day-of-month and day-of-week fields")
		}
		if err := s.expectEnd(); err != nil {
			return err
		}
		set.Add(NoSpecificValue)
		return nil
	}

	low, high := s.field.domain(p.result.horizonYear)
	start, end := low, high
	wildcard := s.accept('*')
	if !wildcard {
		position := s.position
		value, err := s.value()
		if err != nil {
			return err
		}
		if err := s.checkRange(value, position); err != nil {
			return err
		}
		start, end = value, value
		switch {
		case s.accept('-'):
			position = s.position
			if end, err = s.value(); err != nil {
				return err
			}
			if err := s.checkRange(end, position); err != nil {
				return err
			}
			if s.field == Year && end < start {
				return s.failAt(position, ErrOutOfRange, "year range start %d is after end %d", start, end)
			}
		case s.peek() == '/':
			end = high
		}
	}

	step := 1
	stepped := s.accept('/')
	if stepped {
		position := s.position
		var err error
		if step, err = s.number(); err != nil {
			return err
		}
		if limit := s.field.maxIncrement(p.result.horizonYear); step < 1 || step > limit {
			return s.failAt(position, ErrInvalidIncrement, "increment must be between 1 and %d, got %d", limit, step)
		}
	}
	if err := s.expectEnd(); err != nil {
		return err
	}

	if wildcard && !stepped {
		set.Add(AllValues)
		return nil
	}
	addRange(set, low, high, start, end, step)
	return nil
}

// addRange adds start, start+step, ... up to end. When end is below
// start the range wraps through the top of the domain, so hour "22-2"
// yields 22, 23, 0, 1, 2.
func addRange(set *FieldSet, low, high, start, end, step int) {
	size := high - low + 1
	if end < start {
		end += size
	}
	for value := start; value <= end; value += step {
		set.Add(low + (value-low)%size)
	}
}

func (p *fieldParser) dayOfMonthEntry(s *scanner, set *FieldSet) error {
	switch {
	case s.peek() == 'L':
		return p.lastDayEntry(s)
	case strings.HasSuffix(s.entry, "W"):
		return p.nearestWeekdayEntry(s, set)
	default:
		return p.plainEntry(s, set)
	}
}

// lastDayEntry parses L, L-n, LW, LW-m and L-nW-m.
func (p *fieldParser) lastDayEntry(s *scanner) error {
	s.accept('L')
	p.result.lastDayOfMonth = true
	if s.accept('-') {
		offset, err := lastDayOffset(s)
		if err != nil {
			return err
		}
		p.result.lastDayOffset = offset
	}
	if s.accept('W') {
		p.result.nearestWeekday = true
		if s.accept('-') {
			offset, err := lastDayOffset(s)
			if err != nil {
				return err
			}
			p.result.lastWeekdayOffset = offset
		}
	}
	return s.expectEnd()
}

func lastDayOffset(s *scanner) (int, error) {
	position := s.position
	offset, err := s.number()
	if err != nil {
		return 0, err
	}
	if offset > 30 {
		return 0, s.failAt(position, ErrOutOfRange, "offset from the last day must be between 0 and 30, got %d", offset)
	}
	return offset, nil
}

// nearestWeekdayEntry parses nW.
func (p *fieldParser) nearestWeekdayEntry(s *scanner, set *FieldSet) error {
	position := s.position
	day, err := s.number()
	if err != nil {
		return err
	}
	if err := s.checkRange(day, position); err != nil {
		return err
	}
	if !s.accept('W') {
		return s.failAt(s.position, ErrUnexpectedCharacter, "'W' must directly follow a single day, found %q", s.peek())
	}
	if err := s.expectEnd(); err != nil {
		return err
	}
	p.result.nearestWeekday = true
	set.Add(day)
	return nil
}

// dayOfWeekEntry parses L, dL, d#k and d#k/n, and hands everything else
// to plainEntry.
func (p *fieldParser) dayOfWeekEntry(s *scanner, set *FieldSet) error {
	if s.entry == "L" {
		set.Add(7)
		return nil
	}
	if !strings.ContainsAny(s.entry, "L#") {
		return p.plainEntry(s, set)
	}

	position := s.position
	day, err := s.value()
	if err != nil {
		return err
	}
	if err := s.checkRange(day, position); err != nil {
		return err
	}

	switch {
	case s.accept('L'):
		p.result.lastDayOfWeek = true
	case s.accept('#'):
		position = s.position
		nth, err := s.number()
		if err != nil {
			return err
		}
		if nth < 1 || nth > 5 {
			return s.failAt(position, ErrOutOfRange, "occurrence after '#' must be between 1 and 5, got %d", nth)
		}
		p.result.nthDayOfWeek = nth
		if s.accept('/') {
			position = s.position
			every, err := s.number()
			if err != nil {
				return err
			}
			if every < 1 || every > 5 {
				return s.failAt(position, ErrInvalidIncrement, "week increment after '#' must be between 1 and 5, got %d", every)
			}
			p.result.everyNthWeek = every
		}
	default:
		return s.failAt(s.position, ErrUnexpectedCharacter, "expected 'L' or '#', found %q", s.peek())
	}
	if err := s.expectEnd(); err != nil {
		return err
	}
	set.Add(day)
	return nil
}
