// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

const (
	// AllValues passed to FieldSet.Add makes the set match every value
	// of its field ("*").
	AllValues = -1

	// NoSpecificValue passed to FieldSet.Add marks the set as explicitly
	// unspecified ("?"). It matches every value like AllValues but
	// records that the field was left out on purpose.
	NoSpecificValue = -2
)

type setKind uint8

const (
	setEmpty setKind = iota
	setAll
	setUnspecified
	setSingle
	setMany
)

// FieldSet is the set of values allowed for one field. Most fields hold
// either a single literal or everything, so the set is a tagged variant:
// empty, all, unspecified, a single value, or a sorted slice. The "all"
// and "unspecified" variants answer every query in constant time.
//
// The zero FieldSet is empty with a 0-0 domain; sets built by the parser
// carry their field's domain so Min and Values can report it.
type FieldSet struct {
	kind   setKind
	low    int
	high   int
	single int
	values []int
}

func newFieldSet(low, high int) FieldSet {
	return FieldSet{low: low, high: high}
}

// Clear resets the set to empty.
func (s *FieldSet) Clear() {
	s.kind = setEmpty
	s.single = 0
	s.values = nil
}

// Add inserts value. AllValues and NoSpecificValue switch the set to the
// matching variant and absorb any later values.
func (s *FieldSet) Add(value int) {
	switch value {
	case AllValues:
		s.kind = setAll
		s.values = nil
		return
	case NoSpecificValue:
		s.kind = setUnspecified
		s.values = nil
		return
	}

	switch s.kind {
	case setAll, setUnspecified:
	case setEmpty:
		s.kind = setSingle
		s.single = value
	case setSingle:
		if value == s.single {
			return
		}
		s.kind = setMany
		s.values = []int{min(s.single, value), max(s.single, value)}
	case setMany:
		index, found := slices.BinarySearch(s.values, value)
		if !found {
			s.values = slices.Insert(s.values, index, value)
		}
	}
}

// Contains reports whether value is in the set.
func (s FieldSet) Contains(value int) bool {
	switch s.kind {
	case setAll, setUnspecified:
		return true
	case setSingle:
		return value == s.single
	case setMany:
		_, found := slices.BinarySearch(s.values, value)
		return found
	default:
		return false
	}
}

// Min returns the smallest member. For "all" and "unspecified" sets it
// is the low end of the field's domain (0 for second, minute and hour).
// An empty set returns -1.
func (s FieldSet) Min() int {
	switch s.kind {
	case setAll, setUnspecified:
		return s.low
	case setSingle:
		return s.single
	case setMany:
		return s.values[0]
	default:
		return -1
	}
}

// TryMinFrom returns the smallest member not less than start. An "all"
// or "unspecified" set always succeeds with start itself.
func (s FieldSet) TryMinFrom(start int) (int, bool) {
	switch s.kind {
	case setAll, setUnspecified:
		return start, true
	case setSingle:
		if s.single >= start {
			return s.single, true
		}
		return 0, false
	case setMany:
		index, _ := slices.BinarySearch(s.values, start)
		if index < len(s.values) {
			return s.values[index], true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Values yields the members in ascending order. "All" and "unspecified"
// sets yield every value of the field's domain.
func (s FieldSet) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		switch s.kind {
		case setAll, setUnspecified:
			for value := s.low; value <= s.high; value++ {
				if !yield(value) {
					return
				}
			}
		case setSingle:
			yield(s.single)
		case setMany:
			for _, value := range s.values {
				if !yield(value) {
					return
				}
			}
		}
	}
}

// Len returns the number of members.
func (s FieldSet) Len() int {
	switch s.kind {
	case setAll, setUnspecified:
		return s.high - s.low + 1
	case setSingle:
		return 1
	case setMany:
		return len(s.values)
	default:
		return 0
	}
}

// IsAll reports whether the set came from "*".
func (s FieldSet) IsAll() bool { return s.kind == setAll }

// IsUnspecified reports whether the set came from "?".
func (s FieldSet) IsUnspecified() bool { return s.kind == setUnspecified }

// IsEmpty reports whether the set has no members.
func (s FieldSet) IsEmpty() bool { return s.kind == setEmpty }

// constrains reports whether the set rules out any value of its field.
func (s FieldSet) constrains() bool {
	return s.kind != setAll && s.kind != setUnspecified
}

// clone returns a copy that shares no storage with s.
func (s FieldSet) clone() FieldSet {
	copied := s
	copied.values = slices.Clone(s.values)
	return copied
}

// String renders the set in expression syntax: "*", "?", or a
// comma-separated value list.
func (s FieldSet) String() string {
	switch s.kind {
	case setAll:
		return "*"
	case setUnspecified:
		return "?"
	case setEmpty:
		return ""
	}
	var builder strings.Builder
	for value := range s.Values() {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(strconv.Itoa(value))
	}
	return builder.String()
}
