// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cron parses seven-field schedule expressions and computes the
// instants at which they fire.
//
// Field layout:
//
//	┌───────────── second (0-59)
//	│ ┌───────────── minute (0-59)
//	│ │ ┌───────────── hour (0-23)
//	│ │ │ ┌───────────── day of month (1-31)
//	│ │ │ │ ┌───────────── month (1-12 or JAN-DEC)
//	│ │ │ │ │ ┌───────────── day of week (1-7 or SUN-SAT, 1=Sunday)
//	│ │ │ │ │ │ ┌───────────── year (optional, 1970 to now+100)
//	│ │ │ │ │ │ │
//	* * * * * ? *
//
// Day-of-week numbering starts at 1 for Sunday and ends at 7 for
// Saturday. This differs from the 0-based Unix dialect: "0" is out of
// range and "7" is Saturday, not Sunday. Names are accepted in any case
// and normalize to the same numbers.
//
// Five tokens are read as minute through day-of-week with second 0. Six
// tokens are read seconds-first, unless the last token is a four-digit
// year or the day fields of the minute-first reading are "?", in which
// case they are read minute-first with a year.
//
// Every field accepts a value, a name (month and day-of-week only), "*",
// ranges "a-b" that may wrap ("22-2" in the hour field spans midnight),
// steps "a/n", "*/n" and "a-b/n", and comma-separated lists of those.
// The day fields also accept:
//
//	?        no specific value (day-of-month or day-of-week only)
//	L        last day of the month; Saturday in day-of-week
//	L-n      n days before the last day of the month
//	LW       last weekday (Monday-Friday) of the month
//	LW-n     n days before the last weekday of the month
//	nW       weekday nearest to day n, never leaving the month
//	dL       last weekday d of the month (day-of-week)
//	d#k      k-th weekday d of the month, k in 1-5 (day-of-week)
//	d#k/n    k-th weekday d of the month and every n-th week after it
//
// When both day fields are constrained, a day matches if either field
// matches it. "*" in a day field does not constrain it.
//
// An Expression is immutable after parsing apart from its time zone and
// is safe for concurrent use. Next never fails: it reports false when no
// fire time exists before the horizon (the parse year plus 100).
package cron
