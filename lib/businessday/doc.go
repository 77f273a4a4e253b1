// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package businessday moves schedule fire times off non-business days.
//
// A [Calendar] decides which days are business days. [Weekends] is the
// basic calendar: every day outside a configured weekend set is a
// business day. [WithHolidays] layers fixed dates on top of any
// calendar.
//
// [Next] wraps any [Schedule] (a *cron.Expression satisfies it) with an
// [Adjustment] policy:
//
//   - [Skip] drops fire times on non-business days and returns the first
//     one that lands on a business day.
//   - Shift(0) applies no adjustment and returns the raw fire time.
//   - Shift(n) with n > 0 moves a fire time that lands on a non-business
//     day forward n business days; n < 0 moves it back |n| business days.
//     Fire times already on a business day are left alone.
//
// The time of day is preserved when a fire time is shifted. Day
// arithmetic uses the fire time's own location, so a shifted fire time
// keeps its wall-clock time across daylight-saving transitions.
package businessday
