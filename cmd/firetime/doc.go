// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Firetime evaluates cron expressions from the command line. It parses
// and explains expressions (parse), lists fire times (next), tests
// instants (check), moves fire times onto business days (business),
// writes expressions for common schedules (build), draws month
// calendars of fire days (calendar), and waits for fire times as they
// pass (watch).
//
// Defaults for the time zone, weekend days, holidays, adjustment and
// count come from the YAML or JSONC file named by --config or
// FIRETIME_CONFIG; see lib/config.
package main
