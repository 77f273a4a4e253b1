// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time operations the schedule engine and the
// firetime command depend on. Production code injects Real(); tests
// inject Fake() with deterministic time control.
type Clock interface {
	// Now returns the current time. The cron parser reads it once per
	// Parse to fix the year horizon.
	Now() time.Time

	// After returns a channel that receives the current time after
	// duration d elapses. Equivalent to time.After. If d <= 0, the
	// channel receives immediately.
	After(d time.Duration) <-chan time.Time

	// Sleep pauses the current goroutine for at least duration d.
	Sleep(d time.Duration)
}

// Until returns a channel that receives once the clock reaches
// deadline. A deadline at or before Now fires immediately.
func Until(clock Clock, deadline time.Time) <-chan time.Time {
	return clock.After(deadline.Sub(clock.Now()))
}
