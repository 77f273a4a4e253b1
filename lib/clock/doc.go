// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction.
//
// Two things in firetime read the wall clock: the cron parser, which
// fixes the year horizon at parse time, and the watch command, which
// sleeps until each fire time. Both accept a Clock instead of calling
// the time package directly. Real() provides the standard library
// behavior; Fake() provides a clock that moves only when told to.
//
// # Wiring Pattern
//
//	parser := cron.Parser{Clock: clock.Real()}
//
// In tests:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	parser := cron.Parser{Clock: fake}
//	// ... start a goroutine that waits on fake.After ...
//	fake.WaitForTimers(1)               // wait for the goroutine to register
//	fake.AdvanceTo(nextFireTime)        // release it deterministically
//
// # FakeClock Synchronization
//
// A goroutine calling After or Sleep on a FakeClock registers a pending
// waiter. WaitForTimers blocks until a given number of waiters are
// registered, which removes the race between registration and Advance.
package clock
