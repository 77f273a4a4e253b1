// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for firetime packages.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that individual
// tests do not need direct time.After calls. They are used where a
// test releases a goroutine through a fake clock and must not hang if
// the goroutine never reports back. These are the only place in the
// test suite where real wall-clock timeouts are used.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no firetime-internal dependencies.
package testutil
