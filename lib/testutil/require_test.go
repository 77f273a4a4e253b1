// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"testing"
	"time"
)

// recorder captures Fatalf instead of stopping the test.
type recorder struct {
	failed  bool
	message string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestRequireReceive(t *testing.T) {
	channel := make(chan int, 1)
	channel <- 7
	if got := RequireReceive(t, channel, time.Second, "reading value"); got != 7 {
		t.Errorf("RequireReceive = %d, want 7", got)
	}
}

func TestRequireClosed(t *testing.T) {
	done := make(chan struct{})
	close(done)
	RequireClosed(t, done, time.Second)

	var r recorder
	RequireClosed(&r, make(chan struct{}), time.Millisecond, "waiting for %s", "nothing")
	if !r.failed {
		t.Fatal("RequireClosed did not fail on an open channel")
	}
	if r.message != "timed out after 1ms waiting for channel close: waiting for nothing" {
		t.Errorf("message = %q", r.message)
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		args []any
		want string
	}{
		{nil, "(no message)"},
		{[]any{"plain"}, "plain"},
		{[]any{42}, "42"},
		{[]any{"%d fire times", 3}, "3 fire times"},
	}
	for _, test := range tests {
		if got := formatMessage(test.args); got != test.want {
			t.Errorf("formatMessage(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
