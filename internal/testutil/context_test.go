package testutil

import (
	"testing"
	"time"
)

// benchLike hides the Deadline method of *testing.T.
type benchLike struct {
	testing.TB
}

// TestContextUsesTimeout verifies the context expires within the timeout.
func TestContextUsesTimeout(t *testing.T) {
	ctx := Context(t, time.Minute)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if remaining := time.Until(deadline); remaining > time.Minute {
		t.Fatalf("deadline %s exceeds timeout", remaining)
	}
}

// TestContextWithoutTestDeadline verifies a TB lacking Deadline still gets
// the requested timeout.
func TestContextWithoutTestDeadline(t *testing.T) {
	ctx := Context(benchLike{TB: t}, 0)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	remaining := time.Until(deadline)
	if remaining <= 0 || remaining > DefaultTimeout {
		t.Fatalf("expected default timeout, got %s", remaining)
	}
}
