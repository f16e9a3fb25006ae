// Package leaktest spots goroutines left running by code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settle gives exiting goroutines a chance to be reaped before counting
func settle(pause time.Duration) int {
	runtime.Gosched()
	runtime.GC()
	time.Sleep(pause)
	return runtime.NumGoroutine()
}

// GoroutineChecker compares goroutine counts before and after a block of work
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count. Create it after
// any long-lived background goroutines (store janitors, servers) are running.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{before: settle(10 * time.Millisecond), t: t}
}

// Check fails the test if more than tolerance goroutines are still alive.
// The count is retried until a short deadline so slow exits are not flagged.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(500 * time.Millisecond)
	after := settle(10 * time.Millisecond)
	for after-g.before > tolerance && time.Now().Before(deadline) {
		after = settle(20 * time.Millisecond)
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
