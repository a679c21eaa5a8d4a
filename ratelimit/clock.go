// ABOUTME: Time source shared by the throttle and debounce limiters
// ABOUTME: Real clock in production, clockwork's fake clock in tests

// Package ratelimit provides throttle and debounce scheduling utilities.
package ratelimit

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDelay is the rate limiter window used when none is configured
const DefaultDelay = 1200 * time.Millisecond

// Clock supplies the current time and deferred execution.
// Tests pass a *clockwork.FakeClock and drive it with Advance.
type Clock = clockwork.Clock

// SystemClock returns a Clock backed by the time package
func SystemClock() Clock {
	return clockwork.NewRealClock()
}
