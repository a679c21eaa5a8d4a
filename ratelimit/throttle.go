// ABOUTME: Leading-edge throttle that runs at most one call per delay window
// ABOUTME: Backed by a burst-1 token bucket reading time from an injected clock

package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle runs the first call in each delay window and drops the rest.
// The window opens on the call that runs, so a steady stream of calls
// faster than delay fires once per delay.
type Throttle[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	clock   Clock
	fn      func(T)
	limiter *rate.Limiter
}

// NewThrottle wraps fn so that it runs at most once per delay.
// A delay <= 0 lets every call through.
func NewThrottle[T any](delay time.Duration, clock Clock, fn func(T)) *Throttle[T] {
	if clock == nil {
		clock = SystemClock()
	}

	return &Throttle[T]{
		delay:   delay,
		clock:   clock,
		fn:      fn,
		limiter: newLimiter(delay),
	}
}

func newLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	return rate.NewLimiter(rate.Every(delay), 1)
}

// Call runs the wrapped function with arg if the window allows it.
// Returns true if the call ran.
func (t *Throttle[T]) Call(arg T) bool {
	t.mu.Lock()
	allowed := t.limiter.AllowN(t.clock.Now(), 1)
	t.mu.Unlock()

	if !allowed {
		return false
	}

	t.fn(arg)

	return true
}

// Cancel closes the current window so the next call runs immediately
func (t *Throttle[T]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.limiter = newLimiter(t.delay)
}

// Delay returns the throttle window
func (t *Throttle[T]) Delay() time.Duration {
	return t.delay
}
