// ABOUTME: Trailing-edge debounce that collapses call bursts into one deferred call
// ABOUTME: Each call stops the pending timer before scheduling a new one

package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debounce defers the wrapped function until calls have been quiet for delay.
// The deferred call receives the argument of the last call in the burst.
type Debounce[T any] struct {
	mu    sync.Mutex
	delay time.Duration
	clock Clock
	fn    func(T)
	timer clockwork.Timer
	gen   uint64 // bumped on every schedule and cancel to invalidate stale fires
}

// NewDebounce wraps fn in a debounce of the given delay.
// A delay <= 0 runs fn synchronously on every call.
func NewDebounce[T any](delay time.Duration, clock Clock, fn func(T)) *Debounce[T] {
	if clock == nil {
		clock = SystemClock()
	}

	return &Debounce[T]{
		delay: delay,
		clock: clock,
		fn:    fn,
	}
}

// Call (re)starts the quiet window for arg
func (d *Debounce[T]) Call(arg T) {
	if d.delay <= 0 {
		d.fn(arg)

		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.fire(gen, arg)
	})
}

func (d *Debounce[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()

		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(arg)
}

// Cancel drops the pending call, if any
func (d *Debounce[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
}

// Pending reports whether a deferred call is scheduled
func (d *Debounce[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}

func (d *Debounce[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
