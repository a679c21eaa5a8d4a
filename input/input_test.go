// ABOUTME: Tests for input adapters and the rate-limited controller
// ABOUTME: Verifies wheel sign normalization, swipe directions, throttling and resize debouncing

package input

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullpage/ratelimit"
)

type recordingPager struct {
	advances   int
	retreats   int
	jumps      []int
	recomputes int
}

func (p *recordingPager) Advance() bool    { p.advances++; return true }
func (p *recordingPager) Retreat() bool    { p.retreats++; return true }
func (p *recordingPager) JumpTo(index int) { p.jumps = append(p.jumps, index) }
func (p *recordingPager) RecomputeViewport() {
	p.recomputes++
}

type stubSource struct {
	h Handlers
}

func (s *stubSource) Register(h Handlers) { s.h = h }

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// testController holds a controller whose deferred work is queued for the test goroutine,
// the way a host event loop receives it
type testController struct {
	*Controller
	pager  *recordingPager
	clock  *clockwork.FakeClock
	queued chan func()
}

func newTestController(delay time.Duration) *testController {
	tc := &testController{
		pager:  &recordingPager{},
		clock:  clockwork.NewFakeClockAt(epoch),
		queued: make(chan func(), 16),
	}
	tc.Controller = NewController(tc.pager, Options{
		Delay:    delay,
		Clock:    tc.clock,
		Dispatch: func(f func()) { tc.queued <- f },
	})

	return tc
}

// runQueued waits for n deferred calls and runs them
func (tc *testController) runQueued(t *testing.T, n int) {
	t.Helper()

	for range n {
		select {
		case f := <-tc.queued:
			f()
		case <-time.After(2 * time.Second):
			require.FailNow(t, "deferred call was not queued")
		}
	}
}

func TestWheelDirection(t *testing.T) {
	tests := []struct {
		name  string
		event WheelEvent
		want  Direction
	}{
		{"wheel delta down", WheelEvent{WheelDelta: -120}, Forward},
		{"wheel delta up", WheelEvent{WheelDelta: 120}, Backward},
		{"legacy detail down", WheelEvent{Detail: 3}, Forward},
		{"legacy detail up", WheelEvent{Detail: -3}, Backward},
		{"wheel delta wins over detail", WheelEvent{WheelDelta: 120, Detail: 3}, Backward},
		{"no fields", WheelEvent{}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WheelDirection(tt.event))
		})
	}
}

func TestGesture(t *testing.T) {
	var g Gesture

	assert.Equal(t, None, g.End(300), "end without start")

	g.Start(500)
	assert.True(t, g.Active())
	assert.Equal(t, Forward, g.End(300))
	assert.False(t, g.Active(), "end clears the gesture")

	g.Start(500)
	assert.Equal(t, Backward, g.End(700))

	g.Start(500)
	assert.Equal(t, Backward, g.End(500), "zero displacement counts as non-negative")
}

func TestController_TouchSwipes(t *testing.T) {
	c := newTestController(ratelimit.DefaultDelay)
	pager := c.pager

	c.HandleTouchStart(TouchEvent{Y: 500})
	assert.True(t, c.HandleTouchMove(TouchEvent{Y: 400}), "moves are consumed")
	c.HandleTouchEnd(TouchEvent{Y: 300})
	assert.Equal(t, 1, pager.advances)
	assert.Equal(t, 0, pager.retreats)

	c.HandleTouchStart(TouchEvent{Y: 500})
	c.HandleTouchEnd(TouchEvent{Y: 700})
	assert.Equal(t, 1, pager.advances)
	assert.Equal(t, 1, pager.retreats)

	c.HandleTouchEnd(TouchEvent{Y: 100})
	assert.Equal(t, 1, pager.advances, "stray touch end is ignored")
}

func TestController_WheelBurstYieldsOneTransition(t *testing.T) {
	c := newTestController(ratelimit.DefaultDelay)
	pager, clock := c.pager, c.clock

	for range 8 {
		c.HandleWheel(WheelEvent{WheelDelta: -120})
		clock.Advance(40 * time.Millisecond)
	}
	assert.Equal(t, 1, pager.advances)

	clock.Advance(ratelimit.DefaultDelay)
	c.HandleWheel(WheelEvent{WheelDelta: 120})
	assert.Equal(t, 1, pager.retreats)
}

func TestController_EmptyWheelDoesNotConsumeWindow(t *testing.T) {
	c := newTestController(ratelimit.DefaultDelay)
	pager := c.pager

	c.HandleWheel(WheelEvent{})
	c.HandleWheel(WheelEvent{Detail: 3})

	assert.Equal(t, 1, pager.advances)
	assert.Equal(t, 0, pager.retreats)
}

func TestController_ResizeBurstRecomputesOnce(t *testing.T) {
	c := newTestController(ratelimit.DefaultDelay)

	for range 6 {
		c.HandleResize()
		c.clock.Advance(200 * time.Millisecond)
	}
	assert.Empty(t, c.queued)

	c.clock.Advance(ratelimit.DefaultDelay - 200*time.Millisecond - time.Millisecond)
	assert.Empty(t, c.queued, "still inside the quiet window")

	c.clock.Advance(time.Millisecond)
	c.runQueued(t, 1)
	assert.Equal(t, 1, c.pager.recomputes)

	c.clock.Advance(time.Minute)
	assert.Empty(t, c.queued, "one recompute per burst")
}

func TestController_ResizeWaitsForDispatch(t *testing.T) {
	c := newTestController(time.Second)

	c.HandleResize()
	c.clock.Advance(time.Second)

	require.Eventually(t, func() bool { return len(c.queued) == 1 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, 0, c.pager.recomputes, "work waits for the event goroutine")

	c.runQueued(t, 1)
	assert.Equal(t, 1, c.pager.recomputes)
}

func TestController_ZeroDelayPassesEverythingThrough(t *testing.T) {
	c := newTestController(0)

	for range 3 {
		c.HandleWheel(WheelEvent{WheelDelta: -1})
		c.HandleResize()
	}

	c.runQueued(t, 3)
	assert.Equal(t, 3, c.pager.advances)
	assert.Equal(t, 3, c.pager.recomputes)
}

func TestController_DefaultDispatchCallsDirectly(t *testing.T) {
	pager := &recordingPager{}
	c := NewController(pager, Options{Delay: 0, Clock: clockwork.NewFakeClockAt(epoch)})

	c.HandleResize()

	assert.Equal(t, 1, pager.recomputes)
}

func TestController_AttachAndClick(t *testing.T) {
	c := newTestController(ratelimit.DefaultDelay)
	pager := c.pager
	src := &stubSource{}
	c.Attach(src)

	src.h.TouchStart(TouchEvent{Y: 10})
	src.h.Click(2)
	src.h.TouchEnd(TouchEvent{Y: 1})

	assert.Equal(t, []int{2}, pager.jumps)
	assert.Equal(t, 0, pager.advances, "a click abandons the swipe")
}

func TestController_CloseCancelsPendingResize(t *testing.T) {
	c := newTestController(time.Second)

	c.HandleResize()
	c.Close()
	c.clock.Advance(2 * time.Second)

	assert.Empty(t, c.queued)
	assert.Equal(t, 0, c.pager.recomputes)
}
