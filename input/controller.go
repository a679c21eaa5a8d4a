// ABOUTME: Wires an input source to the page state machine through rate limiters
// ABOUTME: Throttles wheel input, debounces resizes and tracks swipe gestures

package input

import (
	"time"

	"fullpage/ratelimit"
)

// Pager is the set of page transitions the controller drives
type Pager interface {
	Advance() bool
	Retreat() bool
	JumpTo(index int)
	RecomputeViewport()
}

// Handlers is the capability set an input source reports into.
// TouchMove returns true when the move was consumed.
type Handlers struct {
	Wheel      func(WheelEvent)
	TouchStart func(TouchEvent)
	TouchMove  func(TouchEvent) bool
	TouchEnd   func(TouchEvent)
	Resize     func()
	Click      func(index int)
}

// Source delivers raw input events to registered handlers
type Source interface {
	Register(h Handlers)
}

// Options configures a Controller
type Options struct {
	Delay time.Duration   // Window for both the wheel throttle and the resize debounce
	Clock ratelimit.Clock // Defaults to the system clock
	// Dispatch runs a deferred call on the host's event goroutine.
	// Defaults to calling it directly.
	Dispatch func(func())
	Debugf   func(string, ...interface{})
}

// Controller turns input events into page transitions
type Controller struct {
	pager   Pager
	wheel   *ratelimit.Throttle[WheelEvent]
	resize  *ratelimit.Debounce[struct{}]
	gesture Gesture
	debugf  func(string, ...interface{})
}

// NewController creates a controller driving pager
func NewController(pager Pager, opts Options) *Controller {
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}

	debugf := opts.Debugf
	if debugf == nil {
		debugf = func(string, ...interface{}) {}
	}

	c := &Controller{
		pager:  pager,
		debugf: debugf,
	}

	c.wheel = ratelimit.NewThrottle(opts.Delay, opts.Clock, c.scrollWheel)
	c.resize = ratelimit.NewDebounce(opts.Delay, opts.Clock, func(struct{}) {
		dispatch(func() {
			c.debugf("[INPUT] Resize settled, recomputing viewport")
			c.pager.RecomputeViewport()
		})
	})

	return c
}

// Attach registers the controller's handlers with src
func (c *Controller) Attach(src Source) {
	src.Register(c.Handlers())
}

// Handlers returns the controller's handler set
func (c *Controller) Handlers() Handlers {
	return Handlers{
		Wheel:      c.HandleWheel,
		TouchStart: c.HandleTouchStart,
		TouchMove:  c.HandleTouchMove,
		TouchEnd:   c.HandleTouchEnd,
		Resize:     c.HandleResize,
		Click:      c.HandleClick,
	}
}

// HandleWheel applies a wheel event, at most once per delay window
func (c *Controller) HandleWheel(e WheelEvent) {
	// A wheel event without movement does not open a throttle window
	if WheelDirection(e) == None {
		return
	}

	if !c.wheel.Call(e) {
		c.debugf("[INPUT] Wheel event throttled (delta %d)", e.Delta())
	}
}

func (c *Controller) scrollWheel(e WheelEvent) {
	c.apply(WheelDirection(e))
}

// HandleTouchStart begins a swipe
func (c *Controller) HandleTouchStart(e TouchEvent) {
	c.gesture.Start(e.Y)
}

// HandleTouchMove swallows intermediate touch movement so only the swipe end counts
func (c *Controller) HandleTouchMove(TouchEvent) bool {
	return true
}

// HandleTouchEnd finishes a swipe and applies its direction
func (c *Controller) HandleTouchEnd(e TouchEvent) {
	c.apply(c.gesture.End(e.Y))
}

// HandleResize schedules a viewport recomputation once resizing goes quiet
func (c *Controller) HandleResize() {
	c.resize.Call(struct{}{})
}

// HandleClick jumps to the page of a clicked navigation marker
func (c *Controller) HandleClick(index int) {
	c.gesture.Reset()
	c.pager.JumpTo(index)
}

// Close cancels pending rate limiter state
func (c *Controller) Close() {
	c.wheel.Cancel()
	c.resize.Cancel()
	c.gesture.Reset()
}

func (c *Controller) apply(d Direction) {
	switch d {
	case Forward:
		c.pager.Advance()
	case Backward:
		c.pager.Retreat()
	case None:
	}
}
