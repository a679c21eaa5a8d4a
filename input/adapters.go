// ABOUTME: Converts raw wheel and touch input into page directions
// ABOUTME: Wheel sign normalization across delta fields and swipe gesture tracking

// Package input maps raw wheel, touch, resize and click input onto page transitions.
package input

// Direction is the page motion requested by one gesture
type Direction int

// Page directions. Forward shows the next page, Backward the previous one.
const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// WheelEvent carries the delta fields a wheel source may report.
// A zero field is treated as not reported.
type WheelEvent struct {
	WheelDelta int // Positive when the wheel rolls toward the top of the content
	Detail     int // Legacy field, inverted: positive when rolling toward the bottom
}

// Delta returns the wheel movement normalized to WheelDelta's sign convention.
// WheelDelta is preferred; Detail is the fallback. Zero means no movement.
func (e WheelEvent) Delta() int {
	if e.WheelDelta != 0 {
		return e.WheelDelta
	}

	return -e.Detail
}

// WheelDirection maps a wheel event to a page direction.
// A negative delta scrolls the content down (Forward), a positive one up (Backward).
func WheelDirection(e WheelEvent) Direction {
	delta := e.Delta()

	switch {
	case delta < 0:
		return Forward
	case delta > 0:
		return Backward
	default:
		return None
	}
}

// TouchEvent is a touch point in page coordinates
type TouchEvent struct {
	Y int
}

// Gesture tracks a single in-progress swipe
type Gesture struct {
	startY int
	active bool
}

// Start records the vertical start of a swipe
func (g *Gesture) Start(y int) {
	g.startY = y
	g.active = true
}

// Active reports whether a swipe is in progress
func (g *Gesture) Active() bool {
	return g.active
}

// End finishes the swipe at y and clears the gesture.
// Finger moved up (negative displacement) is Forward; anything else is Backward.
// Ending without a start yields None.
func (g *Gesture) End(y int) Direction {
	if !g.active {
		return None
	}

	g.active = false

	if y-g.startY < 0 {
		return Forward
	}

	return Backward
}

// Reset abandons any swipe in progress
func (g *Gesture) Reset() {
	g.active = false
	g.startY = 0
}
