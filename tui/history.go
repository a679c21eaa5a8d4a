// ABOUTME: Back/forward history of visited pages
// ABOUTME: Bounded stacks recording where each transition came from

package tui

// historySize caps each history stack
const historySize = 100

// pageHistory records visited pages so jumps can be retraced
type pageHistory struct {
	back      []int
	forward   []int
	maxSize   int
	restoring bool // Set while moving through history so the move itself is not recorded
}

func newPageHistory(maxSize int) *pageHistory {
	return &pageHistory{maxSize: maxSize}
}

// Visit records leaving page from. A new visit clears the forward stack.
func (h *pageHistory) Visit(from int) {
	if h.restoring {
		return
	}

	h.back = pushBounded(h.back, from, h.maxSize)
	h.forward = h.forward[:0]
}

// Back returns the previous page, moving current onto the forward stack
func (h *pageHistory) Back(current int) (int, bool) {
	if len(h.back) == 0 {
		return 0, false
	}

	prev := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = pushBounded(h.forward, current, h.maxSize)

	return prev, true
}

// Forward returns the page left by the last Back, moving current onto the back stack
func (h *pageHistory) Forward(current int) (int, bool) {
	if len(h.forward) == 0 {
		return 0, false
	}

	next := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = pushBounded(h.back, current, h.maxSize)

	return next, true
}

// restore runs fn without recording the transitions it causes
func (h *pageHistory) restore(fn func()) {
	h.restoring = true
	defer func() { h.restoring = false }()

	fn()
}

// Clear empties both stacks
func (h *pageHistory) Clear() {
	h.back = h.back[:0]
	h.forward = h.forward[:0]
}

// BackSize returns the number of pages on the back stack
func (h *pageHistory) BackSize() int {
	return len(h.back)
}

// ForwardSize returns the number of pages on the forward stack
func (h *pageHistory) ForwardSize() int {
	return len(h.forward)
}

func pushBounded(stack []int, v, maxSize int) []int {
	stack = append(stack, v)
	if len(stack) > maxSize {
		stack = stack[1:]
	}

	return stack
}
