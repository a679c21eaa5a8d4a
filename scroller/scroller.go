// ABOUTME: Full-page scroll state machine owning page index, offset and viewport height
// ABOUTME: Applies bounded one-page transitions and syncs the container and navigation indicator

// Package scroller implements the full-page scrolling state machine.
//
// A Scroller shows exactly one of N pages at a time. The container holding
// the stacked pages is translated by a non-positive offset that is always
// -index*viewportHeight. Transitions move by exactly one page (Advance,
// Retreat) or straight to a page (JumpTo); transitions past either end are
// silent no-ops.
package scroller

import (
	"errors"

	"github.com/samber/lo"
)

var (
	// ErrNoPages is returned when a scroller is created with fewer than one page
	ErrNoPages = errors.New("scroller: at least one page is required")
	// ErrInvalidHeight is returned when the initial viewport height is not positive
	ErrInvalidHeight = errors.New("scroller: viewport height must be positive")
	// ErrNoContainer is returned when no container is supplied
	ErrNoContainer = errors.New("scroller: container is required")
)

// Container is the element holding all pages stacked vertically
type Container interface {
	// SetOffset translates the container vertically; offset is <= 0
	SetOffset(offset int)
	// SetHeight sizes the container to one viewport
	SetHeight(height int)
}

// Indicator is the navigation marker set, one marker per page
type Indicator interface {
	// SetActive marks index as the only active marker
	SetActive(index int)
	// Active returns the currently marked index
	Active() (int, bool)
}

// Environment reports the host's current viewport height
type Environment interface {
	ViewportHeight() int
}

// Dependencies holds the collaborators a Scroller drives.
// Indicator may be nil when no navigation indicator is shown.
type Dependencies struct {
	Container    Container
	Indicator    Indicator
	Environment  Environment
	OnPageChange func() // Called after every completed transition
}

// Scroller is the page state machine. It is not safe for concurrent use;
// all calls are expected from the host's single event goroutine.
type Scroller struct {
	container Container
	indicator Indicator
	env       Environment
	onChange  func()

	pages      int
	viewHeight int
	offset     int // Always -index * viewHeight
	index      int
}

// New creates a scroller over pages pages of viewHeight rows and lays out the
// container at page 0.
func New(pages, viewHeight int, deps Dependencies) (*Scroller, error) {
	if pages < 1 {
		return nil, ErrNoPages
	}

	if viewHeight < 1 {
		return nil, ErrInvalidHeight
	}

	if deps.Container == nil {
		return nil, ErrNoContainer
	}

	onChange := deps.OnPageChange
	if onChange == nil {
		onChange = func() {}
	}

	s := &Scroller{
		container:  deps.Container,
		indicator:  deps.Indicator,
		env:        deps.Environment,
		onChange:   onChange,
		pages:      pages,
		viewHeight: viewHeight,
	}

	s.container.SetHeight(s.viewHeight)
	s.apply()
	s.syncIndicator()

	return s, nil
}

// Advance moves one page forward. Forward motion is allowed only from page
// N-2 or earlier, checked against the offset before the move.
// Returns false, with no side effects, at the last page.
func (s *Scroller) Advance() bool {
	if -s.offset > s.viewHeight*(s.pages-2) {
		return false
	}

	s.index++
	s.offset -= s.viewHeight
	s.transitioned()

	return true
}

// Retreat moves one page back. Returns false, with no side effects, at the first page.
func (s *Scroller) Retreat() bool {
	if -s.offset < s.viewHeight {
		return false
	}

	s.index--
	s.offset += s.viewHeight
	s.transitioned()

	return true
}

// JumpTo moves directly to index, clamped to the valid page range
func (s *Scroller) JumpTo(index int) {
	s.index = lo.Clamp(index, 0, s.pages-1)
	s.offset = -s.index * s.viewHeight
	s.transitioned()
}

// RecomputeViewport rereads the viewport height, resizes the container and
// re-derives the offset for the current page. Non-positive heights are ignored.
func (s *Scroller) RecomputeViewport() {
	if s.env == nil {
		return
	}

	height := s.env.ViewportHeight()
	if height < 1 {
		return
	}

	s.viewHeight = height
	s.container.SetHeight(height)
	s.offset = -s.index * s.viewHeight
	s.apply()
}

// Index returns the page currently in view
func (s *Scroller) Index() int {
	return s.index
}

// Offset returns the container translation
func (s *Scroller) Offset() int {
	return s.offset
}

// ViewportHeight returns the height of one page
func (s *Scroller) ViewportHeight() int {
	return s.viewHeight
}

// Pages returns the page count
func (s *Scroller) Pages() int {
	return s.pages
}

// AtFirst reports whether the first page is in view
func (s *Scroller) AtFirst() bool {
	return s.index == 0
}

// AtLast reports whether the last page is in view
func (s *Scroller) AtLast() bool {
	return s.index == s.pages-1
}

func (s *Scroller) transitioned() {
	s.apply()
	s.syncIndicator()
	s.onChange()
}

func (s *Scroller) apply() {
	s.container.SetOffset(s.offset)
}

func (s *Scroller) syncIndicator() {
	if s.indicator != nil {
		s.indicator.SetActive(s.index)
	}
}
