// ABOUTME: Input source translating Bubble Tea mouse and resize messages into input events
// ABOUTME: Wheel steps become wheel deltas, drags become swipes, dot clicks become jumps

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"fullpage/input"
)

// wheelNotch is the delta reported for one wheel step, matching a classic mouse wheel
const wheelNotch = 120

// teaSource is the input.Source fed by the Bubble Tea Update loop
type teaSource struct {
	h       input.Handlers
	pressed bool // Left button down on the page area
	moved   bool // Pointer moved since the press
}

// Register replaces the registered handlers
func (s *teaSource) Register(h input.Handlers) {
	s.h = h
}

func (s *teaSource) resize() {
	if s.h.Resize != nil {
		s.h.Resize()
	}
}

// mouse dispatches a mouse message. hitNav maps a cell to a navigation dot.
func (s *teaSource) mouse(msg tea.MouseMsg, hitNav func(x, y int) (int, bool)) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		s.wheel(input.WheelEvent{WheelDelta: -wheelNotch})

	case msg.Button == tea.MouseButtonWheelUp:
		s.wheel(input.WheelEvent{WheelDelta: wheelNotch})

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if i, ok := hitNav(msg.X, msg.Y); ok {
			if s.h.Click != nil {
				s.h.Click(i)
			}

			return
		}

		s.pressed, s.moved = true, false
		if s.h.TouchStart != nil {
			s.h.TouchStart(input.TouchEvent{Y: msg.Y})
		}

	case msg.Action == tea.MouseActionMotion:
		if !s.pressed {
			return
		}

		s.moved = true
		if s.h.TouchMove != nil {
			s.h.TouchMove(input.TouchEvent{Y: msg.Y})
		}

	case msg.Action == tea.MouseActionRelease:
		// A plain click is not a swipe
		if s.pressed && s.moved && s.h.TouchEnd != nil {
			s.h.TouchEnd(input.TouchEvent{Y: msg.Y})
		}

		s.pressed, s.moved = false, false
	}
}

func (s *teaSource) wheel(e input.WheelEvent) {
	if s.h.Wheel != nil {
		s.h.Wheel(e)
	}
}
