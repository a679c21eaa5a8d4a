// ABOUTME: Tests for the Bubble Tea input source
// ABOUTME: Verifies mouse messages map to the right wheel, touch and click handlers

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullpage/input"
)

type recordedInput struct {
	wheels  []input.WheelEvent
	starts  []int
	moves   []int
	ends    []int
	clicks  []int
	resizes int
}

func newRecordingSource() (*teaSource, *recordedInput) {
	rec := &recordedInput{}
	src := &teaSource{}
	src.Register(input.Handlers{
		Wheel:      func(e input.WheelEvent) { rec.wheels = append(rec.wheels, e) },
		TouchStart: func(e input.TouchEvent) { rec.starts = append(rec.starts, e.Y) },
		TouchMove: func(e input.TouchEvent) bool {
			rec.moves = append(rec.moves, e.Y)
			return true
		},
		TouchEnd: func(e input.TouchEvent) { rec.ends = append(rec.ends, e.Y) },
		Resize:   func() { rec.resizes++ },
		Click:    func(i int) { rec.clicks = append(rec.clicks, i) },
	})

	return src, rec
}

func noNav(int, int) (int, bool) { return 0, false }

func TestTeaSource_Wheel(t *testing.T) {
	src, rec := newRecordingSource()

	src.mouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, noNav)
	src.mouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, noNav)

	require.Len(t, rec.wheels, 2)
	assert.Equal(t, input.Forward, input.WheelDirection(rec.wheels[0]), "wheel down")
	assert.Equal(t, input.Backward, input.WheelDirection(rec.wheels[1]), "wheel up")
}

func TestTeaSource_Drag(t *testing.T) {
	src, rec := newRecordingSource()

	src.mouse(tea.MouseMsg{Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, noNav)
	src.mouse(tea.MouseMsg{Y: 8, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, noNav)
	src.mouse(tea.MouseMsg{Y: 4, Action: tea.MouseActionRelease}, noNav)

	assert.Equal(t, []int{10}, rec.starts)
	assert.Equal(t, []int{8}, rec.moves)
	assert.Equal(t, []int{4}, rec.ends)
}

func TestTeaSource_ClickIsNotSwipe(t *testing.T) {
	src, rec := newRecordingSource()

	src.mouse(tea.MouseMsg{Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, noNav)
	src.mouse(tea.MouseMsg{Y: 10, Action: tea.MouseActionRelease}, noNav)

	assert.Empty(t, rec.ends, "no swipe end for a click")

	// Motion without a press is ignored
	src.mouse(tea.MouseMsg{Y: 3, Action: tea.MouseActionMotion}, noNav)

	assert.Empty(t, rec.moves, "no moves without a press")
}

func TestTeaSource_DotClick(t *testing.T) {
	src, rec := newRecordingSource()
	hit := func(x, y int) (int, bool) {
		if x == 50 {
			return y, true
		}

		return 0, false
	}

	src.mouse(tea.MouseMsg{X: 50, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, hit)

	assert.Equal(t, []int{2}, rec.clicks)
	assert.Empty(t, rec.starts, "dot click does not start a swipe")
}

func TestTeaSource_Resize(t *testing.T) {
	src, rec := newRecordingSource()

	src.resize()
	src.resize()

	assert.Equal(t, 2, rec.resizes)

	// No handlers registered: nothing to call
	assert.NotPanics(t, func() {
		(&teaSource{}).resize()
		(&teaSource{}).mouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown}, noNav)
	})
}
