// ABOUTME: Navigation dot column shown at the right edge of the pager
// ABOUTME: Keeps exactly one dot active and maps mouse clicks to page indices

package tui

import (
	"strings"
)

// navWidth is the number of columns reserved for the dot column
const navWidth = 3

const (
	activeDot   = "●"
	inactiveDot = "○"
)

// navDots is the navigation indicator: one dot per page
type navDots struct {
	active []bool
}

func newNavDots(pages int) *navDots {
	return &navDots{active: make([]bool, pages)}
}

// SetActive marks index as the only active dot
func (d *navDots) SetActive(index int) {
	for i := range d.active {
		d.active[i] = i == index
	}
}

// Active returns the active dot
func (d *navDots) Active() (int, bool) {
	for i, on := range d.active {
		if on {
			return i, true
		}
	}

	return 0, false
}

// layout returns the first row of the dot column and how many dots fit in height rows.
// Dots are centered vertically; pages beyond the visible rows get no dot.
func (d *navDots) layout(height int) (top, count int) {
	count = min(len(d.active), max(height, 0))
	top = (height - count) / 2

	return top, count
}

// View renders the dot column, height rows tall
func (d *navDots) View(height int) string {
	top, count := d.layout(height)
	blank := strings.Repeat(" ", navWidth)

	rows := make([]string, height)
	for i := range rows {
		rows[i] = blank
	}

	for i := range count {
		dot := dotStyle.Render(inactiveDot)
		if d.active[i] {
			dot = activeDotStyle.Render(activeDot)
		}

		rows[top+i] = " " + dot + " "
	}

	return strings.Join(rows, "\n")
}

// HitTest maps a cell to a dot index. left is the first column of the dot column.
func (d *navDots) HitTest(x, y, left, height int) (int, bool) {
	if x < left || x >= left+navWidth {
		return 0, false
	}

	top, count := d.layout(height)

	i := y - top
	if i < 0 || i >= count {
		return 0, false
	}

	return i, true
}
