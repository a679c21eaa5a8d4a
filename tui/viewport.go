// ABOUTME: Page container holding every page stacked in one viewport
// ABOUTME: Translates the viewport to the scroller's offset with a spring-driven slide

package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"fullpage/deck"
)

// Slide animation tuning
const (
	frameRate       = 60
	springFrequency = 7.0
	springDamping   = 1.0 // Critically damped: no overshoot past the target page

	settleDistance = 0.5 // Rows from target at which the slide snaps into place
)

// frameMsg advances the slide animation by one frame
type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// terminalEnv reports the page height available in the terminal.
// It is updated on every WindowSizeMsg; the scroller reads it when a resize settles.
type terminalEnv struct {
	height int
}

func (e *terminalEnv) setHeight(h int) {
	e.height = h
}

// ViewportHeight returns the latest page height
func (e *terminalEnv) ViewportHeight() int {
	return e.height
}

// pageContainer renders all pages stacked vertically, each exactly one viewport high,
// and scrolls the viewport to the (animated) offset.
type pageContainer struct {
	viewport viewport.Model
	pages    []deck.Page
	width    int
	height   int

	animate bool
	spring  harmonica.Spring
	target  float64 // Offset set by the scroller, <= 0
	pos     float64 // Offset currently shown
	vel     float64
	snap    bool // Next offset is applied without sliding
}

func newPageContainer(pages []deck.Page, animate bool) *pageContainer {
	return &pageContainer{
		viewport: viewport.New(0, 0), // Width and height set on first WindowSizeMsg
		pages:    pages,
		animate:  animate,
		spring:   harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
		snap:     true,
	}
}

// SetOffset moves the container to offset, sliding when animation is enabled
func (c *pageContainer) SetOffset(offset int) {
	c.target = float64(offset)

	if !c.animate || c.snap {
		c.pos = c.target
		c.vel = 0
		c.snap = false
	}

	c.sync()
}

// SetHeight sizes every page to height rows. The following offset is applied
// without sliding, since offsets in the old height no longer line up.
func (c *pageContainer) SetHeight(height int) {
	c.height = height
	c.viewport.Height = height
	c.snap = true
	c.render()
}

// SetWidth sets the page width
func (c *pageContainer) SetWidth(width int) {
	if width == c.width {
		return
	}

	c.width = width
	c.viewport.Width = width
	c.render()
}

// SetPages replaces the page content
func (c *pageContainer) SetPages(pages []deck.Page) {
	c.pages = pages
	c.render()
}

// Height returns the page height
func (c *pageContainer) Height() int {
	return c.height
}

// Offset returns the offset currently shown, rounded to whole rows
func (c *pageContainer) Offset() int {
	return int(math.Round(c.pos))
}

// Moving reports whether a slide is in progress
func (c *pageContainer) Moving() bool {
	return math.Abs(c.pos-c.target) > settleDistance || math.Abs(c.vel) > settleDistance
}

// Step advances the slide by one frame
func (c *pageContainer) Step() {
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, c.target)
	if !c.Moving() {
		c.pos = c.target
		c.vel = 0
	}

	c.sync()
}

// View renders the visible page
func (c *pageContainer) View() string {
	return c.viewport.View()
}

func (c *pageContainer) sync() {
	c.viewport.SetYOffset(-c.Offset())
}

func (c *pageContainer) render() {
	if c.width < 1 || c.height < 1 {
		return
	}

	rendered := make([]string, len(c.pages))
	for i, p := range c.pages {
		rendered[i] = renderPage(p, c.width, c.height)
	}

	c.viewport.SetContent(strings.Join(rendered, "\n"))
	c.sync()
}

// renderPage lays a page out in a box of exactly width x height
func renderPage(p deck.Page, width, height int) string {
	lines := strings.Split(p.Body, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			lines[i] = titleStyle.Render(line)
		}
	}

	return pageStyle.
		Width(width).
		MaxWidth(width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
