// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and message handlers

package tui

import (
	"fmt"
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"fullpage/deck"
)

// deckReloadedMsg is sent after a background deck reload completes
type deckReloadedMsg struct {
	pages []deck.Page
	err   error
}

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] Update panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case dispatchMsg:
		// Ignore deferred calls queued by a scroller that has since been replaced
		if msg.gen == m.gen {
			msg.fn()
		} else {
			m.debugf("[TUI] Ignoring stale dispatch: gen %d != current %d", msg.gen, m.gen)
		}

		cmd := m.startAnimation()

		return m, tea.Batch(waitForDispatch(m.dispatch), cmd)

	case frameMsg:
		m.container.Step()
		if m.container.Moving() {
			return m, nextFrame()
		}
		m.animating = false

		return m, nil

	case fileChangeMsg:
		m.debugf("[WATCHER] Deck changed, reloading %s", m.deckPath)

		return m, tea.Batch(m.reloadDeck(), waitForFileChange(m.watcher, m.debugf))

	case deckReloadedMsg:
		m.handleDeckReloaded(msg)
		cmd := m.startAnimation()

		return m, cmd

	case helpClosedMsg:
		if msg.err != nil {
			m.debugf("[TUI] Help pager failed: %v", msg.err)
			m.setStatusMsg(fmt.Sprintf("Help failed: %v", msg.err))
		}

		return m, nil

	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}

		m.source.mouse(msg, m.hitNav)
		cmd := m.startAnimation()

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleWindowSize records the terminal size. The first size builds the scroller;
// later sizes go through the resize debounce.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.env.setHeight(m.pageHeight())
	m.container.SetWidth(m.pageWidth())

	if !m.ready {
		start := lo.Clamp(m.startPage, 0, len(m.pages)-1)
		if err := m.buildScroller(start); err != nil {
			m.debugf("[TUI] %v", err)
			m.setStatusMsg(err.Error())

			return m, nil
		}

		m.ready = true
		cmd := m.startAnimation()

		return m, cmd
	}

	m.source.resize()

	return m, nil
}

// handleKey handles key presses
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.quitting = true
		if m.controller != nil {
			m.controller.Close()
		}

		return m, tea.Quit
	}

	if key.Matches(msg, keys.Help) {
		return m, showHelp(renderHelpContent())
	}

	if !m.ready {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Next):
		if !m.scroller.Advance() {
			m.setStatusMsg("Last page")
		}

	case key.Matches(msg, keys.Prev):
		if !m.scroller.Retreat() {
			m.setStatusMsg("First page")
		}

	case key.Matches(msg, keys.First):
		m.scroller.JumpTo(0)

	case key.Matches(msg, keys.Last):
		m.scroller.JumpTo(m.scroller.Pages() - 1)

	case key.Matches(msg, keys.Jump):
		n := int(msg.String()[0] - '1')
		if n < m.scroller.Pages() {
			m.scroller.JumpTo(n)
		}

	case key.Matches(msg, keys.Back):
		if prev, ok := m.history.Back(m.scroller.Index()); ok {
			m.history.restore(func() { m.scroller.JumpTo(prev) })
		} else {
			m.setStatusMsg("No earlier page")
		}

	case key.Matches(msg, keys.Forward):
		if next, ok := m.history.Forward(m.scroller.Index()); ok {
			m.history.restore(func() { m.scroller.JumpTo(next) })
		} else {
			m.setStatusMsg("No later page")
		}
	}

	cmd := m.startAnimation()

	return m, cmd
}

// hitNav maps a mouse position to a navigation dot index
func (m model) hitNav(x, y int) (int, bool) {
	if m.nav == nil {
		return 0, false
	}

	return m.nav.HitTest(x, y, m.pageWidth(), m.container.Height())
}

// reloadDeck loads the deck in the background
func (m model) reloadDeck() tea.Cmd {
	load := m.loadDeck
	path := m.deckPath

	return func() tea.Msg {
		pages, err := load(path)

		return deckReloadedMsg{pages: pages, err: err}
	}
}

// handleDeckReloaded swaps in reloaded pages. A change in page count builds a new
// scroller because the page count is fixed for a scroller's lifetime.
func (m *model) handleDeckReloaded(msg deckReloadedMsg) {
	if msg.err != nil {
		m.debugf("[WATCHER] Reload failed: %v", msg.err)
		m.setStatusMsg(fmt.Sprintf("Reload failed: %v", msg.err))

		return
	}

	oldCount := len(m.pages)
	m.pages = msg.pages
	m.container.SetPages(msg.pages)

	if !m.ready || len(msg.pages) == oldCount {
		m.setStatusMsg("Deck reloaded")

		return
	}

	index := lo.Clamp(m.scroller.Index(), 0, len(msg.pages)-1)
	if err := m.buildScroller(index); err != nil {
		m.debugf("[WATCHER] %v", err)
		m.setStatusMsg(err.Error())

		return
	}

	m.setStatusMsg(fmt.Sprintf("Deck reloaded: %d pages", len(msg.pages)))
}
