// ABOUTME: Terminal UI model hosting the full-page scroller
// ABOUTME: Bubble Tea model wiring the container, navigation dots, input source and rate limiters

// Package tui provides the terminal host for full-page scrolling.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fullpage/config"
	"fullpage/deck"
	"fullpage/input"
	"fullpage/ratelimit"
	"fullpage/scroller"
)

// Layout constants for UI dimensions
const (
	statusBarHeight = 1 // Bottom status bar

	// Minimum page dimensions
	minViewportWidth  = 10
	minViewportHeight = 1
)

const (
	statusMessageDuration = 5 * time.Second // How long to show transient status messages
	dispatchBufferSize    = 16              // Deferred calls waiting for the Update goroutine
)

// Options contains configuration for running the TUI
type Options struct {
	DeckPath  string // Deck file or directory
	Watch     bool   // Reload the deck when it changes on disk
	StartPage int    // Page shown first, 0-based
}

// Dependencies holds all external dependencies for the TUI
type Dependencies struct {
	Config   config.Config
	LoadDeck func(string) ([]deck.Page, error)
	Debugf   func(string, ...interface{})
	Clock    ratelimit.Clock // Defaults to the system clock
}

// dispatchItem is a deferred call tagged with the scroller generation that queued it
type dispatchItem struct {
	gen int
	fn  func()
}

// dispatchMsg delivers a deferred call to the Update goroutine
type dispatchMsg dispatchItem

// model holds the TUI state
type model struct {
	// Dependencies
	cfg      config.Config
	loadDeck func(string) ([]deck.Page, error)
	debugf   func(string, ...interface{})
	clock    ratelimit.Clock

	// Deck
	deckPath  string
	startPage int
	pages     []deck.Page
	watcher   *deckWatcher

	// Scrolling machinery. Pointers are shared between model copies.
	env        *terminalEnv
	container  *pageContainer
	nav        *navDots // nil when the navigation indicator is hidden
	scroller   *scroller.Scroller
	controller *input.Controller
	source     *teaSource
	hook       *pageHook
	history    *pageHistory

	dispatch     *dispatchQueue
	gen          int // Increments on every scroller rebuild to drop stale deferred calls

	// UI state
	width        int
	height       int
	ready        bool
	animating    bool
	quitting     bool
	statusMsg    string
	statusMsgAge time.Time
}

// Key bindings
type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	First   key.Binding
	Last    key.Binding
	Jump    key.Binding
	Back    key.Binding
	Forward key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("down", "j", "pgdown", " "),
		key.WithHelp("↓/j/space", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "k", "pgup"),
		key.WithHelp("↑/k", "previous page"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first page"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last page"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "jump to page"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "backspace"),
		key.WithHelp("b", "back in history"),
	),
	Forward: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "forward in history"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	pageStyle = lipgloss.NewStyle().
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	dotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Run starts the TUI with injected dependencies
func Run(opts Options, deps Dependencies) error {
	pages, err := deps.LoadDeck(opts.DeckPath)
	if err != nil {
		return err
	}

	m := initModel(pages, opts, deps)

	if opts.Watch {
		watcher, err := newDeckWatcher(opts.DeckPath)
		if err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()

		m.watcher = watcher
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if fm, ok := finalModel.(model); ok {
		fm.shutdown()
	} else {
		m.shutdown()
	}

	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// shutdown stops the rate limiters and releases the pending waitForDispatch command
func (m model) shutdown() {
	if m.controller != nil {
		m.controller.Close()
	}

	m.dispatch.close()
}

// initModel creates the initial model with injected dependencies.
// The scroller is built on the first WindowSizeMsg, once the viewport height is known.
func initModel(pages []deck.Page, opts Options, deps Dependencies) model {
	debugf := deps.Debugf
	if debugf == nil {
		debugf = func(string, ...interface{}) {}
	}

	clock := deps.Clock
	if clock == nil {
		clock = ratelimit.SystemClock()
	}

	return model{
		cfg:      deps.Config,
		loadDeck: deps.LoadDeck,
		debugf:   debugf,
		clock:    clock,

		deckPath:  opts.DeckPath,
		startPage: opts.StartPage,
		pages:     pages,

		env:       &terminalEnv{},
		container: newPageContainer(pages, deps.Config.Animate),
		source:    &teaSource{},
		hook:      newPageHook(deps.Config.OnPageChange, debugf),
		history:   newPageHistory(historySize),

		dispatch: newDispatchQueue(dispatchBufferSize),
	}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForDispatch(m.dispatch)}
	if m.watcher != nil {
		cmds = append(cmds, waitForFileChange(m.watcher, m.debugf))
	}

	return tea.Batch(cmds...)
}

// dispatcher returns a Dispatch function for controller generation gen.
// It runs on timer goroutines, so it only queues.
func (m *model) dispatcher(gen int) func(func()) {
	q := m.dispatch
	debugf := m.debugf

	return func(fn func()) {
		if !q.send(dispatchItem{gen: gen, fn: fn}) {
			debugf("[TUI] Dispatch queue full or closed, dropping deferred call")
		}
	}
}

// buildScroller creates a scroller and controller for the current pages, starting at page start
func (m *model) buildScroller(start int) error {
	if m.controller != nil {
		m.controller.Close()
	}

	m.gen++

	var indicator scroller.Indicator
	m.nav = nil
	if m.cfg.ShowNav {
		m.nav = newNavDots(len(m.pages))
		indicator = m.nav
	}

	var s *scroller.Scroller

	hook := m.hook
	history := m.history
	s, err := scroller.New(len(m.pages), m.env.ViewportHeight(), scroller.Dependencies{
		Container:   m.container,
		Indicator:   indicator,
		Environment: m.env,
		OnPageChange: func() {
			if hook.current != s.Index() {
				history.Visit(hook.current)
			}
			hook.pageChanged(s.Index(), s.Pages())
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create scroller: %w", err)
	}

	m.scroller = s
	m.controller = input.NewController(s, input.Options{
		Delay:    m.cfg.Delay(),
		Clock:    m.clock,
		Dispatch: m.dispatcher(m.gen),
		Debugf:   m.debugf,
	})
	m.controller.Attach(m.source)

	// Page indices from an earlier scroller may not exist in this one
	m.history.Clear()
	m.hook.current = 0

	if start > 0 {
		m.history.restore(func() { s.JumpTo(start) })
	}

	m.debugf("[TUI] Scroller ready: %d pages, height %d, page %d (gen %d)", s.Pages(), s.ViewportHeight(), s.Index(), m.gen)

	return nil
}

// pageWidth returns the width available to a page
func (m model) pageWidth() int {
	w := m.width
	if m.cfg.ShowNav {
		w -= navWidth
	}

	return max(w, minViewportWidth)
}

// pageHeight returns the height available to a page
func (m model) pageHeight() int {
	return max(m.height-statusBarHeight, minViewportHeight)
}

// setStatusMsg sets a transient status message with current timestamp
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// startAnimation begins the slide frame loop if the container is off target
func (m *model) startAnimation() tea.Cmd {
	if m.animating || !m.container.Moving() {
		return nil
	}

	m.animating = true

	return nextFrame()
}

// currentTitle returns the title of the page in view
func (m model) currentTitle() string {
	if m.scroller == nil || m.scroller.Index() >= len(m.pages) {
		return ""
	}

	return m.pages[m.scroller.Index()].Title
}
