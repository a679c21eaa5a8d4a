// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function, status bar and help content

package tui

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] View panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return ""
	}

	if !m.ready {
		if m.statusMsg != "" {
			return m.statusMsg + "\n"
		}

		return "Loading...\n"
	}

	body := m.container.View()
	if m.nav != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.nav.View(m.container.Height()))
	}

	return body + "\n" + m.renderStatus()
}

// renderStatus renders the bottom status bar
func (m model) renderStatus() string {
	parts := []string{fmt.Sprintf("%d/%d", m.scroller.Index()+1, m.scroller.Pages())}

	if title := m.currentTitle(); title != "" {
		parts = append(parts, title)
	}

	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		parts = append(parts, m.statusMsg)
	}

	left := strings.Join(parts, " · ")
	right := helpStyle.Render("? help  q quit")

	width := max(m.width, lipgloss.Width(left)+lipgloss.Width(right)+2)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2 // statusStyle padding

	return statusStyle.Render(left + strings.Repeat(" ", max(gap, 1)) + right)
}

// renderHelpContent renders the key reference shown in the help pager
func renderHelpContent() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fullpage help"))
	b.WriteString("\n\n")

	bindings := []key.Binding{keys.Next, keys.Prev, keys.First, keys.Last, keys.Jump, keys.Back, keys.Forward, keys.Help, keys.Quit}
	for _, binding := range bindings {
		h := binding.Help()
		fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
	}

	b.WriteString("\nMouse\n\n")
	b.WriteString("  wheel        one page per scroll burst\n")
	b.WriteString("  drag         swipe up for the next page, down for the previous\n")
	b.WriteString("  dots         click a dot to jump to its page\n")

	return b.String()
}
