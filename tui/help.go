// ABOUTME: Shows the key reference in the ov pager
// ABOUTME: Runs ov through tea.Exec so Bubble Tea releases and restores the terminal

package tui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// helpClosedMsg is sent when the help pager exits
type helpClosedMsg struct {
	err error
}

// helpPager is a tea.ExecCommand running ov over a string. ov opens the
// terminal itself, so the standard streams handed over by Bubble Tea are unused.
type helpPager struct {
	content string
}

func (h *helpPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(h.content))
	if err != nil {
		return err
	}

	// Don't write the buffer back to the terminal on exit, it would land under the pager UI
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func (h *helpPager) SetStdin(io.Reader)  {}
func (h *helpPager) SetStdout(io.Writer) {}
func (h *helpPager) SetStderr(io.Writer) {}

// showHelp returns a command that shows content in ov
func showHelp(content string) tea.Cmd {
	return tea.Exec(&helpPager{content: content}, func(err error) tea.Msg {
		return helpClosedMsg{err: err}
	})
}
