// ABOUTME: Page change callback invoked after every completed transition
// ABOUTME: Counts changes and optionally runs a user shell command with the new page in its environment

package tui

import (
	"fmt"
	"os"
	"os/exec"
)

// pageHook is the scroller's page change callback
type pageHook struct {
	command string
	debugf  func(string, ...interface{})
	start   func(*exec.Cmd) error
	current int // Page reported by the last change
	changes int
}

func newPageHook(command string, debugf func(string, ...interface{})) *pageHook {
	h := &pageHook{
		command: command,
		debugf:  debugf,
	}
	h.start = h.startAsync

	return h
}

// pageChanged records a transition to index and runs the command, if any.
// The command is started without waiting so the event loop never blocks on it.
func (h *pageHook) pageChanged(index, pages int) {
	h.current = index
	h.changes++
	h.debugf("[TUI] Page changed: %d/%d", index+1, pages)

	if h.command == "" {
		return
	}

	cmd := exec.Command("sh", "-c", h.command)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("FULLPAGE_INDEX=%d", index),
		fmt.Sprintf("FULLPAGE_PAGE=%d", index+1),
		fmt.Sprintf("FULLPAGE_PAGES=%d", pages),
	)

	if err := h.start(cmd); err != nil {
		h.debugf("[TUI] Page change command failed to start: %v", err)
	}
}

func (h *pageHook) startAsync(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			h.debugf("[TUI] Page change command exited: %v", err)
		}
	}()

	return nil
}
