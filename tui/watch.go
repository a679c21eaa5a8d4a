// ABOUTME: Watches the deck file or directory for changes
// ABOUTME: Emits a message on each change so the deck can be reloaded in the background

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// settleDelay lets editors finish atomic writes before the deck is reread
const settleDelay = 100 * time.Millisecond

// fileChangeMsg is sent when the deck changes
type fileChangeMsg struct{}

// deckWatcher reports changes to a deck. A file deck is watched through its
// directory, since editors replace the file on save and a watch on the file
// itself ends with the old inode.
type deckWatcher struct {
	watcher *fsnotify.Watcher
	target  string // Deck file events are filtered to; empty for a directory deck
}

// newDeckWatcher watches path, a deck file or directory
func newDeckWatcher(path string) (*deckWatcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to watch deck: %w", err)
	}

	dir, target := path, ""
	if !info.IsDir() {
		dir, target = filepath.Dir(path), filepath.Clean(path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch deck: %w", err)
	}

	return &deckWatcher{watcher: watcher, target: target}, nil
}

// Close stops watching
func (w *deckWatcher) Close() error {
	return w.watcher.Close()
}

// relevant reports whether an event changes the watched deck
func (w *deckWatcher) relevant(event fsnotify.Event) bool {
	if !isDeckChange(event) {
		return false
	}

	return w.target == "" || filepath.Clean(event.Name) == w.target
}

// isDeckChange reports whether an event changes file content
func isDeckChange(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// waitForFileChange returns a command that waits for file system events
func waitForFileChange(w *deckWatcher, debugf func(string, ...interface{})) tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				if w.relevant(event) {
					time.Sleep(settleDelay)
					return fileChangeMsg{}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}
