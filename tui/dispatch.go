// ABOUTME: Queue carrying deferred calls from timer goroutines to the Update goroutine
// ABOUTME: Sends never block and are dropped once the queue is closed

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// dispatchQueue is a buffered channel that is safe to close while timers still send
type dispatchQueue struct {
	mu     sync.Mutex
	ch     chan dispatchItem
	closed bool
}

func newDispatchQueue(size int) *dispatchQueue {
	return &dispatchQueue{ch: make(chan dispatchItem, size)}
}

// send queues item. Returns false if the queue is full or closed.
func (q *dispatchQueue) send(item dispatchItem) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	select {
	case q.ch <- item:
		return true
	default:
		return false
	}
}

// close ends the queue; waitForDispatch commands return nil afterwards
func (q *dispatchQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.ch)
	}
}

// waitForDispatch waits for a deferred call and returns it as a message
func waitForDispatch(q *dispatchQueue) tea.Cmd {
	return func() tea.Msg {
		item, ok := <-q.ch
		if !ok {
			return nil
		}

		return dispatchMsg(item)
	}
}
