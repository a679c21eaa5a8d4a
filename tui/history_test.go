// ABOUTME: Tests for page history
// ABOUTME: Verifies back/forward stacks, size limits and restore suppression

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStep(t *testing.T, step func(int) (int, bool), current, want int) {
	t.Helper()

	got, ok := step(current)
	require.True(t, ok, "history step from %d", current)
	require.Equal(t, want, got)
}

func TestPageHistory_BackForward(t *testing.T) {
	h := newPageHistory(10)

	h.Visit(0)
	h.Visit(3)

	requireStep(t, h.Back, 5, 3)
	requireStep(t, h.Back, 3, 0)

	_, ok := h.Back(0)
	assert.False(t, ok, "back stack empty")

	requireStep(t, h.Forward, 0, 3)
	requireStep(t, h.Forward, 3, 5)

	_, ok = h.Forward(5)
	assert.False(t, ok, "forward stack empty")
}

func TestPageHistory_VisitClearsForward(t *testing.T) {
	h := newPageHistory(10)

	h.Visit(0)
	h.Back(1)
	require.Equal(t, 1, h.ForwardSize())

	h.Visit(0)

	assert.Equal(t, 0, h.ForwardSize(), "a new visit clears the forward stack")
}

func TestPageHistory_MaxSize(t *testing.T) {
	h := newPageHistory(3)

	for i := range 5 {
		h.Visit(i)
	}

	require.Equal(t, 3, h.BackSize(), "back stack capped")

	// Oldest entries dropped
	for _, want := range []int{4, 3, 2} {
		requireStep(t, h.Back, 0, want)
	}
}

func TestPageHistory_RestoreIsNotRecorded(t *testing.T) {
	h := newPageHistory(10)

	h.restore(func() { h.Visit(7) })
	assert.Equal(t, 0, h.BackSize(), "visits during restore are ignored")

	h.Visit(1)
	assert.Equal(t, 1, h.BackSize(), "visits after restore are recorded")
}

func TestPageHistory_Clear(t *testing.T) {
	h := newPageHistory(10)
	h.Visit(1)
	h.Visit(2)
	h.Back(3)

	h.Clear()

	assert.Equal(t, 0, h.BackSize())
	assert.Equal(t, 0, h.ForwardSize())
}
