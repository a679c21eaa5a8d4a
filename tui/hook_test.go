// ABOUTME: Tests for the page change hook
// ABOUTME: Verifies change counting and the environment passed to the user command

package tui

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHook_CountsWithoutCommand(t *testing.T) {
	h := newPageHook("", func(string, ...interface{}) {})

	started := 0
	h.start = func(*exec.Cmd) error {
		started++
		return nil
	}

	h.pageChanged(1, 4)
	h.pageChanged(2, 4)

	assert.Equal(t, 2, h.changes)
	assert.Equal(t, 2, h.current)
	assert.Equal(t, 0, started, "no command without on_page_change")
}

func TestPageHook_RunsCommand(t *testing.T) {
	h := newPageHook("echo $FULLPAGE_PAGE", func(string, ...interface{}) {})

	var got *exec.Cmd
	h.start = func(cmd *exec.Cmd) error {
		got = cmd
		return nil
	}

	h.pageChanged(2, 5)

	require.NotNil(t, got, "command started")
	assert.Equal(t, []string{"sh", "-c", "echo $FULLPAGE_PAGE"}, got.Args)
	assert.Subset(t, got.Env, []string{"FULLPAGE_INDEX=2", "FULLPAGE_PAGE=3", "FULLPAGE_PAGES=5"})
}

func TestPageHook_StartFailureIsLogged(t *testing.T) {
	var logged []string
	h := newPageHook("missing-command", func(format string, _ ...interface{}) {
		logged = append(logged, format)
	})
	h.start = func(*exec.Cmd) error {
		return errors.New("no shell")
	}

	h.pageChanged(0, 1)

	assert.Equal(t, 1, h.changes, "change counted despite failure")
	assert.Contains(t, logged, "[TUI] Page change command failed to start: %v")
}
