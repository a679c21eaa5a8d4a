// ABOUTME: Tests for the worker pool
// ABOUTME: Verifies all tasks run, concurrency stays bounded and the first error is reported

package pool

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRunsAllTasks(t *testing.T) {
	p := NewWorkerPool(4)

	var count atomic.Int32
	for range 100 {
		p.Submit(func() error {
			count.Add(1)
			return nil
		})
	}

	require.NoError(t, p.Wait())
	assert.Equal(t, int32(100), count.Load())
}

func TestWorkerPoolBoundsConcurrency(t *testing.T) {
	p := NewWorkerPool(2)

	var running, peak atomic.Int32
	for range 20 {
		p.Submit(func() error {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			running.Add(-1)

			return nil
		})
	}

	require.NoError(t, p.Wait())
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestWorkerPoolReportsError(t *testing.T) {
	p := NewWorkerPool(1)

	errBoom := errors.New("boom")
	p.Submit(func() error { return nil })
	p.Submit(func() error { return errBoom })
	p.Submit(func() error { return errors.New("later") })

	assert.ErrorIs(t, p.Wait(), errBoom)
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	p := NewWorkerPool(0)

	assert.GreaterOrEqual(t, p.Workers(), 1)
}
