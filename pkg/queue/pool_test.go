package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelStudy(t *testing.T) {
	pool := &WorkerPool{
		activeStudies: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterStudy("study-1", cancel)

	// Cancel should succeed for a registered study
	assert.True(t, pool.CancelStudy("study-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for an unknown study
	assert.False(t, pool.CancelStudy("unknown"))
}

func TestPoolUnregisterStudy(t *testing.T) {
	pool := &WorkerPool{
		activeStudies: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterStudy("study-1", cancel)

	// Should find it
	assert.True(t, pool.CancelStudy("study-1"))

	// Unregister
	pool.UnregisterStudy("study-1")

	// Should not find it anymore
	assert.False(t, pool.CancelStudy("study-1"))
}

func TestPoolActiveStudyIDs(t *testing.T) {
	pool := &WorkerPool{
		activeStudies: make(map[string]context.CancelFunc),
	}

	// Empty initially
	assert.Empty(t, pool.activeStudyIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterStudy("study-a", cancel1)
	pool.RegisterStudy("study-b", cancel2)

	ids := pool.activeStudyIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "study-a")
	assert.Contains(t, ids, "study-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		config:        testQueueConfig(),
		stopCh:        make(chan struct{}),
		activeStudies: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestPoolCancelActiveStudies(t *testing.T) {
	pool := &WorkerPool{
		activeStudies: make(map[string]context.CancelFunc),
	}

	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	pool.RegisterStudy("study-1", cancel1)
	pool.RegisterStudy("study-2", cancel2)

	pool.cancelActiveStudies()

	assert.Error(t, ctx1.Err())
	assert.Error(t, ctx2.Err())
}

func TestNewPodID(t *testing.T) {
	a := NewPodID()
	b := NewPodID()

	assert.NotEqual(t, a, b, "two replicas must never share a claim identity")
	assert.Regexp(t, `-[0-9a-f]{8}$`, a)
}
