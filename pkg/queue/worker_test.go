package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: time.Minute,
		OrphanThreshold:         90 * time.Second,
		ScheduleTickInterval:    time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	w := NewWorker("test-worker", "test-pod", nil, testQueueConfig(), nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		assert.Equal(t, 1*time.Second, w.pollInterval(), "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	w := NewWorker("worker-1", "pod-1", nil, testQueueConfig(), nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Empty(t, h.CurrentJobID)
	assert.Empty(t, h.CurrentStudyID)
	assert.Zero(t, h.JobsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "job-abc", "study-abc")
	h = w.Health()
	assert.Equal(t, WorkerStatusWorking, h.Status)
	assert.Equal(t, "job-abc", h.CurrentJobID)
	assert.Equal(t, "study-abc", h.CurrentStudyID)
}

func TestWorkerJobTimeout(t *testing.T) {
	w := NewWorker("worker-1", "pod-1", nil, testQueueConfig(), nil, nil)

	assert.Equal(t, 45*time.Second, w.jobTimeout(&ent.StudyJob{TimeoutSeconds: 45}))
	assert.Equal(t, 10*time.Minute, w.jobTimeout(&ent.StudyJob{}),
		"zero falls back to the default run deadline")
}
