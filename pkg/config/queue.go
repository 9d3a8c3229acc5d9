package config

import (
	"fmt"
	"time"
)

// QueueConfig contains queue and worker pool configuration.
// These values control how study jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes study jobs, so it is
	// also the per-replica bound on concurrent studies.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a worker stamps its claimed job.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active studies
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a job can go without a heartbeat before
	// it is considered orphaned and requeued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// ScheduleTickInterval is how often the scheduler scans due schedules.
	ScheduleTickInterval time.Duration `yaml:"schedule_tick_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Minute,
		OrphanDetectionInterval: 60 * time.Second,
		OrphanThreshold:         90 * time.Second,
		ScheduleTickInterval:    60 * time.Second,
	}
}

// Validate rejects queue settings the worker pool cannot run with.
func (q *QueueConfig) Validate() error {
	if q.WorkerCount < 1 {
		return fmt.Errorf("queue worker_count must be >= 1, got %d", q.WorkerCount)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("queue poll_interval must be positive, got %v", q.PollInterval)
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return fmt.Errorf("queue orphan_threshold (%v) must exceed heartbeat_interval (%v)",
			q.OrphanThreshold, q.HeartbeatInterval)
	}
	return nil
}
