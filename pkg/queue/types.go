// Package queue provides study job queue management and processing
// infrastructure: claim-based workers, orphan recovery, and the cron
// scheduler that enqueues recurring runs.
package queue

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending study jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrStudyAlreadyQueued indicates the study already has a job queued,
	// claimed, or running.
	ErrStudyAlreadyQueued = errors.New("study already queued")
)

// StudyRunner executes one full study run: session fan-out, deep analysis,
// prioritization, and synthesis.
//
// The runner owns the ENTIRE study lifecycle internally and writes results
// PROGRESSIVELY during the run, not at the end. The worker only handles:
// claiming, heartbeat, the run deadline, and the job's terminal status.
//
// Satisfied by *orchestrator.Orchestrator.
type StudyRunner interface {
	RunStudy(ctx context.Context, studyID, browserModeOverride string) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	RunningJobs      int            `json:"running_jobs"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentJobID   string       `json:"current_job_id,omitempty"`
	CurrentStudyID string       `json:"current_study_id,omitempty"`
	JobsProcessed  int          `json:"jobs_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}
