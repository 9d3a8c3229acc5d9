package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/pkg/config"
)

// orphanState tracks orphan recovery metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runMaintenance periodically recovers orphaned jobs and sweeps expired
// live-state rows. All pods run this independently; both operations are
// idempotent.
func (p *WorkerPool) runMaintenance(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
			p.sweepLiveState(ctx)
		}
	}
}

// sweepLiveState drops live-state rows whose TTL lapsed.
func (p *WorkerPool) sweepLiveState(ctx context.Context) {
	if p.states == nil {
		return
	}
	n, err := p.states.SweepExpired(ctx)
	if err != nil {
		slog.Warn("Live state sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Debug("Swept expired live state rows", "rows", n)
	}
}

// detectAndRecoverOrphans finds claimed or running jobs whose heartbeat went
// stale and requeues them, or fails them once their attempts are spent.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.StudyJob.Query().
		Where(
			studyjob.StatusIn(studyjob.StatusClaimed, studyjob.StatusRunning),
			studyjob.LastHeartbeatAtNotNil(),
			studyjob.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned study jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		ok, err := recoverOrphanedJob(ctx, p.client, job.ID, threshold)
		if err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", job.ID,
				"study_id", job.StudyID,
				"error", err)
			continue
		}
		if ok {
			recovered++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob re-checks staleness under a row lock so concurrent
// replicas recover each orphan exactly once. Returns false when another
// replica won the job or its heartbeat came back.
func recoverOrphanedJob(ctx context.Context, client *ent.Client, jobID string, threshold time.Time) (bool, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.StudyJob.Query().
		Where(
			studyjob.ID(jobID),
			studyjob.StatusIn(studyjob.StatusClaimed, studyjob.StatusRunning),
			studyjob.LastHeartbeatAtNotNil(),
			studyjob.LastHeartbeatAtLT(threshold),
		).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock orphaned job: %w", err)
	}

	podID := "unknown"
	if job.PodID != nil {
		podID = *job.PodID
	}
	lastBeat := "unknown"
	if job.LastHeartbeatAt != nil {
		lastBeat = job.LastHeartbeatAt.Format(time.RFC3339)
	}
	reason := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastBeat)

	if err := requeueOrFail(ctx, tx, job, reason); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit orphan recovery: %w", err)
	}
	return true, nil
}

// requeueOrFail puts a dead run's job back in the queue, or fails the job and
// its study once attempts are exhausted. Sessions the dead run left in
// running must fail either way: a retry resets failed sessions and reruns
// them, while finished ones keep their outcome.
func requeueOrFail(ctx context.Context, tx *ent.Tx, job *ent.StudyJob, reason string) error {
	if _, err := tx.Session.Update().
		Where(
			session.StudyID(job.StudyID),
			session.StatusEQ(session.StatusRunning),
		).
		SetStatus(session.StatusFailed).
		SetErrorMessage(reason).
		SetCompletedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("failing interrupted sessions of study %s: %w", job.StudyID, err)
	}

	if job.Attempts >= job.MaxAttempts {
		if err := job.Update().
			SetStatus(studyjob.StatusFailed).
			SetErrorMessage(fmt.Sprintf("%s (attempt %d/%d)", reason, job.Attempts, job.MaxAttempts)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failing job %s: %w", job.ID, err)
		}
		// The run is never coming back, so the study must not stay live.
		if _, err := tx.Study.Update().
			Where(
				study.ID(job.StudyID),
				study.StatusIn(study.StatusSetup, study.StatusRunning, study.StatusAnalyzing),
			).
			SetStatus(study.StatusFailed).
			SetErrorMessage(reason).
			Save(ctx); err != nil {
			return fmt.Errorf("failing study %s: %w", job.StudyID, err)
		}
		slog.Warn("Study job failed after exhausting attempts",
			"job_id", job.ID,
			"study_id", job.StudyID,
			"attempts", job.Attempts)
		return nil
	}

	if err := job.Update().
		SetStatus(studyjob.StatusPending).
		ClearPodID().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Exec(ctx); err != nil {
		return fmt.Errorf("requeueing job %s: %w", job.ID, err)
	}
	slog.Warn("Orphaned study job requeued",
		"job_id", job.ID,
		"study_id", job.StudyID,
		"attempt", job.Attempts,
		"max_attempts", job.MaxAttempts)
	return nil
}

// CleanupStartupOrphans requeues jobs left claimed or running by an earlier
// incarnation of this pod (same hostname, different claim suffix). Called
// once during startup, before the worker pool begins processing. Jobs whose
// heartbeat is fresher than one interval are left alone: they may belong to
// a live replica sharing the hostname.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, cfg *config.QueueConfig, podID string) error {
	host := podID
	if i := strings.LastIndex(podID, "-"); i > 0 {
		host = podID[:i]
	}
	staleBefore := time.Now().Add(-cfg.HeartbeatInterval)

	orphans, err := client.StudyJob.Query().
		Where(
			studyjob.StatusIn(studyjob.StatusClaimed, studyjob.StatusRunning),
			studyjob.PodIDHasPrefix(host+"-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from a previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, job := range orphans {
		ok, err := recoverOrphanedJob(ctx, client, job.ID, staleBefore)
		if err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", job.ID,
				"study_id", job.StudyID,
				"error", err)
			continue
		}
		if ok {
			slog.Info("Startup orphan recovered", "job_id", job.ID, "study_id", job.StudyID)
		}
	}
	return nil
}
