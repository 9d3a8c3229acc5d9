package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// StudyRegistry is the subset of WorkerPool used by Worker to expose the
// cancel function of the study it is running.
type StudyRegistry interface {
	RegisterStudy(studyID string, cancel context.CancelFunc)
	UnregisterStudy(studyID string)
}

// Worker is a single queue worker that polls for and executes study jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	runner   StudyRunner
	registry StudyRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentJobID   string
	currentStudyID string
	jobsProcessed  int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, runner StudyRunner, registry StudyRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		runner:       runner,
		registry:     registry,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current job.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.signalStop()
	w.awaitStop()
}

// signalStop asks the worker to exit after its current job.
func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// awaitStop blocks until the polling loop has exited.
func (w *Worker) awaitStop() {
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentJobID:   w.currentJobID,
		CurrentStudyID: w.currentStudyID,
		JobsProcessed:  w.jobsProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing study job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the oldest pending job and runs its study to a
// terminal job status.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "study_id", job.StudyID, "worker_id", w.id)
	log.Info("Study job claimed", "attempt", job.Attempts, "max_attempts", job.MaxAttempts)

	w.setStatus(WorkerStatusWorking, job.ID, job.StudyID)
	defer w.setStatus(WorkerStatusIdle, "", "")

	// The run deadline comes from the job row, on top of whatever
	// per-session timeouts apply inside the run.
	jobCtx, cancelJob := context.WithTimeout(ctx, w.jobTimeout(job))
	defer cancelJob()

	// Register the cancel function for API-triggered cancellation.
	w.registry.RegisterStudy(job.StudyID, cancelJob)
	defer w.registry.UnregisterStudy(job.StudyID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID)

	// claimed -> running once execution actually starts. If this write
	// fails the job stays claimed and the orphan detector requeues it
	// once the heartbeat goes stale.
	if err := w.client.StudyJob.UpdateOneID(job.ID).
		SetStatus(studyjob.StatusRunning).
		Exec(jobCtx); err != nil {
		return fmt.Errorf("marking job %s running: %w", job.ID, err)
	}

	var browserMode string
	if job.BrowserMode != nil {
		browserMode = string(*job.BrowserMode)
	}

	runErr := w.runner.RunStudy(jobCtx, job.StudyID, browserMode)

	cancelHeartbeat()

	// Terminal write on a fresh context: jobCtx may be cancelled or expired.
	status, err := w.finishJob(context.Background(), job, jobCtx, runErr)
	if err != nil {
		log.Error("Failed to update job terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Study job finished", "status", status)
	return nil
}

// claimNextJob atomically claims the oldest pending job using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.StudyJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED, oldest first for FIFO processing.
	job, err := tx.StudyJob.Query().
		Where(studyjob.StatusEQ(studyjob.StatusPending)).
		Order(ent.Asc(studyjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	// Claim: attempts counts claims, so a requeued job keeps its history.
	now := time.Now()
	job, err = job.Update().
		SetStatus(studyjob.StatusClaimed).
		SetPodID(w.podID).
		SetClaimedAt(now).
		SetLastHeartbeatAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// runHeartbeat periodically stamps last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.StudyJob.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// finishJob writes the job's terminal status. The study's own terminal state
// was already written by the runner.
func (w *Worker) finishJob(ctx context.Context, job *ent.StudyJob, jobCtx context.Context, runErr error) (studyjob.Status, error) {
	update := w.client.StudyJob.UpdateOneID(job.ID)

	var status studyjob.Status
	switch {
	case runErr == nil:
		status = studyjob.StatusCompleted
	case errors.Is(runErr, context.DeadlineExceeded) || errors.Is(jobCtx.Err(), context.DeadlineExceeded):
		status = studyjob.StatusFailed
		update = update.SetErrorMessage(fmt.Sprintf("study run timed out after %v", w.jobTimeout(job)))
	case errors.Is(runErr, context.Canceled):
		status = studyjob.StatusCancelled
		update = update.SetErrorMessage("cancelled")
	default:
		status = studyjob.StatusFailed
		update = update.SetErrorMessage(runErr.Error())
	}

	if err := update.SetStatus(status).Exec(ctx); err != nil {
		return status, err
	}
	return status, nil
}

// jobTimeout returns the run deadline carried by the job row.
func (w *Worker) jobTimeout(job *ent.StudyJob) time.Duration {
	if job.TimeoutSeconds > 0 {
		return time.Duration(job.TimeoutSeconds) * time.Second
	}
	return 10 * time.Minute
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID, studyID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.currentStudyID = studyID
	w.lastActivity = time.Now()
}
