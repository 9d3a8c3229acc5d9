package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/pkg/config"
	"github.com/wanderlens/wanderlens/pkg/livestate"
)

// NewPodID builds this replica's claim identity: the hostname plus a short
// random suffix, so two replicas on one host never share an identity.
func NewPodID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "wanderlens"
	}
	return fmt.Sprintf("%s-%s", host, uuid.New().String()[:8])
}

// WorkerPool manages a pool of study job workers plus the shared maintenance
// loop (orphan recovery and live-state sweeps).
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	runner   StudyRunner
	states   *livestate.Store
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Study cancel registry: study_id -> cancel function
	activeStudies map[string]context.CancelFunc
	mu            sync.RWMutex
	started       bool

	// Orphan recovery state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool. states may be nil (live-state
// sweeping disabled).
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, runner StudyRunner, states *livestate.Store) *WorkerPool {
	return &WorkerPool{
		podID:         podID,
		client:        client,
		config:        cfg,
		runner:        runner,
		states:        states,
		workers:       make([]*Worker, 0, cfg.WorkerCount),
		stopCh:        make(chan struct{}),
		activeStudies: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the maintenance background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.runner, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runMaintenance(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop drains the pool: workers finish their current job, bounded by the
// graceful shutdown timeout, after which in-flight studies are cancelled.
// It is safe to call Stop multiple times.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	if active := p.activeStudyIDs(); len(active) > 0 {
		slog.Info("Waiting for in-flight studies to finish",
			"count", len(active),
			"study_ids", active)
	}

	for _, worker := range p.workers {
		worker.signalStop()
	}

	drained := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.awaitStop()
		}
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(p.config.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown deadline reached, cancelling in-flight studies",
			"timeout", p.config.GracefulShutdownTimeout)
		p.cancelActiveStudies()
		<-drained
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped")
}

// RegisterStudy stores a cancel function for API-triggered cancellation.
func (p *WorkerPool) RegisterStudy(studyID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeStudies[studyID] = cancel
}

// UnregisterStudy removes the cancel function when the run ends.
func (p *WorkerPool) UnregisterStudy(studyID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeStudies, studyID)
}

// CancelStudy triggers context cancellation for a study running on this pod.
// Returns true if the study was found and cancelled here.
func (p *WorkerPool) CancelStudy(studyID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeStudies[studyID]; ok {
		cancel()
		return true
	}
	return false
}

// cancelActiveStudies cancels every study currently running on this pod.
func (p *WorkerPool) cancelActiveStudies() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, cancel := range p.activeStudies {
		cancel()
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.StudyJob.Query().
		Where(studyjob.StatusEQ(studyjob.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	runningJobs, errR := p.client.StudyJob.Query().
		Where(
			studyjob.StatusIn(studyjob.StatusClaimed, studyjob.StatusRunning),
			studyjob.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errR != nil {
		slog.Error("Failed to query running jobs for health check",
			"pod_id", p.podID,
			"error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("running jobs query failed: %v", errR)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		RunningJobs:      runningJobs,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// activeStudyIDs returns IDs of studies currently running on this pod (for logging).
func (p *WorkerPool) activeStudyIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeStudies))
	for id := range p.activeStudies {
		ids = append(ids, id)
	}
	return ids
}
