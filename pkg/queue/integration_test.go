package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/pkg/config"
	testdb "github.com/wanderlens/wanderlens/test/database"
	testutil "github.com/wanderlens/wanderlens/test/util"
)

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      0,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Hour, // scans run explicitly in tests
		OrphanThreshold:         2 * time.Second,
		ScheduleTickInterval:    1 * time.Hour,
	}
}

// seedJob creates a pending job for the study.
func seedJob(ctx context.Context, t *testing.T, client *ent.Client, studyID string) *ent.StudyJob {
	t.Helper()
	job, err := client.StudyJob.Create().
		SetID(uuid.New().String()).
		SetStudyID(studyID).
		Save(ctx)
	require.NoError(t, err)
	return job
}

// runCall is one recorded RunStudy invocation.
type runCall struct {
	StudyID     string
	BrowserMode string
}

// trackingRunner records RunStudy calls and scripts their outcome via RunFn.
// A nil RunFn succeeds immediately.
type trackingRunner struct {
	mu    sync.Mutex
	calls []runCall
	RunFn func(ctx context.Context, studyID, browserMode string) error
}

func (r *trackingRunner) RunStudy(ctx context.Context, studyID, browserMode string) error {
	r.mu.Lock()
	r.calls = append(r.calls, runCall{StudyID: studyID, BrowserMode: browserMode})
	fn := r.RunFn
	r.mu.Unlock()
	if fn != nil {
		return fn(ctx, studyID, browserMode)
	}
	return nil
}

func (r *trackingRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *trackingRunner) recorded() []runCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runCall(nil), r.calls...)
}

// blockUntilCancelled is a RunFn that parks until the run context dies.
func blockUntilCancelled(ctx context.Context, _, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func TestClaimNextJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st := testutil.SeedStudy(t, client, "https://claim.example.com")
	job := seedJob(ctx, t, client, st.ID)

	w := NewWorker("test-worker-0", "test-pod", client, intTestQueueConfig(), nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.ID, claimed.ID)
	assert.Equal(t, studyjob.StatusClaimed, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	require.NotNil(t, claimed.ClaimedAt)
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should report an empty queue
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimNextJobOldestFirst(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	older := testutil.SeedStudy(t, client, "https://older.example.com")
	olderJob, err := client.StudyJob.Create().
		SetID(uuid.New().String()).
		SetStudyID(older.ID).
		SetCreatedAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	newer := testutil.SeedStudy(t, client, "https://newer.example.com")
	seedJob(ctx, t, client, newer.ID)

	w := NewWorker("test-worker-0", "test-pod", client, intTestQueueConfig(), nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, olderJob.ID, claimed.ID, "claims are FIFO by created_at")
}

func TestConcurrentClaimsDistinctJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// One pending job per study; the partial unique index allows only one
	// live job per study, so distinct studies are required here.
	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		st := testutil.SeedStudy(t, client, fmt.Sprintf("https://site-%d.example.com", i))
		j := seedJob(ctx, t, client, st.ID)
		jobIDs[j.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil)
			job, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, job.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 jobs should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 jobs should be claimed")
	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in the seeded set", id)
	}
}

func TestPoolRunsJobsToCompletion(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	var studyIDs []string
	for i := 0; i < 3; i++ {
		st := testutil.SeedStudy(t, client, fmt.Sprintf("https://e2e-%d.example.com", i))
		seedJob(ctx, t, client, st.ID)
		studyIDs = append(studyIDs, st.ID)
	}

	runner := &trackingRunner{}
	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), runner, nil)
	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for all jobs to finish",
		func() bool {
			n, err := client.StudyJob.Query().
				Where(studyjob.StatusEQ(studyjob.StatusCompleted)).
				Count(ctx)
			return err == nil && n == 3
		})

	pool.Stop()

	assert.Equal(t, 3, runner.callCount())
	ran := make(map[string]struct{})
	for _, call := range runner.recorded() {
		ran[call.StudyID] = struct{}{}
	}
	for _, id := range studyIDs {
		assert.Contains(t, ran, id)
	}

	jobs, err := client.StudyJob.Query().All(ctx)
	require.NoError(t, err)
	for _, j := range jobs {
		assert.Equal(t, studyjob.StatusCompleted, j.Status)
		assert.Equal(t, 1, j.Attempts)
		require.NotNil(t, j.PodID)
		assert.Equal(t, "test-pod", *j.PodID)
		assert.Nil(t, j.ErrorMessage)
	}

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.DBReachable)
	assert.Zero(t, health.QueueDepth)
}

func TestPoolPassesBrowserModeOverride(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st := testutil.SeedStudy(t, client, "https://override.example.com")
	_, err := client.StudyJob.Create().
		SetID(uuid.New().String()).
		SetStudyID(st.ID).
		SetBrowserMode(studyjob.BrowserModeCloud).
		Save(ctx)
	require.NoError(t, err)

	runner := &trackingRunner{}
	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), runner, nil)
	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for the job to finish",
		func() bool { return runner.callCount() >= 1 })
	pool.Stop()

	calls := runner.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, st.ID, calls[0].StudyID)
	assert.Equal(t, "cloud", calls[0].BrowserMode)
}

func TestWorkerRecordsRunError(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st := testutil.SeedStudy(t, client, "https://boom.example.com")
	job := seedJob(ctx, t, client, st.ID)

	runner := &trackingRunner{
		RunFn: func(context.Context, string, string) error {
			return errors.New("browser backend exploded")
		},
	}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	pool := NewWorkerPool("test-pod", client, cfg, runner, nil)
	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for the job to fail",
		func() bool {
			j, err := client.StudyJob.Get(ctx, job.ID)
			return err == nil && j.Status == studyjob.StatusFailed
		})
	pool.Stop()

	failed, err := client.StudyJob.Get(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "browser backend exploded", *failed.ErrorMessage)
	assert.Equal(t, 1, failed.Attempts, "run failures are terminal, not auto-retried")
}

func TestJobTimeoutFailsJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st := testutil.SeedStudy(t, client, "https://slow.example.com")
	job, err := client.StudyJob.Create().
		SetID(uuid.New().String()).
		SetStudyID(st.ID).
		SetTimeoutSeconds(1).
		Save(ctx)
	require.NoError(t, err)

	runner := &trackingRunner{RunFn: blockUntilCancelled}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	pool := NewWorkerPool("test-pod", client, cfg, runner, nil)
	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for the run deadline to fire",
		func() bool {
			j, err := client.StudyJob.Get(ctx, job.ID)
			return err == nil && j.Status == studyjob.StatusFailed
		})
	pool.Stop()

	failed, err := client.StudyJob.Get(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "timed out after 1s")
}

func TestCancelStudyCancelsInFlightRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st := testutil.SeedStudy(t, client, "https://cancel.example.com")
	job := seedJob(ctx, t, client, st.ID)

	runner := &trackingRunner{RunFn: blockUntilCancelled}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	pool := NewWorkerPool("test-pod", client, cfg, runner, nil)
	require.NoError(t, pool.Start(ctx))

	// The cancel registry is populated before the job flips to running.
	awaitCondition(t, 10*time.Second, 20*time.Millisecond,
		"waiting for the job to start",
		func() bool {
			j, err := client.StudyJob.Get(ctx, job.ID)
			return err == nil && j.Status == studyjob.StatusRunning
		})

	assert.True(t, pool.CancelStudy(st.ID))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for the job to record cancellation",
		func() bool {
			j, err := client.StudyJob.Get(ctx, job.ID)
			return err == nil && j.Status == studyjob.StatusCancelled
		})
	pool.Stop()

	cancelled, err := client.StudyJob.Get(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, cancelled.ErrorMessage)
	assert.Equal(t, "cancelled", *cancelled.ErrorMessage)
	assert.False(t, pool.CancelStudy(st.ID), "registry entry is gone after the run ends")
}

func TestOrphanRequeue(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// A crashed pod left the study running with one session mid-flight.
	st, _, _, sess := testutil.SeedSessionChain(t, client, "https://orphan.example.com")
	require.NoError(t, client.Study.UpdateOneID(st.ID).
		SetStatus(study.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx))
	require.NoError(t, client.Session.UpdateOneID(sess.ID).
		SetStatus(session.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx))

	job := seedJob(ctx, t, client, st.ID)
	staleBeat := time.Now().Add(-10 * time.Minute)
	require.NoError(t, client.StudyJob.UpdateOneID(job.ID).
		SetStatus(studyjob.StatusRunning).
		SetPodID("crashed-pod").
		SetClaimedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		SetAttempts(1).
		Exec(ctx))

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: intTestQueueConfig(),
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	// Job is back in the queue with its claim history intact
	requeued, err := client.StudyJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, studyjob.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)
	assert.Nil(t, requeued.ClaimedAt)
	assert.Nil(t, requeued.LastHeartbeatAt)
	assert.Equal(t, 1, requeued.Attempts)

	// The interrupted session failed so the retry resets and reruns it
	failedSess, err := client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusFailed, failedSess.Status)
	require.NotNil(t, failedSess.ErrorMessage)
	assert.Contains(t, *failedSess.ErrorMessage, "orphaned")
	assert.Contains(t, *failedSess.ErrorMessage, "crashed-pod")

	// The study itself stays live; the requeued job will pick it up
	orphanedStudy, err := client.Study.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, study.StatusRunning, orphanedStudy.Status)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

func TestOrphanExhaustedAttemptsFailsJobAndStudy(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st, _, _, sess := testutil.SeedSessionChain(t, client, "https://exhausted.example.com")
	require.NoError(t, client.Study.UpdateOneID(st.ID).
		SetStatus(study.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx))
	require.NoError(t, client.Session.UpdateOneID(sess.ID).
		SetStatus(session.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx))

	job := seedJob(ctx, t, client, st.ID)
	staleBeat := time.Now().Add(-10 * time.Minute)
	require.NoError(t, client.StudyJob.UpdateOneID(job.ID).
		SetStatus(studyjob.StatusRunning).
		SetPodID("crashed-pod").
		SetClaimedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		SetAttempts(3).
		Exec(ctx))

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: intTestQueueConfig(),
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	failed, err := client.StudyJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, studyjob.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "attempt 3/3")

	deadStudy, err := client.Study.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, study.StatusFailed, deadStudy.Status)
	require.NotNil(t, deadStudy.ErrorMessage)
	assert.Contains(t, *deadStudy.ErrorMessage, "orphaned")

	failedSess, err := client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusFailed, failedSess.Status)
}

func TestOrphanScanSkipsHealthyJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st := testutil.SeedStudy(t, client, "https://healthy.example.com")
	job := seedJob(ctx, t, client, st.ID)
	require.NoError(t, client.StudyJob.UpdateOneID(job.ID).
		SetStatus(studyjob.StatusRunning).
		SetPodID("live-pod").
		SetClaimedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		SetAttempts(1).
		Exec(ctx))

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: intTestQueueConfig(),
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	healthy, err := client.StudyJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, studyjob.StatusRunning, healthy.Status, "a fresh heartbeat must not be recovered")

	pool.orphans.mu.Lock()
	assert.Zero(t, pool.orphans.orphansRecovered)
	assert.False(t, pool.orphans.lastOrphanScan.IsZero(), "scan time is stamped even when nothing is found")
	pool.orphans.mu.Unlock()
}

func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	cfg := intTestQueueConfig()
	staleBeat := time.Now().Add(-10 * time.Minute)

	// Job left behind by a previous incarnation of this host
	mine := testutil.SeedStudy(t, client, "https://mine.example.com")
	mineJob := seedJob(ctx, t, client, mine.ID)
	require.NoError(t, client.StudyJob.UpdateOneID(mineJob.ID).
		SetStatus(studyjob.StatusRunning).
		SetPodID("host-aaaa1111").
		SetClaimedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		SetAttempts(1).
		Exec(ctx))

	// Job owned by a different host entirely
	other := testutil.SeedStudy(t, client, "https://other.example.com")
	otherJob := seedJob(ctx, t, client, other.ID)
	require.NoError(t, client.StudyJob.UpdateOneID(otherJob.ID).
		SetStatus(studyjob.StatusRunning).
		SetPodID("elsewhere-bbbb2222").
		SetClaimedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		SetAttempts(1).
		Exec(ctx))

	// Job owned by a live replica sharing the hostname: heartbeat is fresh
	sibling := testutil.SeedStudy(t, client, "https://sibling.example.com")
	siblingJob := seedJob(ctx, t, client, sibling.ID)
	require.NoError(t, client.StudyJob.UpdateOneID(siblingJob.ID).
		SetStatus(studyjob.StatusRunning).
		SetPodID("host-cccc3333").
		SetClaimedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		SetAttempts(1).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, client, cfg, "host-dddd4444"))

	recovered, err := client.StudyJob.Get(ctx, mineJob.ID)
	require.NoError(t, err)
	assert.Equal(t, studyjob.StatusPending, recovered.Status, "previous incarnation's job is requeued")

	untouched, err := client.StudyJob.Get(ctx, otherJob.ID)
	require.NoError(t, err)
	assert.Equal(t, studyjob.StatusRunning, untouched.Status, "other hosts' jobs are left alone")

	live, err := client.StudyJob.Get(ctx, siblingJob.ID)
	require.NoError(t, err)
	assert.Equal(t, studyjob.StatusRunning, live.Status, "fresh heartbeats are left alone")
}

func TestEnqueue(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st := testutil.SeedStudy(t, client, "https://enqueue.example.com")

	job, err := Enqueue(ctx, client, st.ID, EnqueueOptions{
		BrowserMode:    "cloud",
		TimeoutSeconds: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, studyjob.StatusPending, job.Status)
	assert.Equal(t, st.ID, job.StudyID)
	require.NotNil(t, job.BrowserMode)
	assert.Equal(t, studyjob.BrowserModeCloud, *job.BrowserMode)
	assert.Equal(t, 120, job.TimeoutSeconds)
	assert.Equal(t, 3, job.MaxAttempts, "schema default")

	// A second enqueue while the first is live is rejected
	_, err = Enqueue(ctx, client, st.ID, EnqueueOptions{})
	assert.ErrorIs(t, err, ErrStudyAlreadyQueued)

	// Once the job reaches a terminal status the study can be enqueued again
	require.NoError(t, client.StudyJob.UpdateOneID(job.ID).
		SetStatus(studyjob.StatusCompleted).
		Exec(ctx))
	again, err := Enqueue(ctx, client, st.ID, EnqueueOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, job.ID, again.ID)
}

func TestEnqueueRejectsBadInput(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, err := Enqueue(ctx, client, "no-such-study", EnqueueOptions{})
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))

	st := testutil.SeedStudy(t, client, "https://badmode.example.com")
	_, err = Enqueue(ctx, client, st.ID, EnqueueOptions{BrowserMode: "teleport"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}

func TestPoolGracefulStopWaitsForRun(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	st := testutil.SeedStudy(t, client, "https://drain.example.com")
	job := seedJob(ctx, t, client, st.ID)

	release := make(chan struct{})
	runner := &trackingRunner{
		RunFn: func(ctx context.Context, _, _ string) error {
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	pool := NewWorkerPool("test-pod", client, cfg, runner, nil)
	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 20*time.Millisecond,
		"waiting for the run to start",
		func() bool { return runner.callCount() == 1 })

	// Let the run finish shortly after Stop begins draining.
	go func() {
		time.Sleep(200 * time.Millisecond)
		close(release)
	}()
	pool.Stop()

	finished, err := client.StudyJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, studyjob.StatusCompleted, finished.Status,
		"graceful stop lets the in-flight run finish")
}
