package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/schedule"
	"github.com/wanderlens/wanderlens/ent/task"
	"github.com/wanderlens/wanderlens/pkg/config"
)

// Scheduler fires recurring study runs. Every tick it claims due schedules,
// stamps their next fire time, and enqueues a job for a fresh copy of the
// scheduled study: completed studies are immutable, so each fire runs against
// its own copy, and regression linking ties the copies together through the
// shared site host.
type Scheduler struct {
	client   *ent.Client
	config   *config.QueueConfig
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a cron scheduler backed by the schedules table.
func NewScheduler(client *ent.Client, cfg *config.QueueConfig) *Scheduler {
	return &Scheduler{
		client: client,
		config: cfg,
		stopCh: make(chan struct{}),
	}
}

// Start begins the schedule tick loop in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop signals the scheduler to stop and waits for the loop to exit.
// It is safe to call Stop multiple times.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	slog.Info("Scheduler started", "tick_interval", s.config.ScheduleTickInterval)
	ticker := time.NewTicker(s.config.ScheduleTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			slog.Info("Scheduler shutting down")
			return
		case <-ctx.Done():
			slog.Info("Context cancelled, scheduler shutting down")
			return
		case <-ticker.C:
			if err := s.runDueSchedules(ctx); err != nil {
				slog.Error("Schedule tick failed", "error", err)
			}
		}
	}
}

// runDueSchedules fires every active schedule whose next_run_at has passed.
// The conditional stamp on next_run_at makes the tick re-executable and
// multi-replica safe: only one replica wins each fire.
func (s *Scheduler) runDueSchedules(ctx context.Context) error {
	now := time.Now()

	due, err := s.client.Schedule.Query().
		Where(
			schedule.StatusEQ(schedule.StatusActive),
			schedule.Or(
				schedule.NextRunAtIsNil(),
				schedule.NextRunAtLTE(now),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query due schedules: %w", err)
	}

	for _, sched := range due {
		if err := s.fireSchedule(ctx, sched, now); err != nil {
			slog.Error("Failed to fire schedule",
				"schedule_id", sched.ID,
				"study_id", sched.StudyID,
				"error", err)
		}
	}
	return nil
}

// fireSchedule advances one due schedule and enqueues its run.
func (s *Scheduler) fireSchedule(ctx context.Context, sched *ent.Schedule, now time.Time) error {
	expr, err := cron.ParseStandard(sched.CronExpr)
	if err != nil {
		// Quarantine: a bad expression would fail every tick forever.
		if qErr := s.client.Schedule.UpdateOneID(sched.ID).
			SetStatus(schedule.StatusPaused).
			Exec(ctx); qErr != nil {
			return fmt.Errorf("pausing schedule with invalid cron %q: %w", sched.CronExpr, qErr)
		}
		slog.Error("Invalid cron expression, schedule paused",
			"schedule_id", sched.ID,
			"study_id", sched.StudyID,
			"cron_expr", sched.CronExpr,
			"error", err)
		return nil
	}

	next := expr.Next(now)

	// A schedule created without an initial fire time gets stamped now and
	// fires on cadence from here on.
	if sched.NextRunAt == nil {
		if err := s.client.Schedule.Update().
			Where(schedule.ID(sched.ID), schedule.NextRunAtIsNil()).
			SetNextRunAt(next).
			Exec(ctx); err != nil {
			return fmt.Errorf("initializing next_run_at: %w", err)
		}
		return nil
	}

	claimed, err := s.client.Schedule.Update().
		Where(
			schedule.ID(sched.ID),
			schedule.StatusEQ(schedule.StatusActive),
			schedule.NextRunAtEQ(*sched.NextRunAt),
		).
		SetLastRunAt(now).
		SetNextRunAt(next).
		AddRunCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("claiming schedule fire: %w", err)
	}
	if claimed == 0 {
		// Another replica claimed this fire.
		return nil
	}

	studyID, jobID, err := s.enqueueScheduledRun(ctx, sched)
	if err != nil {
		return err
	}
	slog.Info("Scheduled study run enqueued",
		"schedule_id", sched.ID,
		"template_study_id", sched.StudyID,
		"study_id", studyID,
		"job_id", jobID,
		"next_run_at", next.Format(time.RFC3339))
	return nil
}

// enqueueScheduledRun copies the scheduled study (url, personas, tasks) into
// a fresh setup study and creates its job, all in one transaction.
func (s *Scheduler) enqueueScheduledRun(ctx context.Context, sched *ent.Schedule) (string, string, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	src, err := tx.Study.Get(ctx, sched.StudyID)
	if err != nil {
		return "", "", fmt.Errorf("loading scheduled study %s: %w", sched.StudyID, err)
	}

	studyID := uuid.New().String()
	if _, err := tx.Study.Create().
		SetID(studyID).
		SetURL(src.URL).
		SetStartingPath(src.StartingPath).
		SetNillableBrowserMode(src.BrowserMode).
		Save(ctx); err != nil {
		return "", "", fmt.Errorf("copying study %s: %w", src.ID, err)
	}

	personas, err := tx.Persona.Query().
		Where(persona.StudyID(src.ID)).
		Order(ent.Asc(persona.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return "", "", fmt.Errorf("loading personas of study %s: %w", src.ID, err)
	}
	for _, p := range personas {
		if _, err := tx.Persona.Create().
			SetID(uuid.New().String()).
			SetStudyID(studyID).
			SetNillableTemplateID(p.TemplateID).
			SetProfile(p.Profile).
			SetNillableModelChoice(p.ModelChoice).
			Save(ctx); err != nil {
			return "", "", fmt.Errorf("copying persona %s: %w", p.ID, err)
		}
	}

	tasks, err := tx.Task.Query().
		Where(task.StudyID(src.ID)).
		Order(ent.Asc(task.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return "", "", fmt.Errorf("loading tasks of study %s: %w", src.ID, err)
	}
	for _, tk := range tasks {
		if _, err := tx.Task.Create().
			SetID(uuid.New().String()).
			SetStudyID(studyID).
			SetDescription(tk.Description).
			SetOrderIndex(tk.OrderIndex).
			Save(ctx); err != nil {
			return "", "", fmt.Errorf("copying task %s: %w", tk.ID, err)
		}
	}

	jobID := uuid.New().String()
	if _, err := tx.StudyJob.Create().
		SetID(jobID).
		SetStudyID(studyID).
		Save(ctx); err != nil {
		return "", "", fmt.Errorf("enqueueing job for study %s: %w", studyID, err)
	}

	if err := tx.Commit(); err != nil {
		return "", "", fmt.Errorf("failed to commit scheduled run: %w", err)
	}
	return studyID, jobID, nil
}
