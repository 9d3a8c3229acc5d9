// Package orchestrator drives a study from enqueue to terminal state: it
// materializes the persona x task session matrix, fans the sessions out
// over leased browser pages under a concurrency cap, then pipes the
// recorded sessions through analysis, prioritization and synthesis.
// Session-level failures stay inside their session; only infrastructure
// failures fail the study.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/task"
	"github.com/wanderlens/wanderlens/pkg/analysis"
	"github.com/wanderlens/wanderlens/pkg/browser"
	"github.com/wanderlens/wanderlens/pkg/config"
	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/livestate"
	"github.com/wanderlens/wanderlens/pkg/models"
	"github.com/wanderlens/wanderlens/pkg/navigator"
)

// terminalWriteTimeout bounds the detached writes that record terminal
// states after the run context is gone.
const terminalWriteTimeout = 10 * time.Second

// SessionNavigator runs one persona session against a leased page.
// Satisfied by *navigator.Navigator.
type SessionNavigator interface {
	NavigateSession(ctx context.Context, in navigator.Input) navigator.Result
}

// SessionAnalyzer reviews a terminal session and stamps its ux_score.
// Satisfied by *analysis.Analyzer.
type SessionAnalyzer interface {
	AnalyzeSession(ctx context.Context, sessionID string) (*analysis.AnalysisResult, error)
}

// IssuePrioritizer scores a study's issues. Satisfied by *analysis.Prioritizer.
type IssuePrioritizer interface {
	LinkRegressions(ctx context.Context, studyID string) (int, error)
	PrioritizeStudyIssues(ctx context.Context, studyID string) ([]*ent.Issue, error)
}

// InsightSynthesizer produces the study-level verdict. Satisfied by
// *analysis.Synthesizer.
type InsightSynthesizer interface {
	Synthesize(ctx context.Context, studyID string) (*models.StudySynthesis, error)
}

// CostSource surrenders a study's accumulated LLM spend. Satisfied by
// *llm.CostTracker.
type CostSource interface {
	Drain(studyID string) models.CostBreakdown
}

// Deps are the collaborators RunStudy drives. All fields are required.
type Deps struct {
	Client      *ent.Client
	States      *livestate.Store
	Publisher   *events.EventPublisher
	Pool        *browser.Pool
	Navigator   SessionNavigator
	Analyzer    SessionAnalyzer
	Prioritizer IssuePrioritizer
	Synthesizer InsightSynthesizer
	Costs       CostSource
}

// Orchestrator owns the study lifecycle. One instance serves all workers of
// a pod; per-run state lives on the stack of RunStudy.
type Orchestrator struct {
	client      *ent.Client
	states      *livestate.Store
	publisher   *events.EventPublisher
	pool        *browser.Pool
	navigator   SessionNavigator
	analyzer    SessionAnalyzer
	prioritizer IssuePrioritizer
	synthesizer InsightSynthesizer
	costs       CostSource
	cfg         config.StudyConfig
}

// New creates an Orchestrator.
func New(deps Deps, cfg config.StudyConfig) *Orchestrator {
	return &Orchestrator{
		client:      deps.Client,
		states:      deps.States,
		publisher:   deps.Publisher,
		pool:        deps.Pool,
		navigator:   deps.Navigator,
		analyzer:    deps.Analyzer,
		prioritizer: deps.Prioritizer,
		synthesizer: deps.Synthesizer,
		costs:       deps.Costs,
		cfg:         cfg,
	}
}

// sessionRun is one executable cell of the persona x task matrix.
type sessionRun struct {
	sess    *ent.Session
	persona *ent.Persona
	task    *ent.Task
}

// RunStudy executes one study run and returns once the study is terminal.
// A complete study is a no-op; a failed one is retried from where it left
// off: finished sessions keep their results, failed ones are reset and
// rerun. The returned error is the fatal cause, for the job layer's retry
// policy; session-level failures never surface here.
func (o *Orchestrator) RunStudy(ctx context.Context, studyID, browserModeOverride string) error {
	log := slog.With("study_id", studyID)

	st, err := o.client.Study.Get(ctx, studyID)
	if err != nil {
		return fmt.Errorf("loading study %s: %w", studyID, err)
	}
	if st.Status == study.StatusComplete {
		log.Info("study already complete, skipping run")
		return nil
	}

	// A retried study must not surface live rows from its previous attempt.
	if err := o.states.ClearStudy(ctx, studyID); err != nil {
		return o.failStudy(ctx, studyID, "clearing live state: "+err.Error(), err)
	}

	startedAt := time.Now().UTC()
	st, err = o.client.Study.UpdateOneID(studyID).
		SetStatus(study.StatusRunning).
		SetStartedAt(startedAt).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return o.failStudy(ctx, studyID, "marking study running: "+err.Error(), err)
	}

	progress := newProgressTracker(o.publisher, studyID)
	progress.launching(ctx)

	runs, err := o.buildSessions(ctx, st)
	if err != nil {
		return o.failStudy(ctx, studyID, err.Error(), err)
	}
	progress.setTotal(len(runs))

	var preference string
	if st.BrowserMode != nil {
		preference = string(*st.BrowserMode)
	}
	mode := o.pool.ResolveMode(browserModeOverride, preference)
	log.Info("study run starting", "sessions", len(runs), "browser_mode", mode)

	o.runSessions(ctx, st, runs, mode, progress)

	if ctx.Err() != nil {
		// Live state stays in place for post-mortem; the TTL ages it out.
		return o.failStudy(ctx, studyID, "cancelled", ctx.Err())
	}

	if _, err := o.client.Study.UpdateOneID(studyID).SetStatus(study.StatusAnalyzing).Save(ctx); err != nil {
		return o.failStudy(ctx, studyID, "marking study analyzing: "+err.Error(), err)
	}
	o.publishStudyStatus(ctx, events.StudyStatusPayload{StudyID: studyID, Status: study.StatusAnalyzing})
	progress.analysis(ctx)

	if err := o.analyzeSessions(ctx, studyID, progress); err != nil {
		return o.failStudy(ctx, studyID, err.Error(), err)
	}

	if _, err := o.prioritizer.LinkRegressions(ctx, studyID); err != nil {
		return o.failStudy(ctx, studyID, "linking regressions: "+err.Error(), err)
	}
	prioritized, err := o.prioritizer.PrioritizeStudyIssues(ctx, studyID)
	if err != nil {
		return o.failStudy(ctx, studyID, "prioritizing issues: "+err.Error(), err)
	}

	progress.synthesis(ctx)
	synthesis, err := o.synthesizer.Synthesize(ctx, studyID)
	if err != nil {
		return o.failStudy(ctx, studyID, "synthesizing study: "+err.Error(), err)
	}

	costs := o.costs.Drain(studyID)
	costMap, err := costs.ToMap()
	if err != nil {
		return o.failStudy(ctx, studyID, "encoding cost breakdown: "+err.Error(), err)
	}
	duration := int(time.Since(startedAt).Seconds())
	if _, err := o.client.Study.UpdateOneID(studyID).
		SetStatus(study.StatusComplete).
		SetDurationSeconds(duration).
		SetCostBreakdown(costMap).
		Save(ctx); err != nil {
		return o.failStudy(ctx, studyID, "marking study complete: "+err.Error(), err)
	}
	progress.done(ctx)

	score := synthesis.OverallUXScore
	durationSeconds := int64(duration)
	o.publishStudyStatus(ctx, events.StudyStatusPayload{
		StudyID:          studyID,
		Status:           study.StatusComplete,
		OverallScore:     &score,
		ExecutiveSummary: synthesis.ExecutiveSummary,
		IssuesCount:      len(prioritized),
		DurationSeconds:  &durationSeconds,
		TotalCostUSD:     costs.TotalUSD,
	})
	log.Info("study complete",
		"score", score,
		"issues", len(prioritized),
		"duration_s", duration,
		"cost_usd", costs.TotalUSD)
	return nil
}

// buildSessions materializes the persona x task matrix and returns the
// sessions this run executes. Sessions that already reached a terminal
// verdict keep their results; pending ones are picked up as-is; failed
// ones are reset so the rerun records from step 1 again.
func (o *Orchestrator) buildSessions(ctx context.Context, st *ent.Study) ([]sessionRun, error) {
	personas, err := o.client.Persona.Query().
		Where(persona.StudyID(st.ID)).
		Order(ent.Asc(persona.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading personas: %w", err)
	}
	tasks, err := o.client.Task.Query().
		Where(task.StudyID(st.ID)).
		Order(ent.Asc(task.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	if len(personas) == 0 || len(tasks) == 0 {
		return nil, fmt.Errorf("study %s has %d personas and %d tasks, nothing to run", st.ID, len(personas), len(tasks))
	}

	existing, err := o.client.Session.Query().Where(session.StudyID(st.ID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading existing sessions: %w", err)
	}
	byPair := make(map[string]*ent.Session, len(existing))
	for _, s := range existing {
		byPair[s.PersonaID+"|"+s.TaskID] = s
	}

	tx, err := o.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening session build transaction: %w", err)
	}
	runs, err := buildSessionsTx(ctx, tx, st.ID, personas, tasks, byPair)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			slog.Warn("rolling back session build", "study_id", st.ID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing session build: %w", err)
	}
	return runs, nil
}

func buildSessionsTx(ctx context.Context, tx *ent.Tx, studyID string, personas []*ent.Persona, tasks []*ent.Task, byPair map[string]*ent.Session) ([]sessionRun, error) {
	var runs []sessionRun
	for _, p := range personas {
		for _, t := range tasks {
			prev := byPair[p.ID+"|"+t.ID]
			switch {
			case prev == nil:
				sess, err := tx.Session.Create().
					SetID(uuid.New().String()).
					SetStudyID(studyID).
					SetPersonaID(p.ID).
					SetTaskID(t.ID).
					Save(ctx)
				if err != nil {
					return nil, fmt.Errorf("creating session for persona %s task %s: %w", p.ID, t.ID, err)
				}
				runs = append(runs, sessionRun{sess: sess, persona: p, task: t})
			case prev.Status == session.StatusPending:
				runs = append(runs, sessionRun{sess: prev, persona: p, task: t})
			case prev.Status == session.StatusFailed:
				sess, err := resetSession(ctx, tx, prev)
				if err != nil {
					return nil, err
				}
				runs = append(runs, sessionRun{sess: sess, persona: p, task: t})
			default:
				// complete, gave_up and running sessions keep their outcome
			}
		}
	}
	return runs, nil
}

// resetSession returns a failed session to pending and drops the steps and
// issues its previous attempt recorded, so step numbering restarts at 1
// without tripping the (session_id, step_number) uniqueness.
func resetSession(ctx context.Context, tx *ent.Tx, prev *ent.Session) (*ent.Session, error) {
	if _, err := tx.Issue.Delete().Where(issue.SessionID(prev.ID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("dropping issues of session %s: %w", prev.ID, err)
	}
	if _, err := tx.Step.Delete().Where(step.SessionID(prev.ID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("dropping steps of session %s: %w", prev.ID, err)
	}
	sess, err := tx.Session.UpdateOneID(prev.ID).
		SetStatus(session.StatusPending).
		SetTotalSteps(0).
		SetTaskCompleted(false).
		ClearSummary().
		ClearEmotionalArc().
		ClearUxScore().
		ClearErrorMessage().
		ClearStartedAt().
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("resetting session %s: %w", prev.ID, err)
	}
	return sess, nil
}

// runSessions fans the runs out under the concurrency cap and returns once
// every launched session has terminated. Cancellation stops sessions still
// queued on the semaphore; those stay pending for the next attempt.
func (o *Orchestrator) runSessions(ctx context.Context, st *ent.Study, runs []sessionRun, mode browser.Mode, progress *progressTracker) {
	sem := semaphore.NewWeighted(int64(o.cfg.MaxConcurrentSessions))
	var wg sync.WaitGroup
	for _, run := range runs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				slog.Info("session skipped, run cancelled before start",
					"study_id", st.ID, "session_id", run.sess.ID)
				return
			}
			defer sem.Release(1)
			progress.sessionStarted(ctx)
			o.runSession(ctx, st, run, mode)
			progress.sessionFinished(ctx)
		}()
	}
	wg.Wait()
}

// runSession executes one session end to end: mark running, lease a page,
// navigate, persist the verdict. Every failure path lands in finishSession;
// panics are contained here so a hung selector engine or a driver bug
// cannot take sibling sessions down.
func (o *Orchestrator) runSession(ctx context.Context, st *ent.Study, run sessionRun, mode browser.Mode) {
	log := slog.With("study_id", st.ID, "session_id", run.sess.ID)
	var personaName string
	defer func() {
		if r := recover(); r != nil {
			log.Error("session run panicked", "panic", r, "stack", string(debug.Stack()))
			o.finishSession(ctx, st, run, personaName, navigator.Result{Err: fmt.Errorf("session panicked: %v", r)})
		}
	}()

	profile, err := models.PersonaProfileFromMap(run.persona.Profile)
	if err != nil {
		o.finishSession(ctx, st, run, "", navigator.Result{Err: fmt.Errorf("decoding persona profile: %w", err)})
		return
	}
	personaName = profile.Name

	if _, err := o.client.Session.UpdateOneID(run.sess.ID).
		SetStatus(session.StatusRunning).
		SetStartedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		o.finishSession(ctx, st, run, personaName, navigator.Result{Err: fmt.Errorf("marking session running: %w", err)})
		return
	}
	o.publishSessionStatus(ctx, st.ID, run.sess.ID, personaName, session.StatusRunning, false, 0)

	width, height := profile.Viewport()
	lease, err := o.pool.Acquire(ctx, mode, run.sess.ID, browser.PageOptions{
		Width:  width,
		Height: height,
		Mobile: profile.DevicePreference == models.DeviceMobile,
	})
	if err != nil {
		o.finishSession(ctx, st, run, personaName, navigator.Result{Err: fmt.Errorf("acquiring browser: %w", err)})
		return
	}
	defer lease.Release()

	active := true
	if err := o.states.Upsert(ctx, st.ID, models.SessionLiveState{
		SessionID:     run.sess.ID,
		PersonaName:   personaName,
		LiveViewURL:   lease.LiveViewURL,
		BrowserActive: &active,
	}); err != nil {
		log.Warn("seeding session live state", "error", err)
	}

	var model string
	if run.persona.ModelChoice != nil {
		model = *run.persona.ModelChoice
	}
	res := o.navigator.NavigateSession(ctx, navigator.Input{
		StudyID:   st.ID,
		SessionID: run.sess.ID,
		Persona:   profile,
		Model:     model,
		Task:      run.task.Description,
		StartURL:  startingURL(st),
		Page:      lease.Page,
	})
	o.finishSession(ctx, st, run, personaName, res)
}

// finishSession persists a session's terminal verdict and announces it.
// Writes run on a detached context so a cancelled run still records what
// happened.
func (o *Orchestrator) finishSession(ctx context.Context, st *ent.Study, run sessionRun, personaName string, res navigator.Result) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), terminalWriteTimeout)
	defer cancel()

	status := session.StatusComplete
	var errMsg string
	switch {
	case errors.Is(res.Err, context.Canceled):
		status = session.StatusFailed
		errMsg = "cancelled"
	case res.Err != nil:
		status = session.StatusFailed
		errMsg = res.Err.Error()
	case res.GaveUp:
		status = session.StatusGaveUp
	}

	upd := o.client.Session.UpdateOneID(run.sess.ID).
		SetStatus(status).
		SetTotalSteps(res.TotalSteps).
		SetTaskCompleted(res.TaskCompleted).
		SetCompletedAt(time.Now().UTC())
	if res.Summary != "" {
		upd.SetSummary(res.Summary)
	}
	if len(res.EmotionalArc) > 0 {
		upd.SetEmotionalArc(res.EmotionalArc)
	}
	if errMsg != "" {
		upd.SetErrorMessage(errMsg)
	}
	if _, err := upd.Save(wctx); err != nil {
		slog.Error("persisting terminal session state",
			"study_id", st.ID, "session_id", run.sess.ID, "status", status, "error", err)
		return
	}
	if res.Err != nil {
		slog.Warn("session failed", "study_id", st.ID, "session_id", run.sess.ID, "error", res.Err)
	}

	inactive := false
	if err := o.states.Upsert(wctx, st.ID, models.SessionLiveState{
		SessionID:     run.sess.ID,
		BrowserActive: &inactive,
	}); err != nil {
		slog.Warn("clearing live browser flag", "study_id", st.ID, "session_id", run.sess.ID, "error", err)
	}

	o.publishSessionStatus(wctx, st.ID, run.sess.ID, personaName, status, res.TaskCompleted, res.TotalSteps)
}

// analyzeSessions scores every terminal session that has not been analyzed
// yet. Sessions scored by a previous attempt keep their issues and score,
// which is what makes a study retry safe to re-enter here.
func (o *Orchestrator) analyzeSessions(ctx context.Context, studyID string, progress *progressTracker) error {
	sessions, err := o.client.Session.Query().
		Where(
			session.StudyID(studyID),
			session.StatusIn(session.StatusComplete, session.StatusGaveUp),
		).
		Order(ent.Asc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("loading sessions for analysis: %w", err)
	}
	for i, s := range sessions {
		if s.UxScore == nil {
			if _, err := o.analyzer.AnalyzeSession(ctx, s.ID); err != nil {
				return fmt.Errorf("analyzing session %s: %w", s.ID, err)
			}
		}
		progress.analysisStep(ctx, i+1, len(sessions))
	}
	return nil
}

// failStudy records a fatal failure, announces it, and returns the cause
// for the job layer's retry policy. Cancellation is normalized to the
// reason "cancelled" wherever in the pipeline it strikes.
func (o *Orchestrator) failStudy(ctx context.Context, studyID, msg string, cause error) error {
	if errors.Is(cause, context.Canceled) {
		msg = "cancelled"
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), terminalWriteTimeout)
	defer cancel()

	if _, err := o.client.Study.UpdateOneID(studyID).
		SetStatus(study.StatusFailed).
		SetErrorMessage(msg).
		Save(wctx); err != nil {
		slog.Error("marking study failed", "study_id", studyID, "error", err)
	}
	o.publishStudyStatus(wctx, events.StudyStatusPayload{
		StudyID: studyID,
		Status:  study.StatusFailed,
		Error:   msg,
	})
	slog.Error("study run failed", "study_id", studyID, "error", cause)
	return fmt.Errorf("study %s: %w", studyID, cause)
}

func (o *Orchestrator) publishStudyStatus(ctx context.Context, payload events.StudyStatusPayload) {
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	if err := o.publisher.PublishStudyStatus(ctx, payload); err != nil {
		slog.Warn("publishing study status",
			"study_id", payload.StudyID, "status", payload.Status, "error", err)
	}
}

func (o *Orchestrator) publishSessionStatus(ctx context.Context, studyID, sessionID, personaName string, status session.Status, taskCompleted bool, totalSteps int) {
	payload := events.SessionStatusPayload{
		StudyID:       studyID,
		SessionID:     sessionID,
		PersonaName:   personaName,
		Status:        status,
		TaskCompleted: taskCompleted,
		TotalSteps:    totalSteps,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := o.publisher.PublishSessionStatus(ctx, payload); err != nil {
		slog.Warn("publishing session status", "session_id", sessionID, "status", status, "error", err)
	}
}

// startingURL joins the study's site root with its starting path.
func startingURL(st *ent.Study) string {
	base := strings.TrimRight(st.URL, "/")
	path := st.StartingPath
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
