// Package navigator runs a single persona session: a bounded
// observe → decide → act loop against a live page, recording every step as
// it lands. The loop owns session-level failure policy (timeouts, blocker
// walls, repeated action failures) and reports a terminal Result; persisting
// the session row is the caller's job.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/wanderlens/wanderlens/pkg/browser"
	"github.com/wanderlens/wanderlens/pkg/config"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
	"github.com/wanderlens/wanderlens/pkg/recorder"
)

// maxOutlineElements bounds the DOM outline included in decision prompts.
const maxOutlineElements = 60

// decisionRetryInitial and decisionRetryMax shape the backoff applied to
// transient decision-model failures. Retries wait out provider hiccups
// without consuming navigation steps.
const (
	decisionRetryInitial = 1 * time.Second
	decisionRetryMax     = 30 * time.Second
)

// StepRecorder persists one navigation step. Satisfied by *recorder.Recorder.
type StepRecorder interface {
	RecordStep(ctx context.Context, in recorder.StepInput) (string, error)
}

// Navigator drives persona sessions. One Navigator serves all sessions of a
// worker; per-session state lives on the stack of NavigateSession.
type Navigator struct {
	llm      llm.Client
	recorder StepRecorder
	cfg      config.StudyConfig

	retryInitial time.Duration
	retryMax     time.Duration
}

// NewNavigator creates a Navigator.
func NewNavigator(client llm.Client, rec StepRecorder, cfg config.StudyConfig) *Navigator {
	return &Navigator{
		llm:          client,
		recorder:     rec,
		cfg:          cfg,
		retryInitial: decisionRetryInitial,
		retryMax:     decisionRetryMax,
	}
}

// Input identifies the session and hands the navigator its leased page.
type Input struct {
	StudyID   string
	SessionID string
	Persona   models.PersonaProfile
	Model     string // persona model override, may be empty
	Task      string
	StartURL  string
	Page      browser.PageDriver
}

// Result is the terminal outcome of a session loop.
//
// Err is set only for infrastructure failures (browser gone, storage
// refusing writes, run cancelled); the caller marks those sessions failed.
// Persona outcomes, including giving up, are not errors.
type Result struct {
	TaskCompleted bool
	GaveUp        bool
	TotalSteps    int
	Summary       string
	EmotionalArc  []string
	Err           error
}

// NavigateSession runs the loop until the persona finishes, gives up, hits a
// blocker, exhausts the step budget, or times out. The session timeout is
// applied here so every blocking call below shares one deadline.
func (n *Navigator) NavigateSession(ctx context.Context, in Input) Result {
	ctx, cancel := context.WithTimeout(ctx, n.cfg.SessionTimeout)
	defer cancel()

	log := slog.With("study_id", in.StudyID, "session_id", in.SessionID, "persona", in.Persona.Name)

	arc := &emotionalArc{}
	state := &loopState{}
	guard := &diffGuard{}
	history := make([]llm.StepDigest, 0, n.cfg.MaxStepsPerSession)
	execCfg := browser.ExecutorConfig{
		PerActionTimeout: n.cfg.PerActionTimeout,
		Retries:          n.cfg.ActionRetries,
	}

	if err := in.Page.Goto(ctx, in.StartURL); err != nil {
		if r, done := n.interrupted(ctx, arc, 0); done {
			return r
		}
		return n.finish(Result{Err: fmt.Errorf("loading start url %s: %w", in.StartURL, err)}, arc, 0)
	}

	var (
		lastURL      string
		lastProgress int
		blockerNote  string
		recorded     int
	)

	for stepNum := 1; stepNum <= n.cfg.MaxStepsPerSession; stepNum++ {
		if r, done := n.interrupted(ctx, arc, recorded); done {
			return r
		}

		obs, err := n.observe(ctx, in.Page, lastURL)
		if err != nil {
			if r, done := n.interrupted(ctx, arc, recorded); done {
				return r
			}
			return n.finish(Result{Err: fmt.Errorf("observing page at step %d: %w", stepNum, err)}, arc, recorded)
		}
		lastURL = obs.URL
		stuck := guard.observe(obs.Screenshot)
		if stuck {
			log.Debug("page visually static, hinting model", "step", stepNum, "url", obs.URL)
		}

		decision, diagnostic, err := n.decide(ctx, in, stepNum, history, obs, stuck, blockerNote, lastProgress)
		blockerNote = ""
		if err != nil {
			if r, done := n.interrupted(ctx, arc, recorded); done {
				return r
			}
			return n.finish(Result{Err: fmt.Errorf("deciding step %d: %w", stepNum, err)}, arc, recorded)
		}
		decision.Clamp()

		var outcome models.ActionOutcome
		var actErr error
		if !diagnostic && !decision.Action.Terminal() {
			outcome, actErr = browser.ExecuteAction(ctx, in.Page, decision.Action, execCfg)
		}
		if r, done := n.interrupted(ctx, arc, recorded); done {
			return r
		}

		outcomeNote := "ok"
		if actErr != nil {
			outcomeNote = shorten(actErr.Error(), 200)
			state.recordFailure(outcomeNote, browser.IsActionTimeout(actErr))
			blockerNote = fmt.Sprintf("your previous %s action failed (%s); try a different element or approach", decision.Action.Type, outcomeNote)
			log.Warn("action failed", "step", stepNum, "action", decision.Action.Type, "selector", decision.Action.Selector, "error", actErr)
		} else if !diagnostic {
			state.recordSuccess()
		}
		if diagnostic {
			blockerNote = "your previous response could not be parsed; reply with a single valid JSON decision object"
		}

		if _, err := n.recorder.RecordStep(ctx, recorder.StepInput{
			StudyID:     in.StudyID,
			SessionID:   in.SessionID,
			PersonaName: in.Persona.Name,
			StepNumber:  stepNum,
			Decision:    *decision,
			Observation: obs,
			Outcome:     outcome,
		}); err != nil {
			if r, done := n.interrupted(ctx, arc, recorded); done {
				return r
			}
			return n.finish(Result{Err: fmt.Errorf("recording step %d: %w", stepNum, err)}, arc, recorded)
		}
		recorded = stepNum
		arc.add(decision.EmotionalState, obs.URL)
		history = append(history, llm.StepDigest{
			StepNumber: stepNum,
			Action:     decision.Action,
			ThinkAloud: shorten(decision.ThinkAloud, 140),
			Emotion:    decision.EmotionalState,
			URL:        obs.URL,
			Outcome:    outcomeNote,
		})
		lastProgress = decision.TaskProgress

		if actErr != nil && !browser.IsActionTimeout(actErr) {
			return n.finish(Result{Err: fmt.Errorf("executing step %d: %w", stepNum, actErr)}, arc, recorded)
		}
		if state.shouldAbortOnFailures() {
			return n.finish(Result{
				Err: fmt.Errorf("%d consecutive actions timed out, last: %s", maxConsecutiveActionFailures, state.lastErrorMessage),
			}, arc, recorded)
		}

		if b := detectBlocker(ctx, in.Page); b != nil {
			log.Info("session blocked", "step", stepNum, "kind", b.kind, "url", obs.URL)
			n.recordBlockerStep(ctx, in, stepNum+1, obs, lastProgress, b)
			arc.add(models.EmotionFrustrated, obs.URL)
			return n.finish(Result{
				GaveUp:  true,
				Summary: fmt.Sprintf("Gave up after %d steps: %s.", stepNum+1, b.note),
			}, arc, recorded+1)
		}

		if decision.Action.Type == models.ActionDone || decision.TaskProgress >= 100 {
			return n.finish(Result{
				TaskCompleted: true,
				Summary:       fmt.Sprintf("Completed the task in %d steps.", recorded),
			}, arc, recorded)
		}
		if decision.Action.Type == models.ActionGiveUp {
			reason := decision.Action.Description
			if reason == "" {
				reason = shorten(decision.ThinkAloud, 140)
			}
			if reason == "" {
				reason = "the persona quit"
			}
			return n.finish(Result{
				GaveUp:  true,
				Summary: fmt.Sprintf("Gave up after %d steps: %s", recorded, reason),
			}, arc, recorded)
		}
	}

	return n.finish(Result{
		GaveUp:  true,
		Summary: fmt.Sprintf("Exhausted the step budget (%d steps) without completing the task.", n.cfg.MaxStepsPerSession),
	}, arc, recorded)
}

// observe assembles the pre-decision view of the page. URL and screenshot
// are required; everything else degrades to its zero value so a flaky page
// costs detail, not the step. Consent banners are dismissed whenever the
// URL moved since the last look.
func (n *Navigator) observe(ctx context.Context, page browser.PageDriver, prevURL string) (models.Observation, error) {
	url, err := page.URL(ctx)
	if err != nil {
		return models.Observation{}, fmt.Errorf("reading url: %w", err)
	}
	if url != prevURL {
		browser.DismissConsent(ctx, page)
		if u, err := page.URL(ctx); err == nil {
			url = u
		}
	}

	obs := models.Observation{URL: url}
	obs.ViewportW, obs.ViewportH = page.ViewportSize()

	if title, err := page.Title(ctx); err == nil {
		obs.Title = title
	}
	if y, max, err := page.ScrollPosition(ctx); err == nil {
		obs.ScrollY, obs.MaxScrollY = y, max
	}
	if outline, err := page.Outline(ctx, maxOutlineElements); err == nil {
		obs.DOMOutline = outline
	} else {
		slog.Debug("dom outline unavailable", "url", url, "error", err)
	}
	if t, err := page.Timing(ctx); err == nil {
		if t.LoadMs > 0 {
			obs.LoadTimeMs = t.LoadMs
		}
		if t.FirstPaintMs > 0 {
			obs.FirstPaintMs = t.FirstPaintMs
		}
	}

	shot, err := page.Screenshot(ctx)
	if err != nil {
		return models.Observation{}, fmt.Errorf("capturing screenshot: %w", err)
	}
	obs.Screenshot = shot
	return obs, nil
}

// decide asks the model for the next step, waiting out transient provider
// failures with exponential backoff. Malformed model output is downgraded to
// a diagnostic wait step (second return true) so one bad response does not
// kill the session.
func (n *Navigator) decide(ctx context.Context, in Input, stepNum int, history []llm.StepDigest, obs models.Observation, stuck bool, blockerNote string, lastProgress int) (*models.Decision, bool, error) {
	req := llm.DecisionInput{
		StudyID:     in.StudyID,
		SessionID:   in.SessionID,
		Model:       in.Model,
		Persona:     in.Persona,
		Task:        in.Task,
		StepNumber:  stepNum,
		MaxSteps:    n.cfg.MaxStepsPerSession,
		History:     history,
		Observation: obs,
		StuckHint:   stuck,
		BlockerNote: blockerNote,
	}

	var decision *models.Decision
	op := func() error {
		d, err := n.llm.NavigateDecision(ctx, req)
		if err != nil {
			if llm.IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		decision = d
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = n.retryInitial
	b.MaxInterval = n.retryMax
	b.MaxElapsedTime = 0

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		var schemaErr *llm.SchemaError
		if errors.As(err, &schemaErr) {
			slog.Warn("model returned malformed decision, recording diagnostic step",
				"session_id", in.SessionID, "step", stepNum, "error", schemaErr)
			return diagnosticDecision(lastProgress), true, nil
		}
		return nil, false, err
	}
	return decision, false, nil
}

// diagnosticDecision is the placeholder recorded when the model's output
// could not be parsed. It holds the last known progress and executes nothing.
func diagnosticDecision(progress int) *models.Decision {
	return &models.Decision{
		ThinkAloud:     "(decision unavailable: the model returned malformed output)",
		EmotionalState: models.EmotionConfused,
		Action:         models.Action{Type: models.ActionWait, Description: "decision discarded, retrying next step"},
		Confidence:     0,
		TaskProgress:   progress,
	}
}

// recordBlockerStep persists the synthetic give-up step emitted when a
// blocker wall ends the session. Best-effort: the session is terminal either
// way, so persistence failures are logged, never escalated.
func (n *Navigator) recordBlockerStep(ctx context.Context, in Input, stepNum int, obs models.Observation, progress int, b *blocker) {
	blockObs := obs
	blockObs.Screenshot = nil
	if url, err := in.Page.URL(ctx); err == nil {
		blockObs.URL = url
	}
	if shot, err := in.Page.Screenshot(ctx); err == nil {
		blockObs.Screenshot = shot
	}

	dec := models.Decision{
		ThinkAloud:     "I can't get past this: " + b.note + ".",
		EmotionalState: models.EmotionFrustrated,
		Action:         models.Action{Type: models.ActionGiveUp, Description: b.note},
		Confidence:     1,
		TaskProgress:   progress,
	}
	if _, err := n.recorder.RecordStep(ctx, recorder.StepInput{
		StudyID:     in.StudyID,
		SessionID:   in.SessionID,
		PersonaName: in.Persona.Name,
		StepNumber:  stepNum,
		Decision:    dec,
		Observation: blockObs,
	}); err != nil {
		slog.Warn("recording blocker step failed", "session_id", in.SessionID, "step", stepNum, "error", err)
	}
}

// interrupted translates a dead context into the session's terminal result.
// Hitting the session deadline is persona-visible behavior (they ran out of
// time and gave up); cancellation is surfaced as an error so the caller can
// mark the run failed.
func (n *Navigator) interrupted(ctx context.Context, arc *emotionalArc, recorded int) (Result, bool) {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return n.finish(Result{
			GaveUp:  true,
			Summary: fmt.Sprintf("Session timed out after %d steps.", recorded),
		}, arc, recorded), true
	case ctx.Err() != nil:
		return n.finish(Result{Err: ctx.Err()}, arc, recorded), true
	}
	return Result{}, false
}

// finish stamps the shared terminal fields onto a result.
func (n *Navigator) finish(res Result, arc *emotionalArc, recorded int) Result {
	res.TotalSteps = recorded
	res.EmotionalArc = arc.sequence()
	if url := arc.peakFrustrationURL(); url != "" && res.Summary != "" {
		res.Summary += " Frustration peaked at " + url + "."
	}
	return res
}

func shorten(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
