// Package recorder persists navigation steps durably and mirrors each one to
// live subscribers in the same logical operation.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/pkg/blob"
	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/livestate"
	"github.com/wanderlens/wanderlens/pkg/models"
)

// ErrStepConflict means a row for (session_id, step_number) already exists.
// The unique constraint makes insertion at-most-once; a conflict is a loop
// bug or a crashed-and-retried session replaying history, and the caller
// must stop rather than overwrite.
var ErrStepConflict = errors.New("step already recorded")

// Recorder writes one step per call: screenshot to blob storage, step row
// plus inline issues in one transaction with the session:step notification,
// then the live-state upsert. The notification rides the insert transaction,
// so subscribers never see a step that did not commit.
type Recorder struct {
	client    *ent.Client
	blobs     *blob.Store
	states    *livestate.Store
	publisher *events.EventPublisher
}

// NewRecorder creates a Recorder.
func NewRecorder(client *ent.Client, blobs *blob.Store, states *livestate.Store, publisher *events.EventPublisher) *Recorder {
	return &Recorder{client: client, blobs: blobs, states: states, publisher: publisher}
}

// StepInput is everything RecordStep persists for one navigation step.
type StepInput struct {
	StudyID     string
	SessionID   string
	PersonaName string
	StepNumber  int

	Decision    models.Decision
	Observation models.Observation
	Outcome     models.ActionOutcome
}

// RecordStep persists the step and returns its id.
//
// Order: (1) screenshot to blob storage, (2) step row + inline issues +
// session:step notify in one transaction, (3) live-state upsert. The upsert
// is best-effort — a failure there degrades the live view, not the study.
func (r *Recorder) RecordStep(ctx context.Context, in StepInput) (string, error) {
	screenshotRef := ""
	if len(in.Observation.Screenshot) > 0 {
		screenshotRef = blob.ScreenshotPath(in.StudyID, in.SessionID, in.StepNumber)
		if err := r.blobs.Put(screenshotRef, in.Observation.Screenshot); err != nil {
			return "", fmt.Errorf("persisting step screenshot: %w", err)
		}
	}

	stepID, err := r.insertStep(ctx, in, screenshotRef)
	if err != nil {
		return "", err
	}

	if err := r.states.Upsert(ctx, in.StudyID, r.liveUpdate(in, screenshotRef)); err != nil {
		slog.Warn("Live-state upsert failed after step insert",
			"study_id", in.StudyID, "session_id", in.SessionID,
			"step_number", in.StepNumber, "error", err)
	}

	return stepID, nil
}

// insertStep writes the step row and its inline issues, publishing the
// session:step event inside the same transaction so the NOTIFY fires only
// on commit.
func (r *Recorder) insertStep(ctx context.Context, in StepInput, screenshotRef string) (string, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("beginning step transaction: %w", err)
	}

	stepID, err := r.insertStepTx(ctx, tx, in, screenshotRef)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Warn("Step transaction rollback failed", "session_id", in.SessionID, "error", rbErr)
		}
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing step %d for session %s: %w", in.StepNumber, in.SessionID, err)
	}
	return stepID, nil
}

func (r *Recorder) insertStepTx(ctx context.Context, tx *ent.Tx, in StepInput, screenshotRef string) (string, error) {
	stepID := uuid.New().String()

	create := tx.Step.Create().
		SetID(stepID).
		SetSessionID(in.SessionID).
		SetStepNumber(in.StepNumber).
		SetPageURL(in.Observation.URL).
		SetPageTitle(in.Observation.Title).
		SetScreenshotRef(screenshotRef).
		SetThinkAloud(in.Decision.ThinkAloud).
		SetAction(in.Decision.Action.ToMap()).
		SetConfidence(in.Decision.Confidence).
		SetTaskProgress(in.Decision.TaskProgress).
		SetEmotionalState(step.EmotionalState(in.Decision.EmotionalState)).
		SetViewportW(in.Observation.ViewportW).
		SetViewportH(in.Observation.ViewportH).
		SetScrollY(in.Observation.ScrollY).
		SetMaxScrollY(in.Observation.MaxScrollY)

	if in.Outcome.ClickX != nil {
		create.SetClickX(*in.Outcome.ClickX)
	}
	if in.Outcome.ClickY != nil {
		create.SetClickY(*in.Outcome.ClickY)
	}
	if in.Observation.LoadTimeMs > 0 {
		create.SetLoadTimeMs(in.Observation.LoadTimeMs)
	}
	if in.Observation.FirstPaintMs > 0 {
		create.SetFirstPaintMs(in.Observation.FirstPaintMs)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return "", fmt.Errorf("session %s step %d: %w", in.SessionID, in.StepNumber, ErrStepConflict)
		}
		return "", fmt.Errorf("inserting step %d for session %s: %w", in.StepNumber, in.SessionID, err)
	}

	for _, ux := range in.Decision.UXIssues {
		ux.Normalize()
		pageURL := ux.PageURL
		if pageURL == "" {
			pageURL = in.Observation.URL
		}
		_, err := tx.Issue.Create().
			SetID(uuid.New().String()).
			SetStudyID(in.StudyID).
			SetSessionID(in.SessionID).
			SetStepID(stepID).
			SetElement(ux.Element).
			SetDescription(ux.Description).
			SetSeverity(issue.Severity(ux.Severity)).
			SetIssueType(issue.IssueType(ux.IssueType)).
			SetHeuristic(ux.Heuristic).
			SetWcagCriterion(ux.WCAGCriterion).
			SetRecommendation(ux.Recommendation).
			SetPageURL(pageURL).
			Save(ctx)
		if err != nil {
			return "", fmt.Errorf("inserting inline issue for step %d: %w", in.StepNumber, err)
		}
	}

	payload := events.SessionStepPayload{
		StudyID:        in.StudyID,
		SessionID:      in.SessionID,
		StepID:         stepID,
		StepNumber:     in.StepNumber,
		URL:            in.Observation.URL,
		Action:         in.Decision.Action.ToMap(),
		ThinkAloud:     in.Decision.ThinkAloud,
		EmotionalState: in.Decision.EmotionalState,
		Confidence:     in.Decision.Confidence,
		TaskProgress:   in.Decision.TaskProgress,
		ScreenshotURL:  screenshotRef,
		IssueCount:     len(in.Decision.UXIssues),
		Timestamp:      time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := r.publisher.PublishSessionStep(ctx, tx, payload); err != nil {
		return "", fmt.Errorf("publishing step event: %w", err)
	}

	return stepID, nil
}

// liveUpdate builds the per-session live-state delta for this step.
func (r *Recorder) liveUpdate(in StepInput, screenshotRef string) models.SessionLiveState {
	stepNumber := in.StepNumber
	progress := in.Decision.TaskProgress
	active := true
	return models.SessionLiveState{
		SessionID:      in.SessionID,
		PersonaName:    in.PersonaName,
		StepNumber:     &stepNumber,
		EmotionalState: in.Decision.EmotionalState,
		BrowserActive:  &active,
		Action:         describeAction(in.Decision.Action),
		ThinkAloud:     in.Decision.ThinkAloud,
		ScreenshotURL:  screenshotRef,
		TaskProgress:   &progress,
	}
}

// describeAction renders an action as the short label live viewers see,
// e.g. "click #checkout-button" or "scroll".
func describeAction(a models.Action) string {
	parts := []string{string(a.Type)}
	if a.Selector != "" {
		parts = append(parts, a.Selector)
	} else if a.Value != "" && a.Type == models.ActionGoto {
		parts = append(parts, a.Value)
	}
	return strings.Join(parts, " ")
}
