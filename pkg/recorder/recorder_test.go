package recorder

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/pkg/blob"
	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/livestate"
	"github.com/wanderlens/wanderlens/pkg/models"
	testdb "github.com/wanderlens/wanderlens/test/database"
	testutil "github.com/wanderlens/wanderlens/test/util"
)

type recorderEnv struct {
	recorder  *Recorder
	blobs     *blob.Store
	states    *livestate.Store
	studyID   string
	sessionID string
	persona   string
}

func setupRecorder(t *testing.T) *recorderEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	blobs, err := blob.NewStore(t.TempDir())
	require.NoError(t, err)
	states := livestate.NewStore(client.DB(), time.Minute)
	publisher := events.NewEventPublisher(client.DB())

	study, persona, _, session := testutil.SeedSessionChain(t, client.Client, "https://example.com")

	profile, err := models.PersonaProfileFromMap(persona.Profile)
	require.NoError(t, err)

	return &recorderEnv{
		recorder:  NewRecorder(client.Client, blobs, states, publisher),
		blobs:     blobs,
		states:    states,
		studyID:   study.ID,
		sessionID: session.ID,
		persona:   profile.Name,
	}
}

func stepInput(env *recorderEnv, stepNumber int) StepInput {
	clickX, clickY := 320, 480
	return StepInput{
		StudyID:     env.studyID,
		SessionID:   env.sessionID,
		PersonaName: env.persona,
		StepNumber:  stepNumber,
		Decision: models.Decision{
			ThinkAloud:     "The pricing link is in the header, clicking it.",
			EmotionalState: models.EmotionCurious,
			Action:         models.Action{Type: models.ActionClick, Selector: "#pricing"},
			Confidence:     0.9,
			TaskProgress:   40,
		},
		Observation: models.Observation{
			URL:          "https://example.com/",
			Title:        "Example",
			ViewportW:    1440,
			ViewportH:    900,
			ScrollY:      0,
			MaxScrollY:   1800,
			LoadTimeMs:   512,
			FirstPaintMs: 210,
			Screenshot:   []byte("\x89PNGfake"),
		},
		Outcome: models.ActionOutcome{ClickX: &clickX, ClickY: &clickY},
	}
}

func TestRecordStepPersistsRowAndScreenshot(t *testing.T) {
	env := setupRecorder(t)
	ctx := context.Background()

	stepID, err := env.recorder.RecordStep(ctx, stepInput(env, 1))
	require.NoError(t, err)
	require.NotEmpty(t, stepID)

	row, err := env.recorder.client.Step.Get(ctx, stepID)
	require.NoError(t, err)
	assert.Equal(t, env.sessionID, row.SessionID)
	assert.Equal(t, 1, row.StepNumber)
	assert.Equal(t, "https://example.com/", row.PageURL)
	assert.Equal(t, "click", row.Action["type"])
	assert.Equal(t, step.EmotionalStateCurious, row.EmotionalState)
	assert.Equal(t, 0.9, row.Confidence)
	assert.Equal(t, 40, row.TaskProgress)
	require.NotNil(t, row.ClickX)
	assert.Equal(t, 320, *row.ClickX)
	require.NotNil(t, row.LoadTimeMs)
	assert.Equal(t, 512, *row.LoadTimeMs)

	expectedRef := blob.ScreenshotPath(env.studyID, env.sessionID, 1)
	assert.Equal(t, expectedRef, row.ScreenshotRef)
	data, err := env.blobs.Get(expectedRef)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNGfake"), data)
}

func TestRecordStepDuplicateNumberConflicts(t *testing.T) {
	env := setupRecorder(t)
	ctx := context.Background()

	_, err := env.recorder.RecordStep(ctx, stepInput(env, 1))
	require.NoError(t, err)

	_, err = env.recorder.RecordStep(ctx, stepInput(env, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStepConflict)

	// At-most-once: still exactly one row for step 1.
	count, err := env.recorder.client.Step.Query().
		Where(step.SessionID(env.sessionID), step.StepNumber(1)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordStepPersistsInlineIssues(t *testing.T) {
	env := setupRecorder(t)
	ctx := context.Background()

	in := stepInput(env, 1)
	in.Decision.UXIssues = []models.UXIssue{
		{
			Element:     "#signup-form",
			Description: "Error text disappears before it can be read",
			Severity:    models.SeverityMajor,
			IssueType:   models.IssueTypeUX,
		},
		{
			Description: "Contrast on the hero text is below 4.5:1",
			Severity:    "bogus", // normalized to minor
		},
	}

	stepID, err := env.recorder.RecordStep(ctx, in)
	require.NoError(t, err)

	issues, err := env.recorder.client.Issue.Query().
		Where(issue.StudyID(env.studyID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	for _, row := range issues {
		assert.Equal(t, env.sessionID, row.SessionID)
		assert.Equal(t, stepID, row.StepID)
		assert.Equal(t, "https://example.com/", row.PageURL)
	}

	bySeverity := map[issue.Severity]int{}
	for _, row := range issues {
		bySeverity[row.Severity]++
	}
	assert.Equal(t, 1, bySeverity[issue.SeverityMajor])
	assert.Equal(t, 1, bySeverity[issue.SeverityMinor])
}

func TestRecordStepUpdatesLiveState(t *testing.T) {
	env := setupRecorder(t)
	ctx := context.Background()

	// Session start seeded live_view_url; the step update must not clear it.
	require.NoError(t, env.states.Upsert(ctx, env.studyID, models.SessionLiveState{
		SessionID:   env.sessionID,
		LiveViewURL: "https://provider.example/live/xyz",
	}))

	in := stepInput(env, 1)
	_, err := env.recorder.RecordStep(ctx, in)
	require.NoError(t, err)

	rows, err := env.states.Snapshot(ctx, env.studyID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	var state models.SessionLiveState
	require.NoError(t, json.Unmarshal(rows[0].State, &state))
	assert.Equal(t, env.sessionID, state.SessionID)
	require.NotNil(t, state.StepNumber)
	assert.Equal(t, 1, *state.StepNumber)
	assert.Equal(t, models.EmotionCurious, state.EmotionalState)
	assert.Equal(t, "click #pricing", state.Action)
	assert.Equal(t, "https://provider.example/live/xyz", state.LiveViewURL)
	require.NotNil(t, state.TaskProgress)
	assert.Equal(t, 40, *state.TaskProgress)
	assert.Equal(t, blob.ScreenshotPath(env.studyID, env.sessionID, 1), state.ScreenshotURL)
}

func TestRecordStepWithoutScreenshot(t *testing.T) {
	env := setupRecorder(t)
	ctx := context.Background()

	in := stepInput(env, 1)
	in.Observation.Screenshot = nil

	stepID, err := env.recorder.RecordStep(ctx, in)
	require.NoError(t, err)

	row, err := env.recorder.client.Step.Get(ctx, stepID)
	require.NoError(t, err)
	assert.Empty(t, row.ScreenshotRef)
}
