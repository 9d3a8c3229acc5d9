package orchestrator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/pkg/analysis"
	"github.com/wanderlens/wanderlens/pkg/blob"
	"github.com/wanderlens/wanderlens/pkg/browser"
	"github.com/wanderlens/wanderlens/pkg/config"
	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/livestate"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
	"github.com/wanderlens/wanderlens/pkg/navigator"
	"github.com/wanderlens/wanderlens/pkg/recorder"
	testdb "github.com/wanderlens/wanderlens/test/database"
	testutil "github.com/wanderlens/wanderlens/test/util"
)

type orchEnv struct {
	client *ent.Client
	states *livestate.Store
	stub   *llm.StubClient
	fake   *browser.FakeBackend
	orch   *Orchestrator
}

func testStudyConfig() config.StudyConfig {
	return config.StudyConfig{
		MaxConcurrentSessions: 5,
		MaxStepsPerSession:    10,
		StudyTimeout:          time.Minute,
		SessionTimeout:        time.Minute,
		PerActionTimeout:      5 * time.Second,
		ActionRetries:         1,
	}
}

// setupOrchestrator wires a full pipeline against a test database: real
// recorder, navigator and analysis components, a fake browser backend and a
// stub LLM. Tests seed their own persona x task matrix.
func setupOrchestrator(t *testing.T, cfg config.StudyConfig) *orchEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	blobs, err := blob.NewStore(t.TempDir())
	require.NoError(t, err)

	states := livestate.NewStore(client.DB(), 6*time.Hour)
	publisher := events.NewEventPublisher(client.DB())
	stub := &llm.StubClient{}

	fake := browser.NewFakeBackend()
	pool := browser.NewPoolWithBackends(config.BrowserConfig{
		DefaultMode:      "local",
		AcquireTimeout:   10 * time.Second,
		FailoverCooldown: time.Minute,
		FailureThreshold: 3,
		FailureWindow:    5 * time.Minute,
	}, cfg.MaxConcurrentSessions, fake, nil)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = pool.Shutdown(ctx)
	})

	rec := recorder.NewRecorder(client.Client, blobs, states, publisher)

	orch := New(Deps{
		Client:      client.Client,
		States:      states,
		Publisher:   publisher,
		Pool:        pool,
		Navigator:   navigator.NewNavigator(stub, rec, cfg),
		Analyzer:    analysis.NewAnalyzer(client.Client, blobs, stub),
		Prioritizer: analysis.NewPrioritizer(client.Client),
		Synthesizer: analysis.NewSynthesizer(client.Client, stub),
		Costs:       llm.NewCostTracker(),
	}, cfg)

	return &orchEnv{client: client.Client, states: states, stub: stub, fake: fake, orch: orch}
}

// twoStepDecisions scripts a click on step 1 and a done verdict on step 2.
func twoStepDecisions(in llm.DecisionInput) (*models.Decision, error) {
	if in.StepNumber == 1 {
		return &models.Decision{
			ThinkAloud:     "Let me look for the pricing link.",
			EmotionalState: models.EmotionCurious,
			Action:         models.Action{Type: models.ActionClick, Selector: "#cta"},
			Confidence:     0.8,
			TaskProgress:   40,
		}, nil
	}
	return &models.Decision{
		ThinkAloud:     "Found it.",
		EmotionalState: models.EmotionSatisfied,
		Action:         models.Action{Type: models.ActionDone, Description: "Task complete"},
		Confidence:     0.95,
		TaskProgress:   100,
	}, nil
}

func immediateDone(in llm.DecisionInput) (*models.Decision, error) {
	return &models.Decision{
		ThinkAloud:     "This is exactly what I needed.",
		EmotionalState: models.EmotionSatisfied,
		Action:         models.Action{Type: models.ActionDone},
		Confidence:     0.9,
		TaskProgress:   100,
	}, nil
}

func TestRunStudyCompletesEndToEnd(t *testing.T) {
	env := setupOrchestrator(t, testStudyConfig())
	env.fake.LiveViewURL = "https://live.browser.dev/w/1"

	st := testutil.SeedStudy(t, env.client, "https://example.com")
	testutil.SeedPersona(t, env.client, st.ID, "Maya")
	testutil.SeedPersona(t, env.client, st.ID, "Ben")
	testutil.SeedTask(t, env.client, st.ID, "Find the pricing page", 0)

	env.stub.DecisionFn = twoStepDecisions
	env.stub.AnalyzeFn = func(in llm.AnalyzeInput) (*llm.PageAnalysis, error) {
		return &llm.PageAnalysis{
			Summary: "Navigation could breathe more.",
			Issues: []models.UXIssue{{
				Element:     "#nav",
				Description: "Navigation bar is cramped",
				Severity:    models.SeverityMinor,
				IssueType:   models.IssueTypeUX,
			}},
		}, nil
	}
	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return &models.StudySynthesis{
			OverallUXScore:   82,
			ExecutiveSummary: "Overall the site held up well across personas.",
			Recommendations: []models.Recommendation{{
				Title:       "Loosen the navigation spacing",
				Description: "Both personas fought the cramped nav.",
				Impact:      "medium",
				Effort:      "low",
			}},
		}, nil
	}

	ctx := context.Background()
	require.NoError(t, env.orch.RunStudy(ctx, st.ID, ""))

	got, err := env.client.Study.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, study.StatusComplete, got.Status)
	require.NotNil(t, got.OverallScore)
	assert.Equal(t, 82, *got.OverallScore)
	require.NotNil(t, got.ExecutiveSummary)
	assert.Contains(t, *got.ExecutiveSummary, "held up well")
	assert.Nil(t, got.ErrorMessage)
	assert.NotNil(t, got.StartedAt)
	require.NotNil(t, got.DurationSeconds)
	assert.GreaterOrEqual(t, *got.DurationSeconds, 0)
	assert.Contains(t, got.CostBreakdown, "total_usd")

	sessions, err := env.client.Session.Query().Where(session.StudyID(st.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	for _, s := range sessions {
		assert.Equal(t, session.StatusComplete, s.Status)
		assert.True(t, s.TaskCompleted)
		assert.Equal(t, 2, s.TotalSteps)
		require.NotNil(t, s.Summary)
		assert.Equal(t, "Completed the task in 2 steps.", *s.Summary)
		assert.Equal(t, []string{"curious", "satisfied"}, s.EmotionalArc)
		require.NotNil(t, s.UxScore, "analysis must stamp every terminal session")
		assert.Equal(t, 97, *s.UxScore) // 100 minus one minor issue
		assert.NotNil(t, s.StartedAt)
		assert.NotNil(t, s.CompletedAt)

		steps, err := env.client.Step.Query().Where(step.SessionID(s.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, steps)
	}

	// One analysis per session (one distinct URL each), persona context intact.
	require.Len(t, env.stub.AnalyzeCalls, 2)
	names := []string{env.stub.AnalyzeCalls[0].Personas[0], env.stub.AnalyzeCalls[1].Personas[0]}
	assert.ElementsMatch(t, []string{"Maya", "Ben"}, names)

	// The same issue from two personas groups together: 10 base + 2x20
	// personas + 15 landing page.
	issues, err := env.client.Issue.Query().Where(issue.StudyID(st.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	for _, row := range issues {
		assert.Equal(t, 65.0, row.PriorityScore)
	}

	insights, err := env.client.Insight.Query().Where(insight.StudyID(st.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, insight.TypeRecommendation, insights[0].Type)
	assert.Equal(t, 1, insights[0].Rank)
	assert.Equal(t, "Loosen the navigation spacing", insights[0].Title)

	require.Len(t, env.stub.SynthesizeCalls, 1)

	// Live state survives the run for post-mortem viewing; browsers are
	// flagged inactive and the lease's live view URL was never clobbered.
	rows, err := env.states.Snapshot(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		var state models.SessionLiveState
		require.NoError(t, row.DecodeInto(&state))
		require.NotNil(t, state.BrowserActive)
		assert.False(t, *state.BrowserActive)
		assert.Equal(t, "https://live.browser.dev/w/1", state.LiveViewURL)
		require.NotNil(t, state.StepNumber)
		assert.Equal(t, 2, *state.StepNumber)
	}
}

func TestRunStudySkipsCompleteStudy(t *testing.T) {
	env := setupOrchestrator(t, testStudyConfig())
	st, _, _, sess := testutil.SeedSessionChain(t, env.client, "https://example.com")

	ctx := context.Background()
	_, err := env.client.Study.UpdateOneID(st.ID).
		SetStatus(study.StatusComplete).
		SetOverallScore(91).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, env.orch.RunStudy(ctx, st.ID, ""))

	assert.Empty(t, env.stub.DecisionCalls)
	assert.Empty(t, env.stub.SynthesizeCalls)

	got, err := env.client.Study.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, study.StatusComplete, got.Status)
	require.NotNil(t, got.OverallScore)
	assert.Equal(t, 91, *got.OverallScore)
	assert.Nil(t, got.StartedAt)

	reloaded, err := env.client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusPending, reloaded.Status)
}

func TestRunStudyFailsWithoutPersonas(t *testing.T) {
	env := setupOrchestrator(t, testStudyConfig())
	st := testutil.SeedStudy(t, env.client, "https://example.com")
	testutil.SeedTask(t, env.client, st.ID, "Find the pricing page", 0)

	ctx := context.Background()
	err := env.orch.RunStudy(ctx, st.ID, "")
	require.Error(t, err)

	got, gerr := env.client.Study.Get(ctx, st.ID)
	require.NoError(t, gerr)
	assert.Equal(t, study.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "nothing to run")
}

func TestRunStudyRetryResetsFailedSessions(t *testing.T) {
	env := setupOrchestrator(t, testStudyConfig())
	ctx := context.Background()

	st := testutil.SeedStudy(t, env.client, "https://example.com")
	p1 := testutil.SeedPersona(t, env.client, st.ID, "Maya")
	p2 := testutil.SeedPersona(t, env.client, st.ID, "Ben")
	task := testutil.SeedTask(t, env.client, st.ID, "Find the pricing page", 0)

	// Maya finished and was scored on the first attempt.
	finished := testutil.SeedSession(t, env.client, st.ID, p1.ID, task.ID)
	_, err := env.client.Session.UpdateOneID(finished.ID).
		SetStatus(session.StatusComplete).
		SetTaskCompleted(true).
		SetTotalSteps(3).
		SetUxScore(90).
		Save(ctx)
	require.NoError(t, err)
	for n := 1; n <= 3; n++ {
		testutil.SeedStep(t, env.client, finished.ID, n, "https://example.com/", "", 0)
	}

	// Ben's session died with the browser, leaving steps and an issue behind.
	crashed := testutil.SeedSession(t, env.client, st.ID, p2.ID, task.ID)
	_, err = env.client.Session.UpdateOneID(crashed.ID).
		SetStatus(session.StatusFailed).
		SetErrorMessage("browser crashed").
		SetTotalSteps(2).
		Save(ctx)
	require.NoError(t, err)
	for n := 1; n <= 2; n++ {
		testutil.SeedStep(t, env.client, crashed.ID, n, "https://example.com/", "", 0)
	}
	_, err = env.client.Issue.Create().
		SetID(uuid.New().String()).
		SetStudyID(st.ID).
		SetSessionID(crashed.ID).
		SetElement("#stale").
		SetDescription("Left over from the crashed attempt").
		SetSeverity(issue.SeverityMinor).
		SetIssueType(issue.IssueTypeUx).
		Save(ctx)
	require.NoError(t, err)

	_, err = env.client.Study.UpdateOneID(st.ID).
		SetStatus(study.StatusFailed).
		SetErrorMessage("browser crashed").
		Save(ctx)
	require.NoError(t, err)

	env.stub.DecisionFn = immediateDone
	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return &models.StudySynthesis{OverallUXScore: 70, ExecutiveSummary: "Second run went through."}, nil
	}

	require.NoError(t, env.orch.RunStudy(ctx, st.ID, ""))

	got, err := env.client.Study.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, study.StatusComplete, got.Status)
	assert.Nil(t, got.ErrorMessage)
	require.NotNil(t, got.OverallScore)
	assert.Equal(t, 70, *got.OverallScore)

	// The finished session kept its result and was not re-run or re-scored.
	keep, err := env.client.Session.Get(ctx, finished.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusComplete, keep.Status)
	assert.Equal(t, 3, keep.TotalSteps)
	require.NotNil(t, keep.UxScore)
	assert.Equal(t, 90, *keep.UxScore)
	keptSteps, err := env.client.Step.Query().Where(step.SessionID(finished.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, keptSteps)

	// The crashed session was reset and rerun from step 1.
	rerun, err := env.client.Session.Get(ctx, crashed.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusComplete, rerun.Status)
	assert.True(t, rerun.TaskCompleted)
	assert.Equal(t, 1, rerun.TotalSteps)
	assert.Nil(t, rerun.ErrorMessage)
	rerunSteps, err := env.client.Step.Query().Where(step.SessionID(crashed.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rerunSteps)

	stale, err := env.client.Issue.Query().Where(issue.Element("#stale")).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, stale, "issues from the crashed attempt must not survive the reset")

	for _, call := range env.stub.DecisionCalls {
		assert.Equal(t, crashed.ID, call.SessionID, "only the reset session navigates again")
	}
	require.Len(t, env.stub.AnalyzeCalls, 1, "already-scored sessions are not re-analyzed")
	assert.Equal(t, []string{"Ben"}, env.stub.AnalyzeCalls[0].Personas)
}

func TestRunStudyRetryWithAllSessionsFinished(t *testing.T) {
	env := setupOrchestrator(t, testStudyConfig())
	ctx := context.Background()

	st, _, _, sess := testutil.SeedSessionChain(t, env.client, "https://example.com")
	_, err := env.client.Session.UpdateOneID(sess.ID).
		SetStatus(session.StatusComplete).
		SetTaskCompleted(true).
		SetTotalSteps(2).
		SetUxScore(88).
		Save(ctx)
	require.NoError(t, err)
	testutil.SeedStep(t, env.client, sess.ID, 1, "https://example.com/", "", 0)
	testutil.SeedStep(t, env.client, sess.ID, 2, "https://example.com/pricing", "", 0)

	// The first attempt fell over after navigation; the retry should go
	// straight back to the pipeline without opening a browser.
	_, err = env.client.Study.UpdateOneID(st.ID).
		SetStatus(study.StatusFailed).
		SetErrorMessage("synthesis exploded").
		Save(ctx)
	require.NoError(t, err)

	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return &models.StudySynthesis{OverallUXScore: 64, ExecutiveSummary: "Recovered on retry."}, nil
	}

	require.NoError(t, env.orch.RunStudy(ctx, st.ID, ""))

	got, err := env.client.Study.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, study.StatusComplete, got.Status)
	require.NotNil(t, got.OverallScore)
	assert.Equal(t, 64, *got.OverallScore)
	assert.Nil(t, got.ErrorMessage)

	assert.Empty(t, env.stub.DecisionCalls)
	assert.Empty(t, env.stub.AnalyzeCalls)
	require.Len(t, env.stub.SynthesizeCalls, 1)
	assert.Zero(t, env.fake.Created, "no browser pages for a study with no runnable sessions")
}

func TestRunStudyAcquisitionFailureFailsOnlySession(t *testing.T) {
	env := setupOrchestrator(t, testStudyConfig())
	ctx := context.Background()

	st := testutil.SeedStudy(t, env.client, "https://example.com")
	testutil.SeedPersona(t, env.client, st.ID, "Maya")
	testutil.SeedPersona(t, env.client, st.ID, "Ben")
	testutil.SeedTask(t, env.client, st.ID, "Find the pricing page", 0)

	env.fake.FailNext(1, errors.New("chrome crashed on launch"))
	env.stub.DecisionFn = immediateDone
	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return &models.StudySynthesis{OverallUXScore: 75, ExecutiveSummary: "One persona never got a browser."}, nil
	}

	require.NoError(t, env.orch.RunStudy(ctx, st.ID, ""), "a session-level acquisition failure must not fail the study")

	got, err := env.client.Study.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, study.StatusComplete, got.Status)

	failed, err := env.client.Session.Query().
		Where(session.StudyID(st.ID), session.StatusEQ(session.StatusFailed)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	require.NotNil(t, failed[0].ErrorMessage)
	assert.Contains(t, *failed[0].ErrorMessage, "chrome crashed on launch")

	completed, err := env.client.Session.Query().
		Where(session.StudyID(st.ID), session.StatusEQ(session.StatusComplete)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	require.NotNil(t, completed[0].UxScore)
	assert.Equal(t, 100, *completed[0].UxScore)
}

func TestRunStudyCancellationMarksStudyFailed(t *testing.T) {
	env := setupOrchestrator(t, testStudyConfig())

	// Every page hangs in its first navigation until the run is cancelled.
	env.fake.NewPageFn = func(ctx context.Context, opts browser.PageOptions) (browser.PageDriver, string, error) {
		page := browser.NewFakePage("about:blank")
		page.GotoDelay = time.Minute
		return page, "https://live.browser.dev/w/9", nil
	}

	st := testutil.SeedStudy(t, env.client, "https://example.com")
	testutil.SeedPersona(t, env.client, st.ID, "Maya")
	testutil.SeedTask(t, env.client, st.ID, "Find the pricing page", 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- env.orch.RunStudy(ctx, st.ID, "") }()

	// Wait until the session seeded its live state, so the browser is
	// provably mid-flight when the cancel lands.
	require.Eventually(t, func() bool {
		rows, err := env.states.Snapshot(context.Background(), st.ID)
		return err == nil && len(rows) == 1
	}, 15*time.Second, 20*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(15 * time.Second):
		t.Fatal("RunStudy did not return after cancellation")
	}

	bg := context.Background()
	got, err := env.client.Study.Get(bg, st.ID)
	require.NoError(t, err)
	assert.Equal(t, study.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "cancelled", *got.ErrorMessage)

	sessions, err := env.client.Session.Query().Where(session.StudyID(st.ID)).All(bg)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, session.StatusFailed, sessions[0].Status)
	require.NotNil(t, sessions[0].ErrorMessage)
	assert.Equal(t, "cancelled", *sessions[0].ErrorMessage)

	// Live state stays for post-mortem: row present, browser flagged off.
	rows, err := env.states.Snapshot(bg, st.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	var state models.SessionLiveState
	require.NoError(t, rows[0].DecodeInto(&state))
	assert.Equal(t, "https://live.browser.dev/w/9", state.LiveViewURL)
	require.NotNil(t, state.BrowserActive)
	assert.False(t, *state.BrowserActive)
}

func TestRunStudyHonorsConcurrencyCap(t *testing.T) {
	cfg := testStudyConfig()
	cfg.MaxConcurrentSessions = 2
	env := setupOrchestrator(t, cfg)
	ctx := context.Background()

	st := testutil.SeedStudy(t, env.client, "https://example.com")
	for _, name := range []string{"Maya", "Ben", "Iris"} {
		testutil.SeedPersona(t, env.client, st.ID, name)
	}
	testutil.SeedTask(t, env.client, st.ID, "Find the pricing page", 0)
	testutil.SeedTask(t, env.client, st.ID, "Start a trial", 1)

	var inFlight, peak atomic.Int32
	env.stub.DecisionFn = func(in llm.DecisionInput) (*models.Decision, error) {
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(25 * time.Millisecond)
		return immediateDone(in)
	}
	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return &models.StudySynthesis{OverallUXScore: 80, ExecutiveSummary: "Smooth run."}, nil
	}

	require.NoError(t, env.orch.RunStudy(ctx, st.ID, ""))

	sessions, err := env.client.Session.Query().Where(session.StudyID(st.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 6)
	for _, s := range sessions {
		assert.Equal(t, session.StatusComplete, s.Status)
	}
	assert.LessOrEqual(t, peak.Load(), int32(2), "concurrent sessions exceeded the configured cap")
}

func TestStartingURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		path string
		want string
	}{
		{"root default", "https://example.com", "/", "https://example.com/"},
		{"trailing slash collapses", "https://example.com/", "/pricing", "https://example.com/pricing"},
		{"missing leading slash", "https://example.com", "pricing", "https://example.com/pricing"},
		{"empty path", "https://example.com", "", "https://example.com/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &ent.Study{URL: tc.url, StartingPath: tc.path}
			assert.Equal(t, tc.want, startingURL(st))
		})
	}
}
