package e2e

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
	llmv1 "github.com/wanderlens/wanderlens/proto"
)

// ────────────────────────────────────────────────────────────
// Pipeline test — the full happy path: enqueue → worker claims → sessions
// navigate → analysis → prioritization → synthesis → durable study verdict.
// ────────────────────────────────────────────────────────────

func TestE2E_StudyPipeline(t *testing.T) {
	app := NewTestApp(t)

	// Deterministic two-step sessions: one click, then done. Routed per
	// session because concurrent sessions interleave their gateway calls.
	var mu sync.Mutex
	decisions := map[string]int{}
	app.Gateway.Handle(llm.CapabilityDecision, func(req *llmv1.CompleteRequest) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		decisions[req.SessionId]++
		if decisions[req.SessionId] == 1 {
			return clickDecision("#pricing-link", 60), nil
		}
		return doneDecision(), nil
	})

	// Every page analysis reports the same minor issue.
	app.Gateway.SetDefault(llm.CapabilityAnalyze, analysisContent(
		"The pricing page is readable but dense.",
		models.UXIssue{
			Element:     ".pricing-table",
			Description: "Pricing table is dense and hard to scan",
			Severity:    models.SeverityMinor,
			IssueType:   models.IssueTypeUX,
		},
	))

	// The synthesis turns the findings into ranked insights.
	app.Gateway.SetDefault(llm.CapabilitySynthesize, mustJSON(models.StudySynthesis{
		OverallUXScore:   82,
		ExecutiveSummary: "Both personas completed the task; the pricing table slows scanning.",
		UniversalIssues: []models.SynthesisFinding{{
			Title:            "Dense pricing table",
			Description:      "Every persona slowed down on the pricing table",
			Severity:         models.SeverityMinor,
			PersonasAffected: []string{"Maya", "Frank"},
		}},
		Recommendations: []models.Recommendation{{
			Title:       "Add whitespace to the pricing table",
			Description: "Increase row padding and align plan features",
			Impact:      "medium",
			Effort:      "low",
		}},
	}))

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Maya", "Frank"},
		[]string{"Find the cheapest pricing plan"})
	job := app.EnqueueStudy(t, study.ID)

	app.WaitForJobStatus(t, job.ID, "completed")
	app.WaitForStudyStatus(t, study.ID, "complete")

	// Study verdict.
	st := app.GetStudy(t, study.ID)
	require.NotNil(t, st.OverallScore)
	assert.Equal(t, 82, *st.OverallScore)
	require.NotNil(t, st.ExecutiveSummary)
	assert.Contains(t, *st.ExecutiveSummary, "pricing table")
	require.NotNil(t, st.DurationSeconds)

	// Cost accounting drained into the study row.
	require.NotEmpty(t, st.CostBreakdown)
	total, ok := st.CostBreakdown["total_usd"].(float64)
	require.True(t, ok, "cost_breakdown missing total_usd: %v", st.CostBreakdown)
	assert.Greater(t, total, 0.0)

	// Sessions: 2 personas × 1 task, both complete in exactly two steps.
	sessions := app.QuerySessions(t, study.ID)
	require.Len(t, sessions, 2)
	for _, s := range sessions {
		assert.Equal(t, "complete", string(s.Status))
		assert.True(t, s.TaskCompleted)
		assert.Equal(t, 2, s.TotalSteps)
		require.NotNil(t, s.Summary)
		assert.Contains(t, *s.Summary, "Completed the task in 2 steps")
		assert.Equal(t, []string{models.EmotionCurious, models.EmotionSatisfied}, s.EmotionalArc)
		assert.NotNil(t, s.UxScore)

		steps := app.QuerySteps(t, s.ID)
		require.Len(t, steps, 2)
		for i, row := range steps {
			assert.Equal(t, i+1, row.StepNumber)
			assert.Equal(t, "https://example.com/", row.PageURL)
			require.NotEmpty(t, row.ScreenshotRef)
			exists, err := app.Blobs.Exists(row.ScreenshotRef)
			require.NoError(t, err)
			assert.True(t, exists, "screenshot blob missing: %s", row.ScreenshotRef)
		}
	}

	// One analysis issue per session, scored by the prioritizer.
	issues := app.QueryIssues(t, study.ID)
	require.Len(t, issues, 2)
	for _, is := range issues {
		assert.Equal(t, "minor", string(is.Severity))
		assert.Equal(t, "https://example.com/", is.PageURL)
		assert.Greater(t, is.PriorityScore, 0.0)
	}

	// Synthesis insights: one universal finding, one recommendation.
	insights := app.QueryInsights(t, study.ID)
	require.Len(t, insights, 2)
	kinds := map[string]bool{}
	for _, in := range insights {
		kinds[string(in.Type)] = true
	}
	assert.True(t, kinds["universal"], "universal insight missing")
	assert.True(t, kinds["recommendation"], "recommendation insight missing")

	// Gateway call accounting: 2 sessions × 2 decisions, one screenshot
	// analysis per session (both steps land on one page), one synthesis.
	assert.Equal(t, 4, app.Gateway.Calls(llm.CapabilityDecision))
	assert.Equal(t, 2, app.Gateway.Calls(llm.CapabilityAnalyze))
	assert.Equal(t, 1, app.Gateway.Calls(llm.CapabilitySynthesize))
}

// TestE2E_RerunCompletedStudyIsNoOp re-enqueues a finished study. The worker
// claims the new job, but the run must settle without touching sessions,
// steps, or the gateway.
func TestE2E_RerunCompletedStudyIsNoOp(t *testing.T) {
	app := NewTestApp(t)

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Solo"}, []string{"Check the documentation page"})
	job := app.EnqueueStudy(t, study.ID)
	app.WaitForJobStatus(t, job.ID, "completed")
	app.WaitForStudyStatus(t, study.ID, "complete")

	sessions := app.QuerySessions(t, study.ID)
	require.Len(t, sessions, 1)
	stepsBefore := app.QuerySteps(t, sessions[0].ID)
	require.NotEmpty(t, stepsBefore)
	callsBefore := app.Gateway.CallCount()

	job2 := app.EnqueueStudy(t, study.ID)
	require.NotEqual(t, job.ID, job2.ID)
	app.WaitForJobStatus(t, job2.ID, "completed")

	assert.Equal(t, "complete", string(app.GetStudy(t, study.ID).Status))
	sessionsAfter := app.QuerySessions(t, study.ID)
	require.Len(t, sessionsAfter, 1)
	assert.Equal(t, sessions[0].ID, sessionsAfter[0].ID)
	assert.Len(t, app.QuerySteps(t, sessions[0].ID), len(stepsBefore))
	assert.Equal(t, callsBefore, app.Gateway.CallCount(), "no-op rerun must not call the gateway")

	jobs := app.QueryJobs(t, study.ID)
	assert.Len(t, jobs, 2)
}
