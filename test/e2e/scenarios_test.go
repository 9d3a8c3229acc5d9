package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/browser"
	"github.com/wanderlens/wanderlens/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Session-failure scenarios — personas that never finish must land in
// gave_up with an honest summary, and the study must still complete.
// ────────────────────────────────────────────────────────────

func TestE2E_StepBudgetExhaustion(t *testing.T) {
	app := NewTestApp(t, WithMaxSteps(3))

	// The persona scrolls forever and never reports done.
	app.Gateway.SetDefault(llm.CapabilityDecision, scrollDecision(40))

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Pat"}, []string{"Find the changelog"})
	app.EnqueueStudy(t, study.ID)
	app.WaitForStudyStatus(t, study.ID, "complete")

	sessions := app.QuerySessions(t, study.ID)
	require.Len(t, sessions, 1)
	s := sessions[0]
	assert.Equal(t, "gave_up", string(s.Status))
	assert.False(t, s.TaskCompleted)
	assert.Equal(t, 3, s.TotalSteps)
	require.NotNil(t, s.Summary)
	assert.Contains(t, *s.Summary, "Exhausted the step budget (3 steps)")
	assert.Len(t, app.QuerySteps(t, s.ID), 3)

	// Gave-up sessions still go through analysis and get scored.
	assert.NotNil(t, s.UxScore)
	assert.Equal(t, 1, app.Gateway.Calls(llm.CapabilityAnalyze),
		"all three steps stayed on one page, so one screenshot analysis")

	st := app.GetStudy(t, study.ID)
	require.NotNil(t, st.OverallScore)
}

func TestE2E_SessionTimeout(t *testing.T) {
	app := NewTestApp(t, WithSessionTimeout(1*time.Second))

	// Every page hangs on navigation longer than the session allows.
	app.LocalBackend.NewPageFn = func(_ context.Context, opts browser.PageOptions) (browser.PageDriver, string, error) {
		page := browser.NewFakePage("about:blank")
		page.Width = opts.Width
		page.Height = opts.Height
		page.GotoDelay = 5 * time.Second
		return page, "", nil
	}

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Noor"}, []string{"Open the status page"})
	app.EnqueueStudy(t, study.ID)
	app.WaitForStudyStatus(t, study.ID, "complete")

	sessions := app.QuerySessions(t, study.ID)
	require.Len(t, sessions, 1)
	s := sessions[0]
	assert.Equal(t, "gave_up", string(s.Status))
	assert.False(t, s.TaskCompleted)
	assert.Equal(t, 0, s.TotalSteps, "the start page never loaded")
	require.NotNil(t, s.Summary)
	assert.Contains(t, *s.Summary, "timed out")
	assert.Empty(t, app.QuerySteps(t, s.ID))

	// Nothing to analyze without steps; synthesis still runs for the study.
	assert.Equal(t, 0, app.Gateway.Calls(llm.CapabilityAnalyze))
	assert.Equal(t, 1, app.Gateway.Calls(llm.CapabilitySynthesize))
	assert.Equal(t, 1, app.LocalBackend.Created)
}
