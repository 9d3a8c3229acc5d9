package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Cancellation — stopping a study mid-run must cut the in-flight gateway
// call, mark the study failed with reason "cancelled", and settle the job
// as cancelled rather than eligible for retry.
// ────────────────────────────────────────────────────────────

func TestE2E_CancelStudyMidRun(t *testing.T) {
	app := NewTestApp(t)

	// The first decision parks until its RPC context dies, pinning the
	// session mid-step for as long as the test needs.
	blocked := make(chan struct{}, 1)
	app.Gateway.Script(llm.CapabilityDecision,
		GatewayScriptEntry{BlockUntilCancelled: true, OnBlock: blocked},
	)

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Quinn"}, []string{"Upgrade to the team plan"})
	job := app.EnqueueStudy(t, study.ID)

	select {
	case <-blocked:
	case <-time.After(20 * time.Second):
		t.Fatal("timed out waiting for the decision to park")
	}

	require.True(t, app.WorkerPool.CancelStudy(study.ID),
		"the running job should be cancellable on this pod")

	app.WaitForJobStatus(t, job.ID, "cancelled")
	app.WaitForStudyStatus(t, study.ID, "failed")

	st := app.GetStudy(t, study.ID)
	require.NotNil(t, st.ErrorMessage)
	assert.Equal(t, "cancelled", *st.ErrorMessage)

	sessions := app.QuerySessions(t, study.ID)
	require.Len(t, sessions, 1)
	assert.Equal(t, "failed", string(sessions[0].Status))

	// The cancelled run never reached analysis or synthesis.
	assert.Equal(t, 0, app.Gateway.Calls(llm.CapabilityAnalyze))
	assert.Equal(t, 0, app.Gateway.Calls(llm.CapabilitySynthesize))

	// Cancelling an already-settled study finds nothing to stop.
	assert.False(t, app.WorkerPool.CancelStudy(study.ID))
}
