package e2e

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Dashboard tests — a WebSocket subscriber joining mid-run gets the snapshot
// first, then live deltas; a screencast watcher gets binary JPEG frames.
// ────────────────────────────────────────────────────────────

func TestE2E_DashboardSnapshotThenDeltas(t *testing.T) {
	app := NewTestApp(t)

	// Step 1 decides immediately; step 2 parks at the gateway so we can
	// subscribe while the run is provably mid-flight.
	blocked := make(chan struct{}, 1)
	release := make(chan struct{})
	app.Gateway.Script(llm.CapabilityDecision,
		GatewayScriptEntry{Content: clickDecision("#docs-link", 50)},
		GatewayScriptEntry{Content: doneDecision(), WaitCh: release, OnBlock: blocked},
	)

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Dana"}, []string{"Find the API documentation"})
	app.EnqueueStudy(t, study.ID)

	select {
	case <-blocked:
	case <-time.After(20 * time.Second):
		t.Fatal("timed out waiting for the second decision to park")
	}

	// Step 1 is committed and the session is parked deciding step 2.
	ws := app.ConnectWS(t)
	require.NoError(t, ws.Subscribe(events.StudyChannel(study.ID)))

	snapshot, err := ws.WaitForEventType("snapshot", 10*time.Second)
	require.NoError(t, err)
	studySection, ok := snapshot.Parsed["study"].(map[string]interface{})
	require.True(t, ok, "snapshot missing study section: %s", snapshot.Raw)
	assert.Equal(t, "running", studySection["status"])
	assert.Equal(t, "https://example.com", studySection["url"])

	sessions, ok := snapshot.Parsed["sessions"].([]interface{})
	require.True(t, ok, "snapshot missing sessions: %s", snapshot.Raw)
	require.Len(t, sessions, 1)
	live, ok := sessions[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Dana", live["persona_name"])
	assert.Equal(t, 1, toInt(live["step_number"]), "only step 1 had committed at subscribe time")

	// Release the parked decision and watch the deltas stream in.
	close(release)

	step, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "session.step" && toInt(e.Parsed["step_number"]) == 2
	}, 15*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", step.Parsed["url"])
	assert.Equal(t, 100, toInt(step.Parsed["task_progress"]))
	action, ok := step.Parsed["action"].(map[string]interface{})
	require.True(t, ok, "session.step action should be a map: %s", step.Raw)
	assert.Equal(t, "done", action["type"])

	status, err := ws.WaitForSessionStatus("complete", 15*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "Dana", status.Parsed["persona_name"])
	assert.Equal(t, true, status.Parsed["task_completed"])
	assert.Equal(t, 2, toInt(status.Parsed["total_steps"]))

	final, err := ws.WaitForStudyStatus("complete", 20*time.Second)
	require.NoError(t, err)
	assert.Equal(t, study.ID, final.Parsed["study_id"])
	assert.Equal(t, 75, toInt(final.Parsed["overall_score"]))
	cost, ok := final.Parsed["total_cost_usd"].(float64)
	require.True(t, ok, "complete event missing total_cost_usd: %s", final.Raw)
	assert.Greater(t, cost, 0.0)
}

func TestE2E_ScreencastDeliversFrames(t *testing.T) {
	app := NewTestApp(t)

	// Park the very first decision: the session is running, its first
	// observation already happened (unwatched, so no frame), and nothing
	// more runs until we release it.
	blocked := make(chan struct{}, 1)
	release := make(chan struct{})
	app.Gateway.Script(llm.CapabilityDecision,
		GatewayScriptEntry{Content: clickDecision("#cta", 50), WaitCh: release, OnBlock: blocked},
	)

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Theo"}, []string{"Sign up for a trial"})
	app.EnqueueStudy(t, study.ID)

	select {
	case <-blocked:
	case <-time.After(20 * time.Second):
		t.Fatal("timed out waiting for the first decision to park")
	}
	sess := app.WaitForRunningSession(t, study.ID)

	ws := app.ConnectWS(t)
	require.NoError(t, ws.WatchScreencast(sess.ID))

	// The watcher is registered, so the next observation pushes a frame.
	close(release)

	frame, err := ws.WaitForFrame(sess.ID, 15*time.Second)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, frame.SessionID)
	require.NotEmpty(t, frame.JPEG)
	assert.True(t, bytes.HasPrefix(frame.JPEG, []byte{0xff, 0xd8}),
		"screencast frames are JPEG, got leading bytes %x", frame.JPEG[:min(4, len(frame.JPEG))])

	// Let the run finish so teardown is not racing an active session.
	app.WaitForStudyStatus(t, study.ID, "complete")
}
