package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/events"
	testdb "github.com/wanderlens/wanderlens/test/database"
)

// ────────────────────────────────────────────────────────────
// Multi-replica — two pods share one database. The writer's workers run the
// study; the observer carries no workers at all, yet its dashboard clients
// see every transition because events travel through PostgreSQL NOTIFY, not
// process memory.
// ────────────────────────────────────────────────────────────

func TestE2E_MultiReplicaEventFanout(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	writer := NewTestApp(t,
		WithDatabase(shared.NewClient(t), shared.BaseConnString()),
		WithPodID("pod-writer"))
	observer := NewTestApp(t,
		WithDatabase(shared.NewClient(t), shared.BaseConnString()),
		WithPodID("pod-observer"),
		WithWorkerCount(0))

	// Subscribe on the observer before any work exists.
	ws := observer.ConnectWS(t)
	require.NoError(t, ws.Subscribe("studies"))

	study := writer.SeedStudyMatrix(t, "https://example.com",
		[]string{"Iris"}, []string{"Find the security whitepaper"})
	writer.EnqueueStudy(t, study.ID)

	// Lifecycle events cross the process boundary. Matching on study_id
	// keeps this immune to leftover NOTIFY traffic on the shared database.
	forStudy := func(status string) func(WSEvent) bool {
		return func(e WSEvent) bool {
			return e.Type == "study.status" &&
				e.Parsed["study_id"] == study.ID &&
				e.Parsed["status"] == status
		}
	}
	_, err := ws.WaitForEvent(forStudy("running"), 20*time.Second)
	require.NoError(t, err)
	final, err := ws.WaitForEvent(forStudy("complete"), 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 75, toInt(final.Parsed["overall_score"]))

	// The observer reads the same rows the writer wrote.
	st := observer.GetStudy(t, study.ID)
	assert.Equal(t, "complete", string(st.Status))
	require.Len(t, observer.QuerySessions(t, study.ID), 1)

	// A late subscriber on the observer still gets a faithful snapshot,
	// served from the shared schema rather than writer memory.
	require.NoError(t, ws.Subscribe(events.StudyChannel(study.ID)))
	snapshot, err := ws.WaitForEventType("snapshot", 10*time.Second)
	require.NoError(t, err)
	studySection, ok := snapshot.Parsed["study"].(map[string]interface{})
	require.True(t, ok, "snapshot missing study section: %s", snapshot.Raw)
	assert.Equal(t, "complete", studySection["status"])
	assert.Equal(t, 75, toInt(studySection["overall_score"]))

	// The writer did all the lifting; the observer never claimed the job.
	assert.Greater(t, writer.Gateway.CallCount(), 0)
	assert.Zero(t, observer.Gateway.CallCount(), "observer has no workers and must never reach its gateway")
}
