package e2e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ────────────────────────────────────────────────────────────
// Cloud failover — a flaky cloud provider must cost nothing but latency:
// sessions fall back to local Chrome, the failover latch trips, and health
// keeps reporting 200 because local capacity is still serving.
// ────────────────────────────────────────────────────────────

func TestE2E_CloudFailoverFallsBackToLocal(t *testing.T) {
	app := NewTestApp(t, WithCloudBackend())
	app.CloudBackend.FailNext(3, errors.New("cloud capacity exhausted"))

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Ana", "Bo", "Cy"}, []string{"Find the pricing page"})
	app.EnqueueStudy(t, study.ID)
	app.WaitForStudyStatus(t, study.ID, "complete")

	// Every session survived the cloud outage on a local browser.
	sessions := app.QuerySessions(t, study.ID)
	require.Len(t, sessions, 3)
	for _, s := range sessions {
		assert.Equal(t, "complete", string(s.Status))
		assert.True(t, s.TaskCompleted)
	}
	assert.Equal(t, 0, app.CloudBackend.Created)
	assert.Equal(t, 3, app.LocalBackend.Created)

	// Three failures inside the window trip the latch.
	assert.True(t, app.BrowserPool.FailoverActive())

	// Failover is advisory, not an outage: health stays green and just
	// annotates the browser section.
	health := app.GetHealth(t)
	assert.Equal(t, "healthy", health["status"])
	browserStats, ok := health["browser"].(map[string]interface{})
	require.True(t, ok, "health response missing browser stats: %v", health)
	assert.Equal(t, true, browserStats["failover_active"])
}
