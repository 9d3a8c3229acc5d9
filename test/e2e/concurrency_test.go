package e2e

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/llm"
	llmv1 "github.com/wanderlens/wanderlens/proto"
)

// ────────────────────────────────────────────────────────────
// Concurrency — the per-study semaphore bounds how many persona sessions
// run at once, measured at the gateway where every running session calls in.
// ────────────────────────────────────────────────────────────

func TestE2E_ConcurrentSessionsRespectLimit(t *testing.T) {
	app := NewTestApp(t, WithMaxConcurrentSessions(2))

	// Count overlapping decision calls. Decisions sleep long enough that
	// sessions running in parallel are guaranteed to overlap here.
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	app.Gateway.Handle(llm.CapabilityDecision, func(_ *llmv1.CompleteRequest) (string, error) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(75 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return doneDecision(), nil
	})

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Ada", "Ben", "Chloe"},
		[]string{"Find the pricing page", "Locate the contact form"})
	app.EnqueueStudy(t, study.ID)
	app.WaitForStudyStatus(t, study.ID, "complete")

	// 3 personas × 2 tasks, every combination ran to completion.
	sessions := app.QuerySessions(t, study.ID)
	require.Len(t, sessions, 6)
	for _, s := range sessions {
		assert.Equal(t, "complete", string(s.Status))
		assert.Equal(t, 1, s.TotalSteps)
	}
	assert.Equal(t, 6, app.Gateway.Calls(llm.CapabilityDecision))
	assert.Equal(t, 6, app.LocalBackend.Created, "one leased page per session")

	mu.Lock()
	observedMax := maxInFlight
	mu.Unlock()
	assert.LessOrEqual(t, observedMax, 2, "semaphore must cap concurrent sessions")
	assert.Greater(t, observedMax, 0)
}
