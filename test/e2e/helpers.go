package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/pkg/queue"
	"github.com/wanderlens/wanderlens/test/util"
)

// ────────────────────────────────────────────────────────────
// Seeding and Enqueue Helpers
// ────────────────────────────────────────────────────────────

// SeedStudyMatrix creates a study with the given personas and tasks. Session
// rows materialize when the orchestrator builds the persona×task matrix.
func (app *TestApp) SeedStudyMatrix(t *testing.T, url string, personaNames, taskDescriptions []string) *ent.Study {
	t.Helper()
	study := util.SeedStudy(t, app.DBClient.Client, url)
	for _, name := range personaNames {
		util.SeedPersona(t, app.DBClient.Client, study.ID, name)
	}
	for i, desc := range taskDescriptions {
		util.SeedTask(t, app.DBClient.Client, study.ID, desc, i)
	}
	return study
}

// EnqueueStudy queues a run for the study and returns the job.
func (app *TestApp) EnqueueStudy(t *testing.T, studyID string) *ent.StudyJob {
	t.Helper()
	job, err := queue.Enqueue(context.Background(), app.DBClient.Client, studyID, queue.EnqueueOptions{})
	require.NoError(t, err)
	return job
}

// ────────────────────────────────────────────────────────────
// Polling Helpers
// ────────────────────────────────────────────────────────────

// WaitForStudyStatus polls the DB until the study reaches one of the expected
// statuses. Queries are inlined so transient DB errors retry instead of
// aborting the test.
func (app *TestApp) WaitForStudyStatus(t *testing.T, studyID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		st, err := app.DBClient.Client.Study.Get(context.Background(), studyID)
		if err != nil {
			return false
		}
		actual = string(st.Status)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"study %s did not reach status %v (last: %s)", studyID, expected, actual)
	return actual
}

// WaitForSessionStatus polls the DB until the session reaches one of the
// expected statuses.
func (app *TestApp) WaitForSessionStatus(t *testing.T, sessionID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		s, err := app.DBClient.Client.Session.Get(context.Background(), sessionID)
		if err != nil {
			return false
		}
		actual = string(s.Status)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"session %s did not reach status %v (last: %s)", sessionID, expected, actual)
	return actual
}

// WaitForJobStatus polls the DB until the job reaches one of the expected
// statuses.
func (app *TestApp) WaitForJobStatus(t *testing.T, jobID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		j, err := app.DBClient.Client.StudyJob.Get(context.Background(), jobID)
		if err != nil {
			return false
		}
		actual = string(j.Status)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"job %s did not reach status %v (last: %s)", jobID, expected, actual)
	return actual
}

// WaitForRunningSession polls until some session of the study is running and
// returns it. Cancellation and screencast tests need a live session to aim at.
func (app *TestApp) WaitForRunningSession(t *testing.T, studyID string) *ent.Session {
	t.Helper()
	var found *ent.Session
	require.Eventually(t, func() bool {
		sessions, err := app.DBClient.Client.Session.Query().
			Where(session.StudyID(studyID), session.StatusEQ(session.StatusRunning)).
			All(context.Background())
		if err != nil || len(sessions) == 0 {
			return false
		}
		found = sessions[0]
		return true
	}, 30*time.Second, 100*time.Millisecond,
		"no running session found for study %s", studyID)
	return found
}

// WaitForNSessionsInStatus waits until exactly n of the study's sessions have
// the given status.
func (app *TestApp) WaitForNSessionsInStatus(t *testing.T, studyID string, n int, status string) {
	t.Helper()
	var lastCount int
	require.Eventually(t, func() bool {
		count, err := app.DBClient.Client.Session.Query().
			Where(session.StudyID(studyID), session.StatusEQ(session.Status(status))).
			Count(context.Background())
		if err != nil {
			return false // transient error — let Eventually retry
		}
		lastCount = count
		return lastCount == n
	}, 30*time.Second, 100*time.Millisecond,
		"expected %d sessions of study %s in status %q, last saw %d", n, studyID, status, lastCount)
}

// ────────────────────────────────────────────────────────────
// DB Query Helpers
// ────────────────────────────────────────────────────────────

// GetStudy reloads the study row.
func (app *TestApp) GetStudy(t *testing.T, studyID string) *ent.Study {
	t.Helper()
	st, err := app.DBClient.Client.Study.Get(context.Background(), studyID)
	require.NoError(t, err)
	return st
}

// GetJob reloads the job row.
func (app *TestApp) GetJob(t *testing.T, jobID string) *ent.StudyJob {
	t.Helper()
	j, err := app.DBClient.Client.StudyJob.Get(context.Background(), jobID)
	require.NoError(t, err)
	return j
}

// QuerySessions returns all sessions of a study, oldest first.
func (app *TestApp) QuerySessions(t *testing.T, studyID string) []*ent.Session {
	t.Helper()
	sessions, err := app.DBClient.Client.Session.Query().
		Where(session.StudyID(studyID)).
		Order(ent.Asc(session.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return sessions
}

// QuerySteps returns a session's steps ordered by step number.
func (app *TestApp) QuerySteps(t *testing.T, sessionID string) []*ent.Step {
	t.Helper()
	steps, err := app.DBClient.Client.Step.Query().
		Where(step.SessionID(sessionID)).
		Order(ent.Asc(step.FieldStepNumber)).
		All(context.Background())
	require.NoError(t, err)
	return steps
}

// QueryIssues returns a study's issues ordered by priority, highest first.
func (app *TestApp) QueryIssues(t *testing.T, studyID string) []*ent.Issue {
	t.Helper()
	issues, err := app.DBClient.Client.Issue.Query().
		Where(issue.StudyID(studyID)).
		Order(ent.Desc(issue.FieldPriorityScore)).
		All(context.Background())
	require.NoError(t, err)
	return issues
}

// QueryInsights returns a study's insights ordered by rank.
func (app *TestApp) QueryInsights(t *testing.T, studyID string) []*ent.Insight {
	t.Helper()
	insights, err := app.DBClient.Client.Insight.Query().
		Where(insight.StudyID(studyID)).
		Order(ent.Asc(insight.FieldRank)).
		All(context.Background())
	require.NoError(t, err)
	return insights
}

// QueryJobs returns every job ever created for the study, oldest first.
func (app *TestApp) QueryJobs(t *testing.T, studyID string) []*ent.StudyJob {
	t.Helper()
	jobs, err := app.DBClient.Client.StudyJob.Query().
		Where(studyjob.StudyID(studyID)).
		Order(ent.Asc(studyjob.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return jobs
}

// ────────────────────────────────────────────────────────────
// HTTP and WebSocket Helpers
// ────────────────────────────────────────────────────────────

// GetHealth calls GET /api/v1/health expecting a healthy replica.
func (app *TestApp) GetHealth(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/health", http.StatusOK)
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// ConnectWS opens a WebSocket client against this replica and closes it on
// test cleanup.
func (app *TestApp) ConnectWS(t *testing.T) *WSClient {
	t.Helper()
	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

// toInt converts a JSON-decoded numeric value (typically float64) to int.
func toInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case float32:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	default:
		return 0
	}
}
