package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/pkg/blob"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
	testdb "github.com/wanderlens/wanderlens/test/database"
	testutil "github.com/wanderlens/wanderlens/test/util"
)

type analysisEnv struct {
	client   *ent.Client
	blobs    *blob.Store
	stub     *llm.StubClient
	analyzer *Analyzer
	study    *ent.Study
	persona  *ent.Persona
	sess     *ent.Session
}

func setupAnalyzer(t *testing.T) *analysisEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	blobs, err := blob.NewStore(t.TempDir())
	require.NoError(t, err)
	stub := &llm.StubClient{}

	study, persona, _, sess := testutil.SeedSessionChain(t, client.Client, "https://example.com")
	sess, err = client.Session.UpdateOneID(sess.ID).
		SetStatus(session.StatusComplete).
		SetTaskCompleted(true).
		Save(context.Background())
	require.NoError(t, err)

	return &analysisEnv{
		client:   client.Client,
		blobs:    blobs,
		stub:     stub,
		analyzer: NewAnalyzer(client.Client, blobs, stub),
		study:    study,
		persona:  persona,
		sess:     sess,
	}
}

// seedShotStep seeds a step whose screenshot exists in blob storage.
func seedShotStep(t *testing.T, env *analysisEnv, n int, pageURL string, loadMs int) *ent.Step {
	t.Helper()
	ref := blob.ScreenshotPath(env.study.ID, env.sess.ID, n)
	require.NoError(t, env.blobs.Put(ref, []byte("\x89PNGfake")))
	return testutil.SeedStep(t, env.client, env.sess.ID, n, pageURL, ref, loadMs)
}

func TestAnalyzeSessionReviewsDistinctPages(t *testing.T) {
	env := setupAnalyzer(t)
	seedShotStep(t, env, 1, "https://example.com/", 0)
	seedShotStep(t, env, 2, "https://example.com/pricing", 0)
	seedShotStep(t, env, 3, "https://example.com/", 0) // repeat visit

	env.stub.AnalyzeFn = func(in llm.AnalyzeInput) (*llm.PageAnalysis, error) {
		return &llm.PageAnalysis{
			Summary: "Reviewed " + in.PageURL,
			Issues: []models.UXIssue{{
				Element:     "#nav",
				Description: "Navigation is cramped on " + in.PageURL,
				Severity:    models.SeverityMinor,
				IssueType:   models.IssueTypeUX,
			}},
		}, nil
	}

	res, err := env.analyzer.AnalyzeSession(context.Background(), env.sess.ID)
	require.NoError(t, err)

	require.Len(t, env.stub.AnalyzeCalls, 2, "repeat URLs must not be re-analyzed")
	assert.Equal(t, "https://example.com/", env.stub.AnalyzeCalls[0].PageURL)
	assert.Equal(t, "https://example.com/pricing", env.stub.AnalyzeCalls[1].PageURL)
	assert.Equal(t, []string{"Test Persona"}, env.stub.AnalyzeCalls[0].Personas)
	assert.NotEmpty(t, env.stub.AnalyzeCalls[0].Screenshot)

	assert.Len(t, res.Analyses, 2)
	assert.Len(t, res.Deduplicated, 2)

	rows, err := env.client.Issue.Query().Where(issue.SessionID(env.sess.ID)).All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.NotEmpty(t, row.PageURL)
	}

	// Two minors on a completed session: 100 - 3 - 3.
	assert.Equal(t, 94, res.UXScore)
	sess, err := env.client.Session.Get(context.Background(), env.sess.ID)
	require.NoError(t, err)
	require.NotNil(t, sess.UxScore)
	assert.Equal(t, 94, *sess.UxScore)
}

func TestAnalyzeSessionSkipsFailedPages(t *testing.T) {
	env := setupAnalyzer(t)
	seedShotStep(t, env, 1, "https://example.com/", 0)
	seedShotStep(t, env, 2, "https://example.com/pricing", 0)

	env.stub.AnalyzeFn = func(in llm.AnalyzeInput) (*llm.PageAnalysis, error) {
		if strings.Contains(in.PageURL, "pricing") {
			return nil, errors.New("vision model choked")
		}
		return &llm.PageAnalysis{Summary: "fine", Issues: []models.UXIssue{{
			Description: "Hero text overlaps the fold",
			Severity:    models.SeverityMajor,
		}}}, nil
	}

	res, err := env.analyzer.AnalyzeSession(context.Background(), env.sess.ID)
	require.NoError(t, err, "one failed page must not fail the session analysis")
	assert.Len(t, res.Analyses, 1)
	assert.Len(t, res.Deduplicated, 1)
}

func TestAnalyzeSessionDedupsBySeverity(t *testing.T) {
	env := setupAnalyzer(t)
	seedShotStep(t, env, 1, "https://example.com/", 0)

	env.stub.AnalyzeFn = func(in llm.AnalyzeInput) (*llm.PageAnalysis, error) {
		return &llm.PageAnalysis{Issues: []models.UXIssue{
			{Element: "#cta-button", Description: "Button contrast is too low", Severity: models.SeverityMinor},
			{Element: "#CTA-Button", Description: "BUTTON CONTRAST IS TOO LOW", Severity: models.SeverityCritical},
			{Element: "#signup-form", Description: "Form has no inline validation", Severity: models.SeverityMajor},
		}}, nil
	}

	res, err := env.analyzer.AnalyzeSession(context.Background(), env.sess.ID)
	require.NoError(t, err)
	require.Len(t, res.AllIssues, 3)
	require.Len(t, res.Deduplicated, 2)

	rows, err := env.client.Issue.Query().Where(issue.SessionID(env.sess.ID)).All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		if strings.EqualFold(row.Element, "#cta-button") {
			assert.Equal(t, issue.SeverityCritical, row.Severity, "dedup keeps the worst variant")
		}
	}
}

func TestAnalyzeSessionFlagsSlowPages(t *testing.T) {
	env := setupAnalyzer(t)
	// No screenshots: the vision pass skips both pages, but load timings
	// still feed the performance summary.
	testutil.SeedStep(t, env.client, env.sess.ID, 1, "https://example.com/", "", 4200)
	testutil.SeedStep(t, env.client, env.sess.ID, 2, "https://example.com/pricing", "", 800)

	res, err := env.analyzer.AnalyzeSession(context.Background(), env.sess.ID)
	require.NoError(t, err)

	require.Len(t, res.Performance.SlowPages, 1)
	assert.Equal(t, "https://example.com/", res.Performance.SlowPages[0].URL)
	assert.Greater(t, res.Performance.P50LoadMs, 0.0)
	assert.GreaterOrEqual(t, res.Performance.P95LoadMs, res.Performance.P50LoadMs)

	rows, err := env.client.Issue.Query().Where(issue.SessionID(env.sess.ID)).All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, issue.IssueTypePerformance, rows[0].IssueType)
	assert.Equal(t, issue.SeverityMinor, rows[0].Severity)
	assert.Contains(t, rows[0].Description, "4200 ms")
}

func TestDedupIssuesKeepsFirstSeenOrder(t *testing.T) {
	issues := []models.UXIssue{
		{Element: "#a", Description: "first finding", Severity: models.SeverityMinor},
		{Element: "#b", Description: "second finding", Severity: models.SeverityMajor},
		{Element: "#a", Description: "first finding", Severity: models.SeverityCritical},
	}
	out := DedupIssues(issues)
	require.Len(t, out, 2)
	assert.Equal(t, "#a", out[0].Element)
	assert.Equal(t, models.SeverityCritical, out[0].Severity)
	assert.Equal(t, "#b", out[1].Element)
}

func TestSessionScore(t *testing.T) {
	tests := []struct {
		name       string
		severities []string
		gaveUp     bool
		completed  bool
		want       int
	}{
		{"clean completed run", nil, false, true, 100},
		{"completed with findings", []string{models.SeverityCritical, models.SeverityMajor}, false, true, 77},
		{"gave up outweighs incomplete", []string{models.SeverityMinor}, true, false, 77},
		{"incomplete without give-up", nil, false, false, 90},
		{"floor at zero", []string{
			models.SeverityCritical, models.SeverityCritical, models.SeverityCritical,
			models.SeverityCritical, models.SeverityCritical, models.SeverityCritical,
		}, true, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionScore(tt.severities, tt.gaveUp, tt.completed))
		})
	}
}
