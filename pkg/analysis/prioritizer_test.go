package analysis

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/pkg/models"
	testdb "github.com/wanderlens/wanderlens/test/database"
	testutil "github.com/wanderlens/wanderlens/test/util"
)

type issueSeed struct {
	sessionID   string
	element     string
	description string
	severity    issue.Severity
	pageURL     string
	timesSeen   int
	regression  bool
}

func seedIssue(t *testing.T, client *ent.Client, studyID string, s issueSeed) *ent.Issue {
	t.Helper()
	create := client.Issue.Create().
		SetID(uuid.NewString()).
		SetStudyID(studyID).
		SetSessionID(s.sessionID).
		SetElement(s.element).
		SetDescription(s.description).
		SetSeverity(s.severity).
		SetPageURL(s.pageURL)
	if s.timesSeen > 0 {
		create.SetTimesSeen(s.timesSeen)
	}
	if s.regression {
		create.SetIsRegression(true)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestScoreIssue(t *testing.T) {
	tests := []struct {
		name string
		sig  IssueSignals
		want float64
	}{
		{
			"critical seen by three personas",
			IssueSignals{Severity: models.SeverityCritical, PersonasAffected: 3, PageURL: "https://example.com/docs/widgets"},
			100,
		},
		{
			"minor baseline",
			IssueSignals{Severity: models.SeverityMinor, PersonasAffected: 1, PageURL: "https://example.com/docs/widgets"},
			30,
		},
		{
			"give-up dominates",
			IssueSignals{Severity: models.SeverityMajor, PersonasAffected: 1, CausedGiveUp: true, PageURL: "https://example.com/docs/widgets"},
			95,
		},
		{
			"landing page bonus",
			IssueSignals{Severity: models.SeverityEnhancement, PersonasAffected: 1, PageURL: "https://example.com/"},
			40,
		},
		{
			"high-traffic path bonus",
			IssueSignals{Severity: models.SeverityMinor, PersonasAffected: 1, PageURL: "https://example.com/pricing"},
			40,
		},
		{
			"repeat bonus",
			IssueSignals{Severity: models.SeverityMinor, PersonasAffected: 1, PageURL: "https://example.com/docs/widgets", TimesSeen: 3},
			45,
		},
		{
			"repeat bonus caps",
			IssueSignals{Severity: models.SeverityMinor, PersonasAffected: 1, PageURL: "https://example.com/docs/widgets", TimesSeen: 12},
			55,
		},
		{
			"regression bonus",
			IssueSignals{Severity: models.SeverityMinor, PersonasAffected: 1, PageURL: "https://example.com/docs/widgets", IsRegression: true},
			60,
		},
		{
			"unknown severity still scores",
			IssueSignals{Severity: "sev0", PersonasAffected: 1, PageURL: "https://example.com/docs/widgets"},
			20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreIssue(tt.sig))
		})
	}
}

func TestPrioritizeStudyIssuesScoresAndOrders(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	study, _, task, sess1 := testutil.SeedSessionChain(t, client.Client, "https://example.com")
	persona2 := testutil.SeedPersona(t, client.Client, study.ID, "Ben")
	persona3 := testutil.SeedPersona(t, client.Client, study.ID, "Ada")
	sess2 := testutil.SeedSession(t, client.Client, study.ID, persona2.ID, task.ID)
	sess3 := testutil.SeedSession(t, client.Client, study.ID, persona3.ID, task.ID)
	_, err := client.Session.UpdateOneID(sess3.ID).
		SetStatus(session.StatusGaveUp).
		Save(ctx)
	require.NoError(t, err)

	// The same checkout blocker, hit by all three personas.
	dup := issueSeed{
		element:     "#pay-now",
		description: "Pay button stays disabled after filling the form",
		severity:    issue.SeverityCritical,
		pageURL:     "https://example.com/checkout",
	}
	for _, sid := range []string{sess1.ID, sess2.ID, sess3.ID} {
		dup.sessionID = sid
		seedIssue(t, client.Client, study.ID, dup)
	}
	seedIssue(t, client.Client, study.ID, issueSeed{
		sessionID:   sess1.ID,
		element:     "#sidebar",
		description: "Sidebar labels truncate at narrow widths",
		severity:    issue.SeverityMinor,
		pageURL:     "https://example.com/docs",
	})

	prioritizer := NewPrioritizer(client.Client)
	ordered, err := prioritizer.PrioritizeStudyIssues(ctx, study.ID)
	require.NoError(t, err)
	require.Len(t, ordered, 4)

	// critical 40 + 3 personas 60 + high-traffic /checkout 10, +50 for the
	// session that gave up.
	scores := make([]float64, len(ordered))
	for i, row := range ordered {
		scores[i] = row.PriorityScore
	}
	assert.Equal(t, []float64{160, 110, 110, 30}, scores)
	assert.Equal(t, sess3.ID, ordered[0].SessionID)

	// Scores are persisted, not just returned.
	reread, err := client.Issue.Get(ctx, ordered[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 160.0, reread.PriorityScore)

	groups := GroupIssues(ordered)
	require.Len(t, groups, 2)
	assert.Equal(t, 3, groups[0].Count)
	assert.Equal(t, 160.0, groups[0].Representative.PriorityScore)
	assert.Equal(t, 1, groups[1].Count)
}

func TestPrioritizeStudyIssuesEmptyStudy(t *testing.T) {
	client := testdb.NewTestClient(t)
	study := testutil.SeedStudy(t, client.Client, "https://example.com")

	ordered, err := NewPrioritizer(client.Client).PrioritizeStudyIssues(context.Background(), study.ID)
	require.NoError(t, err)
	assert.Empty(t, ordered)
}

func TestGroupIssuesCollapsesDuplicates(t *testing.T) {
	issues := []*ent.Issue{
		{ID: "a", PageURL: "https://e.com/", Element: "#cta", Description: "Low contrast"},
		{ID: "b", PageURL: "https://e.com/", Element: "#CTA", Description: "low contrast"},
		{ID: "c", PageURL: "https://e.com/about", Element: "#cta", Description: "Low contrast"},
	}
	groups := GroupIssues(issues)
	require.Len(t, groups, 2)
	assert.Equal(t, "a", groups[0].Representative.ID, "first row represents its group")
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "c", groups[1].Representative.ID, "same element on another page is a different finding")
}

func TestLinkRegressions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	priorStudy, _, _, priorSess := testutil.SeedSessionChain(t, client.Client, "https://www.example.com")
	seedIssue(t, client.Client, priorStudy.ID, issueSeed{
		sessionID:   priorSess.ID,
		element:     "#cta",
		description: "Button contrast too low",
		severity:    issue.SeverityMajor,
		pageURL:     "https://example.com/",
		timesSeen:   2,
	})

	// Same finding on an unrelated site must not count.
	otherStudy, _, _, otherSess := testutil.SeedSessionChain(t, client.Client, "https://other.org")
	seedIssue(t, client.Client, otherStudy.ID, issueSeed{
		sessionID:   otherSess.ID,
		element:     "#cta",
		description: "Button contrast too low",
		severity:    issue.SeverityMajor,
		pageURL:     "https://example.com/",
	})

	study, _, _, sess := testutil.SeedSessionChain(t, client.Client, "https://example.com")
	recurring := seedIssue(t, client.Client, study.ID, issueSeed{
		sessionID:   sess.ID,
		element:     "#cta",
		description: "Button contrast too low",
		severity:    issue.SeverityMajor,
		pageURL:     "https://example.com/",
	})
	fresh := seedIssue(t, client.Client, study.ID, issueSeed{
		sessionID:   sess.ID,
		element:     "#nav",
		description: "Menu collapses unexpectedly",
		severity:    issue.SeverityMinor,
		pageURL:     "https://example.com/",
	})

	linked, err := NewPrioritizer(client.Client).LinkRegressions(ctx, study.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, linked)

	got, err := client.Issue.Get(ctx, recurring.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRegression)
	assert.Equal(t, 3, got.TimesSeen, "times_seen continues the prior study's count")

	got, err = client.Issue.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRegression)
	assert.Equal(t, 1, got.TimesSeen)
}
