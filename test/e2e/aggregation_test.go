package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/analysis"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Cross-persona aggregation — the same finding surfacing for every persona
// earns the per-persona boost, and grouping collapses the rows back into
// one finding per grouping key.
// ────────────────────────────────────────────────────────────

func TestE2E_CrossPersonaPrioritization(t *testing.T) {
	app := NewTestApp(t)

	// Every persona's screenshot analysis reports the same two findings: a
	// critical one the model pins to the features page, and a minor one
	// that inherits its page from the step the screenshot came from.
	app.Gateway.SetDefault(llm.CapabilityAnalyze, analysisContent(
		"The buy flow hides its call to action.",
		models.UXIssue{
			Element:     "#buy-now",
			Description: "Primary call to action hidden below the fold",
			Severity:    models.SeverityCritical,
			IssueType:   models.IssueTypeUX,
			PageURL:     "https://example.com/features",
		},
		models.UXIssue{
			Element:     ".nav",
			Description: "Navigation labels use internal jargon",
			Severity:    models.SeverityMinor,
			IssueType:   models.IssueTypeUX,
		},
	))

	study := app.SeedStudyMatrix(t, "https://example.com",
		[]string{"Ava", "Bram", "Cleo"}, []string{"Buy the starter plan"})
	app.EnqueueStudy(t, study.ID)
	app.WaitForStudyStatus(t, study.ID, "complete")

	// Two findings from each of three personas, ordered by score.
	issues := app.QueryIssues(t, study.ID)
	require.Len(t, issues, 6)

	// Critical on /features: 40 base + 3 personas × 20, no page bonuses.
	for _, is := range issues[:3] {
		assert.Equal(t, "critical", string(is.Severity))
		assert.Equal(t, "https://example.com/features", is.PageURL)
		assert.Equal(t, 100.0, is.PriorityScore)
	}
	// Minor on the landing page: 10 base + 60 personas + 15 landing.
	for _, is := range issues[3:] {
		assert.Equal(t, "minor", string(is.Severity))
		assert.Equal(t, "https://example.com/", is.PageURL,
			"page must come from the recording step when the model omits it")
		assert.Equal(t, 85.0, is.PriorityScore)
	}

	// Grouping collapses the six rows back to the two findings, best first.
	groups := analysis.GroupIssues(issues)
	require.Len(t, groups, 2)
	assert.Equal(t, 3, groups[0].Count)
	assert.Equal(t, "critical", string(groups[0].Representative.Severity))
	assert.Equal(t, 3, groups[1].Count)
	assert.Equal(t, "minor", string(groups[1].Representative.Severity))
}
