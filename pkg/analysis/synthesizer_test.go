package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
	testdb "github.com/wanderlens/wanderlens/test/database"
	testutil "github.com/wanderlens/wanderlens/test/util"
)

type synthesisEnv struct {
	client *ent.Client
	stub   *llm.StubClient
	synth  *Synthesizer
	study  *ent.Study
	sess1  *ent.Session
	sess2  *ent.Session
}

// setupSynthesizer seeds a two-persona study whose sessions already carry
// navigation outcomes, the state Synthesize runs against in production.
func setupSynthesizer(t *testing.T) *synthesisEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	study, _, task, sess1 := testutil.SeedSessionChain(t, client.Client, "https://example.com")
	persona2 := testutil.SeedPersona(t, client.Client, study.ID, "Ben")
	sess2 := testutil.SeedSession(t, client.Client, study.ID, persona2.ID, task.ID)

	sess1, err := client.Session.UpdateOneID(sess1.ID).
		SetStatus(session.StatusComplete).
		SetTaskCompleted(true).
		SetTotalSteps(6).
		SetUxScore(88).
		SetSummary("Completed the task in 6 steps.").
		SetEmotionalArc([]string{"curious", "satisfied"}).
		Save(ctx)
	require.NoError(t, err)
	sess2, err = client.Session.UpdateOneID(sess2.ID).
		SetStatus(session.StatusGaveUp).
		SetTotalSteps(9).
		SetUxScore(31).
		SetSummary("Gave up after 9 steps: the pay button never enabled.").
		SetEmotionalArc([]string{"curious", "confused", "frustrated"}).
		Save(ctx)
	require.NoError(t, err)

	stub := &llm.StubClient{}
	return &synthesisEnv{
		client: client.Client,
		stub:   stub,
		synth:  NewSynthesizer(client.Client, stub),
		study:  study,
		sess1:  sess1,
		sess2:  sess2,
	}
}

func TestSynthesizePersistsInsightsAndScore(t *testing.T) {
	env := setupSynthesizer(t)
	ctx := context.Background()

	// The same blocker seen by both personas, plus a one-off.
	dup := issueSeed{
		element:     "#pay-now",
		description: "Pay button stays disabled after filling the form",
		severity:    issue.SeverityCritical,
		pageURL:     "https://example.com/checkout",
	}
	for _, sid := range []string{env.sess1.ID, env.sess2.ID} {
		dup.sessionID = sid
		seedIssue(t, env.client, env.study.ID, dup)
	}
	seedIssue(t, env.client, env.study.ID, issueSeed{
		sessionID:   env.sess1.ID,
		element:     "#sidebar",
		description: "Sidebar labels truncate at narrow widths",
		severity:    issue.SeverityMinor,
		pageURL:     "https://example.com/docs",
	})

	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return &models.StudySynthesis{
			OverallUXScore:   58,
			ExecutiveSummary: "Checkout loses people; the rest of the site holds up.",
			UniversalIssues: []models.SynthesisFinding{{
				Title:            "Checkout dead-ends",
				Description:      "Both personas stalled on the disabled pay button.",
				Severity:         "critical",
				PersonasAffected: []string{"Test Persona", "Ben"},
				Evidence:         "2 of 2 sessions stuck on /checkout",
			}},
			PersonaSpecificFindings: []models.SynthesisFinding{{
				Title:       "Docs sidebar confuses low-patience users",
				Description: "Truncated labels made Ben re-read the navigation.",
			}},
			Recommendations: []models.Recommendation{{
				Title:       "Enable the pay button on form validity",
				Description: "Bind the disabled state to live validation.",
				Impact:      "high",
				Effort:      "low",
			}},
		}, nil
	}

	res, err := env.synth.Synthesize(ctx, env.study.ID)
	require.NoError(t, err)
	assert.Equal(t, 58, res.OverallUXScore)

	// Prompt input assembled from the study rows.
	require.Len(t, env.stub.SynthesizeCalls, 1)
	in := env.stub.SynthesizeCalls[0]
	assert.Equal(t, "https://example.com", in.TargetURL)
	assert.Equal(t, "1. Find the pricing page", in.Description)
	assert.Equal(t, synthesisThinkingTokens, in.ThinkingBudgetTokens)
	require.Len(t, in.Sessions, 2)
	assert.Equal(t, "Test Persona", in.Sessions[0].PersonaName)
	assert.Equal(t, "Find the pricing page", in.Sessions[0].Task)
	assert.Equal(t, "curious, satisfied", in.Sessions[0].EmotionalArc)
	assert.Equal(t, "gave_up", in.Sessions[1].Status)
	require.NotNil(t, in.Sessions[1].UXScore)
	assert.Equal(t, 31, *in.Sessions[1].UXScore)
	require.Len(t, in.TopIssues, 2, "duplicate findings collapse to one prompt line")
	assert.Equal(t, "#pay-now", in.TopIssues[0].Element)

	// Insights land ranked, typed, in output order.
	insights, err := env.client.Insight.Query().
		Where(insight.StudyID(env.study.ID)).
		Order(ent.Asc(insight.FieldRank)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, insights, 3)
	assert.Equal(t, []insight.Type{insight.TypeUniversal, insight.TypePersonaSpecific, insight.TypeRecommendation},
		[]insight.Type{insights[0].Type, insights[1].Type, insights[2].Type})
	assert.Equal(t, []int{1, 2, 3}, []int{insights[0].Rank, insights[1].Rank, insights[2].Rank})
	require.NotNil(t, insights[0].Severity)
	assert.Equal(t, "critical", *insights[0].Severity)
	assert.Equal(t, []string{"Test Persona", "Ben"}, insights[0].PersonasAffected)
	require.NotNil(t, insights[2].Impact)
	assert.Equal(t, "high", *insights[2].Impact)

	st, err := env.client.Study.Get(ctx, env.study.ID)
	require.NoError(t, err)
	require.NotNil(t, st.OverallScore)
	assert.Equal(t, 58, *st.OverallScore)
	require.NotNil(t, st.ExecutiveSummary)
	assert.Contains(t, *st.ExecutiveSummary, "Checkout loses people")
}

func TestSynthesizeReplacesExistingInsights(t *testing.T) {
	env := setupSynthesizer(t)
	ctx := context.Background()

	stale, err := env.client.Insight.Create().
		SetID(uuid.NewString()).
		SetStudyID(env.study.ID).
		SetType(insight.TypeUniversal).
		SetTitle("Stale finding").
		SetDescription("Left over from an earlier run.").
		SetRank(1).
		Save(ctx)
	require.NoError(t, err)

	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return &models.StudySynthesis{
			OverallUXScore:   70,
			ExecutiveSummary: "Second pass.",
			Recommendations: []models.Recommendation{{
				Title:       "Only finding",
				Description: "Everything else resolved.",
			}},
		}, nil
	}

	_, err = env.synth.Synthesize(ctx, env.study.ID)
	require.NoError(t, err)

	insights, err := env.client.Insight.Query().
		Where(insight.StudyID(env.study.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.NotEqual(t, stale.ID, insights[0].ID)
	assert.Equal(t, insight.TypeRecommendation, insights[0].Type)
	assert.Equal(t, "Only finding", insights[0].Title)
}

func TestSynthesizeRetriesTransientFailures(t *testing.T) {
	env := setupSynthesizer(t)
	env.synth.retryInitial = time.Millisecond

	var calls int
	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		calls++
		if calls <= 2 {
			return nil, &llm.TransientError{Capability: "synthesize", Err: errors.New("gateway unavailable")}
		}
		return &models.StudySynthesis{OverallUXScore: 80, ExecutiveSummary: "Recovered."}, nil
	}

	res, err := env.synth.Synthesize(context.Background(), env.study.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 80, res.OverallUXScore)

	st, err := env.client.Study.Get(context.Background(), env.study.ID)
	require.NoError(t, err)
	require.NotNil(t, st.OverallScore)
	assert.Equal(t, 80, *st.OverallScore)
}

func TestSynthesizeSchemaErrorFailsFast(t *testing.T) {
	env := setupSynthesizer(t)
	env.synth.retryInitial = time.Millisecond

	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return nil, &llm.SchemaError{Capability: "synthesize", Raw: "not json", Err: errors.New("invalid character 'n'")}
	}

	_, err := env.synth.Synthesize(context.Background(), env.study.ID)
	var schemaErr *llm.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, env.stub.SynthesizeCalls, 1, "schema failures must not burn retries")

	st, err := env.client.Study.Get(context.Background(), env.study.ID)
	require.NoError(t, err)
	assert.Nil(t, st.OverallScore, "a failed synthesis leaves the study unstamped")
}

func TestSynthesizeClampsScore(t *testing.T) {
	env := setupSynthesizer(t)
	env.stub.SynthesizeFn = func(in llm.SynthesizeInput) (*models.StudySynthesis, error) {
		return &models.StudySynthesis{OverallUXScore: 250, ExecutiveSummary: "Optimistic model."}, nil
	}

	res, err := env.synth.Synthesize(context.Background(), env.study.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, res.OverallUXScore)

	st, err := env.client.Study.Get(context.Background(), env.study.ID)
	require.NoError(t, err)
	require.NotNil(t, st.OverallScore)
	assert.Equal(t, 100, *st.OverallScore)
}
