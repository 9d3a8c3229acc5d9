package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/task"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
)

const (
	// synthesisTopIssues caps how many prioritized issues ride along in the
	// synthesis prompt.
	synthesisTopIssues = 20

	// synthesisRetries bounds transient-failure retries of the single
	// synthesis call.
	synthesisRetries = 3

	// synthesisThinkingTokens is the extended-thinking budget requested from
	// the gateway for the synthesis call.
	synthesisThinkingTokens = 8192
)

// Synthesizer produces the study-level rollup: one schema-validated LLM call
// over all session summaries and the top prioritized issues, persisted as
// insight rows plus the study's overall score and executive summary.
type Synthesizer struct {
	client *ent.Client
	llm    llm.Client

	retryInitial time.Duration
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(client *ent.Client, llmClient llm.Client) *Synthesizer {
	return &Synthesizer{client: client, llm: llmClient, retryInitial: time.Second}
}

// Synthesize runs the synthesis call for the study and lands its output:
// insights are replaced wholesale, never merged, so a rerun cannot leave a
// stale mix. Returns the synthesis for the caller to publish.
func (s *Synthesizer) Synthesize(ctx context.Context, studyID string) (*models.StudySynthesis, error) {
	in, err := s.buildInput(ctx, studyID)
	if err != nil {
		return nil, err
	}

	var synthesis *models.StudySynthesis
	op := func() error {
		result, err := s.llm.SynthesizeStudy(ctx, *in)
		if err != nil {
			if llm.IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		synthesis = result
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retryInitial
	b.MaxElapsedTime = 0
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, synthesisRetries), ctx)); err != nil {
		return nil, fmt.Errorf("synthesizing study %s: %w", studyID, err)
	}

	if synthesis.OverallUXScore < 0 {
		synthesis.OverallUXScore = 0
	}
	if synthesis.OverallUXScore > 100 {
		synthesis.OverallUXScore = 100
	}

	if err := s.persist(ctx, studyID, synthesis); err != nil {
		return nil, err
	}
	return synthesis, nil
}

// buildInput assembles the synthesis prompt inputs from the study's rows.
func (s *Synthesizer) buildInput(ctx context.Context, studyID string) (*llm.SynthesizeInput, error) {
	st, err := s.client.Study.Get(ctx, studyID)
	if err != nil {
		return nil, fmt.Errorf("loading study %s: %w", studyID, err)
	}

	tasks, err := s.client.Task.Query().
		Where(task.StudyID(studyID)).
		Order(ent.Asc(task.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	taskOf := make(map[string]string, len(tasks))
	var taskLines []string
	for i, t := range tasks {
		taskOf[t.ID] = t.Description
		taskLines = append(taskLines, fmt.Sprintf("%d. %s", i+1, t.Description))
	}

	personas, err := s.client.Persona.Query().
		Where(persona.StudyID(studyID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading personas: %w", err)
	}
	personaName := make(map[string]string, len(personas))
	for _, p := range personas {
		profile, err := models.PersonaProfileFromMap(p.Profile)
		if err != nil {
			return nil, fmt.Errorf("decoding persona %s profile: %w", p.ID, err)
		}
		personaName[p.ID] = profile.Name
	}

	sessions, err := s.client.Session.Query().
		Where(session.StudyID(studyID)).
		Order(ent.Asc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summary := models.SessionSummary{
			SessionID:     sess.ID,
			PersonaName:   personaName[sess.PersonaID],
			Task:          taskOf[sess.TaskID],
			Status:        string(sess.Status),
			TaskCompleted: sess.TaskCompleted,
			TotalSteps:    sess.TotalSteps,
			EmotionalArc:  strings.Join(sess.EmotionalArc, ", "),
			UXScore:       sess.UxScore,
		}
		if sess.Summary != nil {
			summary.Summary = *sess.Summary
		}
		summaries = append(summaries, summary)
	}

	rows, err := s.client.Issue.Query().
		Where(issue.StudyID(studyID)).
		Order(ent.Desc(issue.FieldPriorityScore), ent.Asc(issue.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading issues: %w", err)
	}
	// Duplicates across personas collapse to one prompt line each.
	groups := GroupIssues(rows)
	if len(groups) > synthesisTopIssues {
		groups = groups[:synthesisTopIssues]
	}
	topIssues := make([]models.UXIssue, 0, len(groups))
	for _, g := range groups {
		topIssues = append(topIssues, issueFromRow(g.Representative))
	}

	return &llm.SynthesizeInput{
		StudyID:              studyID,
		TargetURL:            st.URL,
		Description:          strings.Join(taskLines, "\n"),
		Sessions:             summaries,
		TopIssues:            topIssues,
		ThinkingBudgetTokens: synthesisThinkingTokens,
	}, nil
}

// persist lands the synthesis atomically: delete-then-insert the study's
// insights and stamp overall_score and executive_summary on the study row.
func (s *Synthesizer) persist(ctx context.Context, studyID string, synthesis *models.StudySynthesis) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting synthesis transaction: %w", err)
	}
	rollback := func(err error) error {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Insight.Delete().
		Where(insight.StudyID(studyID)).
		Exec(ctx); err != nil {
		return rollback(fmt.Errorf("clearing previous insights: %w", err))
	}

	rank := 0
	addFinding := func(kind insight.Type, f models.SynthesisFinding) error {
		rank++
		create := tx.Insight.Create().
			SetID(uuid.NewString()).
			SetStudyID(studyID).
			SetType(kind).
			SetTitle(f.Title).
			SetDescription(f.Description).
			SetRank(rank)
		if f.Severity != "" {
			create.SetSeverity(f.Severity)
		}
		if len(f.PersonasAffected) > 0 {
			create.SetPersonasAffected(f.PersonasAffected)
		}
		if f.Evidence != "" {
			create.SetEvidence(f.Evidence)
		}
		_, err := create.Save(ctx)
		return err
	}
	for _, f := range synthesis.UniversalIssues {
		if err := addFinding(insight.TypeUniversal, f); err != nil {
			return rollback(fmt.Errorf("persisting universal insight: %w", err))
		}
	}
	for _, f := range synthesis.PersonaSpecificFindings {
		if err := addFinding(insight.TypePersonaSpecific, f); err != nil {
			return rollback(fmt.Errorf("persisting persona insight: %w", err))
		}
	}
	for _, r := range synthesis.Recommendations {
		rank++
		create := tx.Insight.Create().
			SetID(uuid.NewString()).
			SetStudyID(studyID).
			SetType(insight.TypeRecommendation).
			SetTitle(r.Title).
			SetDescription(r.Description).
			SetRank(rank)
		if r.Impact != "" {
			create.SetImpact(r.Impact)
		}
		if r.Effort != "" {
			create.SetEffort(r.Effort)
		}
		if _, err := create.Save(ctx); err != nil {
			return rollback(fmt.Errorf("persisting recommendation: %w", err))
		}
	}

	if _, err := tx.Study.UpdateOneID(studyID).
		SetOverallScore(synthesis.OverallUXScore).
		SetExecutiveSummary(synthesis.ExecutiveSummary).
		Save(ctx); err != nil {
		return rollback(fmt.Errorf("stamping study synthesis: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing synthesis: %w", err)
	}
	return nil
}

// issueFromRow converts a stored issue back to its prompt form.
func issueFromRow(row *ent.Issue) models.UXIssue {
	iss := models.UXIssue{
		Element:     row.Element,
		Description: row.Description,
		Severity:    string(row.Severity),
		IssueType:   string(row.IssueType),
		PageURL:     row.PageURL,
	}
	if row.Heuristic != nil {
		iss.Heuristic = *row.Heuristic
	}
	if row.WcagCriterion != nil {
		iss.WCAGCriterion = *row.WcagCriterion
	}
	if row.Recommendation != nil {
		iss.Recommendation = *row.Recommendation
	}
	return iss
}
