// Package analysis turns recorded sessions into ranked findings: a vision
// pass over each distinct page, severity-aware dedup, deterministic session
// scoring, additive issue prioritization, and the study-level synthesis call.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/pkg/blob"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
)

// slowPageMs is the load-time budget; pages above it surface a performance
// issue in the analysis pass.
const slowPageMs = 3000

// Analyzer runs the per-session vision pass and persists its findings.
type Analyzer struct {
	client *ent.Client
	blobs  *blob.Store
	llm    llm.Client
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(client *ent.Client, blobs *blob.Store, llmClient llm.Client) *Analyzer {
	return &Analyzer{client: client, blobs: blobs, llm: llmClient}
}

// PageReview is one page's vision analysis.
type PageReview struct {
	URL     string
	Summary string
	Issues  []models.UXIssue
}

// SlowPage is a page whose load time exceeded the budget.
type SlowPage struct {
	URL        string
	LoadTimeMs int
}

// PerformanceSummary aggregates load timings across the session's steps.
type PerformanceSummary struct {
	P50LoadMs float64
	P95LoadMs float64
	SlowPages []SlowPage
}

// AnalysisResult is everything one session's analysis produced. Deduplicated
// is the subset that was persisted as issue rows.
type AnalysisResult struct {
	SessionID    string
	Analyses     []PageReview
	AllIssues    []models.UXIssue
	Deduplicated []models.UXIssue
	Performance  PerformanceSummary
	UXScore      int
}

// AnalyzeSession reviews every distinct page the session visited, collects
// and dedups the issues, persists them, and stamps the session's ux_score.
// Individual page failures are logged and skipped: one unreviewable page
// must not void the rest of the session's findings.
func (a *Analyzer) AnalyzeSession(ctx context.Context, sessionID string) (*AnalysisResult, error) {
	sess, err := a.client.Session.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}
	persona, err := a.client.Persona.Get(ctx, sess.PersonaID)
	if err != nil {
		return nil, fmt.Errorf("loading persona for session %s: %w", sessionID, err)
	}
	profile, err := models.PersonaProfileFromMap(persona.Profile)
	if err != nil {
		return nil, fmt.Errorf("decoding persona profile: %w", err)
	}

	steps, err := a.client.Step.Query().
		Where(step.SessionID(sessionID)).
		Order(ent.Asc(step.FieldStepNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading steps for session %s: %w", sessionID, err)
	}

	result := &AnalysisResult{SessionID: sessionID}
	result.Performance = performanceSummary(steps)

	for _, pageStep := range distinctPages(steps) {
		review, err := a.reviewPage(ctx, sess.StudyID, profile.Name, pageStep)
		if err != nil {
			slog.Warn("page analysis failed, skipping",
				"session_id", sessionID, "url", pageStep.PageURL, "error", err)
			continue
		}
		result.Analyses = append(result.Analyses, *review)
		result.AllIssues = append(result.AllIssues, review.Issues...)
	}
	result.AllIssues = append(result.AllIssues, performanceIssues(result.Performance)...)
	result.Deduplicated = DedupIssues(result.AllIssues)

	if err := a.persistIssues(ctx, sess, result.Deduplicated); err != nil {
		return nil, err
	}

	score, err := a.storeSessionScore(ctx, sess)
	if err != nil {
		return nil, err
	}
	result.UXScore = score

	slog.Info("session analyzed",
		"session_id", sessionID,
		"pages", len(result.Analyses),
		"issues", len(result.Deduplicated),
		"ux_score", score)
	return result, nil
}

// distinctPages returns the first step for each URL, in first-seen order.
// Repeat visits add nothing to a vision pass.
func distinctPages(steps []*ent.Step) []*ent.Step {
	seen := make(map[string]bool, len(steps))
	var pages []*ent.Step
	for _, s := range steps {
		if s.PageURL == "" || seen[s.PageURL] {
			continue
		}
		seen[s.PageURL] = true
		pages = append(pages, s)
	}
	return pages
}

func (a *Analyzer) reviewPage(ctx context.Context, studyID, personaName string, pageStep *ent.Step) (*PageReview, error) {
	if pageStep.ScreenshotRef == "" {
		return nil, fmt.Errorf("step %d has no screenshot", pageStep.StepNumber)
	}
	shot, err := a.blobs.Get(pageStep.ScreenshotRef)
	if err != nil {
		return nil, fmt.Errorf("loading screenshot %s: %w", pageStep.ScreenshotRef, err)
	}

	analysis, err := a.llm.AnalyzeScreenshot(ctx, llm.AnalyzeInput{
		StudyID:    studyID,
		PageURL:    pageStep.PageURL,
		PageTitle:  pageStep.PageTitle,
		Screenshot: shot,
		Personas:   []string{personaName},
	})
	if err != nil {
		return nil, err
	}

	review := &PageReview{URL: pageStep.PageURL, Summary: analysis.Summary}
	for _, iss := range analysis.Issues {
		iss.Normalize()
		if iss.PageURL == "" {
			iss.PageURL = pageStep.PageURL
		}
		review.Issues = append(review.Issues, iss)
	}
	return review, nil
}

// dedupKey collapses near-identical findings: same element, same first words
// of the description.
func dedupKey(iss models.UXIssue) string {
	return strings.ToLower(clip(iss.Element, 50)) + ":" + strings.ToLower(clip(iss.Description, 50))
}

// DedupIssues groups issues by dedupKey and keeps the highest-severity
// variant of each group, preserving first-seen order.
func DedupIssues(issues []models.UXIssue) []models.UXIssue {
	byKey := make(map[string]int, len(issues))
	var out []models.UXIssue
	for _, iss := range issues {
		key := dedupKey(iss)
		at, ok := byKey[key]
		if !ok {
			byKey[key] = len(out)
			out = append(out, iss)
			continue
		}
		if models.SeverityRank[iss.Severity] < models.SeverityRank[out[at].Severity] {
			out[at] = iss
		}
	}
	return out
}

func (a *Analyzer) persistIssues(ctx context.Context, sess *ent.Session, issues []models.UXIssue) error {
	if len(issues) == 0 {
		return nil
	}
	tx, err := a.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting issue transaction: %w", err)
	}
	for _, iss := range issues {
		create := tx.Issue.Create().
			SetID(uuid.NewString()).
			SetStudyID(sess.StudyID).
			SetSessionID(sess.ID).
			SetElement(iss.Element).
			SetDescription(iss.Description).
			SetSeverity(issue.Severity(iss.Severity)).
			SetIssueType(issue.IssueType(iss.IssueType)).
			SetPageURL(iss.PageURL)
		if iss.Heuristic != "" {
			create.SetHeuristic(iss.Heuristic)
		}
		if iss.WCAGCriterion != "" {
			create.SetWcagCriterion(iss.WCAGCriterion)
		}
		if iss.Recommendation != "" {
			create.SetRecommendation(iss.Recommendation)
		}
		if _, err := create.Save(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("persisting issue: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing issues: %w", err)
	}
	return nil
}

// storeSessionScore computes the deterministic ux_score from everything now
// on record for the session (inline and analysis issues) and saves it.
func (a *Analyzer) storeSessionScore(ctx context.Context, sess *ent.Session) (int, error) {
	rows, err := a.client.Issue.Query().
		Where(issue.SessionID(sess.ID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading issues for score: %w", err)
	}
	severities := make([]string, len(rows))
	for i, r := range rows {
		severities[i] = string(r.Severity)
	}
	score := SessionScore(severities, sess.Status == session.StatusGaveUp, sess.TaskCompleted)
	if _, err := a.client.Session.UpdateOneID(sess.ID).SetUxScore(score).Save(ctx); err != nil {
		return 0, fmt.Errorf("saving ux_score: %w", err)
	}
	return score, nil
}

// SessionScore starts every session at 100 and subtracts for what went
// wrong: each issue by severity, plus a single outcome penalty (giving up
// outweighs merely not finishing).
func SessionScore(severities []string, gaveUp, taskCompleted bool) int {
	score := 100
	for _, sev := range severities {
		switch sev {
		case models.SeverityCritical:
			score -= 15
		case models.SeverityMajor:
			score -= 8
		case models.SeverityMinor:
			score -= 3
		case models.SeverityEnhancement:
			score -= 1
		}
	}
	switch {
	case gaveUp:
		score -= 20
	case !taskCompleted:
		score -= 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// performanceSummary computes p50/p95 load time over the session's steps and
// flags pages over the slowPageMs budget (first occurrence per URL).
func performanceSummary(steps []*ent.Step) PerformanceSummary {
	var summary PerformanceSummary
	var loads []float64
	seen := make(map[string]bool)
	for _, s := range steps {
		if s.LoadTimeMs == nil || *s.LoadTimeMs <= 0 {
			continue
		}
		loads = append(loads, float64(*s.LoadTimeMs))
		if *s.LoadTimeMs > slowPageMs && !seen[s.PageURL] {
			seen[s.PageURL] = true
			summary.SlowPages = append(summary.SlowPages, SlowPage{URL: s.PageURL, LoadTimeMs: *s.LoadTimeMs})
		}
	}
	if len(loads) == 0 {
		return summary
	}
	if p50, err := stats.Percentile(loads, 50); err == nil {
		summary.P50LoadMs = p50
	}
	if p95, err := stats.Percentile(loads, 95); err == nil {
		summary.P95LoadMs = p95
	}
	return summary
}

// performanceIssues turns slow pages into findings so they rank alongside
// everything else the analysis saw.
func performanceIssues(summary PerformanceSummary) []models.UXIssue {
	var out []models.UXIssue
	for _, page := range summary.SlowPages {
		severity := models.SeverityMinor
		if page.LoadTimeMs > 2*slowPageMs {
			severity = models.SeverityMajor
		}
		out = append(out, models.UXIssue{
			Description:    fmt.Sprintf("Page load took %d ms, above the %d ms budget", page.LoadTimeMs, slowPageMs),
			Severity:       severity,
			IssueType:      models.IssueTypePerformance,
			Recommendation: "Profile the page's critical rendering path and defer non-essential assets.",
			PageURL:        page.URL,
		})
	}
	return out
}

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
