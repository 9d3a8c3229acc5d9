package analysis

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/session"
)

// Additive scoring weights. The score is a triage ordering, not a metric:
// a critical issue that made three personas give up on the landing page must
// sort above everything else.
const (
	scoreCritical    = 40
	scoreMajor       = 25
	scoreMinor       = 10
	scoreEnhancement = 5

	scorePerPersona   = 20
	scoreGiveUp       = 50
	scoreLandingPage  = 15
	scoreHighTraffic  = 10
	scorePerRepeat    = 5
	scoreRepeatCap    = 5
	scoreIsRegression = 30
)

var highTrafficPaths = []string{"signup", "login", "pricing", "checkout", "register"}

// Prioritizer scores a study's issues and persists the ordering.
type Prioritizer struct {
	client *ent.Client
}

// NewPrioritizer creates a Prioritizer.
func NewPrioritizer(client *ent.Client) *Prioritizer {
	return &Prioritizer{client: client}
}

// IssueSignals are the inputs to the pure scoring formula.
type IssueSignals struct {
	Severity         string
	PersonasAffected int
	CausedGiveUp     bool
	PageURL          string
	TimesSeen        int
	IsRegression     bool
}

// ScoreIssue computes the additive priority score for one issue.
func ScoreIssue(sig IssueSignals) float64 {
	var score float64
	switch sig.Severity {
	case "critical":
		score = scoreCritical
	case "major":
		score = scoreMajor
	case "minor":
		score = scoreMinor
	case "enhancement":
		score = scoreEnhancement
	}

	score += float64(scorePerPersona * sig.PersonasAffected)
	if sig.CausedGiveUp {
		score += scoreGiveUp
	}

	path := pagePath(sig.PageURL)
	if isLandingPath(path) {
		score += scoreLandingPage
	}
	if isHighTrafficPath(path) {
		score += scoreHighTraffic
	}

	if sig.TimesSeen > 1 {
		score += float64(scorePerRepeat * min(sig.TimesSeen, scoreRepeatCap))
	}
	if sig.IsRegression {
		score += scoreIsRegression
	}
	return score
}

// PrioritizeStudyIssues scores every issue of the study, persists the
// scores, and returns the issues ordered by score descending (ties by
// created_at ascending).
func (p *Prioritizer) PrioritizeStudyIssues(ctx context.Context, studyID string) ([]*ent.Issue, error) {
	issues, err := p.client.Issue.Query().
		Where(issue.StudyID(studyID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading issues for study %s: %w", studyID, err)
	}
	if len(issues) == 0 {
		return nil, nil
	}

	sessions, err := p.client.Session.Query().
		Where(session.StudyID(studyID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions for study %s: %w", studyID, err)
	}
	personaOf := make(map[string]string, len(sessions))
	gaveUp := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		personaOf[s.ID] = s.PersonaID
		gaveUp[s.ID] = s.Status == session.StatusGaveUp
	}

	// Distinct personas per grouping key.
	personasByKey := make(map[string]map[string]bool)
	for _, iss := range issues {
		key := groupKey(iss.PageURL, iss.Element, iss.Description)
		if personasByKey[key] == nil {
			personasByKey[key] = make(map[string]bool)
		}
		personasByKey[key][personaOf[iss.SessionID]] = true
	}

	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting prioritization transaction: %w", err)
	}
	for _, iss := range issues {
		score := ScoreIssue(IssueSignals{
			Severity:         string(iss.Severity),
			PersonasAffected: len(personasByKey[groupKey(iss.PageURL, iss.Element, iss.Description)]),
			CausedGiveUp:     gaveUp[iss.SessionID],
			PageURL:          iss.PageURL,
			TimesSeen:        iss.TimesSeen,
			IsRegression:     iss.IsRegression,
		})
		if _, err := tx.Issue.UpdateOneID(iss.ID).SetPriorityScore(score).Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("saving priority score for issue %s: %w", iss.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing priority scores: %w", err)
	}

	return p.client.Issue.Query().
		Where(issue.StudyID(studyID)).
		Order(ent.Desc(issue.FieldPriorityScore), ent.Asc(issue.FieldCreatedAt)).
		All(ctx)
}

// groupKey identifies "the same finding" across sessions and personas.
func groupKey(pageURL, element, description string) string {
	return strings.ToLower(pageURL) + "|" +
		strings.ToLower(clip(element, 50)) + "|" +
		strings.ToLower(clip(description, 80))
}

// IssueGroup is one finding after collapsing duplicates across sessions.
// Representative is the highest-priority row of the group.
type IssueGroup struct {
	Representative *ent.Issue
	Count          int
}

// GroupIssues collapses issues sharing a grouping key into single aggregates.
// Input order is preserved, so feeding it a score-sorted slice yields groups
// sorted by their best row.
func GroupIssues(issues []*ent.Issue) []IssueGroup {
	at := make(map[string]int, len(issues))
	var groups []IssueGroup
	for _, iss := range issues {
		key := groupKey(iss.PageURL, iss.Element, iss.Description)
		if i, ok := at[key]; ok {
			groups[i].Count++
			continue
		}
		at[key] = len(groups)
		groups = append(groups, IssueGroup{Representative: iss, Count: 1})
	}
	return groups
}

// pagePath lowers and extracts the path component; an unparseable URL is
// matched as a whole.
func pagePath(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return strings.ToLower(pageURL)
	}
	if u.Path == "" {
		return "/"
	}
	return strings.ToLower(u.Path)
}

func isLandingPath(path string) bool {
	return path == "/" || strings.Contains(path, "home") || strings.Contains(path, "landing")
}

func isHighTrafficPath(path string) bool {
	for _, p := range highTrafficPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}
