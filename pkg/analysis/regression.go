package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/study"
)

// LinkRegressions marks issues of the given study that were already found by
// an earlier study of the same site: a grouping-key match against any prior
// issue sets is_regression and carries the sighting count forward. Must run
// before PrioritizeStudyIssues so the regression bonus lands in the score.
// Returns how many issues were linked.
func (p *Prioritizer) LinkRegressions(ctx context.Context, studyID string) (int, error) {
	current, err := p.client.Study.Get(ctx, studyID)
	if err != nil {
		return 0, fmt.Errorf("loading study %s: %w", studyID, err)
	}
	host := siteHost(current.URL)
	if host == "" {
		return 0, nil
	}

	priorStudies, err := p.client.Study.Query().
		Where(study.IDNEQ(studyID), study.CreatedAtLT(current.CreatedAt)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading prior studies: %w", err)
	}
	var priorIDs []string
	for _, s := range priorStudies {
		if siteHost(s.URL) == host {
			priorIDs = append(priorIDs, s.ID)
		}
	}
	if len(priorIDs) == 0 {
		return 0, nil
	}

	priorIssues, err := p.client.Issue.Query().
		Where(issue.StudyIDIn(priorIDs...)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading prior issues: %w", err)
	}
	// Highest sighting count per key across all prior studies.
	seenBefore := make(map[string]int, len(priorIssues))
	for _, iss := range priorIssues {
		key := groupKey(iss.PageURL, iss.Element, iss.Description)
		if iss.TimesSeen > seenBefore[key] {
			seenBefore[key] = iss.TimesSeen
		}
	}

	currentIssues, err := p.client.Issue.Query().
		Where(issue.StudyID(studyID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading issues for study %s: %w", studyID, err)
	}

	tx, err := p.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("starting regression transaction: %w", err)
	}
	linked := 0
	for _, iss := range currentIssues {
		prior, ok := seenBefore[groupKey(iss.PageURL, iss.Element, iss.Description)]
		if !ok {
			continue
		}
		if _, err := tx.Issue.UpdateOneID(iss.ID).
			SetIsRegression(true).
			SetTimesSeen(prior + 1).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("linking regression on issue %s: %w", iss.ID, err)
		}
		linked++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing regression links: %w", err)
	}
	if linked > 0 {
		slog.Info("linked regressions", "study_id", studyID, "count", linked)
	}
	return linked, nil
}

// siteHost normalizes a study URL to its host for cross-study matching.
func siteHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}
