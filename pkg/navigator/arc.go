package navigator

import "github.com/wanderlens/wanderlens/pkg/models"

// emotionalArc accumulates the per-step emotional states of a session and
// locates the page where frustration ran longest.
type emotionalArc struct {
	states []string
	urls   []string
}

func (a *emotionalArc) add(state, url string) {
	a.states = append(a.states, state)
	a.urls = append(a.urls, url)
}

// sequence returns the recorded emotional states in step order.
func (a *emotionalArc) sequence() []string {
	return a.states
}

// peakFrustrationURL returns the URL of the longest consecutive run of
// frustration-family states, or "" when the session never got frustrated.
// Ties go to the earliest run.
func (a *emotionalArc) peakFrustrationURL() string {
	var (
		bestLen, runLen int
		bestURL, runURL string
	)
	for i, state := range a.states {
		if models.FrustrationFamily(state) {
			if runLen == 0 {
				runURL = a.urls[i]
			}
			runLen++
			if runLen > bestLen {
				bestLen = runLen
				bestURL = runURL
			}
		} else {
			runLen = 0
		}
	}
	return bestURL
}
