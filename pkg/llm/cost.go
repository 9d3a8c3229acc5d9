package llm

import (
	"sync"

	"github.com/wanderlens/wanderlens/pkg/models"
	llmv1 "github.com/wanderlens/wanderlens/proto"
)

// CostTracker aggregates gateway usage per study and capability. One
// tracker serves the whole process; a study drains its slice when it
// completes.
type CostTracker struct {
	mu      sync.Mutex
	byStudy map[string]map[string]models.CapabilityCost
}

func NewCostTracker() *CostTracker {
	return &CostTracker{byStudy: make(map[string]map[string]models.CapabilityCost)}
}

// Record adds one call's usage under (studyID, capability). A nil usage
// still counts the call; the gateway omits usage on some error paths.
func (t *CostTracker) Record(studyID, capability string, usage *llmv1.Usage) {
	if studyID == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	caps := t.byStudy[studyID]
	if caps == nil {
		caps = make(map[string]models.CapabilityCost)
		t.byStudy[studyID] = caps
	}
	c := caps[capability]
	c.Calls++
	if usage != nil {
		c.PromptTokens += usage.PromptTokens
		c.CompletionTokens += usage.CompletionTokens
		c.USD += usage.CostUsd
	}
	caps[capability] = c
}

// Drain returns the accumulated breakdown for a study and forgets it.
func (t *CostTracker) Drain(studyID string) models.CostBreakdown {
	t.mu.Lock()
	defer t.mu.Unlock()
	caps := t.byStudy[studyID]
	delete(t.byStudy, studyID)

	out := models.CostBreakdown{}
	if len(caps) == 0 {
		return out
	}
	out.ByCapability = make(map[string]models.CapabilityCost, len(caps))
	for name, c := range caps {
		out.ByCapability[name] = c
		out.TotalUSD += c.USD
	}
	return out
}
