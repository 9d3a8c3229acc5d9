package llm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmv1 "github.com/wanderlens/wanderlens/proto"
)

func TestCostTracker(t *testing.T) {
	t.Run("aggregates per capability", func(t *testing.T) {
		tr := NewCostTracker()
		tr.Record("study-1", CapabilityDecision, &llmv1.Usage{PromptTokens: 100, CompletionTokens: 20, CostUsd: 0.01})
		tr.Record("study-1", CapabilityDecision, &llmv1.Usage{PromptTokens: 150, CompletionTokens: 30, CostUsd: 0.02})
		tr.Record("study-1", CapabilitySynthesize, &llmv1.Usage{PromptTokens: 5000, CompletionTokens: 800, CostUsd: 0.15})
		tr.Record("study-2", CapabilityDecision, &llmv1.Usage{CostUsd: 0.5})

		b := tr.Drain("study-1")
		assert.InDelta(t, 0.18, b.TotalUSD, 1e-9)
		require.Len(t, b.ByCapability, 2)
		dec := b.ByCapability[CapabilityDecision]
		assert.Equal(t, 2, dec.Calls)
		assert.Equal(t, int64(250), dec.PromptTokens)
		assert.Equal(t, int64(50), dec.CompletionTokens)

		// study-2 untouched by study-1's drain.
		b2 := tr.Drain("study-2")
		assert.InDelta(t, 0.5, b2.TotalUSD, 1e-9)
	})

	t.Run("nil usage still counts the call", func(t *testing.T) {
		tr := NewCostTracker()
		tr.Record("study-1", CapabilityAnalyze, nil)
		b := tr.Drain("study-1")
		assert.Equal(t, 1, b.ByCapability[CapabilityAnalyze].Calls)
		assert.Zero(t, b.TotalUSD)
	})

	t.Run("drain forgets the study", func(t *testing.T) {
		tr := NewCostTracker()
		tr.Record("study-1", CapabilityDecision, &llmv1.Usage{CostUsd: 1})
		_ = tr.Drain("study-1")
		b := tr.Drain("study-1")
		assert.Zero(t, b.TotalUSD)
		assert.Empty(t, b.ByCapability)
	})

	t.Run("empty study id is dropped", func(t *testing.T) {
		tr := NewCostTracker()
		tr.Record("", CapabilityDecision, &llmv1.Usage{CostUsd: 1})
		assert.Empty(t, tr.Drain("").ByCapability)
	})

	t.Run("concurrent recording", func(t *testing.T) {
		tr := NewCostTracker()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tr.Record("study-1", CapabilityDecision, &llmv1.Usage{PromptTokens: 1})
			}()
		}
		wg.Wait()
		b := tr.Drain("study-1")
		assert.Equal(t, 50, b.ByCapability[CapabilityDecision].Calls)
		assert.Equal(t, int64(50), b.ByCapability[CapabilityDecision].PromptTokens)
	})
}
