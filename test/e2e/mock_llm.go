package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
	llmv1 "github.com/wanderlens/wanderlens/proto"
)

// GatewayScriptEntry defines a single scripted gateway response.
type GatewayScriptEntry struct {
	// Response content (exactly one should be set)
	Content string // JSON document returned as CompleteResponse.Content
	Err     error  // Return error from Complete()

	// Test control
	BlockUntilCancelled bool            // Block Complete() until the call's ctx is cancelled
	WaitCh              <-chan struct{} // Block Complete() until closed, then return Content
	OnBlock             chan<- struct{} // Notified when Complete() enters its blocking path
}

// MockGateway is an in-process gRPC LLM gateway with capability-routed
// scripting: each capability (navigate_decision, analyze_screenshot, ...)
// has its own entry queue, because calls across concurrent sessions
// interleave non-deterministically while calls within one capability follow
// the pipeline order. Unscripted calls fall back to a benign per-capability
// default, so tests only script the calls they assert on.
type MockGateway struct {
	llmv1.UnimplementedLLMGatewayServer

	mu       sync.Mutex
	scripts  map[string][]GatewayScriptEntry // capability → queued entries
	index    map[string]int                  // capability → next entry
	handlers map[string]GatewayHandler       // capability → dynamic responder
	defaults map[string]string               // capability → fallback content
	captured []*llmv1.CompleteRequest
}

// GatewayHandler computes a response from the live request. Handlers win over
// scripted entries; they are how tests route on session_id or track in-flight
// concurrency.
type GatewayHandler func(req *llmv1.CompleteRequest) (string, error)

// StartMockGateway serves a MockGateway on a loopback listener and returns it
// with its dial address. The server is stopped on test cleanup; Stop (not
// GracefulStop) so entries still blocked in Complete are released.
func StartMockGateway(t *testing.T) (*MockGateway, string) {
	t.Helper()

	gw := &MockGateway{
		scripts:  make(map[string][]GatewayScriptEntry),
		index:    make(map[string]int),
		handlers: make(map[string]GatewayHandler),
		defaults: defaultGatewayContent(),
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := grpc.NewServer()
	llmv1.RegisterLLMGatewayServer(server, gw)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	return gw, lis.Addr().String()
}

// Script queues entries for a capability, consumed in order before the
// capability's default kicks back in.
func (g *MockGateway) Script(capability string, entries ...GatewayScriptEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scripts[capability] = append(g.scripts[capability], entries...)
}

// ScriptContent queues plain content responses for a capability.
func (g *MockGateway) ScriptContent(capability string, contents ...string) {
	for _, c := range contents {
		g.Script(capability, GatewayScriptEntry{Content: c})
	}
}

// Handle installs a dynamic responder for a capability. A handler preempts
// both scripted entries and the default.
func (g *MockGateway) Handle(capability string, fn GatewayHandler) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handlers[capability] = fn
}

// SetDefault replaces the fallback content for a capability.
func (g *MockGateway) SetDefault(capability, content string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.defaults[capability] = content
}

// Complete implements llmv1.LLMGatewayServer.
func (g *MockGateway) Complete(ctx context.Context, req *llmv1.CompleteRequest) (*llmv1.CompleteResponse, error) {
	g.mu.Lock()
	g.captured = append(g.captured, req)
	handler := g.handlers[req.Capability]
	var entry *GatewayScriptEntry
	if handler == nil {
		if idx := g.index[req.Capability]; idx < len(g.scripts[req.Capability]) {
			e := g.scripts[req.Capability][idx]
			g.index[req.Capability] = idx + 1
			entry = &e
		}
	}
	fallback, hasDefault := g.defaults[req.Capability]
	g.mu.Unlock()

	if handler != nil {
		content, err := handler(req)
		if err != nil {
			return nil, err
		}
		return respond(content), nil
	}

	if entry == nil {
		if !hasDefault {
			return nil, fmt.Errorf("mock gateway: no script and no default for capability %q", req.Capability)
		}
		return respond(fallback), nil
	}

	// Handle BlockUntilCancelled: park until the RPC context dies.
	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}

	// Handle WaitCh: park until released, then respond normally.
	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if entry.Err != nil {
		return nil, entry.Err
	}
	return respond(entry.Content), nil
}

// respond wraps content with a deterministic usage stamp so cost accounting
// has something to add up.
func respond(content string) *llmv1.CompleteResponse {
	return &llmv1.CompleteResponse{
		Content: content,
		Usage: &llmv1.Usage{
			PromptTokens:     1200,
			CompletionTokens: 180,
			CostUsd:          0.005,
		},
	}
}

// CallCount returns the total number of Complete() calls across capabilities.
func (g *MockGateway) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.captured)
}

// Calls returns how many Complete() calls a capability received.
func (g *MockGateway) Calls(capability string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, req := range g.captured {
		if req.Capability == capability {
			n++
		}
	}
	return n
}

// Requests returns the captured requests for a capability, in arrival order.
func (g *MockGateway) Requests(capability string) []*llmv1.CompleteRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []*llmv1.CompleteRequest
	for _, req := range g.captured {
		if req.Capability == capability {
			out = append(out, req)
		}
	}
	return out
}

// defaultGatewayContent returns the benign fallback document per capability:
// personas finish their task on the first step, pages analyze clean, and the
// study synthesizes to a mid-range score.
func defaultGatewayContent() map[string]string {
	return map[string]string{
		llm.CapabilityPlanStudy: mustJSON(llm.StudyPlan{
			Tasks: []llm.PlannedTask{{Description: "Find the pricing page and note the cheapest plan"}},
		}),
		llm.CapabilityPersona: mustJSON(llm.PersonaSpec{
			Name: "Riley",
			Profile: models.PersonaProfile{
				Name:             "Riley",
				TechLiteracy:     4,
				Patience:         6,
				ReadingSpeed:     5,
				Trust:            5,
				DevicePreference: models.DeviceDesktop,
			},
		}),
		llm.CapabilityDecision:   doneDecision(),
		llm.CapabilityAnalyze:    analysisContent("No notable problems on this page."),
		llm.CapabilitySynthesize: synthesisContent(75, "Most personas completed their tasks without friction."),
		llm.CapabilityFixSuggestion: mustJSON(llm.FixSuggestion{
			Suggestion: "Increase the contrast of the primary call-to-action button.",
		}),
	}
}

// Fixture builders. Each marshals the runtime's own types, so the mock's JSON
// always matches what the decode pipeline validates against.

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func decisionContent(d models.Decision) string {
	return mustJSON(d)
}

// clickDecision is one mid-task step: click a selector and report progress.
func clickDecision(selector string, progress int) string {
	return decisionContent(models.Decision{
		ThinkAloud:     "I'll try this element next.",
		EmotionalState: models.EmotionCurious,
		Action:         models.Action{Type: models.ActionClick, Selector: selector},
		Confidence:     0.8,
		TaskProgress:   progress,
	})
}

// scrollDecision is a step that never completes the task, for exhausting
// step budgets.
func scrollDecision(progress int) string {
	return decisionContent(models.Decision{
		ThinkAloud:     "Maybe it's further down the page.",
		EmotionalState: models.EmotionConfused,
		Action:         models.Action{Type: models.ActionScroll, Value: "down"},
		Confidence:     0.4,
		TaskProgress:   progress,
	})
}

func doneDecision() string {
	return decisionContent(models.Decision{
		ThinkAloud:     "That's exactly what I was looking for.",
		EmotionalState: models.EmotionSatisfied,
		Action:         models.Action{Type: models.ActionDone},
		Confidence:     0.95,
		TaskProgress:   100,
	})
}

func giveUpDecision(reason string) string {
	return decisionContent(models.Decision{
		ThinkAloud:     "I can't figure this out.",
		EmotionalState: models.EmotionFrustrated,
		Action:         models.Action{Type: models.ActionGiveUp, Description: reason},
		Confidence:     0.9,
		TaskProgress:   20,
	})
}

func analysisContent(summary string, issues ...models.UXIssue) string {
	return mustJSON(llm.PageAnalysis{Summary: summary, Issues: issues})
}

func synthesisContent(score int, summary string) string {
	return mustJSON(models.StudySynthesis{
		OverallUXScore:   score,
		ExecutiveSummary: summary,
	})
}
