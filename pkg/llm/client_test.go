package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wanderlens/wanderlens/pkg/models"
	llmv1 "github.com/wanderlens/wanderlens/proto"
)

// fakeGateway scripts Complete responses in call order.
type fakeGateway struct {
	responses []*llmv1.CompleteResponse
	errs      []error
	requests  []*llmv1.CompleteRequest
}

func (f *fakeGateway) Complete(ctx context.Context, in *llmv1.CompleteRequest, opts ...grpc.CallOption) (*llmv1.CompleteResponse, error) {
	i := len(f.requests)
	f.requests = append(f.requests, in)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return nil, status.Error(codes.Unknown, "no scripted response")
}

func newTestClient(gw *fakeGateway, costs *CostTracker) *GatewayClient {
	return &GatewayClient{gw: gw, costs: costs}
}

func textResponse(content string, usage *llmv1.Usage) *llmv1.CompleteResponse {
	return &llmv1.CompleteResponse{Content: content, Usage: usage}
}

func validDecisionJSON() string {
	return `{
		"think_aloud": "The pricing link is right there in the nav.",
		"emotional_state": "confident",
		"action": {"type": "click", "selector": "nav a[href='/pricing']", "description": "open pricing"},
		"confidence": 0.9,
		"task_progress": 30
	}`
}

func TestGatewayClient_NavigateDecision(t *testing.T) {
	t.Run("decodes a clean decision", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse(validDecisionJSON(), &llmv1.Usage{PromptTokens: 900, CompletionTokens: 120, CostUsd: 0.004}),
		}}
		costs := NewCostTracker()
		c := newTestClient(gw, costs)

		d, err := c.NavigateDecision(context.Background(), DecisionInput{
			StudyID:   "study-1",
			SessionID: "sess-1",
			Persona:   models.PersonaProfile{Name: "Rae", TechLiteracy: 9, Patience: 3, ReadingSpeed: 8, Trust: 6},
			Task:      "Find the pricing page",
			Observation: models.Observation{
				URL:        "https://example.com",
				Screenshot: []byte("png-bytes"),
			},
			StepNumber: 1,
			MaxSteps:   30,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ActionClick, d.Action.Type)
		assert.Equal(t, "confident", d.EmotionalState)
		assert.Equal(t, 30, d.TaskProgress)

		require.Len(t, gw.requests, 1)
		req := gw.requests[0]
		assert.Equal(t, CapabilityDecision, req.Capability)
		assert.Equal(t, "study-1", req.StudyId)
		assert.Equal(t, "sess-1", req.SessionId)
		assert.Equal(t, []byte("png-bytes"), req.ScreenshotPng)
		assert.Contains(t, req.SystemPrompt, "Rae")
		assert.Contains(t, req.UserPrompt, "Find the pricing page")

		breakdown := costs.Drain("study-1")
		assert.InDelta(t, 0.004, breakdown.TotalUSD, 1e-9)
		assert.Equal(t, 1, breakdown.ByCapability[CapabilityDecision].Calls)
	})

	t.Run("clamps drifted fields", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse(`{
				"think_aloud": "hm",
				"emotional_state": "ecstatic",
				"action": {"type": "scroll"},
				"confidence": 1.7,
				"task_progress": 140
			}`, nil),
		}}
		c := newTestClient(gw, nil)

		d, err := c.NavigateDecision(context.Background(), DecisionInput{StudyID: "s", SessionID: "x"})
		require.NoError(t, err)
		assert.Equal(t, models.EmotionNeutral, d.EmotionalState)
		assert.Equal(t, 1.0, d.Confidence)
		assert.Equal(t, 100, d.TaskProgress)
	})

	t.Run("repairs malformed output with a second call", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse("So my next move is to click the nav link. Good luck!", nil),
			textResponse(validDecisionJSON(), nil),
		}}
		c := newTestClient(gw, nil)

		d, err := c.NavigateDecision(context.Background(), DecisionInput{StudyID: "s", SessionID: "x"})
		require.NoError(t, err)
		assert.Equal(t, models.ActionClick, d.Action.Type)

		require.Len(t, gw.requests, 2)
		repair := gw.requests[1]
		assert.Contains(t, repair.UserPrompt, "was not valid")
		assert.Contains(t, repair.UserPrompt, "Good luck!")
		assert.Empty(t, repair.ScreenshotPng, "repair call should drop the screenshot")
	})

	t.Run("schema error after failed repair", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse(`{"action": {"type": "teleport"}}`, nil),
			textResponse(`{"action": {"type": "teleport"}}`, nil),
		}}
		c := newTestClient(gw, nil)

		_, err := c.NavigateDecision(context.Background(), DecisionInput{StudyID: "s", SessionID: "x"})
		require.Error(t, err)
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, CapabilityDecision, schemaErr.Capability)
		assert.False(t, IsTransient(err))
	})

	t.Run("unavailable gateway is transient", func(t *testing.T) {
		gw := &fakeGateway{errs: []error{status.Error(codes.Unavailable, "connection refused")}}
		c := newTestClient(gw, nil)

		_, err := c.NavigateDecision(context.Background(), DecisionInput{StudyID: "s", SessionID: "x"})
		require.Error(t, err)
		assert.True(t, IsTransient(err))
	})

	t.Run("rate limit is transient", func(t *testing.T) {
		gw := &fakeGateway{errs: []error{status.Error(codes.ResourceExhausted, "quota")}}
		c := newTestClient(gw, nil)

		_, err := c.NavigateDecision(context.Background(), DecisionInput{StudyID: "s", SessionID: "x"})
		require.Error(t, err)
		assert.True(t, IsTransient(err))
	})

	t.Run("invalid argument is permanent", func(t *testing.T) {
		gw := &fakeGateway{errs: []error{status.Error(codes.InvalidArgument, "bad request")}}
		c := newTestClient(gw, nil)

		_, err := c.NavigateDecision(context.Background(), DecisionInput{StudyID: "s", SessionID: "x"})
		require.Error(t, err)
		assert.False(t, IsTransient(err))
	})
}

func TestGatewayClient_AnalyzeScreenshot(t *testing.T) {
	t.Run("normalizes issues and drops empty ones", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse(`{
				"summary": "Dense landing page with weak hierarchy.",
				"issues": [
					{"description": "CTA contrast below 3:1", "severity": "sev1", "issue_type": "visual"},
					{"description": "", "severity": "major"}
				]
			}`, nil),
		}}
		c := newTestClient(gw, nil)

		a, err := c.AnalyzeScreenshot(context.Background(), AnalyzeInput{
			StudyID:    "study-1",
			PageURL:    "https://example.com/",
			Screenshot: []byte("png"),
			Personas:   []string{"Rae", "Marge"},
		})
		require.NoError(t, err)
		require.Len(t, a.Issues, 1)
		assert.Equal(t, models.SeverityMinor, a.Issues[0].Severity, "unknown severity falls back to minor")
		assert.Equal(t, models.IssueTypeUX, a.Issues[0].IssueType, "unknown type falls back to ux")

		require.Len(t, gw.requests, 1)
		assert.Contains(t, gw.requests[0].UserPrompt, "Rae, Marge")
	})

	t.Run("empty analysis fails validation", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse(`{"summary": "", "issues": []}`, nil),
			textResponse(`{"summary": "", "issues": []}`, nil),
		}}
		c := newTestClient(gw, nil)

		_, err := c.AnalyzeScreenshot(context.Background(), AnalyzeInput{StudyID: "s"})
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})
}

func TestGatewayClient_SynthesizeStudy(t *testing.T) {
	gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
		textResponse(`{
			"overall_ux_score": 64,
			"executive_summary": "Navigation works; checkout loses people.",
			"universal_issues": [{"title": "Hidden cart", "description": "Cart icon invisible on mobile."}],
			"recommendations": [{"title": "Fix cart affordance", "description": "Persist the cart icon.", "impact": "high", "effort": "low"}]
		}`, &llmv1.Usage{PromptTokens: 8000, CompletionTokens: 900, CostUsd: 0.21}),
	}}
	costs := NewCostTracker()
	c := newTestClient(gw, costs)

	syn, err := c.SynthesizeStudy(context.Background(), SynthesizeInput{
		StudyID:              "study-9",
		TargetURL:            "https://shop.example.com",
		Sessions:             []models.SessionSummary{{PersonaName: "Rae", Task: "Buy socks", Status: "complete", TaskCompleted: true, TotalSteps: 9}},
		ThinkingBudgetTokens: 8192,
	})
	require.NoError(t, err)
	assert.Equal(t, 64, syn.OverallUXScore)
	require.Len(t, syn.Recommendations, 1)

	require.Len(t, gw.requests, 1)
	assert.Equal(t, int32(8192), gw.requests[0].ThinkingBudgetTokens)
	assert.Contains(t, gw.requests[0].UserPrompt, "Buy socks")

	breakdown := costs.Drain("study-9")
	assert.Equal(t, int64(8000), breakdown.ByCapability[CapabilitySynthesize].PromptTokens)
}

func TestGatewayClient_PlanAndPersona(t *testing.T) {
	t.Run("plan study", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse(`{"tasks": [{"description": "Find a red jacket in size M", "success_criteria": "product page for a red jacket"}], "personas": ["power-user"]}`, nil),
		}}
		c := newTestClient(gw, nil)

		plan, err := c.PlanStudy(context.Background(), PlanStudyInput{StudyID: "s", TargetURL: "https://example.com", MaxTasks: 3})
		require.NoError(t, err)
		require.Len(t, plan.Tasks, 1)
		assert.Equal(t, []string{"power-user"}, plan.Personas)
	})

	t.Run("empty plan fails validation", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse(`{"tasks": []}`, nil),
			textResponse(`{"tasks": []}`, nil),
		}}
		c := newTestClient(gw, nil)

		_, err := c.PlanStudy(context.Background(), PlanStudyInput{StudyID: "s"})
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("persona traits are clamped", func(t *testing.T) {
		gw := &fakeGateway{responses: []*llmv1.CompleteResponse{
			textResponse(`{"name": "Marge", "profile": {"tech_literacy": 14, "patience": 0, "device_preference": "smart-fridge"}}`, nil),
		}}
		c := newTestClient(gw, nil)

		spec, err := c.GeneratePersona(context.Background(), PersonaInput{StudyID: "s", Brief: "a retiree new to the internet"})
		require.NoError(t, err)
		assert.Equal(t, "Marge", spec.Profile.Name)
		assert.Equal(t, 10, spec.Profile.TechLiteracy)
		assert.Equal(t, 5, spec.Profile.Patience, "omitted trait lands on the midpoint")
		assert.Equal(t, models.DeviceDesktop, spec.Profile.DevicePreference)
	})
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&TransientError{Capability: "x", Err: errors.New("boom")}))
	assert.True(t, IsTransient(classify("x", status.Error(codes.DeadlineExceeded, "slow"))))
	assert.False(t, IsTransient(errors.New("plain")))
	assert.False(t, IsTransient(nil))
}
