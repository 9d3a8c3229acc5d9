package llm

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/wanderlens/wanderlens/pkg/models"
	llmv1 "github.com/wanderlens/wanderlens/proto"
)

// Client is the capability surface the runtime consumes. One method per
// gateway capability; every method returns a schema-validated value.
type Client interface {
	PlanStudy(ctx context.Context, in PlanStudyInput) (*StudyPlan, error)
	GeneratePersona(ctx context.Context, in PersonaInput) (*PersonaSpec, error)
	NavigateDecision(ctx context.Context, in DecisionInput) (*models.Decision, error)
	AnalyzeScreenshot(ctx context.Context, in AnalyzeInput) (*PageAnalysis, error)
	SynthesizeStudy(ctx context.Context, in SynthesizeInput) (*models.StudySynthesis, error)
	GenerateFixSuggestion(ctx context.Context, in FixInput) (*FixSuggestion, error)
	Close() error
}

// GatewayClient talks to the LLM gateway over gRPC. It is safe for
// concurrent use; the gRPC connection multiplexes calls.
type GatewayClient struct {
	conn  *grpc.ClientConn
	gw    llmv1.LLMGatewayClient
	costs *CostTracker
}

var _ Client = (*GatewayClient)(nil)

// NewGatewayClient connects to the gateway at addr. costs may be nil when
// the caller does not account spend (tests, one-off tools).
func NewGatewayClient(addr string, costs *CostTracker) (*GatewayClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM gateway: %w", err)
	}
	return &GatewayClient{
		conn:  conn,
		gw:    llmv1.NewLLMGatewayClient(conn),
		costs: costs,
	}, nil
}

// Close closes the gRPC connection.
func (c *GatewayClient) Close() error {
	return c.conn.Close()
}

func (c *GatewayClient) PlanStudy(ctx context.Context, in PlanStudyInput) (*StudyPlan, error) {
	req := &llmv1.CompleteRequest{
		Capability:   CapabilityPlanStudy,
		SystemPrompt: planSystemPrompt(),
		UserPrompt:   planUserPrompt(in),
		MaxTokens:    planMaxTokens,
		StudyId:      in.StudyID,
	}
	var plan StudyPlan
	if err := c.completeJSON(ctx, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *GatewayClient) GeneratePersona(ctx context.Context, in PersonaInput) (*PersonaSpec, error) {
	req := &llmv1.CompleteRequest{
		Capability:   CapabilityPersona,
		SystemPrompt: personaSystemPrompt(),
		UserPrompt:   personaUserPrompt(in),
		MaxTokens:    personaMaxTokens,
		StudyId:      in.StudyID,
	}
	var spec PersonaSpec
	if err := c.completeJSON(ctx, req, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (c *GatewayClient) NavigateDecision(ctx context.Context, in DecisionInput) (*models.Decision, error) {
	req := &llmv1.CompleteRequest{
		Capability:    CapabilityDecision,
		Model:         in.Model,
		SystemPrompt:  decisionSystemPrompt(in.Persona),
		UserPrompt:    decisionUserPrompt(in),
		ScreenshotPng: in.Observation.Screenshot,
		MaxTokens:     decisionMaxTokens,
		StudyId:       in.StudyID,
		SessionId:     in.SessionID,
	}
	var doc decisionDoc
	if err := c.completeJSON(ctx, req, &doc); err != nil {
		return nil, err
	}
	return &doc.Decision, nil
}

func (c *GatewayClient) AnalyzeScreenshot(ctx context.Context, in AnalyzeInput) (*PageAnalysis, error) {
	req := &llmv1.CompleteRequest{
		Capability:    CapabilityAnalyze,
		SystemPrompt:  analyzeSystemPrompt(),
		UserPrompt:    analyzeUserPrompt(in),
		ScreenshotPng: in.Screenshot,
		MaxTokens:     analyzeMaxTokens,
		StudyId:       in.StudyID,
	}
	var analysis PageAnalysis
	if err := c.completeJSON(ctx, req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *GatewayClient) SynthesizeStudy(ctx context.Context, in SynthesizeInput) (*models.StudySynthesis, error) {
	req := &llmv1.CompleteRequest{
		Capability:           CapabilitySynthesize,
		SystemPrompt:         synthesizeSystemPrompt(),
		UserPrompt:           synthesizeUserPrompt(in),
		MaxTokens:            synthesizeMaxTokens,
		ThinkingBudgetTokens: int32(in.ThinkingBudgetTokens),
		StudyId:              in.StudyID,
	}
	var doc synthesisDoc
	if err := c.completeJSON(ctx, req, &doc); err != nil {
		return nil, err
	}
	return &doc.StudySynthesis, nil
}

func (c *GatewayClient) GenerateFixSuggestion(ctx context.Context, in FixInput) (*FixSuggestion, error) {
	req := &llmv1.CompleteRequest{
		Capability:   CapabilityFixSuggestion,
		SystemPrompt: fixSystemPrompt(),
		UserPrompt:   fixUserPrompt(in),
		MaxTokens:    fixMaxTokens,
		StudyId:      in.StudyID,
	}
	var fix FixSuggestion
	if err := c.completeJSON(ctx, req, &fix); err != nil {
		return nil, err
	}
	return &fix, nil
}

// complete issues one gateway call, classifies transport errors, and
// records usage.
func (c *GatewayClient) complete(ctx context.Context, req *llmv1.CompleteRequest) (*llmv1.CompleteResponse, error) {
	resp, err := c.gw.Complete(ctx, req)
	if err != nil {
		return nil, classify(req.Capability, err)
	}
	if c.costs != nil {
		c.costs.Record(req.StudyId, req.Capability, resp.Usage)
	}
	return resp, nil
}

// completeJSON runs one call through the tolerant decode pipeline. When
// extraction or validation fails it retries once with a repair prompt;
// a second failure surfaces as a SchemaError.
func (c *GatewayClient) completeJSON(ctx context.Context, req *llmv1.CompleteRequest, out interface{}) error {
	resp, err := c.complete(ctx, req)
	if err != nil {
		return err
	}
	decodeErr := DecodeInto(resp.Content, out)
	if decodeErr == nil {
		return nil
	}

	slog.Warn("LLM output failed schema validation, retrying with repair prompt",
		"capability", req.Capability,
		"study_id", req.StudyId,
		"session_id", req.SessionId,
		"error", decodeErr)

	// The repair call re-presents the malformed output; the screenshot is
	// dropped since the subject is now the text, not the page.
	repairReq := &llmv1.CompleteRequest{
		Capability:   req.Capability,
		Model:        req.Model,
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   repairUserPrompt(req.UserPrompt, resp.Content, decodeErr),
		MaxTokens:    req.MaxTokens,
		StudyId:      req.StudyId,
		SessionId:    req.SessionId,
	}
	resp, err = c.complete(ctx, repairReq)
	if err != nil {
		return err
	}
	if err := DecodeInto(resp.Content, out); err != nil {
		return &SchemaError{Capability: req.Capability, Raw: resp.Content, Err: err}
	}
	return nil
}
