package llm

import (
	"context"
	"errors"
	"sync"

	"github.com/wanderlens/wanderlens/pkg/models"
)

// StubClient is a scripted Client for tests. Set the Fn hooks to drive a
// scenario; unset hooks return benign defaults. Calls are recorded so tests
// can assert on the inputs the code under test produced.
type StubClient struct {
	mu sync.Mutex

	PlanFn       func(in PlanStudyInput) (*StudyPlan, error)
	PersonaFn    func(in PersonaInput) (*PersonaSpec, error)
	DecisionFn   func(in DecisionInput) (*models.Decision, error)
	AnalyzeFn    func(in AnalyzeInput) (*PageAnalysis, error)
	SynthesizeFn func(in SynthesizeInput) (*models.StudySynthesis, error)
	FixFn        func(in FixInput) (*FixSuggestion, error)

	PlanCalls       []PlanStudyInput
	PersonaCalls    []PersonaInput
	DecisionCalls   []DecisionInput
	AnalyzeCalls    []AnalyzeInput
	SynthesizeCalls []SynthesizeInput
	FixCalls        []FixInput
	Closed          bool
}

var _ Client = (*StubClient)(nil)

func (s *StubClient) PlanStudy(ctx context.Context, in PlanStudyInput) (*StudyPlan, error) {
	s.mu.Lock()
	s.PlanCalls = append(s.PlanCalls, in)
	fn := s.PlanFn
	s.mu.Unlock()
	if fn != nil {
		return fn(in)
	}
	return &StudyPlan{}, nil
}

func (s *StubClient) GeneratePersona(ctx context.Context, in PersonaInput) (*PersonaSpec, error) {
	s.mu.Lock()
	s.PersonaCalls = append(s.PersonaCalls, in)
	fn := s.PersonaFn
	s.mu.Unlock()
	if fn != nil {
		return fn(in)
	}
	return &PersonaSpec{}, nil
}

func (s *StubClient) NavigateDecision(ctx context.Context, in DecisionInput) (*models.Decision, error) {
	s.mu.Lock()
	s.DecisionCalls = append(s.DecisionCalls, in)
	fn := s.DecisionFn
	s.mu.Unlock()
	if fn != nil {
		return fn(in)
	}
	return &models.Decision{
		ThinkAloud:     "That looks done to me.",
		EmotionalState: models.EmotionSatisfied,
		Action:         models.Action{Type: models.ActionDone},
		Confidence:     0.9,
		TaskProgress:   100,
	}, nil
}

func (s *StubClient) AnalyzeScreenshot(ctx context.Context, in AnalyzeInput) (*PageAnalysis, error) {
	s.mu.Lock()
	s.AnalyzeCalls = append(s.AnalyzeCalls, in)
	fn := s.AnalyzeFn
	s.mu.Unlock()
	if fn != nil {
		return fn(in)
	}
	return &PageAnalysis{}, nil
}

func (s *StubClient) SynthesizeStudy(ctx context.Context, in SynthesizeInput) (*models.StudySynthesis, error) {
	s.mu.Lock()
	s.SynthesizeCalls = append(s.SynthesizeCalls, in)
	fn := s.SynthesizeFn
	s.mu.Unlock()
	if fn != nil {
		return fn(in)
	}
	return &models.StudySynthesis{OverallUXScore: 75, ExecutiveSummary: "No standout problems."}, nil
}

func (s *StubClient) GenerateFixSuggestion(ctx context.Context, in FixInput) (*FixSuggestion, error) {
	s.mu.Lock()
	s.FixCalls = append(s.FixCalls, in)
	fn := s.FixFn
	s.mu.Unlock()
	if fn != nil {
		return fn(in)
	}
	return &FixSuggestion{}, nil
}

func (s *StubClient) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
	return nil
}

// Decisions returns a DecisionFn that plays the given decisions in order and
// repeats the last one once the script runs out.
func Decisions(script ...models.Decision) func(DecisionInput) (*models.Decision, error) {
	var mu sync.Mutex
	i := 0
	return func(DecisionInput) (*models.Decision, error) {
		mu.Lock()
		defer mu.Unlock()
		if len(script) == 0 {
			return nil, &TransientError{Capability: "navigate", Err: errors.New("empty decision script")}
		}
		d := script[min(i, len(script)-1)]
		i++
		return &d, nil
	}
}
