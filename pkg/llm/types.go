package llm

import (
	"fmt"
	"strings"

	"github.com/wanderlens/wanderlens/pkg/models"
)

// Capability names carried on every gateway request. The gateway routes
// model selection and pricing by capability.
const (
	CapabilityPlanStudy     = "plan_study"
	CapabilityPersona       = "generate_persona"
	CapabilityDecision      = "navigate_decision"
	CapabilityAnalyze       = "analyze_screenshot"
	CapabilitySynthesize    = "synthesize_study"
	CapabilityFixSuggestion = "generate_fix_suggestion"
)

// Per-capability output budgets. Synthesis gets room for extended thinking;
// the rest return small structured documents.
const (
	planMaxTokens       = 4096
	personaMaxTokens    = 2048
	decisionMaxTokens   = 2048
	analyzeMaxTokens    = 4096
	synthesizeMaxTokens = 16384
	fixMaxTokens        = 2048
)

// PlanStudyInput describes the study to be planned.
type PlanStudyInput struct {
	StudyID     string
	TargetURL   string
	Description string
	MaxTasks    int
}

// StudyPlan is the structured result of plan_study.
type StudyPlan struct {
	Tasks    []PlannedTask `json:"tasks"`
	Personas []string      `json:"personas,omitempty"` // template ids or free-form briefs
}

// PlannedTask is one task the planner proposes for a study.
type PlannedTask struct {
	Description     string `json:"description"`
	SuccessCriteria string `json:"success_criteria,omitempty"`
}

func (p *StudyPlan) Validate() error {
	if len(p.Tasks) == 0 {
		return fmt.Errorf("plan contains no tasks")
	}
	for i := range p.Tasks {
		if strings.TrimSpace(p.Tasks[i].Description) == "" {
			return fmt.Errorf("task %d has an empty description", i)
		}
	}
	return nil
}

// PersonaInput asks for one persona matching a free-form brief.
type PersonaInput struct {
	StudyID   string
	Brief     string
	TargetURL string
}

// PersonaSpec is the structured result of generate_persona.
type PersonaSpec struct {
	Name        string                `json:"name"`
	Background  string                `json:"background,omitempty"`
	ModelChoice string                `json:"model_choice,omitempty"`
	Profile     models.PersonaProfile `json:"profile"`
}

func (p *PersonaSpec) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("persona has no name")
	}
	if p.Profile.Name == "" {
		p.Profile.Name = p.Name
	}
	clampTrait(&p.Profile.TechLiteracy)
	clampTrait(&p.Profile.Patience)
	clampTrait(&p.Profile.ReadingSpeed)
	clampTrait(&p.Profile.Trust)
	switch p.Profile.DevicePreference {
	case models.DeviceDesktop, models.DeviceMobile, models.DeviceTablet, "":
	default:
		p.Profile.DevicePreference = models.DeviceDesktop
	}
	return nil
}

// clampTrait pins a 1-10 trait scale; an omitted trait lands on the midpoint.
func clampTrait(v *int) {
	if *v == 0 {
		*v = 5
	}
	if *v < 1 {
		*v = 1
	}
	if *v > 10 {
		*v = 10
	}
}

// DecisionInput carries everything one navigation decision sees.
type DecisionInput struct {
	StudyID     string
	SessionID   string
	Model       string // persona model_choice override, may be empty
	Persona     models.PersonaProfile
	Task        string
	StepNumber  int
	MaxSteps    int
	History     []StepDigest
	Observation models.Observation
	StuckHint   bool   // visual diff saw no page change across recent steps
	BlockerNote string // set when the previous step hit a blocker or failed
}

// StepDigest is the compact prior-step line included in decision prompts.
type StepDigest struct {
	StepNumber int
	Action     models.Action
	ThinkAloud string
	Emotion    string
	URL        string
	Outcome    string // "ok" or a short failure note
}

// decisionDoc wraps models.Decision so the decode pipeline can validate
// the action variant before the decision reaches the dispatcher.
type decisionDoc struct {
	models.Decision
}

func (d *decisionDoc) Validate() error {
	if err := d.Action.Validate(); err != nil {
		return err
	}
	d.Clamp()
	for i := range d.UXIssues {
		d.UXIssues[i].Normalize()
	}
	return nil
}

// AnalyzeInput asks for a standalone UX critique of one page screenshot.
type AnalyzeInput struct {
	StudyID    string
	PageURL    string
	PageTitle  string
	Screenshot []byte
	Personas   []string // persona names that visited the page
}

// PageAnalysis is the structured result of analyze_screenshot.
type PageAnalysis struct {
	Summary string           `json:"summary"`
	Issues  []models.UXIssue `json:"issues,omitempty"`
}

func (a *PageAnalysis) Validate() error {
	kept := a.Issues[:0]
	for i := range a.Issues {
		if strings.TrimSpace(a.Issues[i].Description) == "" {
			continue
		}
		a.Issues[i].Normalize()
		kept = append(kept, a.Issues[i])
	}
	a.Issues = kept
	if strings.TrimSpace(a.Summary) == "" && len(a.Issues) == 0 {
		return fmt.Errorf("analysis has no summary and no issues")
	}
	return nil
}

// SynthesizeInput is the whole-study digest handed to the synthesizer.
type SynthesizeInput struct {
	StudyID     string
	TargetURL   string
	Description string
	Sessions    []models.SessionSummary
	TopIssues   []models.UXIssue

	// ThinkingBudgetTokens enables extended thinking on the gateway side
	// when positive.
	ThinkingBudgetTokens int
}

// synthesisDoc wraps models.StudySynthesis for schema validation.
type synthesisDoc struct {
	models.StudySynthesis
}

func (s *synthesisDoc) Validate() error {
	if strings.TrimSpace(s.ExecutiveSummary) == "" {
		return fmt.Errorf("synthesis has no executive summary")
	}
	if s.OverallUXScore < 0 {
		s.OverallUXScore = 0
	}
	if s.OverallUXScore > 100 {
		s.OverallUXScore = 100
	}
	return nil
}

// FixInput asks for a concrete fix for one prioritized issue.
type FixInput struct {
	StudyID string
	PageURL string
	Issue   models.UXIssue
}

// FixSuggestion is the structured result of generate_fix_suggestion.
type FixSuggestion struct {
	Suggestion string `json:"suggestion"`
	CodeHint   string `json:"code_hint,omitempty"`
}

func (f *FixSuggestion) Validate() error {
	if strings.TrimSpace(f.Suggestion) == "" {
		return fmt.Errorf("fix suggestion is empty")
	}
	return nil
}
