package models

// SynthesisFinding is one cross-session finding inside a study synthesis.
type SynthesisFinding struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Severity         string   `json:"severity,omitempty"`
	PersonasAffected []string `json:"personas_affected,omitempty"`
	Evidence         string   `json:"evidence,omitempty"`
}

// Recommendation is an actionable item ranked by the synthesizer.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact,omitempty"` // high, medium, low
	Effort      string `json:"effort,omitempty"` // high, medium, low
}

// StudySynthesis is the schema-validated output of the single synthesis call.
type StudySynthesis struct {
	OverallUXScore          int                `json:"overall_ux_score"` // integer 0-100
	ExecutiveSummary        string             `json:"executive_summary"`
	UniversalIssues         []SynthesisFinding `json:"universal_issues,omitempty"`
	PersonaSpecificFindings []SynthesisFinding `json:"persona_specific_findings,omitempty"`
	Recommendations         []Recommendation   `json:"recommendations,omitempty"`
}

// SessionSummary is the per-session digest handed to the synthesizer.
type SessionSummary struct {
	SessionID     string `json:"session_id"`
	PersonaName   string `json:"persona_name"`
	Task          string `json:"task"`
	Status        string `json:"status"`
	TaskCompleted bool   `json:"task_completed"`
	TotalSteps    int    `json:"total_steps"`
	Summary       string `json:"summary,omitempty"`
	EmotionalArc  string `json:"emotional_arc,omitempty"`
	UXScore       *int   `json:"ux_score,omitempty"`
}
