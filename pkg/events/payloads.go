package events

import (
	"encoding/json"

	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/pkg/models"
)

// StudyStatusPayload is the payload for study.status events.
// Published when a study transitions between lifecycle states; terminal
// transitions carry the summary fields.
type StudyStatusPayload struct {
	Type    string       `json:"type"`     // always EventTypeStudyStatus
	StudyID string       `json:"study_id"` // study UUID
	Status  study.Status `json:"status"`   // running, analyzing, complete, failed

	// Set on status=complete.
	OverallScore     *int    `json:"overall_score,omitempty"`
	ExecutiveSummary string  `json:"executive_summary,omitempty"`
	IssuesCount      int     `json:"issues_count,omitempty"`
	DurationSeconds  *int64  `json:"duration_seconds,omitempty"`
	TotalCostUSD     float64 `json:"total_cost_usd,omitempty"`

	// Set on status=failed.
	Error string `json:"error,omitempty"`

	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// StudyProgressPayload is the payload for study.progress transient events.
// Percent is monotone per run: 0-5 launch, 5-85 sessions, 85-95 analysis,
// 95-100 synthesis.
type StudyProgressPayload struct {
	Type             string `json:"type"`     // always EventTypeStudyProgress
	StudyID          string `json:"study_id"` // study UUID
	Percent          int    `json:"percent"`  // 0-100
	Phase            string `json:"phase"`    // launching, sessions, deep_analysis, synthesis
	SessionsRunning  int    `json:"sessions_running"`
	SessionsComplete int    `json:"sessions_complete"`
	SessionsTotal    int    `json:"sessions_total"`
	Timestamp        string `json:"timestamp"` // RFC3339Nano
}

// SessionStepPayload is the payload for session.step events.
// Published in the same transaction that inserts the step row.
type SessionStepPayload struct {
	Type           string                 `json:"type"`       // always EventTypeSessionStep
	StudyID        string                 `json:"study_id"`   // owning study UUID
	SessionID      string                 `json:"session_id"` // owning session UUID
	StepID         string                 `json:"step_id"`    // step UUID
	StepNumber     int                    `json:"step_number"`
	URL            string                 `json:"url"`
	Action         map[string]interface{} `json:"action"`
	ThinkAloud     string                 `json:"think_aloud,omitempty"`
	EmotionalState string                 `json:"emotional_state"`
	Confidence     float64                `json:"confidence"`
	TaskProgress   int                    `json:"task_progress"`
	ScreenshotURL  string                 `json:"screenshot_url,omitempty"`
	IssueCount     int                    `json:"issue_count,omitempty"`
	Timestamp      string                 `json:"timestamp"` // RFC3339Nano
}

// SessionStatusPayload is the payload for session.status events.
// Published when a persona session transitions between lifecycle states.
type SessionStatusPayload struct {
	Type          string         `json:"type"`       // always EventTypeSessionStatus
	StudyID       string         `json:"study_id"`   // owning study UUID
	SessionID     string         `json:"session_id"` // session UUID
	PersonaName   string         `json:"persona_name,omitempty"`
	Status        session.Status `json:"status"` // pending, running, complete, failed, gave_up
	TaskCompleted bool           `json:"task_completed,omitempty"`
	TotalSteps    int            `json:"total_steps,omitempty"`
	UXScore       *int           `json:"ux_score,omitempty"`
	Timestamp     string         `json:"timestamp"` // RFC3339Nano
}

// SnapshotPayload is the frame sent once after a study-channel subscribe
// is confirmed. Session states stay as raw JSON documents from the
// live-state store; the study section is built from the study row.
type SnapshotPayload struct {
	Type     string            `json:"type"` // always EventTypeSnapshot
	StudyID  string            `json:"study_id"`
	Study    SnapshotStudy     `json:"study"`
	Sessions []json.RawMessage `json:"sessions"`

	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// SnapshotStudy is the study section of a snapshot frame.
type SnapshotStudy struct {
	Status           study.Status          `json:"status"`
	URL              string                `json:"url"`
	OverallScore     *int                  `json:"overall_score,omitempty"`
	ExecutiveSummary string                `json:"executive_summary,omitempty"`
	Cost             *models.CostBreakdown `json:"cost,omitempty"`
}
