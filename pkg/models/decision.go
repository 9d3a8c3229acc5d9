package models

// Emotional states a persona can report while navigating.
const (
	EmotionCurious    = "curious"
	EmotionConfident  = "confident"
	EmotionConfused   = "confused"
	EmotionFrustrated = "frustrated"
	EmotionAnxious    = "anxious"
	EmotionSatisfied  = "satisfied"
	EmotionNeutral    = "neutral"
)

// KnownEmotions holds every accepted emotional_state value.
var KnownEmotions = map[string]bool{
	EmotionCurious:    true,
	EmotionConfident:  true,
	EmotionConfused:   true,
	EmotionFrustrated: true,
	EmotionAnxious:    true,
	EmotionSatisfied:  true,
	EmotionNeutral:    true,
}

// FrustrationFamily reports whether the emotion counts toward the
// peak-frustration computation of the emotional arc.
func FrustrationFamily(emotion string) bool {
	switch emotion {
	case EmotionFrustrated, EmotionAnxious, EmotionConfused:
		return true
	}
	return false
}

// Decision is the structured output of one navigate_decision call.
type Decision struct {
	ThinkAloud     string    `json:"think_aloud"`
	EmotionalState string    `json:"emotional_state"`
	Action         Action    `json:"action"`
	Confidence     float64   `json:"confidence"`    // [0,1]
	TaskProgress   int       `json:"task_progress"` // [0,100]
	UXIssues       []UXIssue `json:"ux_issues,omitempty"`
}

// Clamp normalizes out-of-range numeric fields and unknown emotions in place.
// Models drift; storage invariants do not.
func (d *Decision) Clamp() {
	if d.Confidence < 0 {
		d.Confidence = 0
	}
	if d.Confidence > 1 {
		d.Confidence = 1
	}
	if d.TaskProgress < 0 {
		d.TaskProgress = 0
	}
	if d.TaskProgress > 100 {
		d.TaskProgress = 100
	}
	if !KnownEmotions[d.EmotionalState] {
		d.EmotionalState = EmotionNeutral
	}
}
