package models

// SessionLiveState is one entry of a study's live-state map. Pointer fields
// distinguish "absent from this update" from zero values so partial upserts
// merge instead of clobbering.
type SessionLiveState struct {
	SessionID      string `json:"session_id"`
	PersonaName    string `json:"persona_name,omitempty"`
	StepNumber     *int   `json:"step_number,omitempty"`
	EmotionalState string `json:"emotional_state,omitempty"`
	LiveViewURL    string `json:"live_view_url,omitempty"` // captured once at session start
	BrowserActive  *bool  `json:"browser_active,omitempty"`
	Action         string `json:"action,omitempty"`
	ThinkAloud     string `json:"think_aloud,omitempty"`
	ScreenshotURL  string `json:"screenshot_url,omitempty"`
	TaskProgress   *int   `json:"task_progress,omitempty"`
}

// Merge applies an update on top of the receiver and returns the result.
// Nil pointers and empty strings mean "absent from this update", so a step
// update never clears fields captured earlier (like live_view_url from
// session start). Equivalent to the jsonb || merge the store runs in SQL,
// because absent fields are omitted from the update's JSON document.
func (s SessionLiveState) Merge(update SessionLiveState) SessionLiveState {
	merged := s
	if update.SessionID != "" {
		merged.SessionID = update.SessionID
	}
	if update.PersonaName != "" {
		merged.PersonaName = update.PersonaName
	}
	if update.StepNumber != nil {
		merged.StepNumber = update.StepNumber
	}
	if update.EmotionalState != "" {
		merged.EmotionalState = update.EmotionalState
	}
	if update.LiveViewURL != "" {
		merged.LiveViewURL = update.LiveViewURL
	}
	if update.BrowserActive != nil {
		merged.BrowserActive = update.BrowserActive
	}
	if update.Action != "" {
		merged.Action = update.Action
	}
	if update.ThinkAloud != "" {
		merged.ThinkAloud = update.ThinkAloud
	}
	if update.ScreenshotURL != "" {
		merged.ScreenshotURL = update.ScreenshotURL
	}
	if update.TaskProgress != nil {
		merged.TaskProgress = update.TaskProgress
	}
	return merged
}
