package models

// Observation is what the navigator sees after a page settles: the inputs to
// the next decision and the metrics recorded on the step.
type Observation struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	ViewportW    int    `json:"viewport_w"`
	ViewportH    int    `json:"viewport_h"`
	ScrollY      int    `json:"scroll_y"`
	MaxScrollY   int    `json:"max_scroll_y"`
	DOMOutline   string `json:"dom_outline,omitempty"` // visible interactive elements only
	LoadTimeMs   int    `json:"load_time_ms,omitempty"`
	FirstPaintMs int    `json:"first_paint_ms,omitempty"`

	// Screenshot is the raw PNG for the decision call and blob storage.
	// Excluded from JSON so observations can be embedded in prompts.
	Screenshot []byte `json:"-"`
}

// ActionOutcome captures where an action landed, merged into the step row.
type ActionOutcome struct {
	ClickX *int `json:"click_x,omitempty"`
	ClickY *int `json:"click_y,omitempty"`
}
