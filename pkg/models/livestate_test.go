package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLiveStateMerge(t *testing.T) {
	one, two := 1, 2
	active := true

	start := SessionLiveState{
		SessionID:   "sess-1",
		PersonaName: "Maya",
		LiveViewURL: "https://live.example.com/view/abc",
	}

	step := start.Merge(SessionLiveState{
		SessionID:      "sess-1",
		StepNumber:     &one,
		EmotionalState: EmotionCurious,
		BrowserActive:  &active,
		Action:         "click #cta",
		ThinkAloud:     "looks promising",
		TaskProgress:   &one,
	})

	// Step updates never clear what session start captured.
	assert.Equal(t, "Maya", step.PersonaName)
	assert.Equal(t, "https://live.example.com/view/abc", step.LiveViewURL)
	assert.Equal(t, 1, *step.StepNumber)
	assert.Equal(t, "click #cta", step.Action)

	// The next step overwrites what it carries and leaves the rest.
	next := step.Merge(SessionLiveState{StepNumber: &two, Action: "scroll"})
	assert.Equal(t, 2, *next.StepNumber)
	assert.Equal(t, "scroll", next.Action)
	assert.Equal(t, EmotionCurious, next.EmotionalState)
	assert.Equal(t, "https://live.example.com/view/abc", next.LiveViewURL)
}
