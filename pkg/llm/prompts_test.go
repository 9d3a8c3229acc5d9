package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderlens/wanderlens/pkg/models"
)

func TestDecisionPrompts(t *testing.T) {
	persona := models.PersonaProfile{
		Name:               "Marge",
		TechLiteracy:       2,
		Patience:           8,
		ReadingSpeed:       3,
		Trust:              4,
		Goals:              []string{"order a gift without calling her son"},
		Frustrations:       []string{"pages that move while loading"},
		AccessibilityNeeds: []string{"larger text"},
		DevicePreference:   models.DeviceTablet,
	}

	t.Run("system prompt embodies the persona", func(t *testing.T) {
		sys := decisionSystemPrompt(persona)
		assert.Contains(t, sys, "You are Marge")
		assert.Contains(t, sys, "Tech literacy: 2/10")
		assert.Contains(t, sys, "pages that move while loading")
		assert.Contains(t, sys, "larger text")
		assert.Contains(t, sys, `"give_up"`)
		assert.Contains(t, sys, jsonOnlyInstruction)
	})

	t.Run("user prompt carries task, history and observation", func(t *testing.T) {
		in := DecisionInput{
			Task:       "Find the contact form",
			StepNumber: 4,
			MaxSteps:   30,
			History: []StepDigest{
				{StepNumber: 1, Action: models.Action{Type: models.ActionGoto, Value: "https://example.com"}, Emotion: "curious"},
				{StepNumber: 2, Action: models.Action{Type: models.ActionClick, Selector: "#menu"}, Outcome: "timeout waiting for element", Emotion: "confused"},
				{StepNumber: 3, Action: models.Action{Type: models.ActionScroll}, ThinkAloud: "maybe it is further down"},
			},
			Observation: models.Observation{
				URL:        "https://example.com/about",
				Title:      "About us",
				ViewportW:  820,
				ViewportH:  1180,
				ScrollY:    600,
				MaxScrollY: 2400,
				DOMOutline: "- link \"Contact\" (footer a[href='/contact'])",
			},
		}

		user := decisionUserPrompt(in)
		assert.Contains(t, user, "Find the contact form")
		assert.Contains(t, user, "step 4 of at most 30")
		assert.Contains(t, user, "[timeout waiting for element]")
		assert.Contains(t, user, "maybe it is further down")
		assert.Contains(t, user, "820x1180, scrolled to 600 of 2400")
		assert.Contains(t, user, "footer a[href='/contact']")
		assert.NotContains(t, user, "has not visibly changed")
	})

	t.Run("stuck hint and blocker note included when set", func(t *testing.T) {
		user := decisionUserPrompt(DecisionInput{
			Task:        "t",
			StepNumber:  9,
			MaxSteps:    30,
			StuckHint:   true,
			BlockerNote: "the previous click landed on a cookie banner",
		})
		assert.Contains(t, user, "has not visibly changed")
		assert.Contains(t, user, "cookie banner")
	})

	t.Run("empty history renders the arrival line", func(t *testing.T) {
		user := decisionUserPrompt(DecisionInput{Task: "t", StepNumber: 1, MaxSteps: 30})
		assert.Contains(t, user, "You just arrived")
	})
}

func TestRepairUserPrompt(t *testing.T) {
	out := repairUserPrompt("original request body", `{"broken": `, errors.New("could not repair truncated object"))
	assert.Contains(t, out, "could not repair truncated object")
	assert.Contains(t, out, `{"broken": `)
	assert.Contains(t, out, "original request body")
}

func TestSynthesizeUserPrompt_EmptyStudy(t *testing.T) {
	user := synthesizeUserPrompt(SynthesizeInput{TargetURL: "https://example.com"})
	assert.Contains(t, user, "No sessions completed.")
	assert.Contains(t, user, "None recorded.")
}
