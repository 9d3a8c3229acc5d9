package llm

// Prompt construction for the gateway capabilities. Builders are pure
// functions of their inputs; the gateway owns model choice and sampling.

import (
	"fmt"
	"strings"

	"github.com/wanderlens/wanderlens/pkg/models"
)

const jsonOnlyInstruction = "Respond with a single JSON object and nothing else: no prose before or after, no code fences."

const decisionSchema = `{
  "think_aloud": "first-person inner monologue, one to three sentences",
  "emotional_state": "curious | confident | confused | frustrated | anxious | satisfied | neutral",
  "action": {
    "type": "click | fill | select | scroll | wait | goto | back | submit | give_up | done",
    "selector": "CSS selector when the action targets an element",
    "value": "text to type, option to pick, or URL for goto",
    "description": "what this action is trying to accomplish"
  },
  "confidence": 0.7,
  "task_progress": 40,
  "ux_issues": [
    {
      "element": "selector or short element description",
      "description": "what is wrong, from the persona's point of view",
      "severity": "critical | major | minor | enhancement",
      "issue_type": "ux | accessibility | error | performance",
      "recommendation": "optional concrete fix"
    }
  ]
}`

const analyzeSchema = `{
  "summary": "two or three sentences on how this page serves its visitors",
  "issues": [
    {
      "element": "selector or short element description",
      "description": "what is wrong and who it hurts",
      "severity": "critical | major | minor | enhancement",
      "issue_type": "ux | accessibility | error | performance",
      "heuristic": "optional Nielsen heuristic name",
      "wcag_criterion": "optional WCAG criterion, e.g. 1.4.3",
      "recommendation": "optional concrete fix"
    }
  ]
}`

const synthesizeSchema = `{
  "overall_ux_score": 72,
  "executive_summary": "three to five sentences a product owner can act on",
  "universal_issues": [
    {"title": "...", "description": "...", "severity": "critical | major | minor | enhancement", "personas_affected": ["..."], "evidence": "..."}
  ],
  "persona_specific_findings": [
    {"title": "...", "description": "...", "personas_affected": ["..."], "evidence": "..."}
  ],
  "recommendations": [
    {"title": "...", "description": "...", "impact": "high | medium | low", "effort": "high | medium | low"}
  ]
}`

const planSchema = `{
  "tasks": [
    {"description": "one realistic task a visitor would attempt", "success_criteria": "how to tell the task succeeded"}
  ],
  "personas": ["template id or one-line persona brief"]
}`

const personaSchema = `{
  "name": "short human name",
  "background": "two or three sentences of who they are",
  "model_choice": "optional model override, usually omitted",
  "profile": {
    "name": "same short name",
    "emoji": "one emoji",
    "tech_literacy": 5,
    "patience": 5,
    "reading_speed": 5,
    "trust": 5,
    "goals": ["..."],
    "frustrations": ["..."],
    "accessibility_needs": ["..."],
    "device_preference": "desktop | mobile | tablet"
  }
}`

const fixSchema = `{
  "suggestion": "concrete change, specific enough to hand to a developer",
  "code_hint": "optional HTML/CSS/JS sketch of the fix"
}`

// decisionSystemPrompt embeds the model as the persona. Trait scales shape
// behavior: low patience gives up sooner, low tech literacy avoids jargon
// paths, low trust hesitates before handing over personal data.
func decisionSystemPrompt(p models.PersonaProfile) string {
	var sb strings.Builder
	sb.WriteString("You are ")
	sb.WriteString(p.Name)
	sb.WriteString(", a real person using a website. Stay in character at every step.\n\n")
	sb.WriteString(FormatPersonaSection(p))
	sb.WriteString("\nBehave like this person would: read at their speed, trust what they would trust, ")
	sb.WriteString("and run out of patience when they would. Think aloud in first person. ")
	sb.WriteString("Report UX problems as you hit them, not as a professional reviewer but as this person experiencing them.\n\n")
	sb.WriteString("Use the \"done\" action only when the task is genuinely complete. ")
	sb.WriteString("Use \"give_up\" when this person would walk away.\n\n")
	sb.WriteString("Response schema:\n")
	sb.WriteString(decisionSchema)
	sb.WriteString("\n\n")
	sb.WriteString(jsonOnlyInstruction)
	return sb.String()
}

func decisionUserPrompt(in DecisionInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Task\n%s\n\n", in.Task)
	fmt.Fprintf(&sb, "This is step %d of at most %d.\n\n", in.StepNumber, in.MaxSteps)

	sb.WriteString(FormatHistorySection(in.History))
	sb.WriteString("\n")
	sb.WriteString(FormatObservationSection(in.Observation))

	if in.StuckHint {
		sb.WriteString("\nThe page has not visibly changed across your recent actions. Whatever you are doing is not working; try something different or reconsider the task.\n")
	}
	if in.BlockerNote != "" {
		fmt.Fprintf(&sb, "\nNote: %s\n", in.BlockerNote)
	}

	sb.WriteString("\nThe attached screenshot shows the page right now. Decide your next action.")
	return sb.String()
}

func analyzeSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are a senior UX researcher reviewing a single page screenshot. ")
	sb.WriteString("Judge visual hierarchy, affordances, copy clarity, accessibility, and error states. ")
	sb.WriteString("Only report problems visible in the screenshot; do not speculate about other pages.\n\n")
	sb.WriteString("Response schema:\n")
	sb.WriteString(analyzeSchema)
	sb.WriteString("\n\n")
	sb.WriteString(jsonOnlyInstruction)
	return sb.String()
}

func analyzeUserPrompt(in AnalyzeInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Page\nURL: %s\n", in.PageURL)
	if in.PageTitle != "" {
		fmt.Fprintf(&sb, "Title: %s\n", in.PageTitle)
	}
	if len(in.Personas) > 0 {
		fmt.Fprintf(&sb, "\nPersonas who visited this page during the study: %s\n", strings.Join(in.Personas, ", "))
		sb.WriteString("Weigh problems that would hit these visitors hardest.\n")
	}
	sb.WriteString("\nReview the attached screenshot.")
	return sb.String()
}

func synthesizeSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are the lead researcher writing up a usability study. ")
	sb.WriteString("You have every session transcript digest and the deduplicated issue list. ")
	sb.WriteString("Separate problems every persona hit from problems specific to one kind of visitor, ")
	sb.WriteString("and rank recommendations by impact against effort. ")
	sb.WriteString("Score the overall experience 0-100, where 100 means every persona finished every task without friction.\n\n")
	sb.WriteString("Response schema:\n")
	sb.WriteString(synthesizeSchema)
	sb.WriteString("\n\n")
	sb.WriteString(jsonOnlyInstruction)
	return sb.String()
}

func synthesizeUserPrompt(in SynthesizeInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Study\nTarget: %s\n", in.TargetURL)
	if in.Description != "" {
		fmt.Fprintf(&sb, "Goal: %s\n", in.Description)
	}

	sb.WriteString("\n## Sessions\n")
	if len(in.Sessions) == 0 {
		sb.WriteString("No sessions completed.\n")
	}
	for _, s := range in.Sessions {
		fmt.Fprintf(&sb, "- %s on %q: %s", s.PersonaName, s.Task, s.Status)
		if s.TaskCompleted {
			sb.WriteString(", task completed")
		}
		fmt.Fprintf(&sb, ", %d steps", s.TotalSteps)
		if s.EmotionalArc != "" {
			fmt.Fprintf(&sb, ", felt %s", s.EmotionalArc)
		}
		if s.Summary != "" {
			fmt.Fprintf(&sb, "\n  %s", s.Summary)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Top issues (deduplicated, most severe first)\n")
	if len(in.TopIssues) == 0 {
		sb.WriteString("None recorded.\n")
	}
	for _, iss := range in.TopIssues {
		fmt.Fprintf(&sb, "- [%s] %s", iss.Severity, iss.Description)
		if iss.Element != "" {
			fmt.Fprintf(&sb, " (%s)", iss.Element)
		}
		if iss.PageURL != "" {
			fmt.Fprintf(&sb, " at %s", iss.PageURL)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nSynthesize the study.")
	return sb.String()
}

func planSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You plan usability studies. Given a website and a study goal, ")
	sb.WriteString("propose the realistic tasks a visitor would attempt and the persona mix that would stress the site differently.\n\n")
	sb.WriteString("Response schema:\n")
	sb.WriteString(planSchema)
	sb.WriteString("\n\n")
	sb.WriteString(jsonOnlyInstruction)
	return sb.String()
}

func planUserPrompt(in PlanStudyInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Website: %s\n", in.TargetURL)
	if in.Description != "" {
		fmt.Fprintf(&sb, "Study goal: %s\n", in.Description)
	}
	if in.MaxTasks > 0 {
		fmt.Fprintf(&sb, "Propose at most %d tasks.\n", in.MaxTasks)
	}
	return sb.String()
}

func personaSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You create test personas for usability studies. ")
	sb.WriteString("Personas are specific people, not demographics: concrete goals, concrete frustrations, trait scales 1-10.\n\n")
	sb.WriteString("Response schema:\n")
	sb.WriteString(personaSchema)
	sb.WriteString("\n\n")
	sb.WriteString(jsonOnlyInstruction)
	return sb.String()
}

func personaUserPrompt(in PersonaInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create one persona matching this brief: %s\n", in.Brief)
	if in.TargetURL != "" {
		fmt.Fprintf(&sb, "They will be testing: %s\n", in.TargetURL)
	}
	return sb.String()
}

func fixSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You turn usability findings into concrete fixes a web developer can apply.\n\n")
	sb.WriteString("Response schema:\n")
	sb.WriteString(fixSchema)
	sb.WriteString("\n\n")
	sb.WriteString(jsonOnlyInstruction)
	return sb.String()
}

func fixUserPrompt(in FixInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Issue (%s, %s): %s\n", in.Issue.Severity, in.Issue.IssueType, in.Issue.Description)
	if in.Issue.Element != "" {
		fmt.Fprintf(&sb, "Element: %s\n", in.Issue.Element)
	}
	if in.PageURL != "" {
		fmt.Fprintf(&sb, "Page: %s\n", in.PageURL)
	}
	sb.WriteString("Suggest the fix.")
	return sb.String()
}

// repairUserPrompt asks the model to re-emit its own malformed output as
// valid JSON. The original request stays in the prompt so required fields
// can be reconstructed, not invented.
func repairUserPrompt(originalUser, malformed string, cause error) string {
	var sb strings.Builder
	sb.WriteString("Your previous response was not valid for the required schema.\n\n")
	fmt.Fprintf(&sb, "Validation error: %v\n\n", cause)
	sb.WriteString("Your previous response:\n")
	sb.WriteString(malformed)
	sb.WriteString("\n\nThe original request follows. Re-answer it as a single valid JSON object matching the schema. ")
	sb.WriteString(jsonOnlyInstruction)
	sb.WriteString("\n\n---\n")
	sb.WriteString(originalUser)
	return sb.String()
}

// FormatPersonaSection renders a persona profile for prompt embedding.
func FormatPersonaSection(p models.PersonaProfile) string {
	var sb strings.Builder
	sb.WriteString("## Who you are\n")
	fmt.Fprintf(&sb, "Tech literacy: %d/10\n", p.TechLiteracy)
	fmt.Fprintf(&sb, "Patience: %d/10\n", p.Patience)
	fmt.Fprintf(&sb, "Reading speed: %d/10\n", p.ReadingSpeed)
	fmt.Fprintf(&sb, "Trust in websites: %d/10\n", p.Trust)
	if p.DevicePreference != "" {
		fmt.Fprintf(&sb, "Device: %s\n", p.DevicePreference)
	}
	if len(p.Goals) > 0 {
		fmt.Fprintf(&sb, "Goals: %s\n", strings.Join(p.Goals, "; "))
	}
	if len(p.Frustrations) > 0 {
		fmt.Fprintf(&sb, "Frustrations: %s\n", strings.Join(p.Frustrations, "; "))
	}
	if len(p.AccessibilityNeeds) > 0 {
		fmt.Fprintf(&sb, "Accessibility needs: %s\n", strings.Join(p.AccessibilityNeeds, "; "))
	}
	return sb.String()
}

// FormatHistorySection renders prior steps, oldest first. The navigator
// trims the slice; this renders whatever it is given.
func FormatHistorySection(history []StepDigest) string {
	if len(history) == 0 {
		return "## Your steps so far\nNone. You just arrived.\n"
	}
	var sb strings.Builder
	sb.WriteString("## Your steps so far\n")
	for _, h := range history {
		fmt.Fprintf(&sb, "%d. %s", h.StepNumber, h.Action.Type)
		if h.Action.Selector != "" {
			fmt.Fprintf(&sb, " %s", h.Action.Selector)
		}
		if h.Action.Value != "" {
			fmt.Fprintf(&sb, " = %q", h.Action.Value)
		}
		if h.Outcome != "" && h.Outcome != "ok" {
			fmt.Fprintf(&sb, " [%s]", h.Outcome)
		}
		if h.ThinkAloud != "" {
			fmt.Fprintf(&sb, " — %q", h.ThinkAloud)
		}
		if h.Emotion != "" {
			fmt.Fprintf(&sb, " (%s)", h.Emotion)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatObservationSection renders the current page state.
func FormatObservationSection(o models.Observation) string {
	var sb strings.Builder
	sb.WriteString("## Current page\n")
	fmt.Fprintf(&sb, "URL: %s\n", o.URL)
	if o.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", o.Title)
	}
	fmt.Fprintf(&sb, "Viewport: %dx%d, scrolled to %d of %d\n", o.ViewportW, o.ViewportH, o.ScrollY, o.MaxScrollY)
	if o.DOMOutline != "" {
		sb.WriteString("Interactive elements in view:\n")
		sb.WriteString(o.DOMOutline)
		sb.WriteString("\n")
	}
	return sb.String()
}
