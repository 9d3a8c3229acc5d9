package config

import (
	"fmt"
	"sync"

	"github.com/wanderlens/wanderlens/pkg/models"
)

// PersonaTemplate is a reusable persona profile. Studies reference templates
// by id at setup; the resolved profile is then frozen onto the persona row.
type PersonaTemplate struct {
	Profile     models.PersonaProfile `yaml:"profile"`
	ModelChoice string                `yaml:"model_choice,omitempty"`
}

var (
	templateMu    sync.RWMutex
	templates     map[string]PersonaTemplate
	templatesOnce sync.Once
)

// GetTemplate resolves a persona template by id.
func GetTemplate(id string) (PersonaTemplate, error) {
	templatesOnce.Do(initBuiltinTemplates)

	templateMu.RLock()
	defer templateMu.RUnlock()
	tpl, ok := templates[id]
	if !ok {
		return PersonaTemplate{}, fmt.Errorf("unknown persona template %q", id)
	}
	return tpl, nil
}

// RegisterTemplates adds or overrides templates, e.g. from the YAML overlay.
func RegisterTemplates(extra map[string]PersonaTemplate) {
	templatesOnce.Do(initBuiltinTemplates)

	templateMu.Lock()
	defer templateMu.Unlock()
	for id, tpl := range extra {
		templates[id] = tpl
	}
}

// TemplateIDs lists the registered template ids, for validation messages.
func TemplateIDs() []string {
	templatesOnce.Do(initBuiltinTemplates)

	templateMu.RLock()
	defer templateMu.RUnlock()
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	return ids
}

func initBuiltinTemplates() {
	templates = map[string]PersonaTemplate{
		"power-user": {
			Profile: models.PersonaProfile{
				Name:             "Priya the Power User",
				Emoji:            "⚡",
				TechLiteracy:     9,
				Patience:         3,
				ReadingSpeed:     9,
				Trust:            6,
				Goals:            []string{"Get things done fast", "Use keyboard shortcuts"},
				Frustrations:     []string{"Slow pages", "Unskippable onboarding"},
				DevicePreference: models.DeviceDesktop,
			},
		},
		"cautious-senior": {
			Profile: models.PersonaProfile{
				Name:               "Sal the Cautious Senior",
				Emoji:              "🧓",
				TechLiteracy:       3,
				Patience:           8,
				ReadingSpeed:       4,
				Trust:              3,
				Goals:              []string{"Avoid mistakes", "Understand before clicking"},
				Frustrations:       []string{"Small text", "Ambiguous buttons", "Popups"},
				AccessibilityNeeds: []string{"Larger fonts", "High contrast"},
				DevicePreference:   models.DeviceDesktop,
			},
		},
		"mobile-first": {
			Profile: models.PersonaProfile{
				Name:             "Mo the Mobile-First Shopper",
				Emoji:            "📱",
				TechLiteracy:     6,
				Patience:         4,
				ReadingSpeed:     7,
				Trust:            5,
				Goals:            []string{"Browse on the go", "One-handed use"},
				Frustrations:     []string{"Desktop-only layouts", "Tiny tap targets"},
				DevicePreference: models.DeviceMobile,
			},
		},
		"screen-reader": {
			Profile: models.PersonaProfile{
				Name:               "River the Screen Reader User",
				Emoji:              "🦯",
				TechLiteracy:       7,
				Patience:           6,
				ReadingSpeed:       6,
				Trust:              5,
				Goals:              []string{"Navigate by landmarks and headings"},
				Frustrations:       []string{"Unlabeled buttons", "Missing alt text", "Focus traps"},
				AccessibilityNeeds: []string{"Screen reader compatible", "Keyboard navigable"},
				DevicePreference:   models.DeviceDesktop,
			},
		},
		"first-timer": {
			Profile: models.PersonaProfile{
				Name:             "Fern the First-Time Visitor",
				Emoji:            "🌱",
				TechLiteracy:     5,
				Patience:         5,
				ReadingSpeed:     5,
				Trust:            4,
				Goals:            []string{"Figure out what this site is for"},
				Frustrations:     []string{"Jargon", "Walls of text", "Hidden pricing"},
				DevicePreference: models.DeviceDesktop,
			},
		},
	}
}
