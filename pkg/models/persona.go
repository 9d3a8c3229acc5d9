package models

import (
	"encoding/json"
	"fmt"
)

// Device preference values for a persona profile.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

// PersonaProfile is the semi-structured profile stored on a persona.
// Trait scales run 1 (lowest) to 10 (highest). The yaml tags keep persona
// templates in config files on the same key names as the JSON column.
type PersonaProfile struct {
	Name               string   `json:"name" yaml:"name"`
	Emoji              string   `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	TechLiteracy       int      `json:"tech_literacy" yaml:"tech_literacy"`
	Patience           int      `json:"patience" yaml:"patience"`
	ReadingSpeed       int      `json:"reading_speed" yaml:"reading_speed"`
	Trust              int      `json:"trust" yaml:"trust"`
	Goals              []string `json:"goals,omitempty" yaml:"goals,omitempty"`
	Frustrations       []string `json:"frustrations,omitempty" yaml:"frustrations,omitempty"`
	AccessibilityNeeds []string `json:"accessibility_needs,omitempty" yaml:"accessibility_needs,omitempty"`
	DevicePreference   string   `json:"device_preference,omitempty" yaml:"device_preference,omitempty"` // desktop, mobile, tablet
}

// Viewport returns the pixel dimensions matching the persona's device preference.
func (p PersonaProfile) Viewport() (width, height int) {
	switch p.DevicePreference {
	case DeviceMobile:
		return 390, 844
	case DeviceTablet:
		return 820, 1180
	default:
		return 1440, 900
	}
}

// ToMap converts the profile for storage in the persona's JSON column.
func (p PersonaProfile) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling persona profile: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling persona profile map: %w", err)
	}
	return m, nil
}

// PersonaProfileFromMap rebuilds a profile from its JSON-column form.
// Unknown keys are dropped; missing keys zero out.
func PersonaProfileFromMap(m map[string]interface{}) (PersonaProfile, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return PersonaProfile{}, fmt.Errorf("marshaling profile map: %w", err)
	}
	var p PersonaProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return PersonaProfile{}, fmt.Errorf("unmarshaling persona profile: %w", err)
	}
	return p, nil
}
