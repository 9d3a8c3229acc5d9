package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaProfileViewport(t *testing.T) {
	tests := []struct {
		device string
		width  int
		height int
	}{
		{DeviceDesktop, 1440, 900},
		{DeviceMobile, 390, 844},
		{DeviceTablet, 820, 1180},
		{"", 1440, 900}, // unset preference defaults to desktop
	}
	for _, tt := range tests {
		w, h := PersonaProfile{DevicePreference: tt.device}.Viewport()
		assert.Equal(t, tt.width, w, "device %q", tt.device)
		assert.Equal(t, tt.height, h, "device %q", tt.device)
	}
}

func TestPersonaProfileMapRoundTrip(t *testing.T) {
	p := PersonaProfile{
		Name:             "Maya the Methodical",
		TechLiteracy:     4,
		Patience:         8,
		Goals:            []string{"compare plans"},
		DevicePreference: DeviceMobile,
	}

	m, err := p.ToMap()
	require.NoError(t, err)
	assert.Equal(t, "Maya the Methodical", m["name"])

	// Unknown keys from older rows are dropped, not fatal.
	m["legacy_field"] = "ignored"
	back, err := PersonaProfileFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}
