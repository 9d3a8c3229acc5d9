package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionValidate(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		wantErr string
	}{
		{name: "click with selector", action: Action{Type: ActionClick, Selector: "#cta"}},
		{name: "click without selector", action: Action{Type: ActionClick}, wantErr: "requires a selector"},
		{name: "submit without selector", action: Action{Type: ActionSubmit}, wantErr: "requires a selector"},
		{name: "fill complete", action: Action{Type: ActionFill, Selector: "#email", Value: "a@b.c"}},
		{name: "fill without value", action: Action{Type: ActionFill, Selector: "#email"}, wantErr: "requires a value"},
		{name: "select without selector", action: Action{Type: ActionSelect, Value: "opt"}, wantErr: "requires a selector"},
		{name: "goto with url", action: Action{Type: ActionGoto, Value: "https://example.com/pricing"}},
		{name: "goto without url", action: Action{Type: ActionGoto}, wantErr: "target url"},
		{name: "scroll is freestanding", action: Action{Type: ActionScroll}},
		{name: "wait is freestanding", action: Action{Type: ActionWait}},
		{name: "back is freestanding", action: Action{Type: ActionBack}},
		{name: "give_up is freestanding", action: Action{Type: ActionGiveUp}},
		{name: "done is freestanding", action: Action{Type: ActionDone}},
		{name: "unknown type", action: Action{Type: "teleport"}, wantErr: "unknown action type"},
		{name: "empty type", action: Action{}, wantErr: "unknown action type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestActionTerminal(t *testing.T) {
	assert.True(t, Action{Type: ActionDone}.Terminal())
	assert.True(t, Action{Type: ActionGiveUp}.Terminal())
	assert.False(t, Action{Type: ActionClick, Selector: "#x"}.Terminal())
	assert.False(t, Action{Type: ActionScroll}.Terminal())
}

func TestActionMapRoundTrip(t *testing.T) {
	full := Action{Type: ActionFill, Selector: "#q", Value: "pricing", Description: "search for pricing"}
	assert.Equal(t, full, ActionFromMap(full.ToMap()))

	// Empty optional fields stay out of the stored map.
	m := Action{Type: ActionScroll}.ToMap()
	assert.Equal(t, map[string]interface{}{"type": "scroll"}, m)

	// Column data with missing or oddly typed keys degrades softly.
	a := ActionFromMap(map[string]interface{}{"type": "click", "selector": 7})
	assert.Equal(t, ActionClick, a.Type)
	assert.Empty(t, a.Selector)
}
