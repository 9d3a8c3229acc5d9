package models

import "fmt"

// ActionType identifies a browser action variant emitted by the decision model.
type ActionType string

const (
	ActionClick  ActionType = "click"
	ActionFill   ActionType = "fill"
	ActionSelect ActionType = "select"
	ActionScroll ActionType = "scroll"
	ActionWait   ActionType = "wait"
	ActionGoto   ActionType = "goto"
	ActionBack   ActionType = "back"
	ActionSubmit ActionType = "submit"
	ActionGiveUp ActionType = "give_up"
	ActionDone   ActionType = "done"
)

// Action is the tagged variant a decision carries. Required fields depend on
// the variant; Validate enforces them before dispatch.
type Action struct {
	Type        ActionType `json:"type"`
	Selector    string     `json:"selector,omitempty"`
	Value       string     `json:"value,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Terminal reports whether the action ends the session loop on its own.
func (a Action) Terminal() bool {
	return a.Type == ActionDone || a.Type == ActionGiveUp
}

// Validate checks the per-variant required fields. Unknown variants are
// rejected so malformed model output fails the step, not the dispatcher.
func (a Action) Validate() error {
	switch a.Type {
	case ActionClick, ActionSubmit:
		if a.Selector == "" {
			return fmt.Errorf("action %q requires a selector", a.Type)
		}
	case ActionFill, ActionSelect:
		if a.Selector == "" {
			return fmt.Errorf("action %q requires a selector", a.Type)
		}
		if a.Value == "" {
			return fmt.Errorf("action %q requires a value", a.Type)
		}
	case ActionGoto:
		if a.Value == "" {
			return fmt.Errorf("action goto requires a target url in value")
		}
	case ActionScroll, ActionWait, ActionBack, ActionGiveUp, ActionDone:
		// No required fields.
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}
	return nil
}

// ToMap converts the action for storage in a JSON column.
func (a Action) ToMap() map[string]interface{} {
	m := map[string]interface{}{"type": string(a.Type)}
	if a.Selector != "" {
		m["selector"] = a.Selector
	}
	if a.Value != "" {
		m["value"] = a.Value
	}
	if a.Description != "" {
		m["description"] = a.Description
	}
	return m
}

// ActionFromMap rebuilds an action from its JSON-column form.
func ActionFromMap(m map[string]interface{}) Action {
	a := Action{}
	if v, ok := m["type"].(string); ok {
		a.Type = ActionType(v)
	}
	if v, ok := m["selector"].(string); ok {
		a.Selector = v
	}
	if v, ok := m["value"].(string); ok {
		a.Value = v
	}
	if v, ok := m["description"].(string); ok {
		a.Description = v
	}
	return a
}
