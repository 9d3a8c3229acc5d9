package models

import "encoding/json"

// CapabilityCost aggregates LLM spend for one gateway capability.
type CapabilityCost struct {
	Calls            int     `json:"calls"`
	PromptTokens     int64   `json:"prompt_tokens"`
	CompletionTokens int64   `json:"completion_tokens"`
	USD              float64 `json:"usd"`
}

// CostBreakdown is persisted on the study as its cost_breakdown JSON.
type CostBreakdown struct {
	TotalUSD     float64                   `json:"total_usd"`
	ByCapability map[string]CapabilityCost `json:"by_capability,omitempty"`
}

// ToMap converts the breakdown to the generic map shape the study's
// cost_breakdown column stores.
func (c CostBreakdown) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
