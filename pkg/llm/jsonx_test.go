package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("clean object passes through", func(t *testing.T) {
		obj, err := ExtractJSONObject(`{"a": 1, "b": "two"}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1, "b": "two"}`, obj)
	})

	t.Run("code fence with language tag", func(t *testing.T) {
		raw := "```json\n{\"a\": 1}\n```"
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1}`, obj)
	})

	t.Run("prose around the object", func(t *testing.T) {
		raw := `Here is my decision:

{"action": {"type": "click"}, "confidence": 0.8}

Let me know if you need anything else.`
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"action": {"type": "click"}, "confidence": 0.8}`, obj)
	})

	t.Run("braces inside strings do not close the object", func(t *testing.T) {
		raw := `{"selector": "div[data-x='{}']", "note": "literal } here"}`
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(obj), &m))
		assert.Equal(t, "literal } here", m["note"])
	})

	t.Run("trailing commas removed", func(t *testing.T) {
		raw := `{"a": 1, "b": [1, 2,], }`
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1, "b": [1, 2]}`, obj)
	})

	t.Run("curly quotes as delimiters", func(t *testing.T) {
		raw := "{“a”: “hi”}"
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": "hi"}`, obj)
	})

	t.Run("truncated mid-string", func(t *testing.T) {
		raw := `{"think_aloud": "I am looking for the sig`
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(obj), &m))
		assert.Contains(t, m["think_aloud"], "looking for")
	})

	t.Run("truncated after a key", func(t *testing.T) {
		raw := `{"a": 1, "b":`
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1, "b": null}`, obj)
	})

	t.Run("truncated after a comma", func(t *testing.T) {
		raw := `{"a": 1,`
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1}`, obj)
	})

	t.Run("truncated nested structures", func(t *testing.T) {
		raw := `{"issues": [{"description": "contrast too low", "severity": "minor"`
		obj, err := ExtractJSONObject(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"issues": [{"description": "contrast too low", "severity": "minor"}]}`, obj)
	})

	t.Run("no object at all", func(t *testing.T) {
		_, err := ExtractJSONObject("I could not decide on an action.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no JSON object")
	})

	t.Run("truncation deeper than the repair bound", func(t *testing.T) {
		raw := strings.Repeat(`{"a": [`, maxCloseDepth)
		_, err := ExtractJSONObject(raw)
		require.Error(t, err)
	})
}

type validatingDoc struct {
	Score int `json:"score"`
}

func (d *validatingDoc) Validate() error {
	if d.Score < 0 {
		return fmt.Errorf("score must not be negative")
	}
	return nil
}

func TestDecodeInto(t *testing.T) {
	t.Run("runs the target validator", func(t *testing.T) {
		var doc validatingDoc
		err := DecodeInto(`{"score": -3}`, &doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("valid document decodes", func(t *testing.T) {
		var doc validatingDoc
		require.NoError(t, DecodeInto("```json\n{\"score\": 7}\n```", &doc))
		assert.Equal(t, 7, doc.Score)
	})

	t.Run("type mismatch surfaces the unmarshal error", func(t *testing.T) {
		var doc validatingDoc
		err := DecodeInto(`{"score": "seven"}`, &doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal")
	})
}
