package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
)

// TestStudyChannelPayloads_ContainStudyID is a contract test between the
// Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.study_id` in
// the JSON payload, and session-scoped events additionally by
// `data.session_id` to pick the dashboard card to update. ANY payload
// broadcast on a study channel (study:{id}) MUST include a non-empty
// `study_id` — otherwise the frontend silently drops it. The truncation
// envelope relies on the same fields, so this also guards the oversized
// payload path.
//
// If you add a new payload type that flows through a study channel, add it
// here — the test will fail if the routing fields are missing.
func TestStudyChannelPayloads_ContainStudyID(t *testing.T) {
	const testStudyID = "study-contract-test"
	const testSessionID = "sess-contract-test"

	tests := []struct {
		name          string
		payload       any
		wantSessionID bool
	}{
		{
			name: "SessionStepPayload",
			payload: SessionStepPayload{
				Type:           EventTypeSessionStep,
				StudyID:        testStudyID,
				SessionID:      testSessionID,
				StepID:         "step-1",
				StepNumber:     1,
				URL:            "https://example.com",
				Action:         map[string]interface{}{"type": "click"},
				EmotionalState: "neutral",
				Confidence:     0.5,
				Timestamp:      "2026-01-01T00:00:00Z",
			},
			wantSessionID: true,
		},
		{
			name: "SessionStatusPayload",
			payload: SessionStatusPayload{
				Type:      EventTypeSessionStatus,
				StudyID:   testStudyID,
				SessionID: testSessionID,
				Status:    session.StatusRunning,
				Timestamp: "2026-01-01T00:00:00Z",
			},
			wantSessionID: true,
		},
		{
			name: "StudyStatusPayload",
			payload: StudyStatusPayload{
				Type:      EventTypeStudyStatus,
				StudyID:   testStudyID,
				Status:    study.StatusRunning,
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "StudyProgressPayload",
			payload: StudyProgressPayload{
				Type:      EventTypeStudyProgress,
				StudyID:   testStudyID,
				Percent:   10,
				Phase:     "setup",
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "SnapshotPayload",
			payload: SnapshotPayload{
				Type:      EventTypeSnapshot,
				StudyID:   testStudyID,
				Study:     SnapshotStudy{Status: study.StatusRunning, URL: "https://example.com"},
				Sessions:  []json.RawMessage{},
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			sid, ok := parsed["study_id"]
			assert.True(t, ok,
				"%s JSON is missing \"study_id\" field — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, testStudyID, sid, "%s study_id has wrong value", tt.name)

			if tt.wantSessionID {
				sess, ok := parsed["session_id"]
				assert.True(t, ok,
					"%s JSON is missing \"session_id\" field — dashboard card routing needs it", tt.name)
				assert.Equal(t, testSessionID, sess, "%s session_id has wrong value", tt.name)
			}
		})
	}
}
