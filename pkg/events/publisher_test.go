package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStepPayload{
			Type:      EventTypeSessionStep,
			StudyID:   "study-1",
			SessionID: "sess-1",
			URL:       "https://example.com/pricing",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSessionStep)
		assert.Contains(t, result, "https://example.com/pricing")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStepPayload{
			Type:       EventTypeSessionStep,
			StudyID:    "study-1",
			SessionID:  "sess-1",
			ThinkAloud: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStepPayload{
			Type:       EventTypeSessionStep,
			StudyID:    "study-789",
			SessionID:  "sess-456",
			ThinkAloud: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeSessionStep)
		assert.Contains(t, result, "study-789")
		assert.Contains(t, result, "sess-456")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("truncated study payload omits session_id", func(t *testing.T) {
		payload, _ := json.Marshal(StudyStatusPayload{
			Type:             EventTypeStudyStatus,
			StudyID:          "study-22",
			Status:           study.StatusComplete,
			ExecutiveSummary: strings.Repeat("s", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, "study-22")
		assert.NotContains(t, result, "session_id")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes. Marshal an
		// empty struct first to measure the fixed-field overhead; the
		// 20-byte margin keeps the test stable if fields are added.
		base, _ := json.Marshal(SessionStepPayload{Type: "t"})
		contentSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(SessionStepPayload{
			Type:       "t",
			ThinkAloud: strings.Repeat("b", contentSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestSessionStepPayload_JSON(t *testing.T) {
	payload := SessionStepPayload{
		Type:       EventTypeSessionStep,
		StudyID:    "study-1",
		SessionID:  "sess-1",
		StepID:     "step-9",
		StepNumber: 4,
		URL:        "https://example.com/signup",
		Action: map[string]interface{}{
			"type":     "click",
			"selector": "button.cta",
		},
		ThinkAloud:     "This button looks promising",
		EmotionalState: "curious",
		Confidence:     0.8,
		TaskProgress:   40,
		ScreenshotURL:  "https://blobs.example.com/step-9.png",
		IssueCount:     1,
		Timestamp:      "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SessionStepPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeSessionStep, decoded.Type)
	assert.Equal(t, "study-1", decoded.StudyID)
	assert.Equal(t, "sess-1", decoded.SessionID)
	assert.Equal(t, 4, decoded.StepNumber)
	assert.Equal(t, "click", decoded.Action["type"])
	assert.Equal(t, "curious", decoded.EmotionalState)
	assert.Equal(t, 0.8, decoded.Confidence)
	assert.Equal(t, 40, decoded.TaskProgress)
	assert.Equal(t, 1, decoded.IssueCount)
}

func TestSessionStatusPayload_JSON(t *testing.T) {
	score := 71
	payload := SessionStatusPayload{
		Type:          EventTypeSessionStatus,
		StudyID:       "study-2",
		SessionID:     "sess-7",
		PersonaName:   "Margaret Chen",
		Status:        session.StatusComplete,
		TaskCompleted: true,
		TotalSteps:    12,
		UXScore:       &score,
		Timestamp:     "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SessionStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, session.StatusComplete, decoded.Status)
	assert.Equal(t, "Margaret Chen", decoded.PersonaName)
	assert.True(t, decoded.TaskCompleted)
	require.NotNil(t, decoded.UXScore)
	assert.Equal(t, 71, *decoded.UXScore)
}

func TestSessionStatusPayload_OmitsUnsetSummaryFields(t *testing.T) {
	// A "running" transition has no summary fields yet.
	payload := SessionStatusPayload{
		Type:      EventTypeSessionStatus,
		StudyID:   "study-2",
		SessionID: "sess-7",
		Status:    session.StatusRunning,
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "ux_score")
	assert.NotContains(t, string(data), "task_completed")
	assert.NotContains(t, string(data), "total_steps")
}

func TestStudyStatusPayload_JSON(t *testing.T) {
	score := 64
	duration := int64(312)
	payload := StudyStatusPayload{
		Type:             EventTypeStudyStatus,
		StudyID:          "study-3",
		Status:           study.StatusComplete,
		OverallScore:     &score,
		ExecutiveSummary: "Checkout flow confuses first-time visitors.",
		DurationSeconds:  &duration,
		TotalCostUSD:     1.84,
		Timestamp:        "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StudyStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, study.StatusComplete, decoded.Status)
	require.NotNil(t, decoded.OverallScore)
	assert.Equal(t, 64, *decoded.OverallScore)
	require.NotNil(t, decoded.DurationSeconds)
	assert.Equal(t, int64(312), *decoded.DurationSeconds)
	assert.Equal(t, 1.84, decoded.TotalCostUSD)
	assert.Empty(t, decoded.Error)
}

func TestStudyProgressPayload_JSON(t *testing.T) {
	payload := StudyProgressPayload{
		Type:             EventTypeStudyProgress,
		StudyID:          "study-4",
		Percent:          45,
		Phase:            "sessions",
		SessionsRunning:  2,
		SessionsComplete: 1,
		SessionsTotal:    5,
		Timestamp:        "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StudyProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 45, decoded.Percent)
	assert.Equal(t, "sessions", decoded.Phase)
	assert.Equal(t, 2, decoded.SessionsRunning)
	assert.Equal(t, 1, decoded.SessionsComplete)
	assert.Equal(t, 5, decoded.SessionsTotal)
}

func TestSnapshotPayload_JSON(t *testing.T) {
	payload := SnapshotPayload{
		Type:    EventTypeSnapshot,
		StudyID: "study-5",
		Study: SnapshotStudy{
			Status: study.StatusRunning,
			URL:    "https://example.com",
		},
		Sessions: []json.RawMessage{
			json.RawMessage(`{"session_id":"sess-1","current_step":3}`),
			json.RawMessage(`{"session_id":"sess-2","current_step":1}`),
		},
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SnapshotPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeSnapshot, decoded.Type)
	assert.Equal(t, study.StatusRunning, decoded.Study.Status)
	require.Len(t, decoded.Sessions, 2)
	assert.Contains(t, string(decoded.Sessions[0]), "sess-1")

	// Unset summary fields stay out of the frame.
	assert.NotContains(t, string(data), "overall_score")
	assert.NotContains(t, string(data), "cost")
}
