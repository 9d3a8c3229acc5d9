package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudyChannelFormat(t *testing.T) {
	tests := []struct {
		name    string
		studyID string
		want    string
	}{
		{
			name:    "formats study channel correctly",
			studyID: "abc-123",
			want:    "study:abc-123",
		},
		{
			name:    "handles UUID format",
			studyID: "550e8400-e29b-41d4-a716-446655440000",
			want:    "study:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:    "handles empty string",
			studyID: "",
			want:    "study:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StudyChannel(tt.studyID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStudyIDFromChannel(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		want    string
	}{
		{
			name:    "extracts study id",
			channel: "study:abc-123",
			want:    "abc-123",
		},
		{
			name:    "global channel is not a study channel",
			channel: GlobalStudiesChannel,
			want:    "",
		},
		{
			name:    "bare prefix has no id",
			channel: "study:",
			want:    "",
		},
		{
			name:    "empty channel",
			channel: "",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StudyIDFromChannel(tt.channel)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeSnapshot,
		EventTypeStudyStatus,
		EventTypeStudyProgress,
		EventTypeSessionStep,
		EventTypeSessionStatus,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestGlobalStudiesChannel(t *testing.T) {
	assert.Equal(t, "studies", GlobalStudiesChannel)
}
