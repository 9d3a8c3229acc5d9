// Package events provides real-time dashboard delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Delivery model
// ════════════════════════════════════════════════════════════════
//
// Study dashboards are state-shaped, not log-shaped: a client that
// reconnects does not care about the deltas it missed, only about the
// current state of every session. Delivery therefore has two parts:
//
//  1. SNAPSHOT — on subscribe to a study channel the server sends one
//     "snapshot" frame built from the study row and the live_states
//     table. This replaces log catchup: there is no events table.
//
//  2. DELTAS — subsequent changes arrive as individual events over
//     NOTIFY. Step events are published inside the same transaction
//     that inserts the step row, so a delivered step event always
//     describes a committed row. Progress ticks and status changes are
//     transient notifies; a missed one is repaired by the next tick or
//     by resubscribing.
//
// Screencast frames never touch PostgreSQL. They are binary WebSocket
// messages fanned out in-process by the hub in screencast.go; a client
// watching a session must be connected to the replica running it.
// ════════════════════════════════════════════════════════════════
package events

// Event types carried in the "type" field of every JSON frame.
const (
	// Snapshot frame sent once per study-channel subscribe.
	EventTypeSnapshot = "snapshot"

	// Study lifecycle — one event type for all status transitions
	// (running, analyzing, complete, failed). Terminal payloads carry
	// the summary fields.
	EventTypeStudyStatus = "study.status"

	// Coarse progress ticks for the study progress bar.
	EventTypeStudyProgress = "study.progress"

	// One persona step: committed alongside the step row.
	EventTypeSessionStep = "session.step"

	// Session lifecycle — pending, running, complete, failed, gave_up.
	EventTypeSessionStatus = "session.status"
)

// Study lifecycle status values (used in StudyStatusPayload.Status).
const (
	StudyStatusRunning   = "running"
	StudyStatusAnalyzing = "analyzing"
	StudyStatusComplete  = "complete"
	StudyStatusFailed    = "failed"
)

// GlobalStudiesChannel carries study.status events for every study.
// The study list page subscribes to this for real-time updates.
const GlobalStudiesChannel = "studies"

// studyChannelPrefix prefixes every per-study channel name.
const studyChannelPrefix = "study:"

// StudyChannel returns the channel name for a specific study's events.
// Format: "study:{study_id}"
func StudyChannel(studyID string) string {
	return studyChannelPrefix + studyID
}

// StudyIDFromChannel extracts the study id from a per-study channel name.
// Returns "" for channels that are not study channels.
func StudyIDFromChannel(channel string) string {
	if len(channel) > len(studyChannelPrefix) && channel[:len(studyChannelPrefix)] == studyChannelPrefix {
		return channel[len(studyChannelPrefix):]
	}
	return ""
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action    string `json:"action"`               // "subscribe", "unsubscribe", "watch_screencast", "unwatch_screencast", "ping"
	Channel   string `json:"channel,omitempty"`    // Channel name (e.g., "study:abc-123")
	SessionID string `json:"session_id,omitempty"` // For screencast actions
}
