package events

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreencastHub_WatchBookkeeping(t *testing.T) {
	hub := NewScreencastHub(0)
	conn := &Connection{ID: "conn-1"}
	sessionID := uuid.New().String()

	require.NoError(t, hub.Watch(conn, sessionID))
	assert.Equal(t, 1, hub.Watchers(sessionID))

	// Watching the same session again is idempotent.
	require.NoError(t, hub.Watch(conn, sessionID))
	assert.Equal(t, 1, hub.Watchers(sessionID))

	hub.Unwatch(conn, sessionID)
	assert.Equal(t, 0, hub.Watchers(sessionID))

	// Unwatch of an unknown session is a no-op.
	hub.Unwatch(conn, uuid.New().String())
}

func TestScreencastHub_WatchLimit(t *testing.T) {
	hub := NewScreencastHub(0)
	conn := &Connection{ID: "conn-1"}

	for i := 0; i < maxWatchedSessions; i++ {
		require.NoError(t, hub.Watch(conn, uuid.New().String()))
	}

	err := hub.Watch(conn, uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("%d sessions", maxWatchedSessions))

	// Other connections are not affected by this connection's limit.
	other := &Connection{ID: "conn-2"}
	assert.NoError(t, hub.Watch(other, uuid.New().String()))
}

func TestScreencastHub_RejectsInvalidSessionID(t *testing.T) {
	hub := NewScreencastHub(0)
	conn := &Connection{ID: "conn-1"}

	err := hub.Watch(conn, "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session id")
}

func TestScreencastHub_DropConnection(t *testing.T) {
	hub := NewScreencastHub(0)
	conn := &Connection{ID: "conn-1"}
	other := &Connection{ID: "conn-2"}

	sessA := uuid.New().String()
	sessB := uuid.New().String()

	require.NoError(t, hub.Watch(conn, sessA))
	require.NoError(t, hub.Watch(conn, sessB))
	require.NoError(t, hub.Watch(other, sessA))

	hub.DropConnection(conn)

	assert.Equal(t, 1, hub.Watchers(sessA), "other connection's watch survives")
	assert.Equal(t, 0, hub.Watchers(sessB))

	// After the drop, the connection can watch again from a clean slate.
	require.NoError(t, hub.Watch(conn, sessB))
	assert.Equal(t, 1, hub.Watchers(sessB))
}

func TestScreencastHub_PublishFrameEdgeCases(t *testing.T) {
	hub := NewScreencastHub(0)

	// No watchers — frame is dropped without building anything.
	hub.PublishFrame(uuid.New().String(), []byte{0xFF, 0xD8})

	// Malformed session id — dropped, no panic.
	hub.PublishFrame("short-id", []byte{0xFF, 0xD8})
}
