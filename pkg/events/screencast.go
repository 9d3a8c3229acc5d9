package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// maxWatchedSessions caps concurrent screencast subscriptions per connection.
// Each watched session streams JPEG frames, so this bounds per-client bandwidth.
const maxWatchedSessions = 5

// frameHeaderLen is the length of the session-id prefix on every binary frame.
// Session IDs are UUID strings, which are always 36 ASCII bytes, so the frame
// needs no length field: bytes [0:36) are the session id, the rest is JPEG.
const frameHeaderLen = 36

// ScreencastHub fans out live browser frames to watching WebSocket clients.
//
// Frames never touch Postgres: a NOTIFY payload caps out around 8 KB and a
// JPEG frame is two orders of magnitude larger. The hub is purely in-process,
// which also means frames are only visible to clients connected to the pod
// running the session. The session.step events (which do go through NOTIFY)
// carry durable screenshot URLs, so dashboards on other pods still render
// step-by-step progress — they just don't get the live video.
type ScreencastHub struct {
	mu sync.RWMutex
	// watchers: session_id → connection_id → connection
	watchers map[string]map[string]*Connection
	// perConn: connection_id → watched session ids, for the cap and teardown
	perConn map[string]map[string]bool

	writeTimeout time.Duration
}

// NewScreencastHub creates an empty hub.
func NewScreencastHub(writeTimeout time.Duration) *ScreencastHub {
	return &ScreencastHub{
		watchers:     make(map[string]map[string]*Connection),
		perConn:      make(map[string]map[string]bool),
		writeTimeout: writeTimeout,
	}
}

// Watch subscribes a connection to a session's frames.
// Idempotent for an already-watched session.
func (h *ScreencastHub) Watch(c *Connection, sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return fmt.Errorf("invalid session id %q", sessionID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	watched := h.perConn[c.ID]
	if watched[sessionID] {
		return nil
	}
	if len(watched) >= maxWatchedSessions {
		return fmt.Errorf("screencast limit reached (%d sessions)", maxWatchedSessions)
	}

	if watched == nil {
		watched = make(map[string]bool)
		h.perConn[c.ID] = watched
	}
	watched[sessionID] = true

	conns := h.watchers[sessionID]
	if conns == nil {
		conns = make(map[string]*Connection)
		h.watchers[sessionID] = conns
	}
	conns[c.ID] = c
	return nil
}

// Unwatch unsubscribes a connection from a session's frames.
func (h *ScreencastHub) Unwatch(c *Connection, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(c.ID, sessionID)
}

// DropConnection removes every subscription held by a closed connection.
func (h *ScreencastHub) DropConnection(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sessionID := range h.perConn[c.ID] {
		h.drop(c.ID, sessionID)
	}
}

// drop removes one (connection, session) edge. Caller holds h.mu.
func (h *ScreencastHub) drop(connID, sessionID string) {
	if conns, ok := h.watchers[sessionID]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(h.watchers, sessionID)
		}
	}
	if watched, ok := h.perConn[connID]; ok {
		delete(watched, sessionID)
		if len(watched) == 0 {
			delete(h.perConn, connID)
		}
	}
}

// Watchers reports how many connections are watching a session. Browser
// drivers poll this to skip frame capture entirely when nobody is looking.
func (h *ScreencastHub) Watchers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers[sessionID])
}

// PublishFrame sends one JPEG frame to every watcher of a session. Frames are
// best-effort: a slow client gets its write timed out and the frame dropped,
// never buffered. Lost frames are fine — the next one supersedes them.
func (h *ScreencastHub) PublishFrame(sessionID string, jpeg []byte) {
	if len(sessionID) != frameHeaderLen {
		slog.Warn("Dropping screencast frame with malformed session id", "session_id", sessionID)
		return
	}

	h.mu.RLock()
	conns := make([]*Connection, 0, len(h.watchers[sessionID]))
	for _, c := range h.watchers[sessionID] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	if len(conns) == 0 {
		return
	}

	frame := make([]byte, frameHeaderLen+len(jpeg))
	copy(frame, sessionID)
	copy(frame[frameHeaderLen:], jpeg)

	for _, c := range conns {
		writeCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
		err := c.Conn.Write(writeCtx, websocket.MessageBinary, frame)
		cancel()
		if err != nil {
			slog.Debug("Dropped screencast frame",
				"connection_id", c.ID, "session_id", sessionID, "error", err)
		}
	}
}
