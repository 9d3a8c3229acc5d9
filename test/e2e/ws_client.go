package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// WSEvent is one received JSON event.
type WSEvent struct {
	Type     string                 `json:"type"`
	Raw      json.RawMessage        // Original JSON
	Parsed   map[string]interface{} // Parsed for assertions
	Received time.Time              // When we received it
}

// WSFrame is one received binary screencast frame. Binary frames carry a
// 36-byte UUID session-id prefix followed by the JPEG payload.
type WSFrame struct {
	SessionID string
	JPEG      []byte
	Received  time.Time
}

// WSClient connects to the dashboard WebSocket endpoint and collects events
// and screencast frames in a background goroutine.
type WSClient struct {
	conn   *websocket.Conn
	events []WSEvent
	frames []WSFrame
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	doneCh chan struct{}
}

// WSConnect establishes a WebSocket connection and starts the reader.
func WSConnect(ctx context.Context, wsURL string) (*WSClient, error) {
	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{})
	if err != nil {
		return nil, fmt.Errorf("WebSocket dial: %w", err)
	}
	// Frames exceed the library's default read limit on real sessions.
	conn.SetReadLimit(1 << 20)

	clientCtx, cancel := context.WithCancel(ctx)
	c := &WSClient{
		conn:   conn,
		ctx:    clientCtx,
		cancel: cancel,
		doneCh: make(chan struct{}),
	}

	go c.readLoop()

	return c, nil
}

// Subscribe sends a subscribe action and waits for the server's confirmation,
// so callers know the channel snapshot is on its way before they act.
func (c *WSClient) Subscribe(channel string) error {
	msg := map[string]string{
		"action":  "subscribe",
		"channel": channel,
	}
	data, _ := json.Marshal(msg)
	if err := c.conn.Write(c.ctx, websocket.MessageText, data); err != nil {
		return err
	}
	_, err := c.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "subscription.confirmed" && e.Parsed["channel"] == channel
	}, 10*time.Second)
	return err
}

// WatchScreencast subscribes to a session's binary frames and waits for the
// confirmation.
func (c *WSClient) WatchScreencast(sessionID string) error {
	msg := map[string]string{
		"action":     "watch_screencast",
		"session_id": sessionID,
	}
	data, _ := json.Marshal(msg)
	if err := c.conn.Write(c.ctx, websocket.MessageText, data); err != nil {
		return err
	}
	_, err := c.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "screencast.confirmed" && e.Parsed["session_id"] == sessionID
	}, 10*time.Second)
	return err
}

// WaitForEvent waits until an event matching the predicate is received, or timeout.
func (c *WSClient) WaitForEvent(predicate func(WSEvent) bool, timeout time.Duration) (*WSEvent, error) {
	deadline := time.After(timeout)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-deadline:
			return nil, fmt.Errorf("timeout waiting for event (collected %d events)", len(c.Events()))
		case <-tick.C:
			c.mu.Lock()
			for i := range c.events {
				if predicate(c.events[i]) {
					evt := c.events[i]
					c.mu.Unlock()
					return &evt, nil
				}
			}
			c.mu.Unlock()
		}
	}
}

// WaitForEventType waits for an event with the given type.
func (c *WSClient) WaitForEventType(eventType string, timeout time.Duration) (*WSEvent, error) {
	return c.WaitForEvent(func(e WSEvent) bool {
		return e.Type == eventType
	}, timeout)
}

// WaitForStudyStatus waits for a study.status event carrying the status.
func (c *WSClient) WaitForStudyStatus(status string, timeout time.Duration) (*WSEvent, error) {
	return c.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "study.status" && e.Parsed["status"] == status
	}, timeout)
}

// WaitForSessionStatus waits for a session.status event carrying the status.
func (c *WSClient) WaitForSessionStatus(status string, timeout time.Duration) (*WSEvent, error) {
	return c.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "session.status" && e.Parsed["status"] == status
	}, timeout)
}

// WaitForFrame waits for a binary frame from the session.
func (c *WSClient) WaitForFrame(sessionID string, timeout time.Duration) (*WSFrame, error) {
	deadline := time.After(timeout)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-deadline:
			return nil, fmt.Errorf("timeout waiting for frame from session %s (collected %d frames)", sessionID, len(c.Frames()))
		case <-tick.C:
			c.mu.Lock()
			for i := range c.frames {
				if c.frames[i].SessionID == sessionID {
					fr := c.frames[i]
					c.mu.Unlock()
					return &fr, nil
				}
			}
			c.mu.Unlock()
		}
	}
}

// CollectUntil collects events until predicate returns true or timeout.
func (c *WSClient) CollectUntil(predicate func(events []WSEvent) bool, timeout time.Duration) ([]WSEvent, error) {
	deadline := time.After(timeout)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-deadline:
			return c.Events(), fmt.Errorf("timeout waiting for condition (collected %d events)", len(c.Events()))
		case <-tick.C:
			evts := c.Events()
			if predicate(evts) {
				return evts, nil
			}
		}
	}
}

// Events returns a snapshot of all collected events.
func (c *WSClient) Events() []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]WSEvent, len(c.events))
	copy(result, c.events)
	return result
}

// EventsByType returns events filtered by type.
func (c *WSClient) EventsByType(eventType string) []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var result []WSEvent
	for _, e := range c.events {
		if e.Type == eventType {
			result = append(result, e)
		}
	}
	return result
}

// Frames returns a snapshot of all collected binary frames.
func (c *WSClient) Frames() []WSFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]WSFrame, len(c.frames))
	copy(result, c.frames)
	return result
}

// Close closes the WebSocket connection and waits for the read loop to exit.
func (c *WSClient) Close() error {
	c.cancel()
	_ = c.conn.CloseNow()
	<-c.doneCh
	return nil
}

// readLoop reads messages and appends them to the event or frame log.
func (c *WSClient) readLoop() {
	defer close(c.doneCh)
	for {
		typ, data, err := c.conn.Read(c.ctx)
		if err != nil {
			return // Connection closed or context cancelled.
		}

		if typ == websocket.MessageBinary {
			if len(data) <= 36 {
				continue // Malformed frame.
			}
			fr := WSFrame{
				SessionID: string(data[:36]),
				JPEG:      append([]byte(nil), data[36:]...),
				Received:  time.Now(),
			}
			c.mu.Lock()
			c.frames = append(c.frames, fr)
			c.mu.Unlock()
			continue
		}

		var parsed map[string]interface{}
		if err := json.Unmarshal(data, &parsed); err != nil {
			continue // Skip malformed messages.
		}

		evt := WSEvent{
			Raw:      json.RawMessage(data),
			Parsed:   parsed,
			Received: time.Now(),
		}
		if t, ok := parsed["type"].(string); ok {
			evt.Type = t
		}

		c.mu.Lock()
		c.events = append(c.events, evt)
		c.mu.Unlock()
	}
}
