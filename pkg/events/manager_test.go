package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSnapshotSource implements SnapshotSource for tests.
type mockSnapshotSource struct {
	mu     sync.Mutex
	frames map[string]json.RawMessage
	err    error
	builds []string // study ids in build order
}

func (m *mockSnapshotSource) BuildSnapshot(_ context.Context, studyID string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.builds = append(m.builds, studyID)
	if m.err != nil {
		return nil, m.err
	}
	if frame, ok := m.frames[studyID]; ok {
		return frame, nil
	}
	return json.RawMessage(fmt.Sprintf(`{"type":"snapshot","study_id":%q}`, studyID)), nil
}

func (m *mockSnapshotSource) buildCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.builds)
}

func setupTestManager(t *testing.T, snapshots SnapshotSource) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(snapshots, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockSnapshotSource{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeStudyChannelSendsSnapshot(t *testing.T) {
	source := &mockSnapshotSource{frames: map[string]json.RawMessage{
		"study-42": json.RawMessage(`{"type":"snapshot","study_id":"study-42","study":{"status":"running"}}`),
	}}
	manager, server := setupTestManager(t, source)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: StudyChannel("study-42")})

	// Confirmation first, then the snapshot frame.
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "study:study-42", msg["channel"])

	snap := readJSON(t, conn)
	assert.Equal(t, "snapshot", snap["type"])
	assert.Equal(t, "study-42", snap["study_id"])

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, source.buildCount())
}

func TestConnectionManager_SubscribeGlobalChannelNoSnapshot(t *testing.T) {
	source := &mockSnapshotSource{}
	_, server := setupTestManager(t, source)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalStudiesChannel})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, GlobalStudiesChannel, msg["channel"])

	// Global channel has no snapshot — nothing else arrives.
	readCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "global channel subscribe should not trigger a snapshot")
	assert.Equal(t, 0, source.buildCount())
}

func TestConnectionManager_SnapshotErrorKeepsConnectionAlive(t *testing.T) {
	source := &mockSnapshotSource{err: fmt.Errorf("database unreachable")}
	_, server := setupTestManager(t, source)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: StudyChannel("study-err")})
	readJSON(t, conn) // subscription.confirmed

	msg := readJSON(t, conn)
	assert.Equal(t, "snapshot.error", msg["type"])
	assert.Equal(t, "study-err", msg["study_id"])

	// Connection should still be alive — ping/pong works.
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockSnapshotSource{})

	// Connect two clients and subscribe both to the same channel
	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	channel := StudyChannel("broadcast-test")
	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})

	// confirmed + snapshot for each
	readJSON(t, conn1)
	readJSON(t, conn1)
	readJSON(t, conn2)
	readJSON(t, conn2)

	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test", "data": "hello"})
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)

	assert.Equal(t, "test", msg1["type"])
	assert.Equal(t, "hello", msg1["data"])
	assert.Equal(t, "test", msg2["type"])
	assert.Equal(t, "hello", msg2["data"])
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	// Client subscribed to one study should NOT receive another study's events
	manager, server := setupTestManager(t, &mockSnapshotSource{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: StudyChannel("study-a")})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn1) // snapshot

	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: StudyChannel("study-b")})
	readJSON(t, conn2) // subscription.confirmed
	readJSON(t, conn2) // snapshot

	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test", "target": "study-a"})
	manager.Broadcast(StudyChannel("study-a"), payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "study-a", msg["target"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive study-a broadcast")
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t, &mockSnapshotSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockSnapshotSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := StudyChannel("unsub-test")

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed
	readJSON(t, conn) // snapshot

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive events after unsubscribe")
}

func TestConnectionManager_RefreshSnapshots(t *testing.T) {
	source := &mockSnapshotSource{}
	manager, server := setupTestManager(t, source)

	studyConn := connectWS(t, server)
	globalConn := connectWS(t, server)
	readJSON(t, studyConn) // connection.established
	readJSON(t, globalConn)

	writeClientMessage(t, studyConn, ClientMessage{Action: "subscribe", Channel: StudyChannel("study-7")})
	readJSON(t, studyConn) // subscription.confirmed
	readJSON(t, studyConn) // snapshot

	writeClientMessage(t, globalConn, ClientMessage{Action: "subscribe", Channel: GlobalStudiesChannel})
	readJSON(t, globalConn) // subscription.confirmed

	time.Sleep(100 * time.Millisecond)

	// Simulates the post-reconnect path: study subscribers get fresh state.
	manager.RefreshSnapshots(context.Background())

	snap := readJSON(t, studyConn)
	assert.Equal(t, "snapshot", snap["type"])
	assert.Equal(t, "study-7", snap["study_id"])

	readCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := globalConn.Read(readCtx)
	assert.Error(t, err, "global subscriber should not receive refreshed snapshots")
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockSnapshotSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := StudyChannel("concurrent-test")
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed
	readJSON(t, conn) // snapshot

	time.Sleep(100 * time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": "concurrent", "idx": idx})
			manager.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t, &mockSnapshotSource{})

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	manager.Broadcast("nonexistent-channel", payload)
}

func TestConnectionManager_EmptyFieldValidation(t *testing.T) {
	_, server := setupTestManager(t, &mockSnapshotSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: ""})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	writeClientMessage(t, conn, ClientMessage{Action: "watch_screencast"})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "session_id is required")

	writeClientMessage(t, conn, ClientMessage{Action: "unwatch_screencast"})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "session_id is required")

	// Connection should still be alive after validation errors
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_WatchScreencast(t *testing.T) {
	manager, server := setupTestManager(t, &mockSnapshotSource{})

	watcher := connectWS(t, server)
	bystander := connectWS(t, server)
	readJSON(t, watcher) // connection.established
	readJSON(t, bystander)

	sessionID := uuid.New().String()

	writeClientMessage(t, watcher, ClientMessage{Action: "watch_screencast", SessionID: sessionID})
	msg := readJSON(t, watcher)
	assert.Equal(t, "screencast.confirmed", msg["type"])
	assert.Equal(t, sessionID, msg["session_id"])
	assert.Equal(t, 1, manager.Screencast().Watchers(sessionID))

	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	manager.Screencast().PublishFrame(sessionID, jpeg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msgType, frame, err := watcher.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageBinary, msgType)
	require.Len(t, frame, frameHeaderLen+len(jpeg))
	assert.Equal(t, sessionID, string(frame[:frameHeaderLen]))
	assert.Equal(t, jpeg, frame[frameHeaderLen:])

	// Non-watching connection receives nothing.
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err = bystander.Read(readCtx)
	assert.Error(t, err, "bystander should not receive screencast frames")
}

func TestConnectionManager_UnwatchScreencast(t *testing.T) {
	manager, server := setupTestManager(t, &mockSnapshotSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sessionID := uuid.New().String()

	writeClientMessage(t, conn, ClientMessage{Action: "watch_screencast", SessionID: sessionID})
	readJSON(t, conn) // screencast.confirmed

	writeClientMessage(t, conn, ClientMessage{Action: "unwatch_screencast", SessionID: sessionID})
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, manager.Screencast().Watchers(sessionID))

	manager.Screencast().PublishFrame(sessionID, []byte{0xFF, 0xD8})

	readCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive frames after unwatch")
}

func TestConnectionManager_ScreencastLimit(t *testing.T) {
	_, server := setupTestManager(t, &mockSnapshotSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	for i := 0; i < maxWatchedSessions; i++ {
		writeClientMessage(t, conn, ClientMessage{Action: "watch_screencast", SessionID: uuid.New().String()})
		msg := readJSON(t, conn)
		assert.Equal(t, "screencast.confirmed", msg["type"])
	}

	writeClientMessage(t, conn, ClientMessage{Action: "watch_screencast", SessionID: uuid.New().String()})
	msg := readJSON(t, conn)
	assert.Equal(t, "screencast.error", msg["type"])
	assert.Contains(t, msg["message"], "limit")
}

func TestConnectionManager_ScreencastInvalidSessionID(t *testing.T) {
	_, server := setupTestManager(t, &mockSnapshotSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "watch_screencast", SessionID: "not-a-uuid"})
	msg := readJSON(t, conn)
	assert.Equal(t, "screencast.error", msg["type"])
	assert.Contains(t, msg["message"], "invalid session id")
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockSnapshotSource{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t, &mockSnapshotSource{})

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	// Read connection.established
	_, _, err = conn.Read(ctx)
	require.NoError(t, err)

	sessionID := uuid.New().String()

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: StudyChannel("cleanup-test")})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)
	_, _, err = conn.Read(ctx) // snapshot
	require.NoError(t, err)

	watchMsg, _ := json.Marshal(ClientMessage{Action: "watch_screencast", SessionID: sessionID})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, watchMsg))
	_, _, err = conn.Read(ctx) // screencast.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.Screencast().Watchers(sessionID))

	conn.Close(websocket.StatusNormalClosure, "")
	time.Sleep(200 * time.Millisecond)

	// Connection, its subscriptions and its screencast watches are gone.
	assert.Equal(t, 0, manager.ActiveConnections())
	assert.Equal(t, 0, manager.subscriberCount(StudyChannel("cleanup-test")))
	assert.Equal(t, 0, manager.Screencast().Watchers(sessionID))

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast(StudyChannel("cleanup-test"), payload)
	})
}
