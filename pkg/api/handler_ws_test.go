package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/events"
)

func TestWSHandlerUnavailableWithoutManager(t *testing.T) {
	s := &Server{} // no connection manager wired
	r := s.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWSHandlerUpgradeAndSubscribe(t *testing.T) {
	manager := events.NewConnectionManager(nil, 5*time.Second)
	s := NewServer(nil, nil, nil, nil, nil, manager)

	server := httptest.NewServer(s.Router())
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + server.URL[len("http"):] + "/api/v1/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	established := readWSJSON(t, conn)
	assert.Equal(t, "connection.established", established["type"])
	assert.NotEmpty(t, established["connection_id"])

	// Subscribe to the global studies channel; no NOTIFY listener is wired in
	// this test, so the manager confirms without a PG round trip.
	writeWSJSON(t, conn, map[string]string{"action": "subscribe", "channel": "studies"})
	confirmed := readWSJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", confirmed["type"])
	assert.Equal(t, "studies", confirmed["channel"])

	assert.Equal(t, 1, manager.ActiveConnections())
}

func readWSJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeWSJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}
