package events_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/pkg/database"
	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/livestate"
	"github.com/wanderlens/wanderlens/pkg/models"
	"github.com/wanderlens/wanderlens/pkg/services"
	testdb "github.com/wanderlens/wanderlens/test/database"
	"github.com/wanderlens/wanderlens/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient  *database.Client
	publisher *events.EventPublisher
	states    *livestate.Store
	manager   *events.ConnectionManager
	listener  *events.NotifyListener
	server    *httptest.Server
	studyID   string
	channel   string // study:<studyID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create the study the snapshot source reads from.
	studyID := uuid.New().String()
	_, err := dbClient.Study.Create().
		SetID(studyID).
		SetURL("https://shop.example.com").
		SetStatus(study.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	channel := events.StudyChannel(studyID)

	// Real components
	publisher := events.NewEventPublisher(dbClient.DB())
	states := livestate.NewStore(dbClient.DB(), time.Minute)
	snapshots := services.NewSnapshotService(dbClient.Client, states)
	manager := events.NewConnectionManager(snapshots, 5*time.Second)

	// events.NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := events.NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
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

	return &streamingTestEnv{
		dbClient:  dbClient,
		publisher: publisher,
		states:    states,
		manager:   manager,
		listener:  listener,
		server:    server,
		studyID:   studyID,
		channel:   channel,
	}
}

func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeStudy connects a WebSocket, subscribes to the env's study channel,
// and consumes the handshake frames (established, confirmed, snapshot).
// Returns the connection and the snapshot frame. LISTEN is synchronous in
// subscribe, but we still poll the listener so a future change to async
// LISTEN fails loudly here instead of as a flaky lost event.
func (env *streamingTestEnv) subscribeStudy(t *testing.T) (*websocket.Conn, map[string]interface{}) {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(events.ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	snapshot := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, events.EventTypeSnapshot, snapshot["type"])

	require.Eventually(t, func() bool {
		return env.listener.IsListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn, snapshot
}

// subscribeGlobal connects a WebSocket and subscribes to the global studies
// channel (which has no snapshot frame).
func (env *streamingTestEnv) subscribeGlobal(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(events.ClientMessage{Action: "subscribe", Channel: events.GlobalStudiesChannel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.IsListening(events.GlobalStudiesChannel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for global channel")

	return conn
}

func (env *streamingTestEnv) stepPayload(sessionID string, stepNumber int) events.SessionStepPayload {
	return events.SessionStepPayload{
		StudyID:    env.studyID,
		SessionID:  sessionID,
		StepID:     uuid.New().String(),
		StepNumber: stepNumber,
		URL:        "https://shop.example.com/checkout",
		Action: map[string]interface{}{
			"type":     "click",
			"selector": "#place-order",
		},
		ThinkAloud:     "Where is the order button?",
		EmotionalState: "confused",
		Confidence:     0.4,
		TaskProgress:   60,
		Timestamp:      time.Now().Format(time.RFC3339Nano),
	}
}

// --- Tests ---

func TestIntegration_StepEventHeldUntilCommit(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn, _ := env.subscribeStudy(t)

	sessionID := uuid.New().String()

	tx, err := env.dbClient.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, env.publisher.PublishSessionStep(ctx, tx, env.stepPayload(sessionID, 1)))

	// PostgreSQL holds the notification until COMMIT — nothing arrives yet.
	readCtx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	_, _, err = conn.Read(readCtx)
	cancel()
	assert.Error(t, err, "step event must not be visible before commit")

	require.NoError(t, tx.Commit())

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, events.EventTypeSessionStep, msg["type"])
	assert.Equal(t, env.studyID, msg["study_id"])
	assert.Equal(t, sessionID, msg["session_id"])
	assert.Equal(t, float64(1), msg["step_number"])
	assert.Equal(t, "confused", msg["emotional_state"])
	action, ok := msg["action"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "click", action["type"])
}

func TestIntegration_StepEventDroppedOnRollback(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn, _ := env.subscribeStudy(t)

	tx, err := env.dbClient.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, env.publisher.PublishSessionStep(ctx, tx, env.stepPayload(uuid.New().String(), 1)))
	require.NoError(t, tx.Rollback())

	// Rolled back — the notification never fires, no ghost step events.
	readCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "rolled-back step event must never be delivered")
}

func TestIntegration_SessionStatusDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn, _ := env.subscribeStudy(t)

	sessionID := uuid.New().String()
	err := env.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
		StudyID:     env.studyID,
		SessionID:   sessionID,
		PersonaName: "Raj Patel",
		Status:      session.StatusRunning,
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, events.EventTypeSessionStatus, msg["type"])
	assert.Equal(t, sessionID, msg["session_id"])
	assert.Equal(t, "running", msg["status"])
	assert.Equal(t, "Raj Patel", msg["persona_name"])
}

func TestIntegration_StudyStatusFansOutToGlobalChannel(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	studyConn, _ := env.subscribeStudy(t)
	globalConn := env.subscribeGlobal(t)

	err := env.publisher.PublishStudyStatus(ctx, events.StudyStatusPayload{
		StudyID:   env.studyID,
		Status:    study.StatusAnalyzing,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Both the per-study dashboard and the study list receive it.
	msg := readJSONTimeout(t, studyConn, 5*time.Second)
	assert.Equal(t, events.EventTypeStudyStatus, msg["type"])
	assert.Equal(t, "analyzing", msg["status"])

	msg = readJSONTimeout(t, globalConn, 5*time.Second)
	assert.Equal(t, events.EventTypeStudyStatus, msg["type"])
	assert.Equal(t, env.studyID, msg["study_id"])
}

func TestIntegration_StudyProgressDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn, _ := env.subscribeStudy(t)

	err := env.publisher.PublishStudyProgress(ctx, events.StudyProgressPayload{
		StudyID:          env.studyID,
		Percent:          37,
		Phase:            "sessions",
		SessionsRunning:  3,
		SessionsComplete: 1,
		SessionsTotal:    5,
		Timestamp:        time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, events.EventTypeStudyProgress, msg["type"])
	assert.Equal(t, float64(37), msg["percent"])
	assert.Equal(t, "sessions", msg["phase"])
}

func TestIntegration_SnapshotReflectsLiveState(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Two sessions have reported live state before the client connects.
	sessA := uuid.New().String()
	sessB := uuid.New().String()
	stepA := 3
	require.NoError(t, env.states.Upsert(ctx, env.studyID, models.SessionLiveState{
		SessionID:      sessA,
		PersonaName:    "Margaret Chen",
		StepNumber:     &stepA,
		EmotionalState: "curious",
	}))
	require.NoError(t, env.states.Upsert(ctx, env.studyID, models.SessionLiveState{
		SessionID:   sessB,
		PersonaName: "Raj Patel",
	}))

	_, snapshot := env.subscribeStudy(t)

	assert.Equal(t, env.studyID, snapshot["study_id"])

	studySection, ok := snapshot["study"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "running", studySection["status"])
	assert.Equal(t, "https://shop.example.com", studySection["url"])

	sessions, ok := snapshot["sessions"].([]interface{})
	require.True(t, ok)
	require.Len(t, sessions, 2)

	var names []string
	for _, raw := range sessions {
		doc, ok := raw.(map[string]interface{})
		require.True(t, ok)
		names = append(names, doc["persona_name"].(string))
	}
	assert.ElementsMatch(t, []string{"Margaret Chen", "Raj Patel"}, names)
}

func TestIntegration_OversizedStepEventTruncated(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn, _ := env.subscribeStudy(t)

	sessionID := uuid.New().String()
	payload := env.stepPayload(sessionID, 2)
	payload.ThinkAloud = strings.Repeat("I keep scrolling and scrolling. ", 300)

	tx, err := env.dbClient.DB().BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, env.publisher.PublishSessionStep(ctx, tx, payload))
	require.NoError(t, tx.Commit())

	// Oversized payloads arrive as a routing envelope; the client refetches
	// state (snapshot resubscribe or REST) instead of reading the event body.
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, events.EventTypeSessionStep, msg["type"])
	assert.Equal(t, env.studyID, msg["study_id"])
	assert.Equal(t, sessionID, msg["session_id"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotContains(t, msg, "think_aloud")
}
