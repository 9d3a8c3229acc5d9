package livestate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/models"
	testdb "github.com/wanderlens/wanderlens/test/database"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestStore_UpsertAndSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.DB(), time.Minute)
	ctx := context.Background()

	err := store.Upsert(ctx, "study-1", models.SessionLiveState{
		SessionID:     "sess-1",
		PersonaName:   "Rae",
		StepNumber:    intPtr(1),
		LiveViewURL:   "https://live.example.com/abc",
		BrowserActive: boolPtr(true),
	})
	require.NoError(t, err)

	snap, err := store.Snapshot(ctx, "study-1")
	require.NoError(t, err)
	require.Len(t, snap, 1)

	var state models.SessionLiveState
	require.NoError(t, snap[0].DecodeInto(&state))
	assert.Equal(t, "sess-1", state.SessionID)
	assert.Equal(t, "Rae", state.PersonaName)
	require.NotNil(t, state.StepNumber)
	assert.Equal(t, 1, *state.StepNumber)
}

func TestStore_PartialUpdateMerges(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.DB(), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{
		SessionID:   "sess-1",
		PersonaName: "Rae",
		LiveViewURL: "https://live.example.com/abc",
		StepNumber:  intPtr(3),
	}))

	// A step update carries no persona name and no live view URL; both must
	// survive the merge.
	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{
		SessionID:      "sess-1",
		StepNumber:     intPtr(4),
		EmotionalState: "confused",
		ThinkAloud:     "where did the menu go",
	}))

	snap, err := store.Snapshot(ctx, "study-1")
	require.NoError(t, err)
	require.Len(t, snap, 1)

	var state models.SessionLiveState
	require.NoError(t, snap[0].DecodeInto(&state))
	assert.Equal(t, "Rae", state.PersonaName)
	assert.Equal(t, "https://live.example.com/abc", state.LiveViewURL)
	assert.Equal(t, "confused", state.EmotionalState)
	require.NotNil(t, state.StepNumber)
	assert.Equal(t, 4, *state.StepNumber)
}

func TestStore_SnapshotSkipsExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.DB(), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{SessionID: "sess-1"}))
	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{SessionID: "sess-2"}))

	// Expire one row directly.
	_, err := client.DB().ExecContext(ctx,
		`UPDATE live_states SET expires_at = now() - interval '1 second' WHERE session_id = 'sess-1'`)
	require.NoError(t, err)

	snap, err := store.Snapshot(ctx, "study-1")
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, "sess-2", snap[0].SessionID)
}

func TestStore_UpsertRefreshesTTL(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.DB(), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{SessionID: "sess-1"}))

	_, err := client.DB().ExecContext(ctx,
		`UPDATE live_states SET expires_at = now() - interval '1 second' WHERE session_id = 'sess-1'`)
	require.NoError(t, err)

	// The next write revives the row.
	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{
		SessionID:  "sess-1",
		StepNumber: intPtr(2),
	}))

	snap, err := store.Snapshot(ctx, "study-1")
	require.NoError(t, err)
	require.Len(t, snap, 1)
}

func TestStore_DiscardsNonObjectState(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.DB(), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{SessionID: "sess-ok"}))

	// jsonb accepts scalars and arrays; the snapshot must not serve them.
	_, err := client.DB().ExecContext(ctx,
		`INSERT INTO live_states (study_id, session_id, state, expires_at)
		 VALUES ('study-1', 'sess-bad', '123'::jsonb, now() + interval '1 minute')`)
	require.NoError(t, err)

	snap, err := store.Snapshot(ctx, "study-1")
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, "sess-ok", snap[0].SessionID)
}

func TestStore_ClearStudy(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.DB(), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{SessionID: "sess-1"}))
	require.NoError(t, store.Upsert(ctx, "study-2", models.SessionLiveState{SessionID: "sess-9"}))

	require.NoError(t, store.ClearStudy(ctx, "study-1"))

	snap, err := store.Snapshot(ctx, "study-1")
	require.NoError(t, err)
	assert.Empty(t, snap)

	other, err := store.Snapshot(ctx, "study-2")
	require.NoError(t, err)
	assert.Len(t, other, 1, "clearing one study must not touch another")
}

func TestStore_SweepExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.DB(), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{SessionID: "sess-1"}))
	require.NoError(t, store.Upsert(ctx, "study-1", models.SessionLiveState{SessionID: "sess-2"}))

	_, err := client.DB().ExecContext(ctx,
		`UPDATE live_states SET expires_at = now() - interval '1 second' WHERE session_id = 'sess-1'`)
	require.NoError(t, err)

	n, err := store.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	snap, err := store.Snapshot(ctx, "study-1")
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, "sess-2", snap[0].SessionID)
}

func TestStore_UpsertRequiresIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.DB(), time.Minute)

	err := store.Upsert(context.Background(), "", models.SessionLiveState{SessionID: "sess-1"})
	require.Error(t, err)

	err = store.Upsert(context.Background(), "study-1", models.SessionLiveState{})
	require.Error(t, err)
}
