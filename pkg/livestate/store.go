// Package livestate maintains the ephemeral per-session dashboard state of
// running studies. State lives in the live_states table, keyed by
// (study_id, session_id), merged shallowly on every write, and expired by
// TTL so a crashed worker's sessions disappear from dashboards instead of
// freezing on their last frame.
package livestate

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/wanderlens/wanderlens/pkg/models"
)

// Store reads and writes live session state through the shared pool.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

func NewStore(db *sql.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Upsert merges update into the stored state for (studyID, update.SessionID)
// and refreshes the row's TTL. The merge happens in SQL: jsonb concatenation
// overwrites exactly the keys present in the update, which is the same
// shallow merge models.SessionLiveState.Merge performs — omitted fields are
// absent from the marshalled update and survive.
func (s *Store) Upsert(ctx context.Context, studyID string, update models.SessionLiveState) error {
	if studyID == "" || update.SessionID == "" {
		return fmt.Errorf("livestate upsert requires study and session ids")
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal live state update: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO live_states (study_id, session_id, state, expires_at)
		 VALUES ($1, $2, $3::jsonb, now() + $4 * interval '1 second')
		 ON CONFLICT (study_id, session_id) DO UPDATE
		 SET state      = live_states.state || EXCLUDED.state,
		     expires_at = EXCLUDED.expires_at,
		     updated_at = now()`,
		studyID, update.SessionID, payload, int(s.ttl.Seconds()))
	if err != nil {
		return fmt.Errorf("failed to upsert live state: %w", err)
	}
	return nil
}

// RawState is one row of a study's live-state snapshot. The state document
// stays as raw JSON so the events manager can frame it without a decode
// round trip; DecodeInto is for callers that want the typed form.
type RawState struct {
	SessionID string
	State     json.RawMessage
	UpdatedAt time.Time
}

// DecodeInto unmarshals the state document into out.
func (r RawState) DecodeInto(out interface{}) error {
	return json.Unmarshal(r.State, out)
}

// Snapshot returns the unexpired live state of every session in the study,
// ordered by session id. Rows whose state is not a JSON object cannot be
// merged or framed and are discarded with a warning.
func (s *Store) Snapshot(ctx context.Context, studyID string) ([]RawState, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, state, updated_at
		 FROM live_states
		 WHERE study_id = $1 AND expires_at > now()
		 ORDER BY session_id`,
		studyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query live states: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RawState
	for rows.Next() {
		var r RawState
		if err := rows.Scan(&r.SessionID, &r.State, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan live state row: %w", err)
		}
		if !isJSONObject(r.State) {
			slog.Warn("Discarding corrupt live state row",
				"study_id", studyID,
				"session_id", r.SessionID)
			continue
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate live states: %w", err)
	}
	return out, nil
}

// ClearStudy removes every live-state row for a study. Called when a study
// run starts, so a retried study cannot surface stale rows. Terminal studies
// keep their last state until the TTL ages it out.
func (s *Store) ClearStudy(ctx context.Context, studyID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM live_states WHERE study_id = $1`, studyID)
	if err != nil {
		return fmt.Errorf("failed to clear live states for study %s: %w", studyID, err)
	}
	return nil
}

// SweepExpired deletes rows whose TTL has lapsed and reports how many went.
// Runs periodically from the worker pool; Snapshot already filters expired
// rows, so the sweep is about table size, not correctness.
func (s *Store) SweepExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM live_states WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired live states: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count swept live states: %w", err)
	}
	return n, nil
}

// isJSONObject reports whether b holds a JSON object. jsonb already
// guarantees syntactic validity; the shape check catches rows written as
// scalars or arrays.
func isJSONObject(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return json.Valid(b)
		default:
			return false
		}
	}
	return false
}
