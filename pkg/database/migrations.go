package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateLiveStateTable creates the live_states table and its indexes.
// The table is owned by pkg/livestate and managed with raw SQL (composite
// primary key and jsonb merge semantics that the Ent schema does not
// express). Production picks it up from the embedded migration; tests that
// build the schema via Ent call this directly.
func CreateLiveStateTable(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS live_states (
			study_id   VARCHAR NOT NULL,
			session_id VARCHAR NOT NULL,
			state      JSONB   NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (study_id, session_id)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create live_states table: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS live_states_expires_at
		ON live_states (expires_at)`)
	if err != nil {
		return fmt.Errorf("failed to create live_states expiry index: %w", err)
	}

	return nil
}
