package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// EventPublisher publishes events for WebSocket delivery.
//
// There is no event log: durable state lives in the domain tables, so every
// publish is a NOTIFY. The one ordering guarantee that matters — a delivered
// session.step never describes an uncommitted step row — comes from
// PublishSessionStep taking the caller's transaction: pg_notify inside a
// transaction is held until COMMIT and discarded on ROLLBACK.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
type EventPublisher struct {
	db *sql.DB
}

// Execer is the transaction surface PublishSessionStep needs. Both *sql.Tx
// and the generated ent Tx satisfy it, so the step row and its notification
// can share one transaction regardless of which layer opened it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishSessionStep broadcasts a session.step event inside the caller's
// transaction — the one that inserts the step row. The notification fires
// at COMMIT and never for a rolled-back step.
func (p *EventPublisher) PublishSessionStep(ctx context.Context, tx Execer, payload SessionStepPayload) error {
	payload.Type = EventTypeSessionStep
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionStepPayload: %w", err)
	}
	return p.notifyTx(ctx, tx, StudyChannel(payload.StudyID), payloadJSON)
}

// PublishSessionStatus broadcasts a session.status event to the study channel.
func (p *EventPublisher) PublishSessionStatus(ctx context.Context, payload SessionStatusPayload) error {
	payload.Type = EventTypeSessionStatus
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionStatusPayload: %w", err)
	}
	return p.notifyOnly(ctx, StudyChannel(payload.StudyID), payloadJSON)
}

// PublishStudyProgress broadcasts a study.progress transient event.
// Progress ticks are self-repairing — a missed tick is superseded by the
// next one — so delivery is fire-and-forget.
func (p *EventPublisher) PublishStudyProgress(ctx context.Context, payload StudyProgressPayload) error {
	payload.Type = EventTypeStudyProgress
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StudyProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, StudyChannel(payload.StudyID), payloadJSON)
}

// PublishStudyStatus broadcasts a study.status event to the study channel
// and a copy to the global studies channel for the study list page.
// Both publishes are best-effort: if the study-channel one fails, the global
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishStudyStatus(ctx context.Context, payload StudyStatusPayload) error {
	payload.Type = EventTypeStudyStatus
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StudyStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.notifyOnly(ctx, StudyChannel(payload.StudyID), payloadJSON); err != nil {
		slog.Warn("Failed to publish study status to study channel",
			"study_id", payload.StudyID, "status", payload.Status, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalStudiesChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish study status to global channel",
			"study_id", payload.StudyID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// --- Internal core methods ---

// notifyTx broadcasts a pre-marshaled event via NOTIFY inside the caller's
// transaction. PostgreSQL holds the notification until COMMIT.
func (p *EventPublisher) notifyTx(ctx context.Context, tx Execer, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY on the shared pool.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to refetch state (a snapshot resubscribe or a REST read).
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		StudyID   string `json:"study_id"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"study_id":  routing.StudyID,
		"truncated": true,
	}
	if routing.SessionID != "" {
		truncated["session_id"] = routing.SessionID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
