package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/livestate"
	"github.com/wanderlens/wanderlens/pkg/models"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// SnapshotService builds the state frame served when a dashboard subscribes
// to a study channel. It implements events.SnapshotSource.
type SnapshotService struct {
	client *ent.Client
	states *livestate.Store
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(client *ent.Client, states *livestate.Store) *SnapshotService {
	return &SnapshotService{client: client, states: states}
}

// BuildSnapshot assembles the snapshot frame for one study: the study row
// plus the current live state of every unexpired session.
func (s *SnapshotService) BuildSnapshot(ctx context.Context, studyID string) (json.RawMessage, error) {
	st, err := s.client.Study.Get(ctx, studyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("study %s: %w", studyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get study: %w", err)
	}

	states, err := s.states.Snapshot(ctx, studyID)
	if err != nil {
		return nil, fmt.Errorf("failed to read live states: %w", err)
	}

	sessions := make([]json.RawMessage, 0, len(states))
	for _, state := range states {
		sessions = append(sessions, state.State)
	}

	payload := events.SnapshotPayload{
		Type:    events.EventTypeSnapshot,
		StudyID: studyID,
		Study: events.SnapshotStudy{
			Status: st.Status,
			URL:    st.URL,
			Cost:   costFromMap(st.CostBreakdown),
		},
		Sessions:  sessions,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if st.OverallScore != nil {
		payload.Study.OverallScore = st.OverallScore
	}
	if st.ExecutiveSummary != nil {
		payload.Study.ExecutiveSummary = *st.ExecutiveSummary
	}

	frame, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return frame, nil
}

// costFromMap converts the study's cost_breakdown JSON column into the typed
// breakdown, or nil when no costs have been recorded yet.
func costFromMap(raw map[string]interface{}) *models.CostBreakdown {
	if len(raw) == 0 {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var cb models.CostBreakdown
	if err := json.Unmarshal(data, &cb); err != nil {
		return nil
	}
	return &cb
}
