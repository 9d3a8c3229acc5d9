package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/events"
	testdb "github.com/wanderlens/wanderlens/test/database"
)

func TestHealthHandlerHealthy(t *testing.T) {
	dbClient := testdb.NewTestClient(t)

	s := NewServer(nil, dbClient, nil, nil, nil, nil)
	r := s.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
	require.NotNil(t, resp.Database)
	assert.Equal(t, "healthy", resp.Database.Status)

	// Optional collaborators were not wired, so their checks are absent
	assert.NotContains(t, resp.Checks, "worker_pool")
	assert.NotContains(t, resp.Checks, "event_listener")
	assert.NotContains(t, resp.Checks, "browser_pool")
}

func TestHealthHandlerDegradedListener(t *testing.T) {
	dbClient := testdb.NewTestClient(t)

	// A listener that was never started reports not-running.
	listener := events.NewNotifyListener("postgres://unused", nil)
	s := NewServer(nil, dbClient, nil, nil, listener, nil)
	r := s.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusDegraded, resp.Status)
	assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
	assert.Equal(t, healthStatusDegraded, resp.Checks["event_listener"].Status)
	assert.Contains(t, resp.Checks["event_listener"].Message, "not running")
}
