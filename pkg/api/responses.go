package api

import (
	"github.com/wanderlens/wanderlens/pkg/browser"
	"github.com/wanderlens/wanderlens/pkg/database"
	"github.com/wanderlens/wanderlens/pkg/queue"
)

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`

	Database             *database.HealthStatus `json:"database,omitempty"`
	WorkerPool           *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Browser              *browser.Stats         `json:"browser,omitempty"`
	WebSocketConnections int                    `json:"websocket_connections"`
}

// HealthCheck is the status of a single component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
