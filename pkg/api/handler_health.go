package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderlens/wanderlens/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /api/v1/health.
//
// Only this process's own components are checked: database, worker pool,
// NOTIFY listener, browser pool. The LLM gateway and the cloud browser
// provider are deliberately excluded so an external outage cannot make an
// orchestrator restart-loop this pod. Cloud failover is reported as a message
// on an otherwise healthy browser check for the same reason: a replica in
// failover still serves studies through the local backend.
//
// healthy maps to 200; degraded and unhealthy map to 503 so load balancers
// stop routing to a replica that cannot do its job.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Checks:  make(map[string]HealthCheck),
	}
	degrade := func(to string) {
		if resp.Status == healthStatusHealthy || to == healthStatusUnhealthy {
			resp.Status = to
		}
	}

	dbHealth, err := s.dbClient.Health(reqCtx)
	resp.Database = dbHealth
	if err != nil {
		degrade(healthStatusUnhealthy)
		resp.Checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		resp.Checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		resp.WorkerPool = poolHealth
		if !poolHealth.IsHealthy {
			degrade(healthStatusDegraded)
			msg := "no active workers"
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			resp.Checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			resp.Checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.listener != nil {
		if !s.listener.Running() {
			degrade(healthStatusDegraded)
			resp.Checks["event_listener"] = HealthCheck{
				Status:  healthStatusDegraded,
				Message: "NOTIFY listener is not running; live updates unavailable from this replica",
			}
		} else {
			resp.Checks["event_listener"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.browserPool != nil {
		stats := s.browserPool.Stats()
		resp.Browser = &stats
		check := HealthCheck{Status: healthStatusHealthy}
		if stats.FailoverActive {
			check.Message = "cloud failover active; sessions run on the local backend"
		}
		resp.Checks["browser_pool"] = check
	}

	if s.connManager != nil {
		resp.WebSocketConnections = s.connManager.ActiveConnections()
	}

	httpStatus := http.StatusOK
	if resp.Status != healthStatusHealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
}
