// Package api exposes the HTTP surface: the health endpoint and the WebSocket
// endpoint that delivers study progress. Study CRUD is intentionally absent;
// studies are created and enqueued through the queue package.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderlens/wanderlens/pkg/browser"
	"github.com/wanderlens/wanderlens/pkg/config"
	"github.com/wanderlens/wanderlens/pkg/database"
	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/queue"
)

// Server is the HTTP server. All collaborator fields except the database
// client may be nil; the handlers degrade to partial health reports and
// 503s instead of panicking, which keeps handler tests small.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	workerPool  *queue.WorkerPool
	browserPool *browser.Pool
	listener    *events.NotifyListener
	connManager *events.ConnectionManager

	httpServer *http.Server
}

// NewServer wires the API server to its collaborators.
func NewServer(cfg *config.Config, dbClient *database.Client, workerPool *queue.WorkerPool,
	browserPool *browser.Pool, listener *events.NotifyListener, connManager *events.ConnectionManager) *Server {
	return &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		workerPool:  workerPool,
		browserPool: browserPool,
		listener:    listener,
		connManager: connManager,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(securityHeaders())

	v1 := r.Group("/api/v1")
	v1.GET("/health", s.healthHandler)
	v1.GET("/ws", s.wsHandler)

	return r
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server. In-flight WebSocket connections
// are closed by their own context when the server's base context dies.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
