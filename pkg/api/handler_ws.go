package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /api/v1/ws: upgrades to WebSocket and hands the
// connection to the ConnectionManager, which owns it until close.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	opts := &websocket.AcceptOptions{}
	if s.cfg != nil && len(s.cfg.API.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.API.AllowedWSOrigins
	} else {
		// No allowlist configured: accept any origin. Deployments that
		// expose this endpoint directly should set ALLOWED_WS_ORIGINS.
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		// Accept already wrote the HTTP error response.
		return
	}

	// Blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
