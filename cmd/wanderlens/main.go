// Wanderlens orchestrator server — provides the HTTP/WebSocket API, manages
// queue workers and the cron scheduler, and runs usability studies against
// live browsers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wanderlens/wanderlens/pkg/analysis"
	"github.com/wanderlens/wanderlens/pkg/api"
	"github.com/wanderlens/wanderlens/pkg/blob"
	"github.com/wanderlens/wanderlens/pkg/browser"
	"github.com/wanderlens/wanderlens/pkg/config"
	"github.com/wanderlens/wanderlens/pkg/database"
	"github.com/wanderlens/wanderlens/pkg/events"
	"github.com/wanderlens/wanderlens/pkg/livestate"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/navigator"
	"github.com/wanderlens/wanderlens/pkg/orchestrator"
	"github.com/wanderlens/wanderlens/pkg/queue"
	"github.com/wanderlens/wanderlens/pkg/recorder"
	"github.com/wanderlens/wanderlens/pkg/services"
	"github.com/wanderlens/wanderlens/pkg/version"
)

func main() {
	// Load .env if present; production deployments inject real environment.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	podID := queue.NewPodID()
	slog.Info("Starting wanderlens", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: requeue jobs a previous incarnation
	// of this host left claimed.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, cfg.Queue, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan covers whatever this missed
	}

	// 4. Blob store for screenshots
	blobs, err := blob.NewStore(cfg.BlobDir)
	if err != nil {
		slog.Error("Failed to initialize blob store", "dir", cfg.BlobDir, "error", err)
		os.Exit(1)
	}

	// 5. LLM gateway client with cost tracking.
	// Note: grpc.NewClient dials lazily; the connection happens on first RPC.
	costs := llm.NewCostTracker()
	llmClient, err := llm.NewGatewayClient(cfg.LLM.GatewayURL, costs)
	if err != nil {
		slog.Error("Failed to initialize LLM gateway client", "addr", cfg.LLM.GatewayURL, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM gateway client", "error", err)
		}
	}()
	slog.Info("LLM gateway client initialized", "addr", cfg.LLM.GatewayURL)

	// 6. Streaming infrastructure: live-state store, transactional publisher,
	// WebSocket manager, NOTIFY listener.
	states := livestate.NewStore(dbClient.DB(), cfg.LiveState.TTL)
	publisher := events.NewEventPublisher(dbClient.DB())
	snapshots := services.NewSnapshotService(dbClient.Client, states)
	connManager := events.NewConnectionManager(snapshots, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Browser pool, sized to the session fan-out cap.
	browserPool := browser.NewPool(cfg.Browser, cfg.Study.MaxConcurrentSessions)
	browserPool.SetScreencast(connManager.Screencast())
	browserPool.StartHealthProbe()
	slog.Info("Browser pool initialized",
		"default_mode", cfg.Browser.DefaultMode,
		"cloud_configured", browserPool.CloudConfigured(),
		"max_concurrent", cfg.Study.MaxConcurrentSessions)

	// 8. Study pipeline: recorder → navigator → analysis → orchestrator.
	rec := recorder.NewRecorder(dbClient.Client, blobs, states, publisher)
	nav := navigator.NewNavigator(llmClient, rec, cfg.Study)
	orch := orchestrator.New(orchestrator.Deps{
		Client:      dbClient.Client,
		States:      states,
		Publisher:   publisher,
		Pool:        browserPool,
		Navigator:   nav,
		Analyzer:    analysis.NewAnalyzer(dbClient.Client, blobs, llmClient),
		Prioritizer: analysis.NewPrioritizer(dbClient.Client),
		Synthesizer: analysis.NewSynthesizer(dbClient.Client, llmClient),
		Costs:       costs,
	}, cfg.Study)

	// 9. Worker pool claims study jobs and drives the orchestrator.
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, orch, states)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Cron scheduler enqueues recurring study runs.
	scheduler := queue.NewScheduler(dbClient.Client, cfg.Queue)
	scheduler.Start(ctx)

	// 11. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, workerPool, browserPool, notifyListener, connManager)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Wanderlens started",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop producing work, drain workers, then tear
	// down the edges.
	scheduler.Stop()
	slog.Info("Scheduler stopped")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — unfinished studies will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	browserPool.StopHealthProbe()
	browserShutdownCtx, browserCancel := context.WithTimeout(ctx, 30*time.Second)
	defer browserCancel()
	if err := browserPool.Shutdown(browserShutdownCtx); err != nil {
		slog.Error("Browser pool shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
