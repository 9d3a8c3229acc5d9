// Package e2e boots the whole runtime in-process — real PostgreSQL (per-test
// schema), real queue workers, real NOTIFY-backed WebSocket fan-out — with
// fake browser backends and a scripted in-process gRPC gateway standing in
// for the outside world. Tests drive it the way a deployment is driven:
// enqueue a job, watch the WebSocket, read the database.
package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

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
	testdb "github.com/wanderlens/wanderlens/test/database"
	"github.com/wanderlens/wanderlens/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestApp is one fully wired replica. Collaborators are exported so tests can
// script the gateway, trip backend failures, or cancel through the pool —
// everything else goes through the HTTP/WS surface or the database.
type TestApp struct {
	t *testing.T

	Config   *config.Config
	DBClient *database.Client

	Gateway   *MockGateway
	LLMClient *llm.GatewayClient
	Costs     *llm.CostTracker

	LocalBackend *browser.FakeBackend
	CloudBackend *browser.FakeBackend // nil unless WithCloudBackend
	BrowserPool  *browser.Pool

	States      *livestate.Store
	Publisher   *events.EventPublisher
	ConnManager *events.ConnectionManager
	Listener    *events.NotifyListener
	Blobs       *blob.Store

	Orchestrator *orchestrator.Orchestrator
	WorkerPool   *queue.WorkerPool
	PodID        string

	Server  *api.Server
	HTTP    *httptest.Server
	BaseURL string
	WSURL   string
}

type appOptions struct {
	podID       string
	cloud       bool
	dbClient    *database.Client
	baseConnStr string
	mutators    []func(*config.Config)
}

// AppOption customizes a TestApp before wiring.
type AppOption func(*appOptions)

// WithConfig applies an arbitrary config mutation before wiring.
func WithConfig(fn func(*config.Config)) AppOption {
	return func(o *appOptions) { o.mutators = append(o.mutators, fn) }
}

// WithWorkerCount sets the replica's worker goroutine count. Zero is a valid
// observer replica: it serves HTTP/WS and runs maintenance but claims nothing.
func WithWorkerCount(n int) AppOption {
	return WithConfig(func(c *config.Config) { c.Queue.WorkerCount = n })
}

// WithMaxConcurrentSessions caps simultaneous persona sessions per study run.
func WithMaxConcurrentSessions(n int) AppOption {
	return WithConfig(func(c *config.Config) { c.Study.MaxConcurrentSessions = n })
}

// WithMaxSteps caps the navigate loop per session.
func WithMaxSteps(n int) AppOption {
	return WithConfig(func(c *config.Config) { c.Study.MaxStepsPerSession = n })
}

// WithSessionTimeout bounds each persona session's wall clock.
func WithSessionTimeout(d time.Duration) AppOption {
	return WithConfig(func(c *config.Config) { c.Study.SessionTimeout = d })
}

// WithPodID pins the replica's pod identity (multi-replica tests name theirs).
func WithPodID(id string) AppOption {
	return func(o *appOptions) { o.podID = id }
}

// WithCloudBackend adds a fake cloud provider. Sessions then resolve to cloud
// by default, which is what failover tests need.
func WithCloudBackend() AppOption {
	return func(o *appOptions) { o.cloud = true }
}

// WithDatabase reuses an existing client and base connection string instead
// of creating a per-test schema. Multi-replica tests point two apps at one
// schema from testdb.NewSharedTestDB.
func WithDatabase(client *database.Client, baseConnStr string) AppOption {
	return func(o *appOptions) {
		o.dbClient = client
		o.baseConnStr = baseConnStr
	}
}

// NewTestApp wires a replica in the same order as cmd/wanderlens and tears it
// down in reverse on test cleanup. Timings are production defaults tightened
// for test turnaround.
func NewTestApp(t *testing.T, opts ...AppOption) *TestApp {
	t.Helper()

	options := &appOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// 1. Configuration.
	cfg := config.Default()
	cfg.Study.MaxStepsPerSession = 10
	cfg.Study.StudyTimeout = 60 * time.Second
	cfg.Study.SessionTimeout = 30 * time.Second
	cfg.Study.PerActionTimeout = 2 * time.Second
	cfg.Browser.AcquireTimeout = 5 * time.Second
	cfg.BlobDir = t.TempDir()
	cfg.Queue.PollInterval = 50 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 0
	cfg.Queue.HeartbeatInterval = 1 * time.Second
	cfg.Queue.OrphanThreshold = 5 * time.Second
	cfg.Queue.OrphanDetectionInterval = 5 * time.Second
	cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	if options.cloud {
		cfg.Browser.CloudAPIURL = "https://browsers.invalid"
		cfg.Browser.CloudAPIKey = "test-key"
	}
	for _, mutate := range options.mutators {
		mutate(cfg)
	}

	// 2. Database: per-test schema unless the test shares one across replicas.
	dbClient := options.dbClient
	baseConnStr := options.baseConnStr
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
		baseConnStr = util.GetBaseConnectionString(t)
	}

	podID := options.podID
	if podID == "" {
		podID = queue.NewPodID()
	}

	appCtx, appCancel := context.WithCancel(context.Background())

	// 3. Startup orphan cleanup, same as a fresh pod boot.
	require.NoError(t, queue.CleanupStartupOrphans(appCtx, dbClient.Client, cfg.Queue, podID))

	// 4. Blob store on a throwaway directory.
	blobs, err := blob.NewStore(cfg.BlobDir)
	require.NoError(t, err)

	// 5. LLM gateway: in-process gRPC server, dialed by the real client so
	// requests cross a real wire.
	gateway, gatewayAddr := StartMockGateway(t)
	cfg.LLM.GatewayURL = gatewayAddr
	costs := llm.NewCostTracker()
	llmClient, err := llm.NewGatewayClient(gatewayAddr, costs)
	require.NoError(t, err)

	// 6. Streaming infrastructure.
	states := livestate.NewStore(dbClient.DB(), cfg.LiveState.TTL)
	publisher := events.NewEventPublisher(dbClient.DB())
	snapshots := services.NewSnapshotService(dbClient.Client, states)
	connManager := events.NewConnectionManager(snapshots, 5*time.Second)

	listener := events.NewNotifyListener(baseConnStr, connManager)
	require.NoError(t, listener.Start(appCtx))
	connManager.SetListener(listener)

	// 7. Browser pool over fakes. Cloud stays a true nil unless requested:
	// a present cloud backend changes default mode resolution.
	localBackend := browser.NewFakeBackend()
	var cloudBackend *browser.FakeBackend
	var pool *browser.Pool
	if options.cloud {
		cloudBackend = browser.NewFakeBackend()
		pool = browser.NewPoolWithBackends(cfg.Browser, cfg.Study.MaxConcurrentSessions, localBackend, cloudBackend)
	} else {
		pool = browser.NewPoolWithBackends(cfg.Browser, cfg.Study.MaxConcurrentSessions, localBackend, nil)
	}
	pool.SetScreencast(connManager.Screencast())

	// 8. Study pipeline.
	rec := recorder.NewRecorder(dbClient.Client, blobs, states, publisher)
	nav := navigator.NewNavigator(llmClient, rec, cfg.Study)
	orch := orchestrator.New(orchestrator.Deps{
		Client:      dbClient.Client,
		States:      states,
		Publisher:   publisher,
		Pool:        pool,
		Navigator:   nav,
		Analyzer:    analysis.NewAnalyzer(dbClient.Client, blobs, llmClient),
		Prioritizer: analysis.NewPrioritizer(dbClient.Client),
		Synthesizer: analysis.NewSynthesizer(dbClient.Client, llmClient),
		Costs:       costs,
	}, cfg.Study)

	// 9. Worker pool.
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, orch, states)
	require.NoError(t, workerPool.Start(appCtx))

	// 10. HTTP server. httptest owns the listener; WS URLs derive from it.
	srv := api.NewServer(cfg, dbClient, workerPool, pool, listener, connManager)
	ts := httptest.NewServer(srv.Router())

	t.Cleanup(func() {
		ts.Close()
		workerPool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = pool.Shutdown(shutdownCtx)
		listener.Stop(shutdownCtx)
		appCancel()
		_ = llmClient.Close()
	})

	return &TestApp{
		t:            t,
		Config:       cfg,
		DBClient:     dbClient,
		Gateway:      gateway,
		LLMClient:    llmClient,
		Costs:        costs,
		LocalBackend: localBackend,
		CloudBackend: cloudBackend,
		BrowserPool:  pool,
		States:       states,
		Publisher:    publisher,
		ConnManager:  connManager,
		Listener:     listener,
		Blobs:        blobs,
		Orchestrator: orch,
		WorkerPool:   workerPool,
		PodID:        podID,
		Server:       srv,
		HTTP:         ts,
		BaseURL:      ts.URL,
		WSURL:        "ws" + ts.URL[len("http"):] + "/api/v1/ws",
	}
}
